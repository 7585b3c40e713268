package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"shopspark/internal/catalog"
)

// Dumps a generated catalog as JSON, for fixtures and for eyeballing what a
// given seed produces.
func main() {
	logger := log.New(os.Stderr, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	seed := flag.Int64("seed", 0, "generator seed (0 seeds from the clock)")
	passes := flag.Int("passes", catalog.DefaultPasses, "generation passes over the template set")
	limit := flag.Int("limit", catalog.MaxProducts, "maximum number of products")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	products := catalog.NewGenerator(rand.NewSource(*seed), *passes, *limit).Generate()
	logger.Printf("generated %d products (seed %d)", len(products), *seed)

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Fatalf("create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		logger.Fatalf("encode catalog: %v", err)
	}
}
