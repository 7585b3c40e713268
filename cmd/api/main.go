package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"shopspark/internal/auth"
	"shopspark/internal/catalog"
	"shopspark/internal/config"
	"shopspark/internal/httpserver"
	"shopspark/internal/sched"
	"shopspark/internal/session"
)

// tokenTTL bounds how long a sign-in token keeps restoring identity onto
// fresh sessions.
const tokenTTL = 24 * time.Hour

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	seed := cfg.CatalogSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	products := catalog.NewGenerator(rand.NewSource(seed), cfg.CatalogPasses, cfg.CatalogCap).Generate()
	cat := catalog.New(products)
	logger.Printf("generated catalog of %d products (seed %d)", cat.Len(), seed)

	scheduler := sched.New()
	defer scheduler.Stop()

	sessions := session.NewManager(cat, scheduler, session.Config{
		SettleDelay:    cfg.PaymentDelay,
		AssistantDelay: cfg.AssistantDelay,
	})
	tokens := auth.NewManager([]byte(cfg.JWTSecret), tokenTTL)
	hub := httpserver.NewHub(logger)
	sessions.SetNotifier(hub.Broadcast)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Sessions:    sessions,
		Catalog:     cat,
		Tokens:      tokens,
		Hub:         hub,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.SessionTTL / 4)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := sessions.Sweep(cfg.SessionTTL); n > 0 {
					logger.Printf("swept %d idle sessions", n)
				}
			case <-sweepDone:
				return
			}
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}
	close(sweepDone)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	}
}
