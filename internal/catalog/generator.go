package catalog

import (
	"math"
	"math/rand"

	"github.com/shopspring/decimal"

	"shopspark/internal/domain"
)

const (
	// MaxProducts is the hard cap on generated catalog size.
	MaxProducts = 1000
	// DefaultPasses is how many times the template x variation cross-product
	// is repeated to inflate volume.
	DefaultPasses = 50
)

// Generator produces a synthetic catalog from the embedded template data.
// The shape of the output (count, field ranges) is fixed; the drawn values
// vary with the random source, so the storefront looks different per load
// unless a fixed seed is supplied.
type Generator struct {
	rng    *rand.Rand
	passes int
	limit  int
}

// NewGenerator builds a Generator reading from src. Non-positive passes or
// limit fall back to the defaults; the limit is clamped to MaxProducts.
func NewGenerator(src rand.Source, passes, limit int) *Generator {
	if passes <= 0 {
		passes = DefaultPasses
	}
	if limit <= 0 || limit > MaxProducts {
		limit = MaxProducts
	}
	return &Generator{rng: rand.New(src), passes: passes, limit: limit}
}

// Generate returns the product set with IDs assigned 1..N in generation
// order (pass x template x variation). It cannot fail; malformed template
// price ranges would only produce degenerate prices.
func (g *Generator) Generate() []domain.Product {
	products := make([]domain.Product, 0, g.limit)
	id := 1

	for pass := 0; pass < g.passes; pass++ {
		for _, tpl := range templates {
			for _, variation := range variations {
				if id > g.limit {
					return products
				}

				price := g.uniformPrice(tpl.MinPrice, tpl.MaxPrice)
				markup := decimal.NewFromFloat(1 + g.rng.Float64()*0.5)
				originalPrice := price.Mul(markup).Round(2)

				brand := brands[g.rng.Intn(len(brands))]
				color := colors[g.rng.Intn(len(colors))]
				badge := badges[g.rng.Intn(len(badges))]

				products = append(products, domain.Product{
					ID:            id,
					Name:          brand + " " + tpl.Name + " " + variation + " - " + color,
					Price:         price,
					OriginalPrice: originalPrice,
					Image:         tpl.Image,
					Category:      tpl.Category,
					Rating:        math.Round((3.5+g.rng.Float64()*1.5)*10) / 10,
					Reviews:       g.rng.Intn(300) + 10,
					Badge:         badge,
				})
				id++
			}
		}
	}

	return products
}

func (g *Generator) uniformPrice(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.rng.Float64()*(max-min) + min).Round(2)
}
