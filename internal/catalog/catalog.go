package catalog

import (
	"github.com/shopspring/decimal"

	"shopspark/internal/domain"
)

// Catalog is the full generated product set with an ID index. It is
// immutable after construction and safe for concurrent readers.
type Catalog struct {
	products []domain.Product
	byID     map[int]domain.Product
}

func New(products []domain.Product) *Catalog {
	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Products returns the catalog in generation order. Callers must not
// mutate the returned slice.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

func (c *Catalog) Get(id int) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Price reports the current price for a product, for cart total derivation.
func (c *Catalog) Price(id int) (decimal.Decimal, bool) {
	p, ok := c.byID[id]
	if !ok {
		return decimal.Zero, false
	}
	return p.Price, true
}

func (c *Catalog) Len() int {
	return len(c.products)
}
