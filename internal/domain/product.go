package domain

import "github.com/shopspring/decimal"

// Product is an immutable catalog entry. Instances are shared read-only
// between the catalog, cart lines and favorites lookups.
type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Image         string          `json:"image"`
	Category      string          `json:"category"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	Badge         string          `json:"badge"`
}
