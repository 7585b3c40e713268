package domain

// CartLine pairs a product reference with a quantity. A cart holds at most
// one line per product; quantities are always >= 1.
type CartLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}
