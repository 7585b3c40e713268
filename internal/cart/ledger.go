package cart

import (
	"github.com/shopspring/decimal"

	"shopspark/internal/domain"
)

// PriceFunc resolves the current price for a product. Totals are derived
// from current prices at call time, never from a snapshot taken at add time.
type PriceFunc func(productID int) (decimal.Decimal, bool)

// Ledger holds the cart lines in insertion order of first add, at most one
// line per product. It is not safe for concurrent use; the owning session
// serializes access.
type Ledger struct {
	lines []domain.CartLine
	index map[int]int
}

func NewLedger() *Ledger {
	return &Ledger{index: make(map[int]int)}
}

// Add merges a unit of the product into the cart and returns the resulting
// line quantity.
func (l *Ledger) Add(productID int) int {
	if pos, ok := l.index[productID]; ok {
		l.lines[pos].Quantity++
		return l.lines[pos].Quantity
	}
	l.index[productID] = len(l.lines)
	l.lines = append(l.lines, domain.CartLine{ProductID: productID, Quantity: 1})
	return 1
}

// SetQuantity replaces the line's quantity, removing the line when the new
// quantity is not positive. Absent products are a no-op. The return value
// reports whether the cart changed.
func (l *Ledger) SetQuantity(productID, quantity int) bool {
	pos, ok := l.index[productID]
	if !ok {
		return false
	}
	if quantity <= 0 {
		return l.Remove(productID)
	}
	if l.lines[pos].Quantity == quantity {
		return false
	}
	l.lines[pos].Quantity = quantity
	return true
}

// Remove deletes the line if present.
func (l *Ledger) Remove(productID int) bool {
	pos, ok := l.index[productID]
	if !ok {
		return false
	}
	l.lines = append(l.lines[:pos], l.lines[pos+1:]...)
	delete(l.index, productID)
	for id, p := range l.index {
		if p > pos {
			l.index[id] = p - 1
		}
	}
	return true
}

// Clear empties the cart unconditionally.
func (l *Ledger) Clear() {
	l.lines = nil
	l.index = make(map[int]int)
}

// Lines returns a copy of the current cart lines.
func (l *Ledger) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// Quantity reports the line quantity for a product, zero when absent.
func (l *Ledger) Quantity(productID int) int {
	if pos, ok := l.index[productID]; ok {
		return l.lines[pos].Quantity
	}
	return 0
}

// TotalItems is the sum of all line quantities.
func (l *Ledger) TotalItems() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums price x quantity over all lines using prices resolved
// through price, rounded to 2 decimals. Lines whose product can no longer
// be resolved contribute nothing.
func (l *Ledger) TotalPrice(price PriceFunc) decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		p, ok := price(line.ProductID)
		if !ok {
			continue
		}
		total = total.Add(p.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2)
}

func (l *Ledger) Len() int {
	return len(l.lines)
}
