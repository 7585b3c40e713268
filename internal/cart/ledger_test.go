package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func fixedPrices(prices map[int]string) PriceFunc {
	return func(productID int) (decimal.Decimal, bool) {
		s, ok := prices[productID]
		if !ok {
			return decimal.Zero, false
		}
		return decimal.RequireFromString(s), true
	}
}

func TestAddMergesLines(t *testing.T) {
	l := NewLedger()
	if qty := l.Add(1); qty != 1 {
		t.Fatalf("expected quantity 1, got %d", qty)
	}
	if qty := l.Add(1); qty != 2 {
		t.Fatalf("expected quantity 2, got %d", qty)
	}
	if l.Len() != 1 {
		t.Fatalf("expected one line, got %d", l.Len())
	}
	if l.TotalItems() != 2 {
		t.Fatalf("expected 2 items, got %d", l.TotalItems())
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	l := NewLedger()
	l.Add(3)
	l.Add(1)
	l.Add(2)
	l.Add(1)
	lines := l.Lines()
	want := []int{3, 1, 2}
	for i, id := range want {
		if lines[i].ProductID != id {
			t.Fatalf("unexpected order %+v", lines)
		}
	}
}

func TestSetQuantityReplaces(t *testing.T) {
	l := NewLedger()
	l.Add(1)
	if !l.SetQuantity(1, 5) {
		t.Fatalf("expected change")
	}
	if l.Quantity(1) != 5 {
		t.Fatalf("expected quantity 5, got %d", l.Quantity(1))
	}
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	l := NewLedger()
	l.Add(1)
	if !l.SetQuantity(1, 0) {
		t.Fatalf("expected change")
	}
	if l.Len() != 0 || l.Quantity(1) != 0 {
		t.Fatalf("expected empty cart, got %+v", l.Lines())
	}
}

func TestSetQuantityAbsentIsNoop(t *testing.T) {
	l := NewLedger()
	l.Add(1)
	if l.SetQuantity(99, 3) {
		t.Fatalf("expected no-op for absent product")
	}
	if l.Len() != 1 || l.Quantity(1) != 1 {
		t.Fatalf("cart changed by no-op: %+v", l.Lines())
	}
}

func TestRemoveReindexes(t *testing.T) {
	l := NewLedger()
	l.Add(1)
	l.Add(2)
	l.Add(3)
	if !l.Remove(2) {
		t.Fatalf("expected removal")
	}
	if l.Remove(2) {
		t.Fatalf("expected no-op on second removal")
	}
	// Later lines must still be addressable after the slice shifts.
	if !l.SetQuantity(3, 4) || l.Quantity(3) != 4 {
		t.Fatalf("index stale after remove: %+v", l.Lines())
	}
}

func TestClear(t *testing.T) {
	l := NewLedger()
	l.Add(1)
	l.Add(2)
	l.Clear()
	if l.Len() != 0 || l.TotalItems() != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestTotals(t *testing.T) {
	l := NewLedger()
	l.Add(1)
	l.Add(1)
	l.Add(2)

	prices := fixedPrices(map[int]string{1: "10.00", 2: "5.50"})
	if l.TotalItems() != 3 {
		t.Fatalf("expected 3 items, got %d", l.TotalItems())
	}
	total := l.TotalPrice(prices)
	if !total.Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("expected 25.50, got %s", total)
	}
}

func TestTotalPriceEmptyCart(t *testing.T) {
	l := NewLedger()
	total := l.TotalPrice(fixedPrices(nil))
	if !total.Equal(decimal.Zero) {
		t.Fatalf("expected zero, got %s", total)
	}
}

func TestTotalPriceUsesCurrentPrices(t *testing.T) {
	l := NewLedger()
	l.Add(1)
	first := l.TotalPrice(fixedPrices(map[int]string{1: "10.00"}))
	second := l.TotalPrice(fixedPrices(map[int]string{1: "12.00"}))
	if !first.Equal(decimal.RequireFromString("10.00")) || !second.Equal(decimal.RequireFromString("12.00")) {
		t.Fatalf("totals not derived from current prices: %s then %s", first, second)
	}
}
