package catalog

import (
	"strings"

	"shopspark/internal/domain"
)

// CategoryAll is the sentinel category label matching every product.
const CategoryAll = "All"

// Categories returns the fixed category label set with the "All" sentinel
// first, for the collaborator's category bar.
func Categories() []string {
	out := make([]string, 0, len(categories)+1)
	out = append(out, CategoryAll)
	out = append(out, categories...)
	return out
}

// Filter applies the category and free-text filters conjunctively and
// preserves input order. The empty query matches everything, as does the
// "All" category (or an empty category label). It returns the full matching
// set; capping the rendered count is a display concern.
func Filter(products []domain.Product, query, category string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchCategory(p, category) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchCategory(p domain.Product, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return p.Category == category
}
