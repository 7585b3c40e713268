package assistant

import (
	"fmt"
	"strings"
)

// bucket maps trigger keywords to one canned reply.
type bucket struct {
	keywords []string
	reply    string
}

var buckets = []bucket{
	{
		keywords: []string{"deal", "discount"},
		reply:    "We have great deals running right now! Look for the Sale and Hot Deal badges, and check the before-discount prices to see how much you save.",
	},
	{
		keywords: []string{"recommend", "suggest"},
		reply:    "Happy to help you pick! Our Best Seller and Popular badges mark customer favorites. Try browsing a category that interests you and sort by rating.",
	},
	{
		keywords: []string{"price", "cheap", "budget"},
		reply:    "Looking for budget-friendly options? Use the search to narrow things down, and keep an eye on items with a Sale badge for the best prices.",
	},
}

// Respond maps a free-text utterance to a canned reply by case-insensitive
// keyword matching. Unmatched input falls back to a generic message echoing
// the count of currently filtered results. It holds no state across turns.
func Respond(message string, resultCount int) string {
	m := strings.ToLower(message)
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(m, kw) {
				return b.reply
			}
		}
	}
	return fmt.Sprintf("I can help you find products, deals and recommendations. There are %d products matching your current view - is there anything specific you're looking for?", resultCount)
}
