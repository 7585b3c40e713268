package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopspark/internal/catalog"
	"shopspark/internal/domain"
)

type catalogResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Query    string           `json:"query"`
	Category string           `json:"category"`
}

// listCatalogHandler serves the filtered catalog view. Query parameters
// carry the setSearchQuery/setCategory events and are remembered on the
// session; omitting them replays the session's current filter. The optional
// limit caps the returned page; total always counts the full matching set.
func listCatalogHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		query, category := sess.Filter()
		if q, ok := c.GetQuery("query"); ok {
			query = q
		}
		if cg, ok := c.GetQuery("category"); ok {
			if cg == "" {
				cg = catalog.CategoryAll
			}
			category = cg
		}
		sess.SetFilter(query, category)

		matched := catalog.Filter(cat.Products(), query, category)
		total := len(matched)
		if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit < total {
			matched = matched[:limit]
		}

		c.JSON(http.StatusOK, catalogResponse{
			Products: matched,
			Total:    total,
			Query:    query,
			Category: category,
		})
	}
}

func listCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}
