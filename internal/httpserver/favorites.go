package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type toggleFavoriteRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

func toggleFavoriteHandler(c *gin.Context) {
	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
		return
	}
	sess := currentSession(c)
	member, _ := sess.ToggleFavorite(req.ProductID)
	c.JSON(http.StatusOK, gin.H{"favorite": member, "favorites": sess.Favorites()})
}

func listFavoritesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": currentSession(c).Favorites()})
}
