package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shopspark/internal/catalog"
	"shopspark/internal/domain"
	"shopspark/internal/session"
)

type cartLineView struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type cartView struct {
	Lines      []cartLineView  `json:"lines"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func buildCartView(sess *session.Session, cat *catalog.Catalog) cartView {
	lines := sess.CartLines()
	views := make([]cartLineView, 0, len(lines))
	for _, line := range lines {
		p, ok := cat.Get(line.ProductID)
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		views = append(views, cartLineView{
			ProductID: line.ProductID,
			Name:      p.Name,
			Image:     p.Image,
			UnitPrice: p.Price,
			Quantity:  line.Quantity,
			LineTotal: p.Price.Mul(qty).Round(2),
		})
	}
	return cartView{
		Lines:      views,
		TotalItems: sess.TotalItems(),
		TotalPrice: sess.TotalPrice(),
	}
}

func getCartHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cart": buildCartView(currentSession(c), cat)})
	}
}

type addCartItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

func addCartItemHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		sess := currentSession(c)
		qty, err := sess.AddToCart(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"quantity": qty, "cart": buildCartView(sess, cat)})
	}
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func setCartQuantityHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		sess := currentSession(c)
		sess.SetCartQuantity(productID, req.Quantity)
		c.JSON(http.StatusOK, gin.H{"cart": buildCartView(sess, cat)})
	}
}

func removeCartItemHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		sess := currentSession(c)
		sess.RemoveFromCart(productID)
		c.JSON(http.StatusOK, gin.H{"cart": buildCartView(sess, cat)})
	}
}
