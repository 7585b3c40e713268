package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"shopspark/internal/auth"
	"shopspark/internal/catalog"
	"shopspark/internal/session"
)

// Deps carries the wired collaborators for the router.
type Deps struct {
	Sessions    *session.Manager
	Catalog     *catalog.Catalog
	Tokens      *auth.Manager
	Hub         *Hub
	CORSOrigins []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Catalog))

	api := router.Group("/", sessionMiddleware(deps.Sessions, deps.Tokens))

	api.GET("/catalog", listCatalogHandler(deps.Catalog))
	api.GET("/catalog/categories", listCategoriesHandler)

	api.GET("/cart", getCartHandler(deps.Catalog))
	api.POST("/cart/items", addCartItemHandler(deps.Catalog))
	api.PUT("/cart/items/:productId", setCartQuantityHandler(deps.Catalog))
	api.DELETE("/cart/items/:productId", removeCartItemHandler(deps.Catalog))

	api.POST("/favorites/toggle", toggleFavoriteHandler)
	api.GET("/favorites", listFavoritesHandler)

	api.GET("/checkout", getCheckoutHandler)
	api.POST("/checkout", beginCheckoutHandler)
	api.POST("/checkout/auth", submitAuthHandler(deps.Tokens))
	api.DELETE("/checkout/auth", dismissAuthHandler)
	api.POST("/checkout/payment", submitPaymentHandler)
	api.DELETE("/checkout/payment", dismissPaymentHandler)
	api.POST("/signout", signOutHandler)

	chat := api.Group("/assistant", perSessionLimit(rate.Every(time.Second), 5))
	chat.POST("", submitChatHandler)
	chat.GET("", getTranscriptHandler)

	if deps.Hub != nil {
		api.GET("/ws", deps.Hub.handle)
	}

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", sessionHeader)
	cfg.ExposeHeaders = append(cfg.ExposeHeaders, sessionHeader)
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
