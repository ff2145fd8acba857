package router

import (
	"net/http"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers groups the route handlers wired by New.
type Handlers struct {
	Products *handler.CatalogHandler
	Carts    *handler.CatalogHandler
	Carousel *handler.CatalogHandler
	Buys     *handler.CatalogHandler
	Orders   *handler.OrderHandler
	Accounts *handler.AccountHandler
}

// New creates the HTTP router with all routes and middleware configured.
// Catalog and order mutations require a valid token; reads, carts, signups
// and logins are public.
func New(h Handlers, tokens *auth.TokenManager, corsCfg config.CORSConfig, logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsCfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Accounts
	r.POST("/user/login", h.Accounts.Login)
	r.POST("/user", h.Accounts.RegisterUser)
	r.GET("/user", h.Accounts.CheckUser)
	r.POST("/seller", h.Accounts.RegisterSeller)
	r.GET("/seller", h.Accounts.CheckSeller)

	// Public catalog reads
	r.GET("/carousel", h.Carousel.List)
	r.GET("/products", h.Products.List)
	r.GET("/products/:id", h.Products.Get)
	r.GET("/buy", h.Buys.List)

	// Cart lines carry no user reference and stay public.
	r.POST("/cart", h.Carts.Create)
	r.GET("/cart", h.Carts.List)
	r.DELETE("/cart/:id", h.Carts.Delete)

	r.GET("/order", h.Orders.List)

	// Mutations on the catalog and orders require a valid token.
	protected := r.Group("", middleware.RequireAuth(tokens, logger))
	{
		protected.POST("/products", h.Products.Create)
		protected.PUT("/products/:id", h.Products.Update)
		protected.DELETE("/products/:id", h.Products.Delete)
		protected.DELETE("/buy/:id", h.Buys.DeleteByItemID)
		protected.POST("/order", h.Orders.Create)
		protected.DELETE("/order/:id", h.Orders.Delete)
	}

	return r
}
