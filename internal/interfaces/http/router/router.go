package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/catalogozord/backend/internal/infrastructure/auth"
	"github.com/catalogozord/backend/internal/infrastructure/logger"
	"github.com/catalogozord/backend/internal/interfaces/http/handler"
	"github.com/catalogozord/backend/internal/interfaces/http/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	System    *handler.SystemHandler
	Catalog   *handler.CatalogHandler
	Inventory *handler.InventoryHandler
	Price     *handler.PriceHandler
	Extra     *handler.ExtraHandler
	Supplier  *handler.SupplierHandler
}

// Config tunes router-level middleware.
type Config struct {
	CORSOrigins []string
	Environment string
}

// New builds the gin engine with all routes mounted. Privileged routes sit
// behind identity verification; reads are open to the internal network.
func New(cfg Config, handlers Handlers, verifier *auth.TokenVerifier, log *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.GinRecovery(log),
		middleware.CORS(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}),
	)

	api := engine.Group("/api/v1")
	api.GET("/health", handlers.System.Health)

	// public reads
	api.GET("/catalog", handlers.Catalog.List)
	api.GET("/catalog/upstream", handlers.Catalog.Upstream)
	api.GET("/inventory/:sku", handlers.Inventory.GetLive)
	api.GET("/prices/:sku", handlers.Price.Get)
	api.GET("/extras", handlers.Extra.List)

	// privileged writes
	privileged := api.Group("")
	privileged.Use(middleware.RequireIdentity(verifier))
	{
		privileged.POST("/catalog/sync", handlers.Catalog.Sync)
		privileged.POST("/inventory/movements", handlers.Inventory.CreateMovement)
		privileged.PUT("/prices/:sku", handlers.Price.Update)
		privileged.PUT("/extras/:sku", handlers.Extra.Put)
		privileged.GET("/suppliers", handlers.Supplier.List)
		privileged.POST("/suppliers", handlers.Supplier.Create)
		privileged.PATCH("/suppliers/:id", handlers.Supplier.Update)
		privileged.DELETE("/suppliers/:id", handlers.Supplier.Delete)
	}

	return engine
}
