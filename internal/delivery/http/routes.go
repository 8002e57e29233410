package http

import (
	"github.com/gin-gonic/gin"

	"github.com/foodlens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	router.GET("/", handler.Index)
	router.GET("/health", handler.HealthCheck)
	router.GET("/product/:barcode", handler.GetProduct)
	router.GET("/search", handler.SearchProducts)
	router.GET("/stats", handler.GetStats)

	return router
}
