package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodlens/backend/internal/domain"
	"github.com/foodlens/backend/internal/usecase"
)

// healthPingTimeout bounds the store ping issued by the health check so the
// endpoint answers quickly even when the store is down.
const healthPingTimeout = 2 * time.Second

// Handler holds dependencies for HTTP handlers
type Handler struct {
	products *usecase.ProductService
}

// NewHandler creates a new HTTP handler
func NewHandler(products *usecase.ProductService) *Handler {
	return &Handler{products: products}
}

// HealthCheck reports service and store status. It always answers 200; store
// trouble shows up in the database field, not in the status code.
func (h *Handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	database := "connected"
	if err := h.products.Ping(ctx); err != nil {
		log.Printf("[health] store ping failed: %v", err)
		database = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetProduct looks up a product by barcode, trying normalized and fallback
// forms of the code in order.
func (h *Handler) GetProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	result, err := h.products.Lookup(c.Request.Context(), barcode)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"barcode_searched": result.Searched,
		"barcode_found":    result.Found,
		"product":          result.Product,
	})
}

// SearchProducts handles free-text product search.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			limit = parsed
		}
	}

	results, err := h.products.Search(c.Request.Context(), query, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"query":    query,
		"count":    len(results),
		"products": results,
	})
}

// GetStats returns aggregate statistics over the product database.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.products.Stats(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"statistics": stats,
	})
}

// Index documents the API surface.
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "foodlens-backend",
		"version": "1.0.0",
		"endpoints": gin.H{
			"GET /health":           "service and database status",
			"GET /product/:barcode": "look up a product by barcode (8-14 characters)",
			"GET /search":           "search products by name; params: q (required), limit (optional, default 10)",
			"GET /stats":            "aggregate statistics over the product database",
			"GET /":                 "this document",
		},
	})
}

// renderError maps domain errors to HTTP responses. Validation problems and
// misses carry their message through; anything else is logged server-side
// and answered with a generic 500.
func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidBarcode):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid barcode",
			"message": err.Error(),
		})
	case errors.Is(err, domain.ErrMissingQuery):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing query",
			"message": err.Error(),
		})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Product not found",
			"message": err.Error(),
		})
	default:
		log.Printf("[http] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "An unexpected error occurred",
		})
	}
}
