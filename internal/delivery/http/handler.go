package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopscout/backend/internal/domain"
)

// ComparisonRunner is the slice of the usecase layer the handlers need
type ComparisonRunner interface {
	Compare(ctx context.Context, query string) (*domain.Comparison, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	comparisons ComparisonRunner
}

// NewHandler creates a new HTTP handler
func NewHandler(comparisons ComparisonRunner) *Handler {
	return &Handler{comparisons: comparisons}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopscout-backend",
		"version": "1.0.0",
	})
}

// CompareProducts runs the comparison pipeline for the query in the request
// body. An empty or missing query is rejected up front with a warning and
// never reaches the providers.
func (h *Handler) CompareProducts(c *gin.Context) {
	var req domain.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please enter a product query.",
		})
		return
	}

	result, err := h.comparisons.Compare(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Please enter a product query.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Comparison failed. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
