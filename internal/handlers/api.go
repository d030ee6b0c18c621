package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yishak-cs/tea_alchemy/internal/catalog"
	"github.com/yishak-cs/tea_alchemy/internal/logging"
	"github.com/yishak-cs/tea_alchemy/internal/metrics"
	"github.com/yishak-cs/tea_alchemy/internal/models"
	"github.com/yishak-cs/tea_alchemy/internal/services"
)

// HealthChecker reports whether an optional backing service is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// APIHandler handles all API requests
type APIHandler struct {
	catalog               *catalog.Store
	recommendationService *services.RecommendationService
	graph                 HealthChecker
}

// NewAPIHandler creates a new API handler. graph may be nil when no mirror is configured.
func NewAPIHandler(store *catalog.Store, recommendationService *services.RecommendationService, graph HealthChecker) *APIHandler {
	return &APIHandler{
		catalog:               store,
		recommendationService: recommendationService,
		graph:                 graph,
	}
}

// SetupRoutes configures all API routes
func (h *APIHandler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:productId", h.GetProduct)

		api.GET("/blend", h.GetConfigurator)
		api.GET("/blend/outcomes", h.ListBlendOutcomes)
		api.GET("/blend/axes", h.ListAxes)
		api.GET("/blend/flavor-categories", h.ListFlavorCategories)
		api.GET("/blend/sizes", h.ListBlendSizes)
		api.POST("/blend/outcomes/:outcomeId/compatibility", h.CheckCompatibility)
		api.POST("/blend/outcomes/:outcomeId/score", h.ScoreSelection)
	}
}

// ListProducts returns the retail catalog
func (h *APIHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"products": h.catalog.ListProducts(),
		"currency": models.CurrencyCode,
	})
}

// GetProduct returns a single product
func (h *APIHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Param("productId"))
	if err != nil {
		h.respondError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":  product,
		"currency": models.CurrencyCode,
	})
}

// GetConfigurator returns everything the custom blend pages render from
func (h *APIHandler) GetConfigurator(c *gin.Context) {
	c.JSON(http.StatusOK, h.recommendationService.Configurator())
}

// ListBlendOutcomes returns the outcomes with ranked, truncated bases
func (h *APIHandler) ListBlendOutcomes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"outcomes":        h.recommendationService.BuildBlendOutcomes(),
		"max_bases_shown": services.MaxBasesShown,
	})
}

// ListAxes returns the axis vocabulary in catalog order
func (h *APIHandler) ListAxes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"axes": h.catalog.AxisVocabulary()})
}

// ListFlavorCategories returns the flavor category vocabulary
func (h *APIHandler) ListFlavorCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flavor_categories": h.catalog.FlavorCategoryVocabulary()})
}

// ListBlendSizes returns the purchasable custom blend sizes and their currency
func (h *APIHandler) ListBlendSizes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"blend_sizes": h.catalog.BlendSizes(),
		"currency":    models.CurrencyCode,
	})
}

// CheckCompatibility validates an in-progress flavor selection
func (h *APIHandler) CheckCompatibility(c *gin.Context) {
	outcomeID := c.Param("outcomeId")

	var req models.FlavorSelection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.recommendationService.CheckCompatible(outcomeID, req.FlavorIDs)
	if err != nil {
		h.respondError(c, outcomeID, err)
		return
	}
	metrics.RecordCompatibilityCheck(outcomeID, !result.OK())

	c.JSON(http.StatusOK, gin.H{
		"outcome_id": outcomeID,
		"status":     result.Status,
		"conflicts":  result.Conflicts,
	})
}

// ScoreSelection returns the axis read-out for a blend selection
func (h *APIHandler) ScoreSelection(c *gin.Context) {
	outcomeID := c.Param("outcomeId")

	var req models.BlendSelection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: base_id is required"})
		return
	}

	score, err := h.recommendationService.ScoreSelection(outcomeID, req)
	if err != nil {
		h.respondError(c, outcomeID, err)
		return
	}
	metrics.RecordSelectionScored(outcomeID, score.DominantAxis)

	c.JSON(http.StatusOK, score)
}

// Health reports service health, including the graph mirror when configured
func (h *APIHandler) Health(c *gin.Context) {
	if h.graph == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "graph": "disabled"})
		return
	}

	if err := h.graph.Health(c.Request.Context()); err != nil {
		logging.Warn().Err(err).Msg("Graph mirror health check failed")
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "graph": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "graph": "ok"})
}

// respondError maps catalog and engine errors onto HTTP responses
func (h *APIHandler) respondError(c *gin.Context, outcomeID string, err error) {
	var refErr *services.InvalidReferenceError
	switch {
	case errors.As(err, &refErr):
		metrics.RecordInvalidReference(refErr.OutcomeID, refErr.Kind)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": refErr.Error(),
			"kind":  refErr.Kind,
			"id":    refErr.ID,
		})
	case errors.Is(err, catalog.ErrNotFound):
		if outcomeID != "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Outcome not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		logging.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
