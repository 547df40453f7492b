package handlers

import (
	"net/http"

	"taily/models"
	"taily/services/provider"
	"taily/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes the public browse surface and the sitter's own
// listing management.
type ProviderHandler struct {
	ProviderService provider.ProviderService
}

// BrowseProvidersHandler handles GET /providers. All filter fields are
// optional query parameters.
func (h *ProviderHandler) BrowseProvidersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var filter models.ProviderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	providers, err := h.ProviderService.BrowseProviders(filter)
	if err != nil {
		logger.Error("Browse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	c.JSON(http.StatusOK, providers)
}

// GetProviderByIDHandler handles GET /providers/:id.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.ProviderService.GetProviderByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProviderReviewsHandler handles GET /providers/:id/reviews.
func (h *ProviderHandler) GetProviderReviewsHandler(c *gin.Context) {
	reviews, err := h.ProviderService.GetReviewsForProvider(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// GetMyListingHandler handles GET /providers/me for sitters.
func (h *ProviderHandler) GetMyListingHandler(c *gin.Context) {
	p, err := h.ProviderService.GetProviderByUserID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateMyListingHandler handles PUT /providers/me for sitters.
func (h *ProviderHandler) UpdateMyListingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	existing, err := h.ProviderService.GetProviderByUserID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req models.Provider
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = existing.ID

	updated, err := h.ProviderService.UpdateProvider(req)
	if err != nil {
		logger.Error("Listing update failed", zap.String("providerID", existing.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
