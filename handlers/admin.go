package handlers

import (
	"net/http"

	"taily/models"
	"taily/services/booking"
	"taily/services/provider"
	"taily/services/user"
	"taily/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the moderation surface: accounts, listing approval,
// and the full booking ledger.
type AdminHandler struct {
	UserService     user.UserService
	ProviderService provider.ProviderService
	BookingService  booking.BookingService
}

// GetAllUsersHandler handles GET /admin/users.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetAllProvidersHandler handles GET /admin/providers. Unapproved listings
// are included.
func (h *AdminHandler) GetAllProvidersHandler(c *gin.Context) {
	providers, err := h.ProviderService.GetAllProviders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	c.JSON(http.StatusOK, providers)
}

// SetProviderApprovalHandler handles PATCH /admin/providers/:id/approval.
func (h *AdminHandler) SetProviderApprovalHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ProviderService.SetApproval(c.Param("id"), *req.Approved); err != nil {
		logger.Error("Approval update failed", zap.String("providerID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Approval updated"})
}

// DeleteProviderHandler handles DELETE /admin/providers/:id.
func (h *AdminHandler) DeleteProviderHandler(c *gin.Context) {
	if err := h.ProviderService.DeleteProvider(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}

// GetAllBookingsHandler handles GET /admin/bookings.
func (h *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	views, err := h.BookingService.GetAllBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if views == nil {
		views = []models.BookingView{}
	}
	c.JSON(http.StatusOK, views)
}
