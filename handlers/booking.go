package handlers

import (
	"errors"
	"net/http"

	"taily/models"
	"taily/services/booking"
	"taily/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

// CreateBookingHandler handles POST /bookings. The requester is taken from
// the session, never from the payload.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = c.GetString("userID")

	created, err := h.BookingService.CreateBooking(&req)
	if err != nil {
		logger.Error("Booking creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetMyBookingsHandler handles GET /bookings/mine.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	views, err := h.BookingService.GetBookingsForUser(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if views == nil {
		views = []models.BookingView{}
	}
	c.JSON(http.StatusOK, views)
}

// GetProviderBookingsHandler handles GET /bookings/provider for sitters. The
// listing is resolved from the session's provider link.
func (h *BookingHandler) GetProviderBookingsHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	if providerID == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "no provider listing linked to this account"})
		return
	}

	views, err := h.BookingService.GetBookingsForProvider(providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if views == nil {
		views = []models.BookingView{}
	}
	c.JSON(http.StatusOK, views)
}

// GetBookingByIDHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	view, err := h.BookingService.GetBookingByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateBookingStatusHandler handles PATCH /bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := booking.Actor{
		UserID: c.GetString("userID"),
		Role:   c.GetString("role"),
	}

	updated, err := h.BookingService.UpdateBookingStatus(c.Param("id"), actor, req.Status)
	if err != nil {
		status := bookingErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Booking status update failed", zap.String("bookingID", c.Param("id")), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// bookingErrorStatus maps lifecycle errors onto HTTP status codes.
func bookingErrorStatus(err error) int {
	var transitionErr *booking.InvalidTransitionError
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrNotCompletable), errors.As(err, &transitionErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
