package handlers

import (
	"errors"
	"net/http"

	"taily/services/review"
	"taily/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes post-booking review endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

// SubmitReviewHandler handles POST /bookings/:id/review.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rv, err := h.ReviewService.SubmitReview(c.Param("id"), c.GetString("userID"), req.Rating, req.Comment)
	if err != nil {
		status := reviewErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Review submission failed", zap.String("bookingID", c.Param("id")), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rv)
}

// GetBookingReviewHandler handles GET /bookings/:id/review.
func (h *ReviewHandler) GetBookingReviewHandler(c *gin.Context) {
	rv, err := h.ReviewService.GetReviewForBooking(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no review for this booking"})
		return
	}
	c.JSON(http.StatusOK, rv)
}

func reviewErrorStatus(err error) int {
	switch {
	case errors.Is(err, review.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, review.ErrNotReviewer):
		return http.StatusForbidden
	case errors.Is(err, review.ErrBookingNotComplete), errors.Is(err, review.ErrAlreadyReviewed):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
