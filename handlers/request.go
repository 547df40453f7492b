package handlers

import (
	"errors"
	"net/http"

	"taily/models"
	"taily/services/request"
	"taily/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestHandler exposes the open lead-submission endpoint and the admin
// moderation endpoints.
type RequestHandler struct {
	RequestService request.RequestService
}

// SubmitRequestHandler handles POST /requests. No authentication required.
func (h *RequestHandler) SubmitRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.RequestService.SubmitRequest(&req)
	if err != nil {
		logger.Warn("Request submission rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllRequestsHandler handles GET /admin/requests.
func (h *RequestHandler) GetAllRequestsHandler(c *gin.Context) {
	requests, err := h.RequestService.GetAllRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if requests == nil {
		requests = []models.Request{}
	}
	c.JSON(http.StatusOK, requests)
}

// UpdateRequestStatusHandler handles PATCH /admin/requests/:id/status.
func (h *RequestHandler) UpdateRequestStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.RequestService.UpdateRequestStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, request.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRequestHandler handles DELETE /admin/requests/:id.
func (h *RequestHandler) DeleteRequestHandler(c *gin.Context) {
	if err := h.RequestService.DeleteRequest(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}
