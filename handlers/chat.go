package handlers

import (
	"errors"
	"io"
	"net/http"

	"taily/models"
	"taily/services/chat"
	"taily/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the per-booking messaging endpoints, including the
// live SSE stream.
type ChatHandler struct {
	ChatService chat.ChatService
}

// SendMessageHandler handles POST /bookings/:id/chat.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.ChatService.SendMessage(c.Param("id"), c.GetString("userID"), req.Text)
	if err != nil {
		status := chatErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Chat send failed", zap.String("bookingID", c.Param("id")), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetMessagesHandler handles GET /bookings/:id/chat.
func (h *ChatHandler) GetMessagesHandler(c *gin.Context) {
	msgs, err := h.ChatService.GetMessages(c.Param("id"), c.GetString("userID"))
	if err != nil {
		c.JSON(chatErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkReadHandler handles POST /bookings/:id/chat/read.
func (h *ChatHandler) MarkReadHandler(c *gin.Context) {
	if err := h.ChatService.MarkRead(c.Param("id"), c.GetString("userID")); err != nil {
		c.JSON(chatErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Read"})
}

// StreamHandler handles GET /bookings/:id/chat/stream. Messages published
// while the connection is open are delivered as SSE "message" events.
func (h *ChatHandler) StreamHandler(c *gin.Context) {
	feed, err := h.ChatService.Subscribe(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		c.JSON(chatErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		msg, ok := <-feed
		if !ok {
			return false
		}
		c.SSEvent("message", msg)
		return true
	})
}

func chatErrorStatus(err error) int {
	switch {
	case errors.Is(err, chat.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, chat.ErrNotParty):
		return http.StatusForbidden
	case errors.Is(err, chat.ErrChatClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
