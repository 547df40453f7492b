package chatRepo

import "taily/models"

// ChatRepository defines methods for booking-thread chat data access. One
// chat head exists per booking; messages live in their own collection.
type ChatRepository interface {
	// GetChat retrieves the chat head for a booking; nil when absent.
	GetChat(bookingID string) (*models.Chat, error)
	// UpsertChat creates or refreshes the chat head for a booking.
	UpsertChat(chat *models.Chat) error
	// AppendMessage stores a message and refreshes the chat head preview.
	AppendMessage(message *models.ChatMessage) error
	// GetMessages retrieves all messages for a booking, oldest first.
	GetMessages(bookingID string) ([]models.ChatMessage, error)
	// MarkRead records the given user on every message of the thread.
	MarkRead(bookingID, userID string) error
}
