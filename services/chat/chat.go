package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "taily/database/repository/booking"
	chatRepo "taily/database/repository/chat"
	providerRepo "taily/database/repository/provider"
	"taily/models"
	"taily/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gating errors handlers map onto HTTP status codes.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotParty        = errors.New("only the booking's parties can use its chat")
	ErrChatClosed      = errors.New("chat opens once the booking is accepted")
)

// ChatService is the per-booking messaging surface. Messages persist in
// Mongo and fan out live over Redis pub/sub to SSE subscribers.
type ChatService interface {
	SendMessage(bookingID, senderID, text string) (*models.ChatMessage, error)
	GetMessages(bookingID, userID string) ([]models.ChatMessage, error)
	MarkRead(bookingID, userID string) error
	Subscribe(ctx context.Context, bookingID, userID string) (<-chan models.ChatMessage, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo         chatRepo.ChatRepository
	BookingRepo  bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
}

// authorize resolves the booking's two party user IDs and checks membership.
// Chat is available only once a booking is Accepted, and stays open after
// completion.
func (s *DefaultChatService) authorize(bookingID, userID string) (*models.Booking, []string, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, ErrBookingNotFound
	}
	if b.Status != models.BookingAccepted && b.Status != models.BookingCompleted {
		return nil, nil, ErrChatClosed
	}

	prov, err := s.ProviderRepo.GetByID(b.ProviderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch provider %s: %w", b.ProviderID, err)
	}

	parties := []string{b.UserID, prov.UserID}
	for _, p := range parties {
		if p == userID {
			return b, parties, nil
		}
	}
	return nil, nil, ErrNotParty
}

// SendMessage appends a message to the booking's thread and publishes it to
// live subscribers.
func (s *DefaultChatService) SendMessage(bookingID, senderID, text string) (*models.ChatMessage, error) {
	logger := utils.GetLogger()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is required")
	}

	_, parties, err := s.authorize(bookingID, senderID)
	if err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now(),
		ReadBy:    []string{senderID},
	}

	if err := s.Repo.AppendMessage(msg); err != nil {
		logger.Error("Failed to append chat message", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, err
	}

	if err := s.Repo.UpsertChat(&models.Chat{
		BookingID:     bookingID,
		Users:         parties,
		LastMessage:   msg.Text,
		LastTimestamp: msg.Timestamp,
	}); err != nil {
		logger.Warn("Failed to refresh chat head", zap.String("bookingID", bookingID), zap.Error(err))
	}

	s.publish(msg)
	return msg, nil
}

// GetMessages returns the full thread, oldest first, and marks it read for
// the caller.
func (s *DefaultChatService) GetMessages(bookingID, userID string) ([]models.ChatMessage, error) {
	if _, _, err := s.authorize(bookingID, userID); err != nil {
		return nil, err
	}

	msgs, err := s.Repo.GetMessages(bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.MarkRead(bookingID, userID); err != nil {
		utils.GetLogger().Warn("Failed to mark chat read", zap.String("bookingID", bookingID), zap.Error(err))
	}
	return msgs, nil
}

// MarkRead records the caller on every message of the thread.
func (s *DefaultChatService) MarkRead(bookingID, userID string) error {
	if _, _, err := s.authorize(bookingID, userID); err != nil {
		return err
	}
	return s.Repo.MarkRead(bookingID, userID)
}

// publish fans the message out on the booking's Redis channel. Delivery is
// best effort; the message is already persisted.
func (s *DefaultChatService) publish(msg *models.ChatMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		utils.GetLogger().Warn("Failed to encode chat message for publish", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	channel := utils.ChatChannelPrefix + msg.BookingID
	if err := utils.GetCacheClient().Publish(ctx, channel, payload).Err(); err != nil {
		utils.GetLogger().Warn("Failed to publish chat message", zap.String("channel", channel), zap.Error(err))
	}
}

// Subscribe opens a live feed of the booking's messages. The returned
// channel closes when ctx is cancelled.
func (s *DefaultChatService) Subscribe(ctx context.Context, bookingID, userID string) (<-chan models.ChatMessage, error) {
	if _, _, err := s.authorize(bookingID, userID); err != nil {
		return nil, err
	}

	channel := utils.ChatChannelPrefix + bookingID
	sub := utils.GetCacheClient().Subscribe(ctx, channel)

	out := make(chan models.ChatMessage, 16)
	go func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case redisMsg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var msg models.ChatMessage
				if err := json.Unmarshal([]byte(redisMsg.Payload), &msg); err != nil {
					utils.GetLogger().Warn("Dropping undecodable chat message", zap.Error(err))
					continue
				}
				out <- msg
			}
		}
	}()
	return out, nil
}
