package chat

import (
	"fmt"
	"testing"
	"time"

	"taily/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memChatRepo struct {
	heads    map[string]*models.Chat
	messages []models.ChatMessage
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{heads: make(map[string]*models.Chat)}
}

func (m *memChatRepo) GetChat(bookingID string) (*models.Chat, error) {
	c, ok := m.heads[bookingID]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *memChatRepo) UpsertChat(chat *models.Chat) error {
	copied := *chat
	m.heads[chat.BookingID] = &copied
	return nil
}

func (m *memChatRepo) AppendMessage(msg *models.ChatMessage) error {
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memChatRepo) GetMessages(bookingID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, msg := range m.messages {
		if msg.BookingID == bookingID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *memChatRepo) MarkRead(bookingID, userID string) error {
	for i := range m.messages {
		if m.messages[i].BookingID != bookingID {
			continue
		}
		seen := false
		for _, r := range m.messages[i].ReadBy {
			if r == userID {
				seen = true
				break
			}
		}
		if !seen {
			m.messages[i].ReadBy = append(m.messages[i].ReadBy, userID)
		}
	}
	return nil
}

type memBookingRepo struct {
	bookings map[string]*models.Booking
}

func (m *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (m *memBookingRepo) GetByUserID(userID string) ([]models.Booking, error) { return nil, nil }
func (m *memBookingRepo) GetByProviderID(providerID string) ([]models.Booking, error) { return nil, nil }
func (m *memBookingRepo) GetAll() ([]models.Booking, error) { return nil, nil }
func (m *memBookingRepo) Create(b *models.Booking) error { return nil }
func (m *memBookingRepo) UpdateStatus(id, status string) error { return nil }

type memProviderRepo struct {
	providers map[string]*models.Provider
}

func (m *memProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := m.providers[id]
	if !ok {
		return nil, fmt.Errorf("provider with id %s not found", id)
	}
	copied := *p
	return &copied, nil
}

func (m *memProviderRepo) GetByUserID(userID string) (*models.Provider, error) { return nil, nil }
func (m *memProviderRepo) GetAll() ([]models.Provider, error) { return nil, nil }
func (m *memProviderRepo) GetApproved() ([]models.Provider, error) { return nil, nil }
func (m *memProviderRepo) Create(p *models.Provider) error { return nil }
func (m *memProviderRepo) UpdateSetDocument(id string, doc bson.M) error { return nil }
func (m *memProviderRepo) Delete(id string) error { return nil }

func newChatService(status string) (*DefaultChatService, *memChatRepo) {
	chats := newMemChatRepo()
	svc := &DefaultChatService{
		Repo: chats,
		BookingRepo: &memBookingRepo{bookings: map[string]*models.Booking{
			"book-1": {ID: "book-1", UserID: "owner-1", ProviderID: "prov-1", Status: status},
		}},
		ProviderRepo: &memProviderRepo{providers: map[string]*models.Provider{
			"prov-1": {ID: "prov-1", UserID: "sitter-1"},
		}},
	}
	return svc, chats
}

func TestChatClosedBeforeAcceptance(t *testing.T) {
	for _, status := range []string{models.BookingPending, models.BookingRejected} {
		svc, _ := newChatService(status)
		_, err := svc.GetMessages("book-1", "owner-1")
		assert.ErrorIs(t, err, ErrChatClosed, status)
	}
}

func TestChatOpenForBothPartiesOnceAccepted(t *testing.T) {
	for _, status := range []string{models.BookingAccepted, models.BookingCompleted} {
		svc, _ := newChatService(status)
		for _, uid := range []string{"owner-1", "sitter-1"} {
			_, err := svc.GetMessages("book-1", uid)
			assert.NoError(t, err, "%s as %s", status, uid)
		}
	}
}

func TestChatRejectsNonParties(t *testing.T) {
	svc, _ := newChatService(models.BookingAccepted)
	_, err := svc.GetMessages("book-1", "stranger")
	assert.ErrorIs(t, err, ErrNotParty)
}

func TestChatUnknownBooking(t *testing.T) {
	svc, _ := newChatService(models.BookingAccepted)
	_, err := svc.GetMessages("missing", "owner-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetMessagesMarksThreadRead(t *testing.T) {
	svc, chats := newChatService(models.BookingAccepted)

	chats.messages = append(chats.messages, models.ChatMessage{
		ID: "m1", BookingID: "book-1", SenderID: "sitter-1",
		Text: "On my way", Timestamp: time.Now(), ReadBy: []string{"sitter-1"},
	})

	msgs, err := svc.GetMessages("book-1", "owner-1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	assert.Contains(t, chats.messages[0].ReadBy, "owner-1")
}
