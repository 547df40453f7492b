package review

import (
	"fmt"
	"testing"
	"time"

	"taily/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memReviewRepo struct {
	reviews map[string]*models.Review
}

func (m *memReviewRepo) GetByBookingID(bookingID string) (*models.Review, error) {
	r, ok := m.reviews[bookingID]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (m *memReviewRepo) GetByProviderID(providerID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.reviews {
		if r.ProviderID == providerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReviewRepo) GetAll() ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.reviews {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memReviewRepo) Create(r *models.Review) error {
	r.CreatedAt = time.Now()
	copied := *r
	m.reviews[r.BookingID] = &copied
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

type memUserRepo struct {
	users map[string]*models.User
}

func (m *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	copied := *u
	return &copied, nil
}

func (m *memUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (m *memUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (m *memUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) { return nil, nil }
func (m *memUserRepo) Create(u *models.User) error { return nil }
func (m *memUserRepo) Delete(id string) error { return nil }
func (m *memUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (m *memUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return m.GetByID(id)
}

func newReviewService(status string) *DefaultReviewService {
	return &DefaultReviewService{
		Repo: &memReviewRepo{reviews: make(map[string]*models.Review)},
		BookingRepo: &memBookingRepo{bookings: map[string]*models.Booking{
			"book-1": {
				ID: "book-1", UserID: "owner-1", UserName: "Alex",
				ProviderID: "prov-1", Status: status,
			},
		}},
		UserRepo: &memUserRepo{users: map[string]*models.User{
			"owner-1": {ID: "owner-1", Name: "Alex"},
		}},
	}
}

func TestSubmitReviewHappyPath(t *testing.T) {
	svc := newReviewService(models.BookingCompleted)

	rv, err := svc.SubmitReview("book-1", "owner-1", 5, "Wonderful with our spaniel")
	require.NoError(t, err)
	assert.Equal(t, "book-1", rv.BookingID)
	assert.Equal(t, "prov-1", rv.ProviderID)
	assert.Equal(t, "Alex", rv.UserName)
	assert.Equal(t, 5, rv.Rating)
	assert.NotEmpty(t, rv.ID)
}

func TestSubmitReviewRequiresCompletedBooking(t *testing.T) {
	for _, status := range []string{models.BookingPending, models.BookingAccepted, models.BookingRejected} {
		svc := newReviewService(status)
		_, err := svc.SubmitReview("book-1", "owner-1", 4, "too early")
		assert.ErrorIs(t, err, ErrBookingNotComplete, status)
	}
}

func TestSubmitReviewOnlyByRequester(t *testing.T) {
	svc := newReviewService(models.BookingCompleted)
	_, err := svc.SubmitReview("book-1", "someone-else", 4, "nice")
	assert.ErrorIs(t, err, ErrNotReviewer)
}

func TestSubmitReviewOncePerBooking(t *testing.T) {
	svc := newReviewService(models.BookingCompleted)

	_, err := svc.SubmitReview("book-1", "owner-1", 5, "first")
	require.NoError(t, err)

	_, err = svc.SubmitReview("book-1", "owner-1", 1, "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestSubmitReviewValidatesRatingAndComment(t *testing.T) {
	svc := newReviewService(models.BookingCompleted)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.SubmitReview("book-1", "owner-1", rating, "ok")
		assert.Error(t, err, "rating %d", rating)
	}

	_, err := svc.SubmitReview("book-1", "owner-1", 3, "   ")
	assert.Error(t, err)
}

func TestSubmitReviewUnknownBooking(t *testing.T) {
	svc := newReviewService(models.BookingCompleted)
	_, err := svc.SubmitReview("missing", "owner-1", 4, "hello")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
