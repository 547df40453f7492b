package review

import (
	"errors"
	"fmt"
	"strings"

	bookingRepo "taily/database/repository/booking"
	reviewRepo "taily/database/repository/review"
	userRepo "taily/database/repository/user"
	"taily/models"
	"taily/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gating errors handlers map onto HTTP status codes.
var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotReviewer        = errors.New("only the booking's requester can review it")
	ErrBookingNotComplete = errors.New("booking must be completed before it can be reviewed")
	ErrAlreadyReviewed    = errors.New("booking already has a review")
)

// ReviewService handles post-booking review submission and retrieval.
type ReviewService interface {
	SubmitReview(bookingID, userID string, rating int, comment string) (*models.Review, error)
	GetReviewForBooking(bookingID string) (*models.Review, error)
	GetReviewsForProvider(providerID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
}

// SubmitReview records the one-time rating for a completed booking. All
// gates run server side: the booking must exist, be Completed, belong to the
// submitting user, and not have a review yet.
func (s *DefaultReviewService) SubmitReview(bookingID, userID string, rating int, comment string) (*models.Review, error) {
	logger := utils.GetLogger()

	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("comment is required")
	}

	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.UserID != userID {
		return nil, ErrNotReviewer
	}
	if b.Status != models.BookingCompleted {
		return nil, ErrBookingNotComplete
	}

	existing, err := s.Repo.GetByBookingID(bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	userName := b.UserName
	if u, err := s.UserRepo.GetByID(userID); err == nil && u.Name != "" {
		userName = u.Name
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		ProviderID: b.ProviderID,
		UserID:     userID,
		UserName:   userName,
		Rating:     rating,
		Comment:    comment,
	}

	if err := s.Repo.Create(review); err != nil {
		logger.Error("Failed to create review", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	logger.Info("Review submitted",
		zap.String("bookingID", bookingID),
		zap.String("providerID", b.ProviderID),
		zap.Int("rating", rating))
	return review, nil
}

// GetReviewForBooking returns the review for a booking, or nil when the
// booking has none yet.
func (s *DefaultReviewService) GetReviewForBooking(bookingID string) (*models.Review, error) {
	return s.Repo.GetByBookingID(bookingID)
}

// GetReviewsForProvider returns all reviews written about a listing.
func (s *DefaultReviewService) GetReviewsForProvider(providerID string) ([]models.Review, error) {
	return s.Repo.GetByProviderID(providerID)
}
