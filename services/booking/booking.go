package booking

import (
	"context"
	"fmt"
	"time"

	"taily/models"
	"taily/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates and stores a new reservation request. The booking
// always starts out Pending regardless of what the client sent.
func (s *DefaultBookingService) CreateBooking(b *models.Booking) (*models.Booking, error) {
	logger := utils.GetLogger()

	if b.UserID == "" || b.ProviderID == "" || b.ServiceType == "" {
		return nil, fmt.Errorf("userId, providerId and serviceType are required")
	}

	prov, err := s.ProviderRepo.GetByID(b.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("provider %s not found", b.ProviderID)
	}
	if !prov.Approved {
		return nil, fmt.Errorf("provider %s is not accepting bookings", b.ProviderID)
	}

	requester, err := s.UserRepo.GetByID(b.UserID)
	if err != nil {
		return nil, fmt.Errorf("user %s not found", b.UserID)
	}

	b.ID = uuid.New().String()
	b.Status = models.BookingPending
	b.ProviderName = prov.Name
	if b.UserName == "" {
		b.UserName = requester.Name
	}
	if b.UserEmail == "" {
		b.UserEmail = requester.Email
	}
	if b.PetNumber <= 0 {
		b.PetNumber = 1
	}

	// Reject unreadable date shapes up front rather than storing them.
	if _, err := b.DateSpec(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(b); err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Notifier.SendProviderPushNotification(ctx, b.ProviderID,
			"New booking request",
			fmt.Sprintf("%s requested %s", b.UserName, b.ServiceType),
			map[string]string{"bookingId": b.ID},
		); err != nil {
			logger.Warn("Failed to notify provider of new booking", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	logger.Info("Booking created", zap.String("bookingID", b.ID), zap.String("providerID", b.ProviderID))
	return b, nil
}

// GetBookingByID returns a single booking with derived flags.
func (s *DefaultBookingService) GetBookingByID(id string) (*models.BookingView, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	view, err := s.annotate(*b)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// GetBookingsForUser returns the requester's bookings, newest first.
func (s *DefaultBookingService) GetBookingsForUser(userID string) ([]models.BookingView, error) {
	bookings, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.annotateAll(bookings)
}

// GetBookingsForProvider returns the bookings targeting a listing, newest
// first.
func (s *DefaultBookingService) GetBookingsForProvider(providerID string) ([]models.BookingView, error) {
	bookings, err := s.Repo.GetByProviderID(providerID)
	if err != nil {
		return nil, err
	}
	return s.annotateAll(bookings)
}

// GetAllBookings returns every booking (admin view).
func (s *DefaultBookingService) GetAllBookings() ([]models.BookingView, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.annotateAll(bookings)
}

func (s *DefaultBookingService) annotateAll(bookings []models.Booking) ([]models.BookingView, error) {
	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		v, err := s.annotate(b)
		if err != nil {
			utils.GetLogger().Warn("Skipping unreadable booking", zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

// annotate computes the derived dashboard flags for one booking.
func (s *DefaultBookingService) annotate(b models.Booking) (models.BookingView, error) {
	view := models.BookingView{Booking: b}
	view.Completable = b.Completable(time.Now())

	if b.Status == models.BookingCompleted {
		existing, err := s.ReviewRepo.GetByBookingID(b.ID)
		if err != nil {
			return view, err
		}
		view.ReviewEligible = existing == nil
	}
	return view, nil
}
