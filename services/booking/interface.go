package booking

import (
	bookingRepo "taily/database/repository/booking"
	providerRepo "taily/database/repository/provider"
	reviewRepo "taily/database/repository/review"
	userRepo "taily/database/repository/user"
	"taily/models"
	"taily/services/notification"
	"taily/services/tasks"
)

// Actor identifies who is attempting a booking operation. Role gating and
// party checks run against it on every mutation.
type Actor struct {
	UserID string
	Role   string
}

// BookingService manages the reservation lifecycle.
type BookingService interface {
	CreateBooking(b *models.Booking) (*models.Booking, error)
	GetBookingByID(id string) (*models.BookingView, error)
	GetBookingsForUser(userID string) ([]models.BookingView, error)
	GetBookingsForProvider(providerID string) ([]models.BookingView, error)
	GetAllBookings() ([]models.BookingView, error)
	UpdateBookingStatus(bookingID string, actor Actor, newStatus string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation. Scheduler is
// optional; when nil, accepted bookings simply get no completion reminder.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository
	ReviewRepo   reviewRepo.ReviewRepository
	Notifier     notification.NotificationService
	Scheduler    *tasks.ReminderScheduler
}
