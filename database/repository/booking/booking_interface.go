package bookingRepo

import "taily/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID; nil when absent.
	GetByID(id string) (*models.Booking, error)
	// GetByUserID retrieves bookings requested by the given user.
	GetByUserID(userID string) ([]models.Booking, error)
	// GetByProviderID retrieves bookings targeting the given provider.
	GetByProviderID(providerID string) ([]models.Booking, error)
	// GetAll retrieves all bookings (admin view).
	GetAll() ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateStatus overwrites the booking's status field.
	UpdateStatus(id, status string) error
}
