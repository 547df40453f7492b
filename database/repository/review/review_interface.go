package reviewRepo

import "taily/models"

// ReviewRepository defines methods for review data access. Reviews are
// append-only; there is no update or delete path.
type ReviewRepository interface {
	// GetByBookingID retrieves the review for a booking; nil when absent.
	GetByBookingID(bookingID string) (*models.Review, error)
	// GetByProviderID retrieves all reviews for a provider.
	GetByProviderID(providerID string) ([]models.Review, error)
	// GetAll retrieves all reviews (used for listing-page aggregation).
	GetAll() ([]models.Review, error)
	// Create inserts a new review record.
	Create(review *models.Review) error
}
