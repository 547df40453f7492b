package provider

import (
	providerRepo "taily/database/repository/provider"
	reviewRepo "taily/database/repository/review"
	"taily/models"
)

// ProviderService manages sitter listings: the public browse surface, the
// sitter's own profile, and admin approval.
type ProviderService interface {
	// Public browse over approved listings, with the conjunctive filter.
	BrowseProviders(filter models.ProviderFilter) ([]models.Provider, error)
	GetProviderByID(id string) (*models.Provider, error)
	GetReviewsForProvider(providerID string) ([]models.Review, error)

	// Sitter profile management.
	GetProviderByUserID(userID string) (*models.Provider, error)
	UpdateProvider(provider models.Provider) (*models.Provider, error)

	// Admin.
	GetAllProviders() ([]models.Provider, error)
	SetApproval(id string, approved bool) error
	DeleteProvider(id string) error
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo       providerRepo.ProviderRepository
	ReviewRepo reviewRepo.ReviewRepository
}
