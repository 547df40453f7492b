package providerRepo

import (
	"taily/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for sitter-listing data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetByUserID retrieves the provider owned by the given user; nil when absent.
	GetByUserID(userID string) (*models.Provider, error)
	// GetAll retrieves all providers, approved or not (admin view).
	GetAll() ([]models.Provider, error)
	// GetApproved retrieves all providers visible in public browse.
	GetApproved() ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// UpdateSetDocument applies a partial $set update to a provider document.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a provider record by its ID.
	Delete(id string) error
}
