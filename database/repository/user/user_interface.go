package userRepo

import (
	"taily/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetByEmail retrieves a user by its email address; nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves the user holding the given session token hash.
	GetByTokenHash(tokenHash string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a partial $set update to a user document.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
}
