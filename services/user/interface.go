package user

import (
	providerRepo "taily/database/repository/provider"
	userRepo "taily/database/repository/user"
	"taily/models"
)

// UserService bundles account registration, session management, and account
// CRUD.
type UserService interface {
	// Registration / authentication
	RegisterUser(user *models.User) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	RevokeUserAuthToken(userID string) error

	// User management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user models.User) (*models.User, error)
	DeleteUser(userID string) error

	// Admin / utility
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo         userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository
}

// AuthResponse contains the authenticated user's ID, token, and profile data
// the client needs immediately after signin.
type AuthResponse struct {
	ID         string `json:"id"`
	Token      string `json:"token"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role"`
	ProviderID string `json:"providerId,omitempty"`
}
