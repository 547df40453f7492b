package user

import (
	"fmt"
	"strings"
	"time"

	"taily/models"
	"taily/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID fetches a user without credential fields.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	u, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	return u, nil
}

// GetUserByEmail fetches a user by email address.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	u.PasswordHash = ""
	u.TokenHash = ""
	return u, nil
}

// UpdateUser updates non-empty profile fields using a partial update. Role
// and credentials are not updatable through this path.
func (s *DefaultUserService) UpdateUser(u models.User) (*models.User, error) {
	logger := utils.GetLogger()

	if u.ID == "" {
		return nil, fmt.Errorf("user ID is required for update")
	}

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if u.Name != "" {
		updateFields["name"] = u.Name
	}
	if u.Phone != "" {
		updateFields["phone"] = u.Phone
	}
	if u.FCMToken != "" {
		updateFields["fcmToken"] = u.FCMToken
	}
	if len(updateFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(u.ID, updateFields); err != nil {
		logger.Error("Failed to update user", zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.Repo.GetByIDWithProjection(u.ID, nil)
}

// DeleteUser removes the account and, for sitters, the linked provider
// listing.
func (s *DefaultUserService) DeleteUser(userID string) error {
	logger := utils.GetLogger()

	u, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}

	if u.ProviderID != "" {
		if err := s.ProviderRepo.Delete(u.ProviderID); err != nil {
			logger.Warn("DeleteUser: failed to delete linked provider",
				zap.String("userID", userID), zap.String("providerID", u.ProviderID), zap.Error(err))
		}
	}

	if err := s.Repo.Delete(userID); err != nil {
		logger.Error("Failed to delete user", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetAllUsers returns every account (admin view).
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
