package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taily/models"
	"taily/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a new account. Sitter signups also get an unapproved
// provider listing stub linked to the account, so the dashboard can be opened
// before the listing is filled in.
func (s *DefaultUserService) RegisterUser(u *models.User) (*AuthResponse, error) {
	logger := utils.GetLogger()

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" || u.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.Role != models.RoleUser && u.Role != models.RoleSitter {
		return nil, fmt.Errorf("invalid role %q", u.Role)
	}

	existing, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		logger.Error("RegisterUser: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u.ID = uuid.New().String()
	u.PasswordHash = string(hash)
	u.Password = ""
	u.CreatedAt = now
	u.UpdatedAt = now

	if u.Role == models.RoleSitter {
		u.ProviderID = uuid.New().String()
	}

	token, err := utils.GenerateToken(u.ID, u.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}
	u.TokenHash = utils.HashToken(token)

	// The user record goes in first so a failed listing insert cannot leave
	// an orphaned provider stub behind.
	if err := s.Repo.Create(u); err != nil {
		logger.Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	if u.Role == models.RoleSitter {
		prov := &models.Provider{
			ID:     u.ProviderID,
			UserID: u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Phone:  u.Phone,
		}
		if err := s.ProviderRepo.Create(prov); err != nil {
			logger.Error("RegisterUser: failed to create provider stub", zap.Error(err))
			if delErr := s.Repo.Delete(u.ID); delErr != nil {
				logger.Error("RegisterUser: failed to roll back user record", zap.String("userID", u.ID), zap.Error(delErr))
			}
			return nil, fmt.Errorf("registration failed, please try again")
		}
	}

	s.cacheTokenHash(u.ID, u.TokenHash)
	logger.Info("User registered", zap.String("userID", u.ID), zap.String("role", u.Role))

	return &AuthResponse{
		ID:         u.ID,
		Token:      token,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		ProviderID: u.ProviderID,
	}, nil
}

// AuthenticateUser verifies the credentials and issues a fresh session token.
// The token hash is persisted and cached; issuing a new token invalidates the
// previous session.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	userRec, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		logger.Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	updateDoc := bson.M{"tokenHash": tokenHash}
	if err := s.Repo.UpdateSetDocument(userRec.ID, updateDoc); err != nil {
		logger.Error("AuthenticateUser: failed to persist token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	s.cacheTokenHash(userRec.ID, tokenHash)

	return &AuthResponse{
		ID:         userRec.ID,
		Token:      token,
		Email:      userRec.Email,
		Name:       userRec.Name,
		Role:       userRec.Role,
		ProviderID: userRec.ProviderID,
	}, nil
}

// RevokeUserAuthToken signs the user out everywhere by clearing the stored
// token hash and evicting the cache entry.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	logger := utils.GetLogger()

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		logger.Error("RevokeUserAuthToken: failed to clear token hash", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		logger.Warn("RevokeUserAuthToken: failed to evict cache", zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

// cacheTokenHash stores the current token hash in the auth cache so the auth
// middleware can validate sessions without a DB roundtrip.
func (s *DefaultUserService) cacheTokenHash(userID, tokenHash string) {
	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, utils.AuthCachePrefix+userID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache token hash", zap.String("userID", userID), zap.Error(err))
	}
}
