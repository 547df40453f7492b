package provider

import (
	"fmt"
	"time"

	"taily/models"
	"taily/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetProviderByUserID returns the listing owned by the given account, or an
// error when the account has none.
func (s *DefaultProviderService) GetProviderByUserID(userID string) (*models.Provider, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("no provider listing for user %s", userID)
	}
	return p, nil
}

// UpdateProvider updates the listing's profile fields using a partial update.
// Approval cannot be set through this path.
func (s *DefaultProviderService) UpdateProvider(p models.Provider) (*models.Provider, error) {
	logger := utils.GetLogger()

	if p.ID == "" {
		return nil, fmt.Errorf("provider ID is required for update")
	}

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if p.Name != "" {
		updateFields["name"] = p.Name
	}
	if p.Email != "" {
		updateFields["email"] = p.Email
	}
	if p.Phone != "" {
		updateFields["phone"] = p.Phone
	}
	if p.Bio != "" {
		updateFields["bio"] = p.Bio
	}
	if p.ServiceTypes != nil {
		for _, st := range p.ServiceTypes {
			if !containsFold(models.ServiceOptions, st) {
				return nil, fmt.Errorf("unknown service type %q", st)
			}
		}
		updateFields["serviceTypes"] = p.ServiceTypes
		updateFields["plantWatering"] = containsFold(p.ServiceTypes, "Plant Watering")
	}
	if p.PetTypes != nil {
		updateFields["petTypes"] = p.PetTypes
	}
	if p.PetSize != "" {
		if !containsFold(models.PetSizeOptions, p.PetSize) {
			return nil, fmt.Errorf("unknown pet size %q", p.PetSize)
		}
		updateFields["petSize"] = p.PetSize
	}
	if p.Area != "" {
		if !containsFold(models.AreaOptions, p.Area) {
			return nil, fmt.Errorf("unsupported area %q", p.Area)
		}
		updateFields["area"] = p.Area
	}
	if p.AvailabilityDays != nil {
		updateFields["availabilityDays"] = p.AvailabilityDays
	}
	if p.AvailabilityDates != nil {
		updateFields["availabilityDates"] = p.AvailabilityDates
	}
	if p.Rate != "" {
		updateFields["rate"] = p.Rate
	}
	if p.PhotoURL != "" {
		updateFields["photoURL"] = p.PhotoURL
	}
	if len(updateFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(p.ID, updateFields); err != nil {
		logger.Error("Failed to update provider", zap.String("providerID", p.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}

	return s.Repo.GetByID(p.ID)
}

// GetAllProviders returns every listing regardless of approval (admin view).
func (s *DefaultProviderService) GetAllProviders() ([]models.Provider, error) {
	providers, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch providers: %w", err)
	}
	if err := s.annotateRatings(providers); err != nil {
		utils.GetLogger().Warn("GetAllProviders: failed to derive ratings", zap.Error(err))
	}
	return providers, nil
}

// SetApproval toggles a listing's public visibility. Admin only.
func (s *DefaultProviderService) SetApproval(id string, approved bool) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"approved": approved}); err != nil {
		return fmt.Errorf("failed to set approval for provider %s: %w", id, err)
	}
	utils.GetLogger().Info("Provider approval changed",
		zap.String("providerID", id), zap.Bool("approved", approved))
	return nil
}

// DeleteProvider removes a listing. Admin only.
func (s *DefaultProviderService) DeleteProvider(id string) error {
	return s.Repo.Delete(id)
}
