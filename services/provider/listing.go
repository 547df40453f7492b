package provider

import (
	"fmt"
	"strings"
	"time"

	"taily/models"
	"taily/utils"

	"go.uber.org/zap"
)

// BrowseProviders returns the approved listings matching the filter, with
// derived rating fields populated. Every non-empty filter field must match;
// string comparisons are case-insensitive.
func (s *DefaultProviderService) BrowseProviders(filter models.ProviderFilter) ([]models.Provider, error) {
	providers, err := s.Repo.GetApproved()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch providers: %w", err)
	}

	var matched []models.Provider
	for _, p := range providers {
		if matchesFilter(&p, filter) {
			matched = append(matched, p)
		}
	}

	if err := s.annotateRatings(matched); err != nil {
		utils.GetLogger().Warn("BrowseProviders: failed to derive ratings", zap.Error(err))
	}
	return matched, nil
}

// GetProviderByID returns a single listing with derived rating fields.
func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.ReviewRepo.GetByProviderID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for provider %s: %w", id, err)
	}
	p.AverageRating, p.ReviewsCount = averageRating(reviews)
	return p, nil
}

// GetReviewsForProvider returns the reviews shown on a listing's detail page.
func (s *DefaultProviderService) GetReviewsForProvider(providerID string) ([]models.Review, error) {
	return s.ReviewRepo.GetByProviderID(providerID)
}

// annotateRatings fills AverageRating and ReviewsCount for each listing from
// a single scan over the reviews collection.
func (s *DefaultProviderService) annotateRatings(providers []models.Provider) error {
	if len(providers) == 0 {
		return nil
	}

	reviews, err := s.ReviewRepo.GetAll()
	if err != nil {
		return err
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range reviews {
		sums[r.ProviderID] += r.Rating
		counts[r.ProviderID]++
	}

	for i := range providers {
		if n := counts[providers[i].ID]; n > 0 {
			providers[i].AverageRating = float64(sums[providers[i].ID]) / float64(n)
			providers[i].ReviewsCount = n
		}
	}
	return nil
}

func averageRating(reviews []models.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews)
}

func matchesFilter(p *models.Provider, f models.ProviderFilter) bool {
	if f.Search != "" && !searchMatches(p, f.Search) {
		return false
	}
	if f.Area != "" && !strings.EqualFold(p.Area, f.Area) {
		return false
	}
	if f.ServiceType != "" && !containsFold(p.ServiceTypes, f.ServiceType) {
		return false
	}
	if f.PetType != "" && !containsFold(p.PetTypes, f.PetType) {
		return false
	}
	if f.PetSize != "" && p.PetSize != "" && !strings.EqualFold(p.PetSize, f.PetSize) {
		return false
	}
	if f.Date != nil && !availableOn(p, *f.Date) {
		return false
	}
	return true
}

// searchMatches checks a free-text term against name, bio, and area.
func searchMatches(p *models.Provider, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Bio), term) ||
		strings.Contains(strings.ToLower(p.Area), term)
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// availableOn checks a calendar date against the listing's specific
// availability dates. Recurring weekdays are profile display data, not a
// match criterion, and a listing with no dates set matches no date filter.
func availableOn(p *models.Provider, date time.Time) bool {
	y, m, d := date.Date()
	for _, ad := range p.AvailabilityDates {
		ay, am, ad2 := ad.Date()
		if ay == y && am == m && ad2 == d {
			return true
		}
	}
	return false
}
