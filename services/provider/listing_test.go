package provider

import (
	"fmt"
	"testing"
	"time"

	"taily/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memProviderRepo struct {
	providers []models.Provider
}

func (m *memProviderRepo) GetByID(id string) (*models.Provider, error) {
	for _, p := range m.providers {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("provider with id %s not found", id)
}

func (m *memProviderRepo) GetByUserID(userID string) (*models.Provider, error) {
	for _, p := range m.providers {
		if p.UserID == userID {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memProviderRepo) GetAll() ([]models.Provider, error) {
	return append([]models.Provider(nil), m.providers...), nil
}

func (m *memProviderRepo) GetApproved() ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range m.providers {
		if p.Approved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProviderRepo) Create(p *models.Provider) error {
	m.providers = append(m.providers, *p)
	return nil
}

func (m *memProviderRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	for i := range m.providers {
		if m.providers[i].ID == id {
			if approved, ok := updateDoc["approved"].(bool); ok {
				m.providers[i].Approved = approved
			}
			return nil
		}
	}
	return fmt.Errorf("provider with id %s not found", id)
}

func (m *memProviderRepo) Delete(id string) error {
	for i := range m.providers {
		if m.providers[i].ID == id {
			m.providers = append(m.providers[:i], m.providers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("provider with id %s not found", id)
}

type memReviewRepo struct {
	reviews []models.Review
}

func (m *memReviewRepo) GetByBookingID(bookingID string) (*models.Review, error) {
	for _, r := range m.reviews {
		if r.BookingID == bookingID {
			copied := r
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memReviewRepo) GetByProviderID(providerID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.reviews {
		if r.ProviderID == providerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReviewRepo) GetAll() ([]models.Review, error) {
	return append([]models.Review(nil), m.reviews...), nil
}

func (m *memReviewRepo) Create(r *models.Review) error {
	m.reviews = append(m.reviews, *r)
	return nil
}

func newListingService() (*DefaultProviderService, *memProviderRepo, *memReviewRepo) {
	providers := &memProviderRepo{providers: []models.Provider{
		{
			ID: "p1", UserID: "u1", Name: "Daisy Walks", Bio: "Dog lover in the old town",
			ServiceTypes: []string{"Dog Walking", "Pet Sitting"},
			PetTypes:     []string{"Dog"},
			PetSize:      "Medium",
			Area:         "Nicosia",
			Approved:     true,
		},
		{
			ID: "p2", UserID: "u2", Name: "Cat Corner",
			ServiceTypes: []string{"Pet Boarding"},
			PetTypes:     []string{"Cat", "Rabbit"},
			PetSize:      "Small",
			Area:         "Limassol",
			Approved:     true,
		},
		{
			ID: "p3", UserID: "u3", Name: "Hidden Sitter",
			ServiceTypes: []string{"Dog Walking"},
			PetTypes:     []string{"Dog"},
			Area:         "Nicosia",
			Approved:     false,
		},
	}}
	reviews := &memReviewRepo{}
	svc := &DefaultProviderService{Repo: providers, ReviewRepo: reviews}
	return svc, providers, reviews
}

func TestBrowseExcludesUnapprovedListings(t *testing.T) {
	svc, _, _ := newListingService()

	got, err := svc.BrowseProviders(models.ProviderFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.NotEqual(t, "p3", p.ID)
	}
}

func TestBrowseFiltersAreConjunctive(t *testing.T) {
	svc, _, _ := newListingService()

	got, err := svc.BrowseProviders(models.ProviderFilter{Area: "Nicosia", ServiceType: "Dog Walking"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	// Same area, but a service the listing does not offer.
	got, err = svc.BrowseProviders(models.ProviderFilter{Area: "Nicosia", ServiceType: "Pet Boarding"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBrowseFiltersCaseInsensitive(t *testing.T) {
	svc, _, _ := newListingService()

	got, err := svc.BrowseProviders(models.ProviderFilter{
		Area:        "nicosia",
		ServiceType: "dog walking",
		PetType:     "DOG",
		PetSize:     "medium",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestBrowseSearchMatchesNameAndBio(t *testing.T) {
	svc, _, _ := newListingService()

	got, err := svc.BrowseProviders(models.ProviderFilter{Search: "daisy"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	got, err = svc.BrowseProviders(models.ProviderFilter{Search: "old town"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.BrowseProviders(models.ProviderFilter{Search: "no such sitter"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBrowseDateFilter(t *testing.T) {
	svc, providers, _ := newListingService()

	slot := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	providers.providers[0].AvailabilityDates = []time.Time{slot}
	providers.providers[1].AvailabilityDays = []string{"Mon", "Thu"}

	// Only the specific-date set counts; p2's recurring weekdays do not.
	got, err := svc.BrowseProviders(models.ProviderFilter{Date: &slot})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	// A day off the specific-date set matches nothing, and a listing with no
	// dates at all never matches a date filter.
	tue := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	got, err = svc.BrowseProviders(models.ProviderFilter{Date: &tue})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDerivedRatings(t *testing.T) {
	svc, _, reviews := newListingService()

	require.NoError(t, reviews.Create(&models.Review{ID: "r1", BookingID: "b1", ProviderID: "p1", Rating: 5}))
	require.NoError(t, reviews.Create(&models.Review{ID: "r2", BookingID: "b2", ProviderID: "p1", Rating: 3}))

	got, err := svc.BrowseProviders(models.ProviderFilter{})
	require.NoError(t, err)

	byID := make(map[string]models.Provider)
	for _, p := range got {
		byID[p.ID] = p
	}

	assert.InDelta(t, 4.0, byID["p1"].AverageRating, 1e-9)
	assert.Equal(t, 2, byID["p1"].ReviewsCount)

	// No reviews means a zero average, not an error.
	assert.Zero(t, byID["p2"].AverageRating)
	assert.Zero(t, byID["p2"].ReviewsCount)
}

func TestGetProviderByIDAnnotatesRating(t *testing.T) {
	svc, _, reviews := newListingService()
	require.NoError(t, reviews.Create(&models.Review{ID: "r1", BookingID: "b1", ProviderID: "p2", Rating: 4}))

	p, err := svc.GetProviderByID("p2")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, p.AverageRating, 1e-9)
	assert.Equal(t, 1, p.ReviewsCount)
}

func TestUpdateProviderValidatesEnums(t *testing.T) {
	svc, _, _ := newListingService()

	_, err := svc.UpdateProvider(models.Provider{ID: "p1", Area: "Atlantis"})
	assert.Error(t, err)

	_, err = svc.UpdateProvider(models.Provider{ID: "p1", ServiceTypes: []string{"Dragon Feeding"}})
	assert.Error(t, err)

	updated, err := svc.UpdateProvider(models.Provider{ID: "p1", Area: "Paphos"})
	require.NoError(t, err)
	assert.Equal(t, "p1", updated.ID)
}
