package request

import (
	"fmt"
	"testing"
	"time"

	"taily/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRequestRepo struct {
	requests map[string]*models.Request
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: make(map[string]*models.Request)}
}

func (m *memRequestRepo) GetByID(id string) (*models.Request, error) {
	r, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (m *memRequestRepo) GetAll() ([]models.Request, error) {
	var out []models.Request
	for _, r := range m.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRequestRepo) Create(r *models.Request) error {
	r.CreatedAt = time.Now()
	copied := *r
	m.requests[r.ID] = &copied
	return nil
}

func (m *memRequestRepo) UpdateStatus(id, status string) error {
	r, ok := m.requests[id]
	if !ok {
		return fmt.Errorf("request with id %s not found", id)
	}
	r.Status = status
	return nil
}

func (m *memRequestRepo) Delete(id string) error {
	delete(m.requests, id)
	return nil
}

func validLead() *models.Request {
	start := time.Now().AddDate(0, 0, 7)
	end := start.AddDate(0, 0, 3)
	return &models.Request{
		FullName:      "Jordan Pappas",
		Email:         "Jordan@Example.com",
		ServiceType:   "Pet Sitting",
		PetType:       "Cat",
		Area:          "Larnaca",
		DateInfo:      models.RequestDateInfo{Type: "Custom Range", Start: &start, End: &end},
		AcceptedTerms: true,
	}
}

func TestSubmitRequestStartsPending(t *testing.T) {
	svc := &DefaultRequestService{Repo: newMemRequestRepo()}

	created, err := svc.SubmitRequest(validLead())
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "jordan@example.com", created.Email)
}

func TestSubmitRequestRequiresTermsAndFields(t *testing.T) {
	svc := &DefaultRequestService{Repo: newMemRequestRepo()}

	noTerms := validLead()
	noTerms.AcceptedTerms = false
	_, err := svc.SubmitRequest(noTerms)
	assert.Error(t, err)

	noName := validLead()
	noName.FullName = "  "
	_, err = svc.SubmitRequest(noName)
	assert.Error(t, err)
}

func TestSubmitRequestValidatesDateInfo(t *testing.T) {
	svc := &DefaultRequestService{Repo: newMemRequestRepo()}

	inverted := validLead()
	inverted.DateInfo.Start, inverted.DateInfo.End = inverted.DateInfo.End, inverted.DateInfo.Start
	_, err := svc.SubmitRequest(inverted)
	assert.Error(t, err)

	duration := validLead()
	duration.DateInfo = models.RequestDateInfo{Type: "Duration", Value: "1 week"}
	_, err = svc.SubmitRequest(duration)
	assert.NoError(t, err)

	emptyDuration := validLead()
	emptyDuration.DateInfo = models.RequestDateInfo{Type: "Duration"}
	_, err = svc.SubmitRequest(emptyDuration)
	assert.Error(t, err)

	unknown := validLead()
	unknown.DateInfo = models.RequestDateInfo{Type: "Sometime"}
	_, err = svc.SubmitRequest(unknown)
	assert.Error(t, err)
}

func TestModerationIsReversible(t *testing.T) {
	svc := &DefaultRequestService{Repo: newMemRequestRepo()}

	created, err := svc.SubmitRequest(validLead())
	require.NoError(t, err)

	updated, err := svc.UpdateRequestStatus(created.ID, models.RequestApproved)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, updated.Status)

	updated, err = svc.UpdateRequestStatus(created.ID, models.RequestRejected)
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, updated.Status)

	_, err = svc.UpdateRequestStatus(created.ID, "Archived")
	assert.Error(t, err)

	_, err = svc.UpdateRequestStatus("missing", models.RequestApproved)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
