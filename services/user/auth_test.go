package user

import (
	"fmt"
	"testing"

	"taily/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (m *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	copied := *u
	return &copied, nil
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Create(u *models.User) error {
	copied := *u
	m.users[u.ID] = &copied
	return nil
}

func (m *memUserRepo) Delete(id string) error {
	delete(m.users, id)
	return nil
}

func (m *memUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (m *memUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) { return nil, nil }
func (m *memUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (m *memUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return m.GetByID(id)
}

type failingProviderRepo struct{}

func (f *failingProviderRepo) GetByID(id string) (*models.Provider, error) { return nil, nil }
func (f *failingProviderRepo) GetByUserID(userID string) (*models.Provider, error) { return nil, nil }
func (f *failingProviderRepo) GetAll() ([]models.Provider, error) { return nil, nil }
func (f *failingProviderRepo) GetApproved() ([]models.Provider, error) { return nil, nil }
func (f *failingProviderRepo) Create(p *models.Provider) error {
	return fmt.Errorf("write failed")
}
func (f *failingProviderRepo) UpdateSetDocument(id string, doc bson.M) error { return nil }
func (f *failingProviderRepo) Delete(id string) error { return nil }

func TestRegisterSitterRollsBackUserWhenListingFails(t *testing.T) {
	users := newMemUserRepo()
	svc := &DefaultUserService{Repo: users, ProviderRepo: &failingProviderRepo{}}

	_, err := svc.RegisterUser(&models.User{
		Email:    "sitter@example.com",
		Password: "hunter22",
		Name:     "Maria",
		Role:     models.RoleSitter,
	})
	require.Error(t, err)

	// No half-registered account may survive the failed listing insert.
	assert.Empty(t, users.users)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := newMemUserRepo()
	users.users["u1"] = &models.User{ID: "u1", Email: "taken@example.com"}
	svc := &DefaultUserService{Repo: users, ProviderRepo: &failingProviderRepo{}}

	_, err := svc.RegisterUser(&models.User{Email: "Taken@Example.com", Password: "pw"})
	assert.Error(t, err)
	assert.Len(t, users.users, 1)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo(), ProviderRepo: &failingProviderRepo{}}

	_, err := svc.RegisterUser(&models.User{Email: "x@example.com", Password: "pw", Role: "superuser"})
	assert.Error(t, err)
}
