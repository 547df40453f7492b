package booking

import (
	"fmt"
	"testing"
	"time"

	"taily/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// In-memory fakes standing in for the Mongo repositories.

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUserID(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByProviderID(providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	b.CreatedAt = time.Now()
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(id, status string) error {
	b, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	b.Status = status
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*models.Provider)}
}

func (f *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, fmt.Errorf("provider with id %s not found", id)
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProviderRepo) GetByUserID(userID string) (*models.Provider, error) {
	for _, p := range f.providers {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) GetAll() ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range f.providers {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProviderRepo) GetApproved() ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range f.providers {
		if p.Approved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProviderRepo) Create(p *models.Provider) error {
	copied := *p
	f.providers[p.ID] = &copied
	return nil
}

func (f *fakeProviderRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	if _, ok := f.providers[id]; !ok {
		return fmt.Errorf("provider with id %s not found", id)
	}
	if approved, ok := updateDoc["approved"].(bool); ok {
		f.providers[id].Approved = approved
	}
	return nil
}

func (f *fakeProviderRepo) Delete(id string) error {
	delete(f.providers, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	for _, u := range f.users {
		if u.TokenHash == tokenHash && tokenHash != "" {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	if th, ok := updateDoc["tokenHash"].(string); ok {
		f.users[id].TokenHash = th
	}
	return nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}

type fakeReviewRepo struct {
	reviews map[string]*models.Review // keyed by booking ID
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (f *fakeReviewRepo) GetByBookingID(bookingID string) (*models.Review, error) {
	r, ok := f.reviews[bookingID]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReviewRepo) GetByProviderID(providerID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.ProviderID == providerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) GetAll() ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReviewRepo) Create(r *models.Review) error {
	r.CreatedAt = time.Now()
	copied := *r
	f.reviews[r.BookingID] = &copied
	return nil
}

// Fixture: one approved provider owned by "sitter-1", one requester
// "owner-1", one booking in the given status with a past service window.

type fixture struct {
	svc      *DefaultBookingService
	bookings *fakeBookingRepo
	reviews  *fakeReviewRepo
}

func newFixture(t *testing.T, status string) fixture {
	t.Helper()

	bookings := newFakeBookingRepo()
	providers := newFakeProviderRepo()
	users := newFakeUserRepo()
	reviews := newFakeReviewRepo()

	require.NoError(t, providers.Create(&models.Provider{
		ID: "prov-1", UserID: "sitter-1", Name: "Daisy Walks", Approved: true,
	}))
	require.NoError(t, providers.Create(&models.Provider{
		ID: "prov-2", UserID: "sitter-2", Name: "Cat Corner", Approved: true,
	}))
	require.NoError(t, users.Create(&models.User{
		ID: "owner-1", Email: "owner@example.com", Name: "Alex", Role: models.RoleUser,
	}))

	from := time.Now().Add(-72 * time.Hour)
	to := time.Now().Add(-24 * time.Hour)
	require.NoError(t, bookings.Create(&models.Booking{
		ID:          "book-1",
		UserID:      "owner-1",
		ProviderID:  "prov-1",
		ServiceType: "Dog Walking",
		Method:      models.MethodCustom,
		FromDate:    &from,
		ToDate:      &to,
		Status:      status,
	}))

	svc := &DefaultBookingService{
		Repo:         bookings,
		ProviderRepo: providers,
		UserRepo:     users,
		ReviewRepo:   reviews,
	}
	return fixture{svc: svc, bookings: bookings, reviews: reviews}
}

var (
	sitterActor   = Actor{UserID: "sitter-1", Role: models.RoleSitter}
	otherSitter   = Actor{UserID: "sitter-2", Role: models.RoleSitter}
	ownerActor    = Actor{UserID: "owner-1", Role: models.RoleUser}
	strangerActor = Actor{UserID: "nobody", Role: models.RoleUser}
	adminActor    = Actor{UserID: "admin-1", Role: models.RoleAdmin}
)

func TestProviderOwnerAcceptsPendingBooking(t *testing.T) {
	fx := newFixture(t, models.BookingPending)

	updated, err := fx.svc.UpdateBookingStatus("book-1", sitterActor, models.BookingAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, updated.Status)
	assert.Equal(t, models.BookingAccepted, fx.bookings.bookings["book-1"].Status)
}

func TestProviderOwnerRejectsPendingBooking(t *testing.T) {
	fx := newFixture(t, models.BookingPending)

	updated, err := fx.svc.UpdateBookingStatus("book-1", sitterActor, models.BookingRejected)
	require.NoError(t, err)
	assert.Equal(t, models.BookingRejected, updated.Status)
}

func TestOnlyListedSitterDecides(t *testing.T) {
	fx := newFixture(t, models.BookingPending)

	_, err := fx.svc.UpdateBookingStatus("book-1", otherSitter, models.BookingAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = fx.svc.UpdateBookingStatus("book-1", ownerActor, models.BookingAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	// Admin override is allowed.
	_, err = fx.svc.UpdateBookingStatus("book-1", adminActor, models.BookingAccepted)
	assert.NoError(t, err)
}

func TestInvalidTransitionsRejected(t *testing.T) {
	cases := []struct {
		from string
		to   string
	}{
		{models.BookingPending, models.BookingCompleted},
		{models.BookingPending, models.BookingPending},
		{models.BookingAccepted, models.BookingRejected},
		{models.BookingRejected, models.BookingAccepted},
		{models.BookingRejected, models.BookingCompleted},
		{models.BookingCompleted, models.BookingAccepted},
		{models.BookingCompleted, models.BookingPending},
	}
	for _, tc := range cases {
		fx := newFixture(t, tc.from)
		_, err := fx.svc.UpdateBookingStatus("book-1", adminActor, tc.to)

		var transitionErr *InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.from, transitionErr.From)
		assert.Equal(t, tc.to, transitionErr.To)
	}
}

func TestCompletionRequiresElapsedWindow(t *testing.T) {
	fx := newFixture(t, models.BookingAccepted)

	// Move the window into the future.
	future := time.Now().Add(48 * time.Hour)
	fx.bookings.bookings["book-1"].ToDate = &future

	_, err := fx.svc.UpdateBookingStatus("book-1", sitterActor, models.BookingCompleted)
	assert.ErrorIs(t, err, ErrNotCompletable)
}

func TestCompletionBySitterOrAdminOnly(t *testing.T) {
	for _, actor := range []Actor{sitterActor, adminActor} {
		fx := newFixture(t, models.BookingAccepted)
		updated, err := fx.svc.UpdateBookingStatus("book-1", actor, models.BookingCompleted)
		require.NoError(t, err, actor.UserID)
		assert.Equal(t, models.BookingCompleted, updated.Status)
	}

	// The requesting owner cannot complete their own booking.
	for _, actor := range []Actor{ownerActor, otherSitter, strangerActor} {
		fx := newFixture(t, models.BookingAccepted)
		_, err := fx.svc.UpdateBookingStatus("book-1", actor, models.BookingCompleted)
		assert.ErrorIs(t, err, ErrForbidden, actor.UserID)
	}
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	fx := newFixture(t, models.BookingPending)
	_, err := fx.svc.UpdateBookingStatus("missing", adminActor, models.BookingAccepted)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateBookingStartsPending(t *testing.T) {
	fx := newFixture(t, models.BookingPending)

	from := time.Now().Add(24 * time.Hour)
	to := time.Now().Add(48 * time.Hour)
	created, err := fx.svc.CreateBooking(&models.Booking{
		UserID:      "owner-1",
		ProviderID:  "prov-1",
		ServiceType: "Pet Sitting",
		Method:      models.MethodCustom,
		FromDate:    &from,
		ToDate:      &to,
		Status:      models.BookingAccepted, // client-sent status is ignored
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Daisy Walks", created.ProviderName)
	assert.Equal(t, "Alex", created.UserName)
	assert.Equal(t, 1, created.PetNumber)
}

func TestCreateBookingRejectsUnapprovedProvider(t *testing.T) {
	fx := newFixture(t, models.BookingPending)
	fx.svc.ProviderRepo.(*fakeProviderRepo).providers["prov-1"].Approved = false

	from := time.Now()
	to := from.Add(time.Hour)
	_, err := fx.svc.CreateBooking(&models.Booking{
		UserID: "owner-1", ProviderID: "prov-1", ServiceType: "Dog Walking",
		Method: models.MethodCustom, FromDate: &from, ToDate: &to,
	})
	assert.Error(t, err)
}

func TestCreateBookingRejectsBadDateShape(t *testing.T) {
	fx := newFixture(t, models.BookingPending)

	_, err := fx.svc.CreateBooking(&models.Booking{
		UserID: "owner-1", ProviderID: "prov-1", ServiceType: "Dog Walking",
	})
	assert.Error(t, err)
}

func TestAnnotateDerivesReviewEligibility(t *testing.T) {
	fx := newFixture(t, models.BookingCompleted)

	view, err := fx.svc.GetBookingByID("book-1")
	require.NoError(t, err)
	assert.True(t, view.ReviewEligible)
	assert.False(t, view.Completable, "completed bookings are no longer completable")

	require.NoError(t, fx.reviews.Create(&models.Review{
		ID: "rev-1", BookingID: "book-1", ProviderID: "prov-1", UserID: "owner-1", Rating: 5, Comment: "great",
	}))

	view, err = fx.svc.GetBookingByID("book-1")
	require.NoError(t, err)
	assert.False(t, view.ReviewEligible)
}

func TestAnnotateMarksCompletableAcceptedBookings(t *testing.T) {
	fx := newFixture(t, models.BookingAccepted)

	views, err := fx.svc.GetBookingsForUser("owner-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].Completable)
	assert.False(t, views[0].ReviewEligible)
}

func TestCanTransitionTable(t *testing.T) {
	assert.True(t, CanTransition(models.BookingPending, models.BookingAccepted))
	assert.True(t, CanTransition(models.BookingPending, models.BookingRejected))
	assert.True(t, CanTransition(models.BookingAccepted, models.BookingCompleted))

	assert.False(t, CanTransition(models.BookingAccepted, models.BookingPending))
	assert.False(t, CanTransition(models.BookingRejected, models.BookingCompleted))
	assert.False(t, CanTransition(models.BookingCompleted, models.BookingCompleted))
}
