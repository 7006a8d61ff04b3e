package providerController

import (
	"context"
	"pawsitter/internal/apperrors"
	"pawsitter/internal/database"
	"pawsitter/internal/models"
	"pawsitter/internal/repositories"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

type fakeProviderRepo struct {
	profiles map[uuid.UUID]*models.ProviderProfile
	users    *fakeUserRepo
}

func newFakeProviderRepo(users *fakeUserRepo) *fakeProviderRepo {
	return &fakeProviderRepo{
		profiles: make(map[uuid.UUID]*models.ProviderProfile),
		users:    users,
	}
}

func (f *fakeProviderRepo) withUser(profile models.ProviderProfile) models.ProviderProfile {
	if user, ok := f.users.users[profile.UserID]; ok {
		profile.User = *user
	}
	return profile
}

func (f *fakeProviderRepo) ListAll(ctx context.Context) ([]models.ProviderProfile, error) {
	var result []models.ProviderProfile
	for _, p := range f.profiles {
		result = append(result, f.withUser(*p))
	}
	return result, nil
}

func (f *fakeProviderRepo) Search(ctx context.Context, params repositories.SearchParams) ([]models.ProviderProfile, error) {
	return f.ListAll(ctx)
}

func (f *fakeProviderRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProviderProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := f.withUser(*profile)
	return &copied, nil
}

func (f *fakeProviderRepo) Upsert(ctx context.Context, profile *models.ProviderProfile) error {
	if existing, ok := f.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

type fakeReviewRepo struct {
	byProvider map[uuid.UUID][]models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{byProvider: make(map[uuid.UUID][]models.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, tx *gorm.DB, review *models.Review) error {
	return nil
}

func (f *fakeReviewRepo) ExistsForBooking(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeReviewRepo) ListByProvider(ctx context.Context, providerID uuid.UUID, limit int) ([]models.Review, error) {
	reviews := f.byProvider[providerID]
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

type providerFixture struct {
	controller ProviderControllerInterface
	users      *fakeUserRepo
	providers  *fakeProviderRepo
	reviews    *fakeReviewRepo
}

func newProviderFixture(t *testing.T) *providerFixture {
	t.Helper()

	users := newFakeUserRepo()
	providers := newFakeProviderRepo(users)
	reviews := newFakeReviewRepo()

	controller := New(
		repositories.Repository{
			User:     users,
			Provider: providers,
			Review:   reviews,
		},
		database.DB{},
	)

	return &providerFixture{
		controller: controller,
		users:      users,
		providers:  providers,
		reviews:    reviews,
	}
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func (f *providerFixture) seedProvider(t *testing.T, name, location string) uuid.UUID {
	t.Helper()

	var loc *string
	if location != "" {
		loc = &location
	}
	user := f.users.add(&models.User{Name: name, Email: name + "@test.com", Location: loc, Role: models.RoleProvider})

	require.NoError(t, f.providers.Upsert(context.Background(), &models.ProviderProfile{
		UserID:          user.ID,
		ServicesOffered: `["BOARDING", "WALKING"]`,
	}))

	return user.ID
}

func TestProviderController_Search_LocationFilter(t *testing.T) {
	f := newProviderFixture(t)

	brooklynID := f.seedProvider(t, "Sarah Sitter", "Brooklyn, NY")
	f.seedProvider(t, "Mike Walker", "Manhattan, NY")
	f.seedProvider(t, "Nowhere Nel", "")

	tests := []struct {
		name     string
		location string
		want     int
	}{
		{name: "exact fragment", location: "Brooklyn", want: 1},
		{name: "case insensitive", location: "brooklyn", want: 1},
		{name: "shared fragment", location: "NY", want: 2},
		{name: "no filter returns all", location: "", want: 3},
		{name: "no match", location: "Chicago", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := f.controller.Search(context.Background(), SearchQuery{Location: tt.location})
			require.NoError(t, err)
			assert.Len(t, results, tt.want)
		})
	}

	results, err := f.controller.Search(context.Background(), SearchQuery{Location: "Brooklyn"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, brooklynID.String(), results[0].User.ID)
}

func TestProviderController_GetByUserID(t *testing.T) {
	f := newProviderFixture(t)

	providerID := f.seedProvider(t, "Sarah Sitter", "Brooklyn, NY")

	detail, err := f.controller.GetByUserID(context.Background(), providerID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Sitter", detail.User.Name)
	assert.Empty(t, detail.Reviews)
	assert.Nil(t, detail.AvgRating)

	_, err = f.controller.GetByUserID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestProviderController_GetByUserID_AverageRating(t *testing.T) {
	f := newProviderFixture(t)

	providerID := f.seedProvider(t, "Sarah Sitter", "Brooklyn, NY")
	f.reviews.byProvider[providerID] = []models.Review{
		{Rating: 5, Author: models.User{Name: "Alex Owner"}},
		{Rating: 4, Author: models.User{Name: "Blake Owner"}},
	}

	detail, err := f.controller.GetByUserID(context.Background(), providerID)
	require.NoError(t, err)
	require.Len(t, detail.Reviews, 2)
	require.NotNil(t, detail.AvgRating)
	assert.InDelta(t, 4.5, *detail.AvgRating, 0.0001)
	assert.Equal(t, "Alex Owner", detail.Reviews[0].Author.Name)
}

func TestProviderController_UpsertProfile(t *testing.T) {
	f := newProviderFixture(t)

	user := f.users.add(&models.User{Name: "Sarah Sitter", Email: "sarah@test.com", Role: models.RoleProvider})

	view, err := f.controller.UpsertProfile(context.Background(), user.ID, user.ID, UpsertProfileRequest{
		Bio:              stringPtr("Dog lover"),
		ServicesOffered:  `["BOARDING", "WALKING"]`,
		DailyRate:        decimalPtr(decimal.NewFromInt(45)),
		BoardingCapacity: intPtr(3),
	})
	require.NoError(t, err)
	require.NotNil(t, view.DailyRate)
	assert.Equal(t, "45", view.DailyRate.String())

	// The user now acts on both sides of the marketplace
	updated, err := f.users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleBoth, updated.Role)

	// A second upsert replaces the profile wholesale; omitted fields reset
	replaced, err := f.controller.UpsertProfile(context.Background(), user.ID, user.ID, UpsertProfileRequest{
		ServicesOffered: `["WALKING"]`,
		HourlyRate:      decimalPtr(decimal.NewFromInt(20)),
	})
	require.NoError(t, err)
	assert.Nil(t, replaced.DailyRate)
	assert.Nil(t, replaced.BoardingCapacity)
	require.NotNil(t, replaced.HourlyRate)
	assert.Equal(t, "20", replaced.HourlyRate.String())
	assert.Equal(t, view.ID, replaced.ID)
}

func TestProviderController_UpsertProfile_Forbidden(t *testing.T) {
	f := newProviderFixture(t)

	user := f.users.add(&models.User{Name: "Sarah Sitter", Email: "sarah@test.com"})

	_, err := f.controller.UpsertProfile(context.Background(), uuid.New(), user.ID, UpsertProfileRequest{
		ServicesOffered: `["WALKING"]`,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestProviderController_UpsertProfile_Validation(t *testing.T) {
	f := newProviderFixture(t)

	user := f.users.add(&models.User{Name: "Sarah Sitter", Email: "sarah@test.com"})
	negative := decimal.NewFromInt(-5)

	tests := []struct {
		name string
		req  UpsertProfileRequest
	}{
		{
			name: "missing services",
			req:  UpsertProfileRequest{},
		},
		{
			name: "negative daily rate",
			req:  UpsertProfileRequest{ServicesOffered: `["BOARDING"]`, DailyRate: &negative},
		},
		{
			name: "negative hourly rate",
			req:  UpsertProfileRequest{ServicesOffered: `["WALKING"]`, HourlyRate: &negative},
		},
		{
			name: "zero capacity",
			req:  UpsertProfileRequest{ServicesOffered: `["BOARDING"]`, BoardingCapacity: intPtr(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.controller.UpsertProfile(context.Background(), user.ID, user.ID, tt.req)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}
