package bookingController

import (
	"context"
	"pawsitter/internal/apperrors"
	"pawsitter/internal/database"
	"pawsitter/internal/models"
	"pawsitter/internal/repositories"
	"pawsitter/internal/services"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*models.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = uuid.New()
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Booking, error) {
	var result []models.Booking
	for _, b := range f.bookings {
		if b.OwnerID == ownerID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]models.Booking, error) {
	var result []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	booking.Status = status
	return nil
}

type fakePetRepo struct {
	pets map[uuid.UUID]*models.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: make(map[uuid.UUID]*models.Pet)}
}

func (f *fakePetRepo) Create(ctx context.Context, pet *models.Pet) error {
	pet.ID = uuid.New()
	stored := *pet
	f.pets[pet.ID] = &stored
	return nil
}

func (f *fakePetRepo) GetOwnedByID(ctx context.Context, petID, ownerID uuid.UUID) (*models.Pet, error) {
	pet, ok := f.pets[petID]
	if !ok || pet.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *pet
	return &copied, nil
}

func (f *fakePetRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Pet, error) {
	var result []models.Pet
	for _, p := range f.pets {
		if p.OwnerID == ownerID {
			result = append(result, *p)
		}
	}
	return result, nil
}

type fakeProviderRepo struct {
	profiles map[uuid.UUID]*models.ProviderProfile
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{profiles: make(map[uuid.UUID]*models.ProviderProfile)}
}

func (f *fakeProviderRepo) ListAll(ctx context.Context) ([]models.ProviderProfile, error) {
	var result []models.ProviderProfile
	for _, p := range f.profiles {
		result = append(result, *p)
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
	copied := *profile
	return &copied, nil
}

func (f *fakeProviderRepo) Upsert(ctx context.Context, profile *models.ProviderProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*models.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, tx *gorm.DB, review *models.Review) error {
	review.ID = uuid.New()
	stored := *review
	f.reviews[review.BookingID] = &stored
	return nil
}

func (f *fakeReviewRepo) ExistsForBooking(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID) (bool, error) {
	_, ok := f.reviews[bookingID]
	return ok, nil
}

func (f *fakeReviewRepo) ListByProvider(ctx context.Context, providerID uuid.UUID, limit int) ([]models.Review, error) {
	return nil, nil
}

type bookingFixture struct {
	controller BookingControllerInterface
	bookings   *fakeBookingRepo
	pets       *fakePetRepo
	providers  *fakeProviderRepo
	reviews    *fakeReviewRepo
	mock       sqlmock.Sqlmock
	ownerID    uuid.UUID
	providerID uuid.UUID
	petID      uuid.UUID
}

func newBookingFixture(t *testing.T) *bookingFixture {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	db := database.DB{SQL: gormDB}

	bookings := newFakeBookingRepo()
	pets := newFakePetRepo()
	providers := newFakeProviderRepo()
	reviews := newFakeReviewRepo()

	controller := New(
		repositories.Repository{
			Booking:  bookings,
			Pet:      pets,
			Provider: providers,
			Review:   reviews,
		},
		services.Service{
			Transaction: services.NewTransactionService(db),
			Pricing:     services.NewPricingService(),
		},
	)

	ownerID := uuid.New()
	providerID := uuid.New()

	pet := &models.Pet{OwnerID: ownerID, Name: "Buddy", Size: models.SizeLarge}
	require.NoError(t, pets.Create(context.Background(), pet))

	dailyRate := decimal.NewFromInt(45)
	hourlyRate := decimal.NewFromInt(25)
	require.NoError(t, providers.Upsert(context.Background(), &models.ProviderProfile{
		UserID:          providerID,
		ServicesOffered: `["BOARDING", "WALKING"]`,
		DailyRate:       &dailyRate,
		HourlyRate:      &hourlyRate,
	}))

	return &bookingFixture{
		controller: controller,
		bookings:   bookings,
		pets:       pets,
		providers:  providers,
		reviews:    reviews,
		mock:       mock,
		ownerID:    ownerID,
		providerID: providerID,
		petID:      pet.ID,
	}
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func TestBookingController_Create_Boarding(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.controller.Create(context.Background(), f.ownerID, CreateBookingRequest{
		ProviderID:  f.providerID,
		PetID:       f.petID,
		ServiceType: models.ServiceBoarding,
		StartDate:   stringPtr("2026-02-10"),
		EndDate:     stringPtr("2026-02-15"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, "225", booking.TotalPrice.String())
}

func TestBookingController_Create_Walking(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.controller.Create(context.Background(), f.ownerID, CreateBookingRequest{
		ProviderID:  f.providerID,
		PetID:       f.petID,
		ServiceType: models.ServiceWalking,
		WalkDate:    stringPtr("2026-02-10"),
		WalkTime:    stringPtr("09:00"),
		Duration:    intPtr(30),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, "12.5", booking.TotalPrice.String())
}

func TestBookingController_Create_Validation(t *testing.T) {
	f := newBookingFixture(t)

	tests := []struct {
		name     string
		req      CreateBookingRequest
		wantKind apperrors.Kind
	}{
		{
			name: "invalid service type",
			req: CreateBookingRequest{
				ProviderID:  f.providerID,
				PetID:       f.petID,
				ServiceType: "GROOMING",
			},
			wantKind: apperrors.KindValidation,
		},
		{
			name: "unknown pet",
			req: CreateBookingRequest{
				ProviderID:  f.providerID,
				PetID:       uuid.New(),
				ServiceType: models.ServiceBoarding,
			},
			// A bad pet on create is a bad request, not a missing resource
			wantKind: apperrors.KindValidation,
		},
		{
			name: "unknown provider",
			req: CreateBookingRequest{
				ProviderID:  uuid.New(),
				PetID:       f.petID,
				ServiceType: models.ServiceBoarding,
			},
			wantKind: apperrors.KindValidation,
		},
		{
			name: "malformed start date",
			req: CreateBookingRequest{
				ProviderID:  f.providerID,
				PetID:       f.petID,
				ServiceType: models.ServiceBoarding,
				StartDate:   stringPtr("next tuesday"),
				EndDate:     stringPtr("2026-02-15"),
			},
			wantKind: apperrors.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.controller.Create(context.Background(), f.ownerID, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
		})
	}
}

func TestBookingController_Create_PetOwnedBySomeoneElse(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.controller.Create(context.Background(), uuid.New(), CreateBookingRequest{
		ProviderID:  f.providerID,
		PetID:       f.petID,
		ServiceType: models.ServiceBoarding,
		StartDate:   stringPtr("2026-02-10"),
		EndDate:     stringPtr("2026-02-15"),
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Equal(t, "Pet not found or not yours", apperrors.MessageOf(err))
}

func TestBookingController_GetByID_HiddenFromStrangers(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.controller.Create(context.Background(), f.ownerID, CreateBookingRequest{
		ProviderID:  f.providerID,
		PetID:       f.petID,
		ServiceType: models.ServiceBoarding,
		StartDate:   stringPtr("2026-02-10"),
		EndDate:     stringPtr("2026-02-15"),
	})
	require.NoError(t, err)

	// Both parties can see it
	_, err = f.controller.GetByID(context.Background(), f.ownerID, booking.ID)
	assert.NoError(t, err)
	_, err = f.controller.GetByID(context.Background(), f.providerID, booking.ID)
	assert.NoError(t, err)

	// A third party gets the same answer as for a missing booking
	_, err = f.controller.GetByID(context.Background(), uuid.New(), booking.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestBookingController_UpdateStatus_OnlyProviderConfirms(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.controller.Create(context.Background(), f.ownerID, CreateBookingRequest{
		ProviderID:  f.providerID,
		PetID:       f.petID,
		ServiceType: models.ServiceBoarding,
		StartDate:   stringPtr("2026-02-10"),
		EndDate:     stringPtr("2026-02-15"),
	})
	require.NoError(t, err)

	_, err = f.controller.UpdateStatus(context.Background(), f.ownerID, booking.ID, UpdateStatusRequest{
		Status: models.StatusConfirmed,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	updated, err := f.controller.UpdateStatus(context.Background(), f.providerID, booking.ID, UpdateStatusRequest{
		Status: models.StatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
}

func TestBookingController_UpdateStatus_Validation(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.controller.Create(context.Background(), f.ownerID, CreateBookingRequest{
		ProviderID:  f.providerID,
		PetID:       f.petID,
		ServiceType: models.ServiceBoarding,
		StartDate:   stringPtr("2026-02-10"),
		EndDate:     stringPtr("2026-02-15"),
	})
	require.NoError(t, err)

	// PENDING cannot be set back, and unknown values are rejected
	for _, status := range []models.BookingStatus{models.StatusPending, "SHIPPED"} {
		_, err = f.controller.UpdateStatus(context.Background(), f.providerID, booking.ID, UpdateStatusRequest{
			Status: status,
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestBookingController_UpdateStatus_EitherPartyCancels(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.controller.Create(context.Background(), f.ownerID, CreateBookingRequest{
		ProviderID:  f.providerID,
		PetID:       f.petID,
		ServiceType: models.ServiceBoarding,
		StartDate:   stringPtr("2026-02-10"),
		EndDate:     stringPtr("2026-02-15"),
	})
	require.NoError(t, err)

	updated, err := f.controller.UpdateStatus(context.Background(), f.ownerID, booking.ID, UpdateStatusRequest{
		Status: models.StatusCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
}

func TestBookingController_AddReview(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.controller.Create(context.Background(), f.ownerID, CreateBookingRequest{
		ProviderID:  f.providerID,
		PetID:       f.petID,
		ServiceType: models.ServiceBoarding,
		StartDate:   stringPtr("2026-02-10"),
		EndDate:     stringPtr("2026-02-15"),
	})
	require.NoError(t, err)

	// Rating outside 1-5 is rejected before anything is looked up
	_, err = f.controller.AddReview(context.Background(), f.ownerID, booking.ID, AddReviewRequest{Rating: 6})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	// A booking that is not COMPLETED cannot be reviewed
	_, err = f.controller.AddReview(context.Background(), f.ownerID, booking.ID, AddReviewRequest{Rating: 5})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = f.controller.UpdateStatus(context.Background(), f.ownerID, booking.ID, UpdateStatusRequest{
		Status: models.StatusCompleted,
	})
	require.NoError(t, err)

	// The provider cannot review their own work
	_, err = f.controller.AddReview(context.Background(), f.providerID, booking.ID, AddReviewRequest{Rating: 5})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	review, err := f.controller.AddReview(context.Background(), f.ownerID, booking.ID, AddReviewRequest{
		Rating: 5,
		Text:   stringPtr("Sarah was amazing!"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, f.ownerID, review.AuthorID)

	// Second attempt hits the already-reviewed check inside the transaction
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err = f.controller.AddReview(context.Background(), f.ownerID, booking.ID, AddReviewRequest{Rating: 4})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestBookingController_List_SplitsByRole(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.controller.Create(context.Background(), f.ownerID, CreateBookingRequest{
		ProviderID:  f.providerID,
		PetID:       f.petID,
		ServiceType: models.ServiceBoarding,
		StartDate:   stringPtr("2026-02-10"),
		EndDate:     stringPtr("2026-02-15"),
	})
	require.NoError(t, err)

	asOwner, err := f.controller.List(context.Background(), f.ownerID, ViewAsOwner)
	require.NoError(t, err)
	assert.Len(t, asOwner, 1)

	asProvider, err := f.controller.List(context.Background(), f.providerID, ViewAsProvider)
	require.NoError(t, err)
	assert.Len(t, asProvider, 1)

	ownerAsProvider, err := f.controller.List(context.Background(), f.ownerID, ViewAsProvider)
	require.NoError(t, err)
	assert.Empty(t, ownerAsProvider)
}
