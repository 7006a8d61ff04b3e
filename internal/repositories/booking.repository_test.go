package repositories_test

import (
	"context"
	"pawsitter/internal/database"
	"pawsitter/internal/models"
	"pawsitter/internal/repositories"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupBookingRepo(t *testing.T) (repositories.BookingRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	repo := repositories.NewBookingRepository(database.DB{SQL: gormDB})
	return repo, mock
}

func emptyBookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "provider_id", "status"})
}

func TestBookingRepository_ListByOwner_NewestFirst(t *testing.T) {
	repo, mock := setupBookingRepo(t)
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE owner_id = (.+) ORDER BY created_at DESC`).
		WithArgs(ownerID).
		WillReturnRows(emptyBookingRows())

	_, err := repo.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListByProvider_NewestFirst(t *testing.T) {
	repo, mock := setupBookingRepo(t)
	providerID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE provider_id = (.+) ORDER BY created_at DESC`).
		WithArgs(providerID).
		WillReturnRows(emptyBookingRows())

	_, err := repo.ListByProvider(context.Background(), providerID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	repo, mock := setupBookingRepo(t)
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET (.+)"status"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), bookingID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
