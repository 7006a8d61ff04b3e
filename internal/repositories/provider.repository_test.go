package repositories_test

import (
	"context"
	"pawsitter/internal/database"
	"pawsitter/internal/repositories"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupProviderRepo(t *testing.T) (repositories.ProviderRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	repo := repositories.NewProviderRepository(database.DB{SQL: gormDB})
	return repo, mock
}

func emptyProfileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "services_offered"})
}

func TestProviderRepository_Search_ServiceSubstring(t *testing.T) {
	repo, mock := setupProviderRepo(t)

	// The filter is a literal substring over the serialized offering list
	mock.ExpectQuery(`SELECT (.+) FROM "provider_profiles" WHERE services_offered LIKE`).
		WithArgs("%ALK%").
		WillReturnRows(emptyProfileRows())

	_, err := repo.Search(context.Background(), repositories.SearchParams{Service: "ALK"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProviderRepository_Search_PriceWindow(t *testing.T) {
	thirty := decimal.NewFromInt(30)
	sixty := decimal.NewFromInt(60)

	tests := []struct {
		name     string
		params   repositories.SearchParams
		wantArgs []string
	}{
		{
			name:     "min only fills upper default",
			params:   repositories.SearchParams{MinPrice: &thirty},
			wantArgs: []string{"30", "99999", "30", "99999"},
		},
		{
			name:     "max only fills lower default",
			params:   repositories.SearchParams{MaxPrice: &sixty},
			wantArgs: []string{"0", "60", "0", "60"},
		},
		{
			name:     "both bounds",
			params:   repositories.SearchParams{MinPrice: &thirty, MaxPrice: &sixty},
			wantArgs: []string{"30", "60", "30", "60"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupProviderRepo(t)

			// The window applies to daily and hourly rates as one OR clause
			mock.ExpectQuery(`daily_rate >= (.+) AND daily_rate <= (.+) OR (.+)hourly_rate >= (.+) AND hourly_rate <=`).
				WithArgs(tt.wantArgs[0], tt.wantArgs[1], tt.wantArgs[2], tt.wantArgs[3]).
				WillReturnRows(emptyProfileRows())

			_, err := repo.Search(context.Background(), tt.params)
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProviderRepository_Search_ServiceAndPrice(t *testing.T) {
	repo, mock := setupProviderRepo(t)
	thirty := decimal.NewFromInt(30)

	mock.ExpectQuery(`services_offered LIKE (.+) AND (.+)daily_rate`).
		WithArgs("%BOARDING%", "30", "99999", "30", "99999").
		WillReturnRows(emptyProfileRows())

	_, err := repo.Search(context.Background(), repositories.SearchParams{
		Service:  "BOARDING",
		MinPrice: &thirty,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
