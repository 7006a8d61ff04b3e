package repositories

import (
	"context"
	"pawsitter/internal/database"
	"pawsitter/internal/logger"
	. "pawsitter/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PROVIDER_LIST_CACHE_KEY    = "providers:all"
	PROVIDER_LIST_CACHE_EXPIRY = 5 * time.Minute
)

// SearchParams carries the database-side provider filters. The location
// filter is applied by the controller after the query.
type SearchParams struct {
	Service  string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type ProviderRepository interface {
	ListAll(ctx context.Context) ([]ProviderProfile, error)
	Search(ctx context.Context, params SearchParams) ([]ProviderProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*ProviderProfile, error)
	Upsert(ctx context.Context, profile *ProviderProfile) error
}

type providerRepository struct {
	db  database.DB
	log logger.Logger
}

func NewProviderRepository(db database.DB) ProviderRepository {
	return &providerRepository{
		db:  db,
		log: logger.New("providerRepository"),
	}
}

func (r *providerRepository) ListAll(ctx context.Context) ([]ProviderProfile, error) {
	log := r.log.Function("ListAll")

	var profiles []ProviderProfile
	if err := r.db.SQLWithContext(ctx).
		Preload("User").
		Find(&profiles).Error; err != nil {
		return nil, log.Err("failed to list providers", err)
	}

	return profiles, nil
}

func (r *providerRepository) Search(ctx context.Context, params SearchParams) ([]ProviderProfile, error) {
	log := r.log.Function("Search")

	query := r.db.SQLWithContext(ctx).Model(&ProviderProfile{}).Preload("User")

	// Literal substring match over the serialized offering list, part of the
	// wire contract.
	if params.Service != "" {
		query = query.Where("services_offered LIKE ?", "%"+params.Service+"%")
	}

	// Inclusive OR across the two independently-priced service types.
	if params.MinPrice != nil || params.MaxPrice != nil {
		lower := decimal.Zero
		upper := decimal.NewFromInt(99999)
		if params.MinPrice != nil {
			lower = *params.MinPrice
		}
		if params.MaxPrice != nil {
			upper = *params.MaxPrice
		}
		query = query.Where(
			"(daily_rate >= ? AND daily_rate <= ?) OR (hourly_rate >= ? AND hourly_rate <= ?)",
			lower, upper, lower, upper,
		)
	}

	var profiles []ProviderProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, log.Err("failed to search providers", err)
	}

	return profiles, nil
}

func (r *providerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*ProviderProfile, error) {
	var profile ProviderProfile
	if err := r.db.SQLWithContext(ctx).
		Preload("User").
		First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

// Upsert creates the profile or wholesale-replaces an existing one. The row
// identity survives a replace; every service field is overwritten.
func (r *providerRepository) Upsert(ctx context.Context, profile *ProviderProfile) error {
	log := r.log.Function("Upsert")

	var existing ProviderProfile
	err := r.db.SQLWithContext(ctx).
		First(&existing, "user_id = ?", profile.UserID).Error
	if err == nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	if err := r.db.SQLWithContext(ctx).Save(profile).Error; err != nil {
		return log.Err("failed to upsert provider profile", err, "userID", profile.UserID)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Provider, PROVIDER_LIST_CACHE_KEY).
		WithContext(ctx).
		Delete(); err != nil {
		log.Warn("failed to invalidate provider list cache", "error", err)
	}

	return nil
}
