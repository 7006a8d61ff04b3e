package providerController

import (
	"context"
	"encoding/json"
	"errors"
	"pawsitter/internal/apperrors"
	"pawsitter/internal/database"
	"pawsitter/internal/logger"
	"pawsitter/internal/models"
	"pawsitter/internal/repositories"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const RecentReviewLimit = 10

type ProviderController struct {
	providerRepo repositories.ProviderRepository
	reviewRepo   repositories.ReviewRepository
	userRepo     repositories.UserRepository
	db           database.DB
	log          logger.Logger
}

// SearchQuery carries the provider search filters. The location filter is
// applied after the service and price filters, as a case-insensitive
// substring match against the free-text location; providers without a
// location never match a non-empty location filter.
type SearchQuery struct {
	Location string
	Service  string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type UpsertProfileRequest struct {
	Bio              *string          `json:"bio,omitempty"`
	Photos           []string         `json:"photos,omitempty"`
	ServicesOffered  string           `json:"servicesOffered"`
	DailyRate        *decimal.Decimal `json:"dailyRate,omitempty"`
	HourlyRate       *decimal.Decimal `json:"hourlyRate,omitempty"`
	BoardingCapacity *int             `json:"boardingCapacity,omitempty"`
	WalkingRadius    *float64         `json:"walkingRadius,omitempty"`
}

// ProviderDetail is the provider-page response: profile, joined user, the
// most recent reviews, and the mean rating (null when unreviewed).
type ProviderDetail struct {
	models.ProviderView
	Reviews   []models.ReviewView `json:"reviews"`
	AvgRating *float64            `json:"avgRating"`
}

type ProviderControllerInterface interface {
	ListAll(ctx context.Context) ([]models.ProviderView, error)
	Search(ctx context.Context, query SearchQuery) ([]models.ProviderView, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*ProviderDetail, error)
	ListReviews(ctx context.Context, userID uuid.UUID) ([]models.ReviewView, error)
	UpsertProfile(ctx context.Context, callerID, targetID uuid.UUID, req UpsertProfileRequest) (*models.ProviderView, error)
}

func New(repos repositories.Repository, db database.DB) ProviderControllerInterface {
	return &ProviderController{
		providerRepo: repos.Provider,
		reviewRepo:   repos.Review,
		userRepo:     repos.User,
		db:           db,
		log:          logger.New("providerController"),
	}
}

func (c *ProviderController) ListAll(ctx context.Context) ([]models.ProviderView, error) {
	log := c.log.Function("ListAll")

	var views []models.ProviderView
	found, err := database.NewCacheBuilder(c.db.Cache.Provider, repositories.PROVIDER_LIST_CACHE_KEY).
		WithContext(ctx).
		Get(&views)
	if err == nil && found {
		return views, nil
	}

	profiles, err := c.providerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views = toViews(profiles)

	if err := database.NewCacheBuilder(c.db.Cache.Provider, repositories.PROVIDER_LIST_CACHE_KEY).
		WithStruct(views).
		WithTTL(repositories.PROVIDER_LIST_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to cache provider list", "error", err)
	}

	return views, nil
}

func (c *ProviderController) Search(ctx context.Context, query SearchQuery) ([]models.ProviderView, error) {
	profiles, err := c.providerRepo.Search(ctx, repositories.SearchParams{
		Service:  query.Service,
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
	})
	if err != nil {
		return nil, err
	}

	if query.Location != "" {
		loc := strings.ToLower(query.Location)
		filtered := profiles[:0]
		for _, p := range profiles {
			if p.User.Location != nil && strings.Contains(strings.ToLower(*p.User.Location), loc) {
				filtered = append(filtered, p)
			}
		}
		profiles = filtered
	}

	return toViews(profiles), nil
}

func (c *ProviderController) GetByUserID(ctx context.Context, userID uuid.UUID) (*ProviderDetail, error) {
	profile, err := c.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Provider not found")
		}
		return nil, err
	}

	reviews, err := c.reviewRepo.ListByProvider(ctx, userID, RecentReviewLimit)
	if err != nil {
		return nil, err
	}

	detail := &ProviderDetail{
		ProviderView: profile.ToView(),
		Reviews:      toReviewViews(reviews),
		AvgRating:    averageRating(reviews),
	}

	return detail, nil
}

func (c *ProviderController) ListReviews(ctx context.Context, userID uuid.UUID) ([]models.ReviewView, error) {
	reviews, err := c.reviewRepo.ListByProvider(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	return toReviewViews(reviews), nil
}

func (c *ProviderController) UpsertProfile(
	ctx context.Context,
	callerID, targetID uuid.UUID,
	req UpsertProfileRequest,
) (*models.ProviderView, error) {
	log := c.log.Function("UpsertProfile")

	if callerID != targetID {
		return nil, apperrors.Forbidden("Cannot update other providers")
	}

	if req.ServicesOffered == "" {
		return nil, apperrors.Validation("servicesOffered is required")
	}
	if req.DailyRate != nil && !req.DailyRate.IsPositive() {
		return nil, apperrors.Validation("dailyRate must be positive")
	}
	if req.HourlyRate != nil && !req.HourlyRate.IsPositive() {
		return nil, apperrors.Validation("hourlyRate must be positive")
	}
	if req.BoardingCapacity != nil && *req.BoardingCapacity <= 0 {
		return nil, apperrors.Validation("boardingCapacity must be positive")
	}
	if req.WalkingRadius != nil && *req.WalkingRadius <= 0 {
		return nil, apperrors.Validation("walkingRadius must be positive")
	}

	user, err := c.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}

	profile := &models.ProviderProfile{
		UserID:           targetID,
		Bio:              req.Bio,
		ServicesOffered:  req.ServicesOffered,
		DailyRate:        req.DailyRate,
		HourlyRate:       req.HourlyRate,
		BoardingCapacity: req.BoardingCapacity,
		WalkingRadius:    req.WalkingRadius,
	}

	if req.Photos != nil {
		photos, err := json.Marshal(req.Photos)
		if err != nil {
			return nil, apperrors.Validation("Invalid photos")
		}
		profile.Photos = photos
	}

	if err := c.providerRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// Offering services makes the user both an owner and a provider. The
	// promotion is idempotent and has no path back.
	if user.Role != models.RoleBoth {
		user.Role = models.RoleBoth
		if err := c.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	saved, err := c.providerRepo.GetByUserID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	log.Info("provider profile upserted", "userID", targetID)
	view := saved.ToView()
	return &view, nil
}

func toViews(profiles []models.ProviderProfile) []models.ProviderView {
	views := make([]models.ProviderView, 0, len(profiles))
	for i := range profiles {
		views = append(views, profiles[i].ToView())
	}
	return views
}

func toReviewViews(reviews []models.Review) []models.ReviewView {
	views := make([]models.ReviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, reviews[i].ToView())
	}
	return views
}

func averageRating(reviews []models.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	avg := float64(sum) / float64(len(reviews))
	return &avg
}
