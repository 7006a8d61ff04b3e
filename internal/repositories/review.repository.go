package repositories

import (
	"context"
	"pawsitter/internal/database"
	"pawsitter/internal/logger"
	. "pawsitter/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, review *Review) error
	ExistsForBooking(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID) (bool, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, limit int) ([]Review, error)
}

type reviewRepository struct {
	db  database.DB
	log logger.Logger
}

func NewReviewRepository(db database.DB) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: logger.New("reviewRepository"),
	}
}

// Create inserts a review. A transaction handle may be supplied so the
// already-reviewed check and the insert share one transaction; the unique
// index on booking_id is the backstop.
func (r *reviewRepository) Create(ctx context.Context, tx *gorm.DB, review *Review) error {
	log := r.log.Function("Create")

	db := tx
	if db == nil {
		db = r.db.SQLWithContext(ctx)
	}

	if err := db.Create(review).Error; err != nil {
		return log.Err("failed to create review", err, "bookingID", review.BookingID)
	}

	return nil
}

func (r *reviewRepository) ExistsForBooking(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID) (bool, error) {
	log := r.log.Function("ExistsForBooking")

	db := tx
	if db == nil {
		db = r.db.SQLWithContext(ctx)
	}

	var count int64
	if err := db.Model(&Review{}).Where("booking_id = ?", bookingID).Count(&count).Error; err != nil {
		return false, log.Err("failed to check review existence", err, "bookingID", bookingID)
	}

	return count > 0, nil
}

// ListByProvider returns reviews of a provider's bookings, newest first.
// limit <= 0 returns all of them.
func (r *reviewRepository) ListByProvider(ctx context.Context, providerID uuid.UUID, limit int) ([]Review, error) {
	log := r.log.Function("ListByProvider")

	query := r.db.SQLWithContext(ctx).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.provider_id = ?", providerID).
		Preload("Author").
		Order("reviews.created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var reviews []Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, log.Err("failed to list reviews", err, "providerID", providerID)
	}

	return reviews, nil
}
