package repositories

import (
	"context"
	"pawsitter/internal/database"
	"pawsitter/internal/logger"
	. "pawsitter/internal/models"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Booking, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) error
}

type bookingRepository struct {
	db  database.DB
	log logger.Logger
}

func NewBookingRepository(db database.DB) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: logger.New("bookingRepository"),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *Booking) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(booking).Error; err != nil {
		return log.Err("failed to create booking", err,
			"ownerID", booking.OwnerID, "providerID", booking.ProviderID)
	}

	// Reload with associations for the response
	if err := r.db.SQLWithContext(ctx).
		Preload("Pet").Preload("Owner").Preload("Provider").
		First(booking, "id = ?", booking.ID).Error; err != nil {
		return log.Err("failed to reload booking", err, "bookingID", booking.ID)
	}

	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	if err := r.db.SQLWithContext(ctx).
		Preload("Pet").Preload("Owner").Preload("Provider").
		First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Booking, error) {
	return r.list(ctx, "owner_id = ?", ownerID)
}

func (r *bookingRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]Booking, error) {
	return r.list(ctx, "provider_id = ?", providerID)
}

func (r *bookingRepository) list(ctx context.Context, cond string, id uuid.UUID) ([]Booking, error) {
	log := r.log.Function("list")

	var bookings []Booking
	if err := r.db.SQLWithContext(ctx).
		Preload("Pet").Preload("Owner").Preload("Provider").
		Where(cond, id).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, log.Err("failed to list bookings", err, "id", id)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) error {
	log := r.log.Function("UpdateStatus")

	if err := r.db.SQLWithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return log.Err("failed to update booking status", err, "bookingID", id, "status", status)
	}

	return nil
}
