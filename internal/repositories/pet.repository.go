package repositories

import (
	"context"
	"pawsitter/internal/database"
	"pawsitter/internal/logger"
	. "pawsitter/internal/models"

	"github.com/google/uuid"
)

type PetRepository interface {
	Create(ctx context.Context, pet *Pet) error
	GetOwnedByID(ctx context.Context, petID, ownerID uuid.UUID) (*Pet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Pet, error)
}

type petRepository struct {
	db  database.DB
	log logger.Logger
}

func NewPetRepository(db database.DB) PetRepository {
	return &petRepository{
		db:  db,
		log: logger.New("petRepository"),
	}
}

func (r *petRepository) Create(ctx context.Context, pet *Pet) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(pet).Error; err != nil {
		return log.Err("failed to create pet", err, "ownerID", pet.OwnerID)
	}

	return nil
}

// GetOwnedByID looks up a pet scoped to its owner. A pet belonging to someone
// else is indistinguishable from a missing one.
func (r *petRepository) GetOwnedByID(ctx context.Context, petID, ownerID uuid.UUID) (*Pet, error) {
	var pet Pet
	if err := r.db.SQLWithContext(ctx).
		First(&pet, "id = ? AND owner_id = ?", petID, ownerID).Error; err != nil {
		return nil, err
	}

	return &pet, nil
}

func (r *petRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Pet, error) {
	log := r.log.Function("ListByOwner")

	var pets []Pet
	if err := r.db.SQLWithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&pets).Error; err != nil {
		return nil, log.Err("failed to list pets", err, "ownerID", ownerID)
	}

	return pets, nil
}
