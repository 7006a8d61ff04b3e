package userController

import (
	"context"
	"errors"
	"pawsitter/internal/apperrors"
	"pawsitter/internal/logger"
	"pawsitter/internal/models"
	"pawsitter/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserController struct {
	userRepo repositories.UserRepository
	petRepo  repositories.PetRepository
	log      logger.Logger
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

type CreatePetRequest struct {
	Name  string         `json:"name"`
	Breed *string        `json:"breed,omitempty"`
	Size  models.PetSize `json:"size"`
	Age   *int           `json:"age,omitempty"`
	Notes *string        `json:"notes,omitempty"`
}

type UserControllerInterface interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserProfileView, error)
	Update(ctx context.Context, callerID, targetID uuid.UUID, req UpdateUserRequest) (*models.UserPublicView, error)
	ListPets(ctx context.Context, ownerID uuid.UUID) ([]models.Pet, error)
	CreatePet(ctx context.Context, callerID, targetID uuid.UUID, req CreatePetRequest) (*models.Pet, error)
}

func New(repos repositories.Repository) UserControllerInterface {
	return &UserController{
		userRepo: repos.User,
		petRepo:  repos.Pet,
		log:      logger.New("userController"),
	}
}

// GetByID serves the profile another user is allowed to see. The wide view
// with email and phone is reserved for /auth/me and the self-update response.
func (c *UserController) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserProfileView, error) {
	user, err := c.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}

	view := user.ToProfileView()
	return &view, nil
}

func (c *UserController) Update(
	ctx context.Context,
	callerID, targetID uuid.UUID,
	req UpdateUserRequest,
) (*models.UserPublicView, error) {
	log := c.log.Function("Update")

	if callerID != targetID {
		return nil, apperrors.Forbidden("Cannot update other users")
	}

	user, err := c.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.Validation("Name cannot be empty")
		}
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Location != nil {
		user.Location = req.Location
	}

	if err := c.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Info("user updated", "userID", user.ID)
	view := user.ToPublicView()
	return &view, nil
}

func (c *UserController) ListPets(ctx context.Context, ownerID uuid.UUID) ([]models.Pet, error) {
	return c.petRepo.ListByOwner(ctx, ownerID)
}

func (c *UserController) CreatePet(
	ctx context.Context,
	callerID, targetID uuid.UUID,
	req CreatePetRequest,
) (*models.Pet, error) {
	log := c.log.Function("CreatePet")

	if callerID != targetID {
		return nil, apperrors.Forbidden("Cannot add pets for other users")
	}

	if req.Name == "" {
		return nil, apperrors.Validation("Pet name is required")
	}
	if !models.ValidPetSize(req.Size) {
		return nil, apperrors.Validation("Invalid pet size")
	}
	if req.Age != nil && *req.Age <= 0 {
		return nil, apperrors.Validation("Pet age must be positive")
	}

	if _, err := c.userRepo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}

	pet := &models.Pet{
		OwnerID: targetID,
		Name:    req.Name,
		Breed:   req.Breed,
		Size:    req.Size,
		Age:     req.Age,
		Notes:   req.Notes,
	}

	if err := c.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	log.Info("pet created", "petID", pet.ID, "ownerID", targetID)
	return pet, nil
}
