package models

import (
	"github.com/google/uuid"
)

type PetSize string

const (
	SizeSmall  PetSize = "SMALL"
	SizeMedium PetSize = "MEDIUM"
	SizeLarge  PetSize = "LARGE"
	SizeGiant  PetSize = "GIANT"
)

func ValidPetSize(size PetSize) bool {
	switch size {
	case SizeSmall, SizeMedium, SizeLarge, SizeGiant:
		return true
	}
	return false
}

// Pet is owned by exactly one user. There are no edit or delete endpoints, so
// a pet is immutable once created.
type Pet struct {
	BaseUUIDModel
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	Name    string    `gorm:"type:text;not null"       json:"name"`
	Breed   *string   `gorm:"type:text"                json:"breed,omitempty"`
	Size    PetSize   `gorm:"type:text;not null"       json:"size"`
	Age     *int      `gorm:"type:int"                 json:"age,omitempty"`
	Notes   *string   `gorm:"type:text"                json:"notes,omitempty"`
}
