package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// ValidStatusUpdate reports whether status is one a caller may set through the
// status endpoint. PENDING is only ever set by booking creation.
func ValidStatusUpdate(status BookingStatus) bool {
	switch status {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking links one owner, one provider, and one pet to a service instance.
// Exactly one of the boarding field set (StartDate/EndDate) or the walking
// field set (WalkDate/WalkTime/Duration) is populated, matching ServiceType.
type Booking struct {
	BaseUUIDModel
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"ownerId"`
	ProviderID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"providerId"`
	PetID       uuid.UUID       `gorm:"type:uuid;not null"       json:"petId"`
	ServiceType ServiceType     `gorm:"type:text;not null"       json:"serviceType"`
	Status      BookingStatus   `gorm:"type:text;default:PENDING;index" json:"status"`
	StartDate   *time.Time      `gorm:"type:timestamp"           json:"startDate,omitempty"`
	EndDate     *time.Time      `gorm:"type:timestamp"           json:"endDate,omitempty"`
	WalkDate    *time.Time      `gorm:"type:timestamp"           json:"walkDate,omitempty"`
	WalkTime    *string         `gorm:"type:text"                json:"walkTime,omitempty"`
	Duration    *int            `gorm:"type:int"                 json:"duration,omitempty"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2)"       json:"totalPrice"`
	Notes       *string         `gorm:"type:text"                json:"notes,omitempty"`

	Pet      Pet  `gorm:"foreignKey:PetID"      json:"pet,omitempty"`
	Owner    User `gorm:"foreignKey:OwnerID"    json:"-"`
	Provider User `gorm:"foreignKey:ProviderID" json:"-"`
}

// BookingView joins the booking with owner and provider summaries for
// responses.
type BookingView struct {
	Booking
	Owner    UserSummary `json:"owner"`
	Provider UserSummary `json:"provider"`
}

func (b *Booking) ToView() BookingView {
	return BookingView{
		Booking:  *b,
		Owner:    b.Owner.ToSummary(),
		Provider: b.Provider.ToSummary(),
	}
}

// IsParty reports whether userID is the booking's owner or provider.
func (b *Booking) IsParty(userID uuid.UUID) bool {
	return b.OwnerID == userID || b.ProviderID == userID
}
