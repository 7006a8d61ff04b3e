package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ServiceType string

const (
	ServiceBoarding ServiceType = "BOARDING"
	ServiceWalking  ServiceType = "WALKING"
)

func ValidServiceType(service ServiceType) bool {
	switch service {
	case ServiceBoarding, ServiceWalking:
		return true
	}
	return false
}

// ProviderProfile is a 1:1 extension of a user recording service-offering
// state. ServicesOffered stays a serialized JSON string (e.g.
// `["BOARDING", "WALKING"]`) because the string itself is part of the wire
// contract: the search service filter is a literal substring match over it,
// so "ALK" matches a provider offering WALKING.
type ProviderProfile struct {
	BaseUUIDModel
	UserID           uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Bio              *string          `gorm:"type:text"                      json:"bio,omitempty"`
	Photos           datatypes.JSON   `gorm:"type:jsonb"                     json:"photos,omitempty"`
	ServicesOffered  string           `gorm:"type:text;not null"             json:"servicesOffered"`
	DailyRate        *decimal.Decimal `gorm:"type:decimal(10,2)"             json:"dailyRate,omitempty"`
	HourlyRate       *decimal.Decimal `gorm:"type:decimal(10,2)"             json:"hourlyRate,omitempty"`
	BoardingCapacity *int             `gorm:"type:int"                       json:"boardingCapacity,omitempty"`
	WalkingRadius    *float64         `gorm:"type:decimal(6,2)"              json:"walkingRadius,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// OffersService reports whether the serialized offering list contains the
// given token as a literal substring. Intentionally not a structured
// membership test.
func (p *ProviderProfile) OffersService(token string) bool {
	return token == "" || strings.Contains(p.ServicesOffered, token)
}

// ProviderView is a profile joined with the owning user's public fields.
type ProviderView struct {
	ProviderProfile
	User UserSummary `json:"user"`
}

func (p *ProviderProfile) ToView() ProviderView {
	return ProviderView{
		ProviderProfile: *p,
		User:            p.User.ToSummary(),
	}
}
