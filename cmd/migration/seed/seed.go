package seed

import (
	"pawsitter/config"
	"pawsitter/internal/logger"
	"time"

	. "pawsitter/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedPassword = "password123"

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	owner := User{
		Email:        "owner@test.com",
		PasswordHash: string(hash),
		Name:         "Alex Owner",
		Phone:        stringPtr("555-0101"),
		Location:     stringPtr("Brooklyn, NY"),
		Role:         RoleOwner,
		Pets: []Pet{
			{Name: "Buddy", Breed: stringPtr("Golden Retriever"), Size: SizeLarge, Age: intPtr(3)},
			{Name: "Max", Breed: stringPtr("Beagle"), Size: SizeMedium, Age: intPtr(5)},
		},
	}
	if err := db.Create(&owner).Error; err != nil {
		return log.Err("failed to seed owner", err)
	}

	providers := []User{
		{
			Email:        "sarah@test.com",
			PasswordHash: string(hash),
			Name:         "Sarah Sitter",
			Phone:        stringPtr("555-0102"),
			Location:     stringPtr("Brooklyn, NY"),
			Role:         RoleProvider,
			ProviderProfile: &ProviderProfile{
				Bio:              stringPtr("Dog lover with 5 years of pet sitting experience. I have a big backyard and love taking dogs on adventures!"),
				ServicesOffered:  `["BOARDING", "WALKING"]`,
				DailyRate:        decimalPtr(decimal.NewFromInt(45)),
				HourlyRate:       decimalPtr(decimal.NewFromInt(20)),
				BoardingCapacity: intPtr(3),
				WalkingRadius:    floatPtr(2),
			},
		},
		{
			Email:        "mike@test.com",
			PasswordHash: string(hash),
			Name:         "Mike Walker",
			Phone:        stringPtr("555-0103"),
			Location:     stringPtr("Manhattan, NY"),
			Role:         RoleProvider,
			ProviderProfile: &ProviderProfile{
				Bio:             stringPtr("Professional dog walker. I walk dogs rain or shine! Flexible schedule and great with all breeds."),
				ServicesOffered: `["WALKING"]`,
				HourlyRate:      decimalPtr(decimal.NewFromInt(25)),
				WalkingRadius:   floatPtr(3),
			},
		},
		{
			Email:        "emma@test.com",
			PasswordHash: string(hash),
			Name:         "Emma Boarder",
			Phone:        stringPtr("555-0104"),
			Location:     stringPtr("Queens, NY"),
			Role:         RoleProvider,
			ProviderProfile: &ProviderProfile{
				Bio:              stringPtr("Retired vet tech. Your pet will be in expert hands! Comfortable with medications and special needs pets."),
				ServicesOffered:  `["BOARDING"]`,
				DailyRate:        decimalPtr(decimal.NewFromInt(55)),
				BoardingCapacity: intPtr(2),
			},
		},
	}
	for i := range providers {
		if err := db.Create(&providers[i]).Error; err != nil {
			return log.Err("failed to seed provider", err, "email", providers[i].Email)
		}
	}

	startDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	booking := Booking{
		OwnerID:     owner.ID,
		ProviderID:  providers[0].ID,
		PetID:       owner.Pets[0].ID,
		ServiceType: ServiceBoarding,
		Status:      StatusConfirmed,
		StartDate:   &startDate,
		EndDate:     &endDate,
		TotalPrice:  decimal.NewFromInt(225),
		Notes:       stringPtr("Buddy needs his medication twice daily"),
	}
	if err := db.Create(&booking).Error; err != nil {
		return log.Err("failed to seed booking", err)
	}

	review := Review{
		BookingID: booking.ID,
		AuthorID:  owner.ID,
		Rating:    5,
		Text:      stringPtr("Sarah was amazing! Buddy had a great time and came home happy."),
	}
	if err := db.Create(&review).Error; err != nil {
		return log.Err("failed to seed review", err)
	}

	log.Info("Seed complete",
		"owner", owner.Email,
		"providers", len(providers),
		"password", seedPassword,
	)

	return nil
}
