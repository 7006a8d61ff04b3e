package repositories

import (
	"pawsitter/internal/database"
)

type Repository struct {
	User     UserRepository
	Pet      PetRepository
	Provider ProviderRepository
	Booking  BookingRepository
	Review   ReviewRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:     NewUserRepository(db), // user repo caches for the auth middleware
		Pet:      NewPetRepository(db),
		Provider: NewProviderRepository(db),
		Booking:  NewBookingRepository(db),
		Review:   NewReviewRepository(db),
	}
}
