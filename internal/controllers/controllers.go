package controllers

import (
	"pawsitter/internal/database"
	"pawsitter/internal/repositories"
	"pawsitter/internal/services"

	authController "pawsitter/internal/controllers/auth"
	bookingController "pawsitter/internal/controllers/bookings"
	providerController "pawsitter/internal/controllers/providers"
	userController "pawsitter/internal/controllers/users"
)

type Controllers struct {
	Auth     authController.AuthControllerInterface
	User     userController.UserControllerInterface
	Provider providerController.ProviderControllerInterface
	Booking  bookingController.BookingControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	db database.DB,
) Controllers {
	return Controllers{
		Auth:     authController.New(repos, services),
		User:     userController.New(repos),
		Provider: providerController.New(repos, db),
		Booking:  bookingController.New(repos, services),
	}
}
