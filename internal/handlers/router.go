package handlers

import (
	"pawsitter/internal/app"
	"pawsitter/internal/handlers/middleware"
	"pawsitter/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	api := router.Group("/api")

	HealthHandler(api, app.Config)
	NewAuthHandler(*app, api).Register()
	NewUserHandler(*app, api).Register()
	NewProviderHandler(*app, api).Register()
	NewBookingHandler(*app, api).Register()

	return nil
}
