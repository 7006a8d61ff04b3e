package app

import (
	"pawsitter/config"
	"pawsitter/internal/controllers"
	"pawsitter/internal/database"
	"pawsitter/internal/handlers/middleware"
	"pawsitter/internal/logger"
	"pawsitter/internal/repositories"
	"pawsitter/internal/services"
)

type App struct {
	Database    database.DB
	Middleware  middleware.Middleware
	Config      config.Config
	Services    services.Service
	Repos       repositories.Repository
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	serviceLayer := services.New(db, config)
	repos := repositories.New(db)
	middleware := middleware.New(db, config, repos, serviceLayer)
	controllers := controllers.New(serviceLayer, repos, db)

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		Services:    serviceLayer,
		Repos:       repos,
		Controllers: controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Transaction,
		a.Services.Token,
		a.Services.Pricing,
		a.Repos.User,
		a.Repos.Pet,
		a.Repos.Provider,
		a.Repos.Booking,
		a.Repos.Review,
		a.Controllers.Auth,
		a.Controllers.User,
		a.Controllers.Provider,
		a.Controllers.Booking,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
