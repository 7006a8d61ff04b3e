package middleware

import (
	"pawsitter/config"
	"pawsitter/internal/database"
	"pawsitter/internal/logger"
	"pawsitter/internal/repositories"
	"pawsitter/internal/services"
)

type Middleware struct {
	DB           database.DB
	userRepo     repositories.UserRepository
	tokenService *services.TokenService
	Config       config.Config
	log          logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	repos repositories.Repository,
	services services.Service,
) Middleware {
	return Middleware{
		DB:           db,
		userRepo:     repos.User,
		tokenService: services.Token,
		Config:       config,
		log:          logger.New("middleware"),
	}
}
