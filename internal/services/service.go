package services

import (
	"pawsitter/config"
	"pawsitter/internal/database"
)

type Service struct {
	Transaction *TransactionService
	Token       *TokenService
	Pricing     *PricingService
}

func New(db database.DB, config config.Config) Service {
	return Service{
		Transaction: NewTransactionService(db),
		Token:       NewTokenService(config),
		Pricing:     NewPricingService(),
	}
}
