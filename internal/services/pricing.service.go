package services

import (
	"math"
	"pawsitter/internal/logger"
	"time"

	"github.com/shopspring/decimal"
)

var (
	defaultDailyRate  = decimal.NewFromInt(50)
	defaultHourlyRate = decimal.NewFromInt(25)
	minutesPerHour    = decimal.NewFromInt(60)
)

// PricingService computes booking totals. A boarding range is not validated,
// so a same-day or inverted range yields a zero or negative day count that
// propagates into the price.
type PricingService struct {
	log logger.Logger
}

func NewPricingService() *PricingService {
	return &PricingService{
		log: logger.New("pricingService"),
	}
}

// BoardingPrice is ceil((end-start)/1 day) * dailyRate, with a default rate
// of 50 when the provider has none.
func (s *PricingService) BoardingPrice(start, end time.Time, dailyRate *decimal.Decimal) decimal.Decimal {
	rate := defaultDailyRate
	if dailyRate != nil {
		rate = *dailyRate
	}

	days := int64(math.Ceil(end.Sub(start).Hours() / 24))
	return decimal.NewFromInt(days).Mul(rate)
}

// WalkingPrice is (durationMinutes/60) * hourlyRate, with a default rate of
// 25 when the provider has none.
func (s *PricingService) WalkingPrice(durationMinutes int, hourlyRate *decimal.Decimal) decimal.Decimal {
	rate := defaultHourlyRate
	if hourlyRate != nil {
		rate = *hourlyRate
	}

	return decimal.NewFromInt(int64(durationMinutes)).Div(minutesPerHour).Mul(rate)
}
