package bookingController

import (
	"context"
	"errors"
	"pawsitter/internal/apperrors"
	"pawsitter/internal/logger"
	"pawsitter/internal/models"
	"pawsitter/internal/repositories"
	"pawsitter/internal/services"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingController struct {
	bookingRepo        repositories.BookingRepository
	petRepo            repositories.PetRepository
	providerRepo       repositories.ProviderRepository
	reviewRepo         repositories.ReviewRepository
	pricingService     *services.PricingService
	transactionService *services.TransactionService
	log                logger.Logger
}

// ViewAs selects which side of a booking the caller is listing.
type ViewAs string

const (
	ViewAsOwner    ViewAs = "owner"
	ViewAsProvider ViewAs = "provider"
)

type CreateBookingRequest struct {
	ProviderID  uuid.UUID          `json:"providerId"`
	PetID       uuid.UUID          `json:"petId"`
	ServiceType models.ServiceType `json:"serviceType"`
	StartDate   *string            `json:"startDate,omitempty"`
	EndDate     *string            `json:"endDate,omitempty"`
	WalkDate    *string            `json:"walkDate,omitempty"`
	WalkTime    *string            `json:"walkTime,omitempty"`
	Duration    *int               `json:"duration,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

type AddReviewRequest struct {
	Rating int     `json:"rating"`
	Text   *string `json:"text,omitempty"`
}

type BookingControllerInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateBookingRequest) (*models.BookingView, error)
	List(ctx context.Context, callerID uuid.UUID, viewAs ViewAs) ([]models.BookingView, error)
	GetByID(ctx context.Context, callerID, bookingID uuid.UUID) (*models.BookingView, error)
	UpdateStatus(ctx context.Context, callerID, bookingID uuid.UUID, req UpdateStatusRequest) (*models.BookingView, error)
	AddReview(ctx context.Context, callerID, bookingID uuid.UUID, req AddReviewRequest) (*models.Review, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
) BookingControllerInterface {
	return &BookingController{
		bookingRepo:        repos.Booking,
		petRepo:            repos.Pet,
		providerRepo:       repos.Provider,
		reviewRepo:         repos.Review,
		pricingService:     services.Pricing,
		transactionService: services.Transaction,
		log:                logger.New("bookingController"),
	}
}

func (c *BookingController) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	req CreateBookingRequest,
) (*models.BookingView, error) {
	log := c.log.Function("Create")

	if !models.ValidServiceType(req.ServiceType) {
		return nil, apperrors.Validation("Invalid service type")
	}

	// A bad pet or provider on create is a bad request, not a missing
	// resource; clients key off the 400.
	if _, err := c.petRepo.GetOwnedByID(ctx, req.PetID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("Pet not found or not yours")
		}
		return nil, err
	}

	provider, err := c.providerRepo.GetByUserID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("Provider not found")
		}
		return nil, err
	}

	booking := &models.Booking{
		OwnerID:     ownerID,
		ProviderID:  req.ProviderID,
		PetID:       req.PetID,
		ServiceType: req.ServiceType,
		Status:      models.StatusPending,
		WalkTime:    req.WalkTime,
		Duration:    req.Duration,
		Notes:       req.Notes,
	}

	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, apperrors.Validation("Invalid startDate")
		}
		booking.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, apperrors.Validation("Invalid endDate")
		}
		booking.EndDate = &end
	}
	if req.WalkDate != nil {
		walkDate, err := parseDate(*req.WalkDate)
		if err != nil {
			return nil, apperrors.Validation("Invalid walkDate")
		}
		booking.WalkDate = &walkDate
	}

	booking.TotalPrice = c.price(booking, provider)

	if err := c.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	log.Info("booking created",
		"bookingID", booking.ID,
		"serviceType", booking.ServiceType,
		"totalPrice", booking.TotalPrice,
	)

	view := booking.ToView()
	return &view, nil
}

// price computes the booking total. A booking missing its service field set
// keeps a zero price; an unvalidated boarding range may go negative.
func (c *BookingController) price(booking *models.Booking, provider *models.ProviderProfile) decimal.Decimal {
	switch {
	case booking.ServiceType == models.ServiceBoarding &&
		booking.StartDate != nil && booking.EndDate != nil:
		return c.pricingService.BoardingPrice(*booking.StartDate, *booking.EndDate, provider.DailyRate)
	case booking.ServiceType == models.ServiceWalking && booking.Duration != nil:
		return c.pricingService.WalkingPrice(*booking.Duration, provider.HourlyRate)
	}
	return decimal.Zero
}

func (c *BookingController) List(
	ctx context.Context,
	callerID uuid.UUID,
	viewAs ViewAs,
) ([]models.BookingView, error) {
	var bookings []models.Booking
	var err error

	if viewAs == ViewAsProvider {
		bookings, err = c.bookingRepo.ListByProvider(ctx, callerID)
	} else {
		bookings, err = c.bookingRepo.ListByOwner(ctx, callerID)
	}
	if err != nil {
		return nil, err
	}

	views := make([]models.BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, bookings[i].ToView())
	}

	return views, nil
}

func (c *BookingController) GetByID(
	ctx context.Context,
	callerID, bookingID uuid.UUID,
) (*models.BookingView, error) {
	booking, err := c.getVisibleBooking(ctx, callerID, bookingID)
	if err != nil {
		return nil, err
	}

	view := booking.ToView()
	return &view, nil
}

func (c *BookingController) UpdateStatus(
	ctx context.Context,
	callerID, bookingID uuid.UUID,
	req UpdateStatusRequest,
) (*models.BookingView, error) {
	log := c.log.Function("UpdateStatus")

	if !models.ValidStatusUpdate(req.Status) {
		return nil, apperrors.Validation("Invalid status")
	}

	booking, err := c.getVisibleBooking(ctx, callerID, bookingID)
	if err != nil {
		return nil, err
	}

	// Only the provider may confirm; either party may cancel or complete.
	// There is deliberately no transition table: any allowed status value
	// overwrites any other.
	if req.Status == models.StatusConfirmed && booking.ProviderID != callerID {
		return nil, apperrors.Forbidden("Only provider can confirm")
	}

	if err := c.bookingRepo.UpdateStatus(ctx, bookingID, req.Status); err != nil {
		return nil, err
	}

	booking.Status = req.Status

	log.Info("booking status updated",
		"bookingID", bookingID, "status", req.Status, "by", callerID)

	view := booking.ToView()
	return &view, nil
}

func (c *BookingController) AddReview(
	ctx context.Context,
	callerID, bookingID uuid.UUID,
	req AddReviewRequest,
) (*models.Review, error) {
	log := c.log.Function("AddReview")

	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.Validation("Rating must be 1-5")
	}

	booking, err := c.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Completed booking not found")
		}
		return nil, err
	}

	if booking.OwnerID != callerID || booking.Status != models.StatusCompleted {
		return nil, apperrors.NotFound("Completed booking not found")
	}

	review := &models.Review{
		BookingID: bookingID,
		AuthorID:  callerID,
		Rating:    req.Rating,
		Text:      req.Text,
	}

	// The already-reviewed check and the insert share one transaction; the
	// unique index on booking_id is the backstop.
	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		exists, err := c.reviewRepo.ExistsForBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.Conflict("Already reviewed")
		}

		return c.reviewRepo.Create(ctx, tx, review)
	})
	if err != nil {
		return nil, err
	}

	log.Info("review created", "reviewID", review.ID, "bookingID", bookingID)
	return review, nil
}

// getVisibleBooking loads a booking only if the caller is the owner or
// provider on it; anything else is indistinguishable from a missing booking.
func (c *BookingController) getVisibleBooking(
	ctx context.Context,
	callerID, bookingID uuid.UUID,
) (*models.Booking, error) {
	booking, err := c.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Booking not found")
		}
		return nil, err
	}

	if !booking.IsParty(callerID) {
		return nil, apperrors.NotFound("Booking not found")
	}

	return booking, nil
}

// parseDate accepts RFC3339 timestamps or bare dates like 2026-02-10.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
