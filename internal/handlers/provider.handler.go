package handlers

import (
	"pawsitter/internal/app"
	"pawsitter/internal/handlers/middleware"
	"pawsitter/internal/logger"

	providerController "pawsitter/internal/controllers/providers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProviderHandler struct {
	Handler
	providerController providerController.ProviderControllerInterface
}

func NewProviderHandler(app app.App, router fiber.Router) *ProviderHandler {
	log := logger.New("handlers").File("provider_handler")
	return &ProviderHandler{
		providerController: app.Controllers.Provider,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ProviderHandler) Register() {
	providers := h.router.Group("/providers")

	// Public endpoints; /search must register ahead of /:id
	providers.Get("/", h.listProviders)
	providers.Get("/search", h.searchProviders)
	providers.Get("/:id", h.getProvider)
	providers.Get("/:id/reviews", h.listReviews)

	// Self-service profile upsert
	providers.Put("/:id", h.middleware.RequireAuth(), h.upsertProfile)
}

func (h *ProviderHandler) listProviders(c *fiber.Ctx) error {
	log := h.log.Function("listProviders")

	providers, err := h.providerController.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(providers)
}

func (h *ProviderHandler) searchProviders(c *fiber.Ctx) error {
	log := h.log.Function("searchProviders")

	query := providerController.SearchQuery{
		Location: c.Query("location"),
		Service:  c.Query("service"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			query.MinPrice = &price
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			query.MaxPrice = &price
		}
	}

	providers, err := h.providerController.Search(c.UserContext(), query)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(providers)
}

func (h *ProviderHandler) getProvider(c *fiber.Ctx) error {
	log := h.log.Function("getProvider")

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	provider, err := h.providerController.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(provider)
}

func (h *ProviderHandler) listReviews(c *fiber.Ctx) error {
	log := h.log.Function("listReviews")

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	reviews, err := h.providerController.ListReviews(c.UserContext(), userID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(reviews)
}

func (h *ProviderHandler) upsertProfile(c *fiber.Ctx) error {
	log := h.log.Function("upsertProfile")

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	caller := middleware.GetUser(c)

	var req providerController.UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	provider, err := h.providerController.UpsertProfile(c.UserContext(), caller.ID, targetID, req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(provider)
}
