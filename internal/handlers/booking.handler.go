package handlers

import (
	"pawsitter/internal/app"
	"pawsitter/internal/handlers/middleware"
	"pawsitter/internal/logger"

	bookingController "pawsitter/internal/controllers/bookings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BookingHandler struct {
	Handler
	bookingController bookingController.BookingControllerInterface
}

func NewBookingHandler(app app.App, router fiber.Router) *BookingHandler {
	log := logger.New("handlers").File("booking_handler")
	return &BookingHandler{
		bookingController: app.Controllers.Booking,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *BookingHandler) Register() {
	bookings := h.router.Group("/bookings", h.middleware.RequireAuth())

	bookings.Post("/", h.createBooking)
	bookings.Get("/", h.listBookings)
	bookings.Get("/:id", h.getBooking)
	bookings.Put("/:id/status", h.updateStatus)
	bookings.Post("/:id/review", h.addReview)
}

func (h *BookingHandler) createBooking(c *fiber.Ctx) error {
	log := h.log.Function("createBooking")

	caller := middleware.GetUser(c)

	var req bookingController.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	booking, err := h.bookingController.Create(c.UserContext(), caller.ID, req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) listBookings(c *fiber.Ctx) error {
	log := h.log.Function("listBookings")

	caller := middleware.GetUser(c)

	viewAs := bookingController.ViewAsOwner
	if c.Query("role") == "provider" {
		viewAs = bookingController.ViewAsProvider
	}

	bookings, err := h.bookingController.List(c.UserContext(), caller.ID, viewAs)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(bookings)
}

func (h *BookingHandler) getBooking(c *fiber.Ctx) error {
	log := h.log.Function("getBooking")

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	caller := middleware.GetUser(c)

	booking, err := h.bookingController.GetByID(c.UserContext(), caller.ID, bookingID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(booking)
}

func (h *BookingHandler) updateStatus(c *fiber.Ctx) error {
	log := h.log.Function("updateStatus")

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	caller := middleware.GetUser(c)

	var req bookingController.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	booking, err := h.bookingController.UpdateStatus(c.UserContext(), caller.ID, bookingID, req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(booking)
}

func (h *BookingHandler) addReview(c *fiber.Ctx) error {
	log := h.log.Function("addReview")

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	caller := middleware.GetUser(c)

	var req bookingController.AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	review, err := h.bookingController.AddReview(c.UserContext(), caller.ID, bookingID, req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
