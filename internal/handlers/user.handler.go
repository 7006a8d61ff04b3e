package handlers

import (
	"pawsitter/internal/app"
	"pawsitter/internal/handlers/middleware"
	"pawsitter/internal/logger"

	userController "pawsitter/internal/controllers/users"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	Handler
	userController userController.UserControllerInterface
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	log := logger.New("handlers").File("user_handler")
	return &UserHandler{
		userController: app.Controllers.User,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserHandler) Register() {
	users := h.router.Group("/users", h.middleware.RequireAuth())

	users.Get("/:id", h.getUser)
	users.Put("/:id", h.updateUser)
	users.Get("/:id/pets", h.listPets)
	users.Post("/:id/pets", h.createPet)
}

func (h *UserHandler) getUser(c *fiber.Ctx) error {
	log := h.log.Function("getUser")

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user, err := h.userController.GetByID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(user)
}

func (h *UserHandler) updateUser(c *fiber.Ctx) error {
	log := h.log.Function("updateUser")

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	caller := middleware.GetUser(c)

	var req userController.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := h.userController.Update(c.UserContext(), caller.ID, targetID, req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(user)
}

func (h *UserHandler) listPets(c *fiber.Ctx) error {
	log := h.log.Function("listPets")

	ownerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	pets, err := h.userController.ListPets(c.UserContext(), ownerID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(pets)
}

func (h *UserHandler) createPet(c *fiber.Ctx) error {
	log := h.log.Function("createPet")

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	caller := middleware.GetUser(c)

	var req userController.CreatePetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	pet, err := h.userController.CreatePet(c.UserContext(), caller.ID, targetID, req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(pet)
}
