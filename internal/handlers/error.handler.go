package handlers

import (
	"pawsitter/internal/apperrors"
	"pawsitter/internal/logger"

	"github.com/gofiber/fiber/v2"
)

// respondError maps error kinds to transport status codes. Conflicts map to
// 400 rather than 409; existing clients key off that status for duplicate
// email and duplicate review. Unknown errors become a generic 500; detail
// stays in the server log.
func respondError(c *fiber.Ctx, log logger.Logger, err error) error {
	status := fiber.StatusInternalServerError

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		status = fiber.StatusBadRequest
	case apperrors.KindUnauthorized:
		status = fiber.StatusUnauthorized
	case apperrors.KindForbidden:
		status = fiber.StatusForbidden
	case apperrors.KindNotFound:
		status = fiber.StatusNotFound
	case apperrors.KindConflict:
		status = fiber.StatusBadRequest
	default:
		log.Er("unexpected error", err, "path", c.Path())
	}

	return c.Status(status).JSON(fiber.Map{
		"error": apperrors.MessageOf(err),
	})
}
