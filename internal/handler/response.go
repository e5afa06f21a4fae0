package handler

import (
	"errors"

	"hr-portal-backend/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// domainStatus maps a domain error to its HTTP status. Anything outside the
// taxonomy is a storage/internal failure.
func domainStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrLeaveNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrFutureAttendance),
		errors.Is(err, domain.ErrAttendanceMarked),
		errors.Is(err, domain.ErrLeaveProcessed),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidLeaveRange),
		errors.Is(err, domain.ErrEmailTaken):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError renders a domain error as a stable message plus a
// machine-readable code so clients can branch on semantics.
func writeError(c *fiber.Ctx, err error) error {
	status := domainStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"code":  domain.ErrorCode(err),
	})
}
