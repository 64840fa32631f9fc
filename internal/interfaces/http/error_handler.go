package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vinsa/company-registry/internal/application/validate"
	"github.com/vinsa/company-registry/internal/domain"
	"github.com/vinsa/company-registry/pkg/logger"
)

// NewErrorHandler builds the app-wide fiber error handler. Anything a
// handler returns as a plain error lands here and is translated to an
// envelope with the right status code. In production the original
// message of a 5xx is replaced so internals never leak to clients.
func NewErrorHandler(log *logger.Logger, production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := err.Error()
		var details interface{}

		var verrs validate.Errors
		var fe *fiber.Error
		switch {
		case errors.As(err, &verrs):
			status = fiber.StatusBadRequest
			message = "Validation failed"
			details = verrs
		case errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrCompanyNotFound),
			errors.Is(err, domain.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrUserExists),
			errors.Is(err, domain.ErrCompanyExists):
			status = fiber.StatusBadRequest
		case errors.Is(err, domain.ErrUnauthorized):
			status = fiber.StatusUnauthorized
		case errors.Is(err, domain.ErrForbidden):
			status = fiber.StatusForbidden
		case errors.As(err, &fe):
			status = fe.Code
			message = fe.Message
		}

		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("path", c.OriginalURL()).
				Str("method", c.Method()).
				Msg("unhandled error")
			if production {
				message = "Something went wrong"
				details = nil
			}
		}

		body := fiber.Map{
			"success":   false,
			"error":     message,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"path":      c.OriginalURL(),
			"method":    c.Method(),
		}
		if details != nil {
			body["details"] = details
		}
		return c.Status(status).JSON(body)
	}
}

// NotFoundHandler answers any route no handler claimed.
func NotFoundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":   false,
			"error":     "Route not found",
			"message":   "Cannot " + c.Method() + " " + c.OriginalURL(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
