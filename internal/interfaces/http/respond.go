package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinsa/company-registry/internal/application/dto"
)

// Response helpers: every body goes through the same {success, ...} envelope.

func ok(c *fiber.Ctx, env dto.Envelope) error {
	env.Success = true
	return c.JSON(env)
}

func created(c *fiber.Ctx, env dto.Envelope) error {
	env.Success = true
	return c.Status(fiber.StatusCreated).JSON(env)
}

func fail(c *fiber.Ctx, status int, message string, details interface{}) error {
	return c.Status(status).JSON(dto.Envelope{
		Success: false,
		Error:   message,
		Details: details,
	})
}
