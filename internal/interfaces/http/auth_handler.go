package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vinsa/company-registry/internal/application/auth"
	"github.com/vinsa/company-registry/internal/application/dto"
	"github.com/vinsa/company-registry/internal/application/usecase"
	"github.com/vinsa/company-registry/internal/domain"
)

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	sync  *auth.UseCase
	users *usecase.UserUseCase
}

func NewAuthHandler(sync *auth.UseCase, users *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{sync: sync, users: users}
}

// Me returns the stored user row together with the live provider profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profile := Profile(c)

	user, err := h.users.Profile(c.UserContext(), ClerkUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "User not found in database", nil)
		}
		return err
	}

	return ok(c, dto.Envelope{Data: fiber.Map{
		"user": dto.FromUser(user),
		"clerk_user": fiber.Map{
			"id":         profile.ID,
			"email":      profile.Email,
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
		},
	}})
}

// SyncUser materializes the authenticated caller in the users table. The
// call is idempotent: a second sync answers 200 instead of 201.
func (h *AuthHandler) SyncUser(c *fiber.Ctx) error {
	user, createdNow, err := h.sync.SyncUser(c.UserContext(), Profile(c))
	if err != nil {
		return err
	}

	env := dto.Envelope{Data: dto.FromUser(user)}
	if createdNow {
		env.Message = "User profile created successfully"
		return created(c, env)
	}
	env.Message = "User already exists"
	return ok(c, env)
}

// Status is a lightweight authenticated ping.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	profile := Profile(c)
	return ok(c, dto.Envelope{Data: fiber.Map{
		"authenticated": true,
		"user": fiber.Map{
			"id":    profile.ID,
			"email": profile.Email,
			"name":  profile.FullName(),
		},
	}})
}
