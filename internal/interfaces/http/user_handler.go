package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vinsa/company-registry/internal/application/dto"
	"github.com/vinsa/company-registry/internal/application/usecase"
	"github.com/vinsa/company-registry/internal/application/validate"
	"github.com/vinsa/company-registry/internal/domain"
)

// UserHandler serves the /api/users routes.
type UserHandler struct {
	users *usecase.UserUseCase
	val   *validate.Validator
}

func NewUserHandler(users *usecase.UserUseCase, val *validate.Validator) *UserHandler {
	return &UserHandler{users: users, val: val}
}

// GetProfile returns the caller's own user row.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.users.Profile(c.UserContext(), ClerkUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "User profile not found", nil)
		}
		return err
	}
	return ok(c, dto.Envelope{Data: dto.FromUser(user)})
}

// UpdateProfile partially updates the caller's own user row.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if verrs := h.val.Struct(req); verrs != nil {
		return verrs
	}

	user, err := h.users.UpdateProfile(c.UserContext(), ClerkUserID(c), req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "User profile not found", nil)
		}
		return err
	}
	return ok(c, dto.Envelope{
		Message: "Profile updated successfully",
		Data:    dto.FromUser(user),
	})
}

// GetByID returns any user by internal id. Admin route.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "User not found", nil)
		}
		return err
	}
	return ok(c, dto.Envelope{Data: dto.FromUser(user)})
}

// List returns a page of users, newest first. Admin route.
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	page.Clamp(50)

	users, err := h.users.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return err
	}
	return ok(c, dto.Envelope{
		Data:       dto.FromUsers(users),
		Pagination: &dto.Pagination{Limit: page.Limit, Offset: page.Offset, Total: len(users)},
	})
}
