package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/vinsa/company-registry/internal/application/dto"
	"github.com/vinsa/company-registry/internal/application/usecase"
	"github.com/vinsa/company-registry/internal/application/validate"
	"github.com/vinsa/company-registry/internal/domain"
	"github.com/vinsa/company-registry/internal/domain/entity"
)

// CompanyHandler serves the /api/companies routes.
type CompanyHandler struct {
	companies *usecase.CompanyUseCase
	val       *validate.Validator
}

func NewCompanyHandler(companies *usecase.CompanyUseCase, val *validate.Validator) *CompanyHandler {
	return &CompanyHandler{companies: companies, val: val}
}

// Create registers the caller's company.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if verrs := h.val.Struct(req); verrs != nil {
		return verrs
	}

	company, err := h.companies.Create(c.UserContext(), ClerkUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, fiber.StatusNotFound, "User profile not found. Please complete your profile first.", nil)
		case errors.Is(err, domain.ErrCompanyExists):
			return fail(c, fiber.StatusBadRequest, "User already has a registered company", nil)
		}
		return err
	}

	return created(c, dto.Envelope{
		Message: "Company registered successfully with VINSA branding!",
		Data:    dto.FromCompany(company),
	})
}

// MyCompany returns the caller's company.
func (h *CompanyHandler) MyCompany(c *fiber.Ctx) error {
	company, err := h.companies.MyCompany(c.UserContext(), ClerkUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, fiber.StatusNotFound, "User profile not found", nil)
		case errors.Is(err, domain.ErrCompanyNotFound):
			return fail(c, fiber.StatusNotFound, "Company not found", nil)
		}
		return err
	}
	return ok(c, dto.Envelope{Data: dto.FromCompany(company)})
}

// UpdateMyCompany partially updates the caller's company.
func (h *CompanyHandler) UpdateMyCompany(c *fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if verrs := h.val.Struct(req); verrs != nil {
		return verrs
	}

	company, err := h.companies.UpdateMyCompany(c.UserContext(), ClerkUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, fiber.StatusNotFound, "User profile not found", nil)
		case errors.Is(err, domain.ErrCompanyNotFound):
			return fail(c, fiber.StatusNotFound, "Company not found", nil)
		}
		return err
	}
	if company == nil {
		return fail(c, fiber.StatusNotFound, "Company not found", nil)
	}
	return ok(c, dto.Envelope{
		Message: "Company profile updated successfully (VINSA branding maintained)",
		Data:    dto.FromCompany(company),
	})
}

// GetByID returns any company by id.
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	company, err := h.companies.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return fail(c, fiber.StatusNotFound, "Company not found", nil)
		}
		return err
	}
	return ok(c, dto.Envelope{Data: dto.FromCompany(company)})
}

// List returns a filtered page of companies, newest first.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	page.Clamp(50)
	filter := entity.CompanyFilter{
		VerificationStatus: c.Query("verification_status"),
		CompanyType:        c.Query("company_type"),
		City:               c.Query("city"),
		State:              c.Query("state"),
	}

	companies, err := h.companies.List(c.UserContext(), page.Limit, page.Offset, filter)
	if err != nil {
		return err
	}
	return ok(c, dto.Envelope{
		Data:       dto.FromCompanies(companies),
		Pagination: &dto.Pagination{Limit: page.Limit, Offset: page.Offset, Total: len(companies)},
		Filters: fiber.Map{
			"verification_status": filter.VerificationStatus,
			"company_type":        filter.CompanyType,
			"city":                filter.City,
			"state":               filter.State,
		},
	})
}

// Search matches a term against company name, industry, city and state.
func (h *CompanyHandler) Search(c *fiber.Ctx) error {
	term := c.Params("term")
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0)}
	page.Clamp(20)

	companies, err := h.companies.Search(c.UserContext(), term, page.Limit)
	if err != nil {
		return err
	}
	return ok(c, dto.Envelope{
		Data:   dto.FromCompanies(companies),
		Search: &dto.SearchMeta{Term: term, Results: len(companies), Limit: page.Limit},
	})
}

// SetVerificationStatus moves a company through the review lifecycle.
// Admin route.
func (h *CompanyHandler) SetVerificationStatus(c *fiber.Ctx) error {
	var req dto.UpdateVerificationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if verrs := h.val.Struct(req); verrs != nil {
		return verrs
	}

	company, err := h.companies.SetVerificationStatus(c.UserContext(), c.Params("id"), req)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return fail(c, fiber.StatusNotFound, "Company not found", nil)
		}
		return err
	}
	return ok(c, dto.Envelope{
		Message: fmt.Sprintf("Company verification status updated to: %s", req.VerificationStatus),
		Data:    dto.FromCompany(company),
	})
}
