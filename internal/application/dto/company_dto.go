package dto

import (
	"time"

	"github.com/vinsa/company-registry/internal/domain/entity"
)

// CreateCompanyRequest payload for registering a company. Everything except
// website is required. verification_status is deliberately absent: it is
// server-set to pending and callers cannot override it.
type CreateCompanyRequest struct {
	CompanyName        string `json:"company_name" validate:"required,min=2,max=200"`
	CompanyType        string `json:"company_type" validate:"required,oneof=private_limited public_limited partnership sole_proprietorship llp"`
	Industry           string `json:"industry" validate:"required,min=2,max=100"`
	EmployeeCount      string `json:"employee_count" validate:"required,oneof=1-10 11-50 51-200 201-500 500+"`
	Address            string `json:"address" validate:"required,min=10,max=500"`
	City               string `json:"city" validate:"required,min=2,max=100"`
	State              string `json:"state" validate:"required,min=2,max=100"`
	Pincode            string `json:"pincode" validate:"required,pincode"`
	CompanyDescription string `json:"company_description" validate:"required,min=50,max=1000"`
	Website            string `json:"website" validate:"omitempty,url"`
}

// UpdateCompanyRequest partial update; same constraints as create, all optional.
type UpdateCompanyRequest struct {
	CompanyName        *string `json:"company_name" validate:"omitempty,min=2,max=200"`
	CompanyType        *string `json:"company_type" validate:"omitempty,oneof=private_limited public_limited partnership sole_proprietorship llp"`
	Industry           *string `json:"industry" validate:"omitempty,min=2,max=100"`
	EmployeeCount      *string `json:"employee_count" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
	Address            *string `json:"address" validate:"omitempty,min=10,max=500"`
	City               *string `json:"city" validate:"omitempty,min=2,max=100"`
	State              *string `json:"state" validate:"omitempty,min=2,max=100"`
	Pincode            *string `json:"pincode" validate:"omitempty,pincode"`
	CompanyDescription *string `json:"company_description" validate:"omitempty,min=50,max=1000"`
	Website            *string `json:"website" validate:"omitempty,url"`
}

// ToUpdate converts the request into the domain partial update. Branding of
// CompanyName is the use case's job, not done here.
func (r UpdateCompanyRequest) ToUpdate() entity.CompanyUpdate {
	return entity.CompanyUpdate{
		CompanyName:        r.CompanyName,
		CompanyType:        r.CompanyType,
		Industry:           r.Industry,
		EmployeeCount:      r.EmployeeCount,
		Address:            r.Address,
		City:               r.City,
		State:              r.State,
		Pincode:            r.Pincode,
		CompanyDescription: r.CompanyDescription,
		Website:            r.Website,
	}
}

// UpdateVerificationStatusRequest payload for the verification endpoint.
type UpdateVerificationStatusRequest struct {
	VerificationStatus string  `json:"verification_status" validate:"required,oneof=pending verified rejected"`
	VerificationNotes  *string `json:"verification_notes" validate:"omitempty,max=500"`
}

// CompanyOwnerResponse owner summary joined into company reads.
type CompanyOwnerResponse struct {
	ID       string  `json:"id"`
	ClerkID  string  `json:"clerk_id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	MobileNo *string `json:"mobile_no"`
}

// CompanyResponse company as returned to clients.
type CompanyResponse struct {
	ID                 string                `json:"id"`
	OwnerID            string                `json:"owner_id"`
	CompanyName        string                `json:"company_name"`
	CompanyType        string                `json:"company_type"`
	Industry           string                `json:"industry"`
	EmployeeCount      string                `json:"employee_count"`
	Address            string                `json:"address"`
	City               string                `json:"city"`
	State              string                `json:"state"`
	Pincode            string                `json:"pincode"`
	CompanyDescription string                `json:"company_description"`
	Website            *string               `json:"website"`
	VerificationStatus string                `json:"verification_status"`
	VerificationNotes  *string               `json:"verification_notes"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
	Owner              *CompanyOwnerResponse `json:"owner,omitempty"`
}

// FromCompany maps the entity to its response shape.
func FromCompany(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	resp := &CompanyResponse{
		ID:                 c.ID,
		OwnerID:            c.OwnerID,
		CompanyName:        c.CompanyName,
		CompanyType:        c.CompanyType,
		Industry:           c.Industry,
		EmployeeCount:      c.EmployeeCount,
		Address:            c.Address,
		City:               c.City,
		State:              c.State,
		Pincode:            c.Pincode,
		CompanyDescription: c.CompanyDescription,
		Website:            c.Website,
		VerificationStatus: c.VerificationStatus,
		VerificationNotes:  c.VerificationNotes,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
	if c.Owner != nil {
		resp.Owner = &CompanyOwnerResponse{
			ID:       c.Owner.ID,
			ClerkID:  c.Owner.ClerkID,
			Email:    c.Owner.Email,
			FullName: c.Owner.FullName,
			MobileNo: c.Owner.MobileNo,
		}
	}
	return resp
}

// FromCompanies maps a page of companies.
func FromCompanies(companies []*entity.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, *FromCompany(c))
	}
	return out
}
