package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vinsa/company-registry/internal/application/dto"
	"github.com/vinsa/company-registry/internal/domain"
	"github.com/vinsa/company-registry/internal/domain/entity"
	"github.com/vinsa/company-registry/internal/domain/repository"
)

// CompanyUseCase applies the company business rules: the branding invariant,
// one company per owner, and the server-set verification lifecycle.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
}

// NewCompanyUseCase wires the use case with its persistence ports.
func NewCompanyUseCase(companies repository.CompanyRepository, users repository.UserRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, users: users}
}

// Create registers a company for the caller. The stored name always passes
// through ApplyBranding and verification_status starts at pending no matter
// what the payload said. The pre-check gives a friendly conflict message;
// the owner_id unique constraint is what actually closes the race.
func (uc *CompanyUseCase) Create(ctx context.Context, clerkID string, in dto.CreateCompanyRequest) (*entity.Company, error) {
	user, err := uc.users.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	existing, err := uc.companies.GetByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCompanyExists
	}

	now := time.Now().UTC()
	var website *string
	if in.Website != "" {
		website = &in.Website
	}
	company := &entity.Company{
		ID:                 uuid.New().String(),
		OwnerID:            user.ID,
		CompanyName:        entity.ApplyBranding(in.CompanyName),
		CompanyType:        in.CompanyType,
		Industry:           in.Industry,
		EmployeeCount:      in.EmployeeCount,
		Address:            in.Address,
		City:               in.City,
		State:              in.State,
		Pincode:            in.Pincode,
		CompanyDescription: in.CompanyDescription,
		Website:            website,
		VerificationStatus: entity.VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	company.Owner = ownerSummary(user)
	return company, nil
}

// MyCompany fetches the caller's company.
func (uc *CompanyUseCase) MyCompany(ctx context.Context, clerkID string) (*entity.Company, error) {
	user, err := uc.users.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	company, err := uc.companies.GetByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

// UpdateMyCompany partially updates the caller's company. When the payload
// sets company_name the branding rule runs on the new value; otherwise the
// stored (already branded) name is untouched.
func (uc *CompanyUseCase) UpdateMyCompany(ctx context.Context, clerkID string, in dto.UpdateCompanyRequest) (*entity.Company, error) {
	user, err := uc.users.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	company, err := uc.companies.GetByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	upd := in.ToUpdate()
	if upd.Empty() {
		return company, nil
	}
	if upd.CompanyName != nil {
		branded := entity.ApplyBranding(*upd.CompanyName)
		upd.CompanyName = &branded
	}
	return uc.companies.Update(ctx, company.ID, upd)
}

// GetByID fetches any company by id.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

// List returns a filtered page of companies, newest first.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int, filter entity.CompanyFilter) ([]*entity.Company, error) {
	return uc.companies.List(ctx, limit, offset, filter)
}

// Search matches the term case-insensitively against company_name, industry,
// city or state.
func (uc *CompanyUseCase) Search(ctx context.Context, term string, limit int) ([]*entity.Company, error) {
	return uc.companies.Search(ctx, term, limit)
}

// SetVerificationStatus sets the review state. Notes are stored only when
// provided and non-empty; updated_at is always refreshed. The status is a
// flat enum, so any transition between the three values is accepted.
func (uc *CompanyUseCase) SetVerificationStatus(ctx context.Context, id string, in dto.UpdateVerificationStatusRequest) (*entity.Company, error) {
	var notes *string
	if in.VerificationNotes != nil && *in.VerificationNotes != "" {
		notes = in.VerificationNotes
	}
	company, err := uc.companies.SetVerificationStatus(ctx, id, in.VerificationStatus, notes)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

func ownerSummary(u *entity.User) *entity.CompanyOwner {
	return &entity.CompanyOwner{
		ID:       u.ID,
		ClerkID:  u.ClerkID,
		Email:    u.Email,
		FullName: u.FullName,
		MobileNo: u.MobileNo,
	}
}
