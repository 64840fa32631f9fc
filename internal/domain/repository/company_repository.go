package repository

import (
	"context"

	"github.com/vinsa/company-registry/internal/domain/entity"
)

// CompanyRepository is the persistence port for companies. Lookups return
// (nil, nil) when no row matches. Create returns domain.ErrCompanyExists on
// an owner_id collision, which closes the create race the route-level
// pre-check cannot.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*entity.Company, error)
	Update(ctx context.Context, id string, upd entity.CompanyUpdate) (*entity.Company, error)
	List(ctx context.Context, limit, offset int, filter entity.CompanyFilter) ([]*entity.Company, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.Company, error)
	SetVerificationStatus(ctx context.Context, id, status string, notes *string) (*entity.Company, error)
}
