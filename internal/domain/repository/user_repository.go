package repository

import (
	"context"

	"github.com/vinsa/company-registry/internal/domain/entity"
)

// UserRepository is the persistence port for users. Lookups return (nil, nil)
// when no row matches; Create returns domain.ErrUserExists on a clerk_id
// collision so webhook and interactive sync stay idempotent.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByClerkID(ctx context.Context, clerkID string) (*entity.User, error)
	UpdateByClerkID(ctx context.Context, clerkID string, upd entity.UserUpdate) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
