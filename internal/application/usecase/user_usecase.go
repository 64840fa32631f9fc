package usecase

import (
	"context"

	"github.com/vinsa/company-registry/internal/application/dto"
	"github.com/vinsa/company-registry/internal/domain"
	"github.com/vinsa/company-registry/internal/domain/entity"
	"github.com/vinsa/company-registry/internal/domain/repository"
)

// UserUseCase profile reads and edits for synced users.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase wires the use case with its persistence port.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Profile fetches the caller's user row by Clerk id.
func (uc *UserUseCase) Profile(ctx context.Context, clerkID string) (*entity.User, error) {
	user, err := uc.users.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile partially updates the caller's user row. An empty payload
// never reaches the repository; the current row is returned as-is.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, clerkID string, in dto.UpdateUserRequest) (*entity.User, error) {
	upd := in.ToUpdate()
	if upd.Empty() {
		return uc.Profile(ctx, clerkID)
	}
	user, err := uc.users.UpdateByClerkID(ctx, clerkID, upd)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// GetByID fetches any user by internal id.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// List returns a page of users, newest first.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return uc.users.List(ctx, limit, offset)
}
