// Package auth holds the identity-sync use case: materializing users from
// identity-provider profiles, whether they arrive through an interactive
// sync call or a webhook event. Both paths are idempotent against duplicate
// creation.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vinsa/company-registry/internal/domain"
	"github.com/vinsa/company-registry/internal/domain/entity"
	"github.com/vinsa/company-registry/internal/domain/repository"
	"github.com/vinsa/company-registry/internal/infrastructure/clerk"
)

// UseCase syncs identity-provider profiles into the users table.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase wires the use case with its persistence port.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// SyncUser creates the user row for a provider profile if it does not exist
// yet. A concurrent create from the other sync path loses the unique-index
// race gracefully: the existing row is fetched and returned instead.
func (uc *UseCase) SyncUser(ctx context.Context, p *clerk.Profile) (user *entity.User, created bool, err error) {
	existing, err := uc.users.GetByClerkID(ctx, p.ID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	now := time.Now().UTC()
	u := &entity.User{
		ID:        uuid.New().String(),
		ClerkID:   p.ID,
		Email:     p.Email,
		FullName:  p.FullName(),
		MobileNo:  optional(p.PhoneNumber),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			if winner, gerr := uc.users.GetByClerkID(ctx, p.ID); gerr == nil && winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, err
	}
	return u, true, nil
}

// UpdateFromProfile applies a provider-side profile change (user.updated
// webhook) to the stored row. An empty phone number clears the stored one.
func (uc *UseCase) UpdateFromProfile(ctx context.Context, p *clerk.Profile) (*entity.User, error) {
	fullName := p.FullName()
	mobile := p.PhoneNumber // empty string maps to NULL in the repository
	user, err := uc.users.UpdateByClerkID(ctx, p.ID, entity.UserUpdate{
		Email:    &p.Email,
		FullName: &fullName,
		MobileNo: &mobile,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
