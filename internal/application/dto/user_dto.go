package dto

import (
	"time"

	"github.com/vinsa/company-registry/internal/domain/entity"
)

// UpdateUserRequest partial profile update; every field optional.
type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	MobileNo *string `json:"mobile_no" validate:"omitempty,mobile"`
	Gender   *string `json:"gender" validate:"omitempty,oneof=male female other"`
}

// ToUpdate converts the request into the domain partial update.
func (r UpdateUserRequest) ToUpdate() entity.UserUpdate {
	return entity.UserUpdate{
		FullName: r.FullName,
		MobileNo: r.MobileNo,
		Gender:   r.Gender,
	}
}

// UserResponse user as returned to clients.
type UserResponse struct {
	ID        string    `json:"id"`
	ClerkID   string    `json:"clerk_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	MobileNo  *string   `json:"mobile_no"`
	Gender    *string   `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromUser maps the entity to its response shape.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		ClerkID:   u.ClerkID,
		Email:     u.Email,
		FullName:  u.FullName,
		MobileNo:  u.MobileNo,
		Gender:    u.Gender,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromUsers maps a page of users.
func FromUsers(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *FromUser(u))
	}
	return out
}
