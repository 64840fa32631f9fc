package entity

import "time"

// Valid values for User.Gender.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User represents a registered user, synced from the identity provider.
// Exactly one row exists per ClerkID (unique constraint in the datastore).
type User struct {
	ID        string
	ClerkID   string
	Email     string
	FullName  string
	MobileNo  *string // nil = not provided
	Gender    *string // male, female, other; nil = not provided
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdate carries the fields a partial user update may set.
// Pointer fields: nil means "leave untouched".
type UserUpdate struct {
	Email    *string
	FullName *string
	MobileNo *string
	Gender   *string
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.FullName == nil && u.MobileNo == nil && u.Gender == nil
}
