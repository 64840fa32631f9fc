package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these onto HTTP
// statuses; repositories translate driver errors into them.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUserNotFound    = errors.New("user profile not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrUserExists      = errors.New("user already exists")
	ErrCompanyExists   = errors.New("user already has a registered company")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("access denied")
)
