package entity

import (
	"strings"
	"time"
)

// Valid values for Company.CompanyType.
const (
	TypePrivateLimited     = "private_limited"
	TypePublicLimited      = "public_limited"
	TypePartnership        = "partnership"
	TypeSoleProprietorship = "sole_proprietorship"
	TypeLLP                = "llp"
)

// Valid values for Company.VerificationStatus. The status is a flat enum:
// any value may be set from any other via the verification endpoint.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

const (
	brandMark   = "made by VINSA"
	brandSuffix = " - made by VINSA"
)

// ApplyBranding enforces the VINSA suffix on a company name. Idempotent: a
// name that already contains the literal mark anywhere is returned verbatim.
// Every write path that touches CompanyName must go through this function.
func ApplyBranding(name string) string {
	if strings.Contains(name, brandMark) {
		return name
	}
	return name + brandSuffix
}

// CompanyOwner is the owner summary joined into company reads.
type CompanyOwner struct {
	ID       string
	ClerkID  string
	Email    string
	FullName string
	MobileNo *string
}

// Company represents a registered company profile. A user owns at most one
// company (unique constraint on OwnerID in the datastore).
type Company struct {
	ID                 string
	OwnerID            string
	CompanyName        string // always branded, see ApplyBranding
	CompanyType        string
	Industry           string
	EmployeeCount      string // bucket: 1-10, 11-50, 51-200, 201-500, 500+
	Address            string
	City               string
	State              string
	Pincode            string
	CompanyDescription string
	Website            *string
	VerificationStatus string // pending on creation, server-set
	VerificationNotes  *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Owner *CompanyOwner // populated by joined reads, not persisted here
}

// CompanyUpdate carries the fields a partial company update may set.
// Pointer fields: nil means "leave untouched". CompanyName must already be
// branded by the caller (the use case applies ApplyBranding before persisting).
type CompanyUpdate struct {
	CompanyName        *string
	CompanyType        *string
	Industry           *string
	EmployeeCount      *string
	Address            *string
	City               *string
	State              *string
	Pincode            *string
	CompanyDescription *string
	Website            *string
}

// Empty reports whether the update would change nothing.
func (u CompanyUpdate) Empty() bool {
	return u.CompanyName == nil && u.CompanyType == nil && u.Industry == nil &&
		u.EmployeeCount == nil && u.Address == nil && u.City == nil &&
		u.State == nil && u.Pincode == nil && u.CompanyDescription == nil &&
		u.Website == nil
}

// CompanyFilter narrows company listings. Status and Type match exactly;
// City and State match as case-insensitive substrings.
type CompanyFilter struct {
	VerificationStatus string
	CompanyType        string
	City               string
	State              string
}
