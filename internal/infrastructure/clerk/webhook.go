package clerk

import "encoding/json"

// Webhook event types this application handles.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// WebhookEvent is the envelope Clerk delivers through Svix.
type WebhookEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// WebhookUser is the user object inside user.* events. The shape matches the
// Backend API user, so it reuses the same mapping into Profile.
type WebhookUser struct {
	ID                    string         `json:"id"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	Deleted               bool           `json:"deleted"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	EmailAddresses        []emailAddress `json:"email_addresses"`
	PhoneNumbers          []phoneNumber  `json:"phone_numbers"`
}

// Profile maps the webhook user onto the common Profile shape.
func (u WebhookUser) Profile() *Profile {
	au := apiUser{
		ID:                    u.ID,
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		PrimaryEmailAddressID: u.PrimaryEmailAddressID,
		EmailAddresses:        u.EmailAddresses,
		PhoneNumbers:          u.PhoneNumbers,
	}
	return au.profile()
}
