// Package clerk integrates the external identity provider: verifying bearer
// tokens, fetching user profiles over the Backend API, and decoding webhook
// event payloads. Everything the rest of the app needs is behind the
// ProfileFetcher and TokenVerifier interfaces so tests can inject fakes.
package clerk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Profile is the identity-provider view of a user, reduced to the fields
// this application syncs.
type Profile struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string // empty when the user has no phone number on file
}

// FullName joins first and last name, tolerating either being empty.
func (p Profile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// ProfileFetcher fetches a user profile from the identity provider.
type ProfileFetcher interface {
	GetUser(ctx context.Context, clerkID string) (*Profile, error)
}

var _ ProfileFetcher = (*Client)(nil)

// Client calls the Clerk Backend API over plain net/http.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds the Backend API client. baseURL is normally
// https://api.clerk.com/v1; tests point it at a local server.
func NewClient(secretKey, baseURL string) *Client {
	return &Client{
		secretKey:  secretKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type emailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type phoneNumber struct {
	PhoneNumber string `json:"phone_number"`
}

// apiUser mirrors the Backend API user object (snake_case JSON).
type apiUser struct {
	ID                    string         `json:"id"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	EmailAddresses        []emailAddress `json:"email_addresses"`
	PhoneNumbers          []phoneNumber  `json:"phone_numbers"`
}

// GetUser fetches one user by Clerk id.
func (c *Client) GetUser(ctx context.Context, clerkID string) (*Profile, error) {
	if c.secretKey == "" {
		return nil, fmt.Errorf("clerk: CLERK_SECRET_KEY not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+clerkID, nil)
	if err != nil {
		return nil, fmt.Errorf("clerk: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clerk: fetch user: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("clerk: read response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("clerk: user %s not found", clerkID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clerk: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var u apiUser
	if err := json.Unmarshal(rawBody, &u); err != nil {
		return nil, fmt.Errorf("clerk: decode user: %w", err)
	}
	return u.profile(), nil
}

func (u apiUser) profile() *Profile {
	p := &Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	// Prefer the primary email address; fall back to the first on file.
	for _, e := range u.EmailAddresses {
		if e.ID == u.PrimaryEmailAddressID {
			p.Email = e.EmailAddress
			break
		}
	}
	if p.Email == "" && len(u.EmailAddresses) > 0 {
		p.Email = u.EmailAddresses[0].EmailAddress
	}
	if len(u.PhoneNumbers) > 0 {
		p.PhoneNumber = u.PhoneNumbers[0].PhoneNumber
	}
	return p
}
