package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/vinsa/company-registry/internal/application/auth"
	"github.com/vinsa/company-registry/internal/application/usecase"
	"github.com/vinsa/company-registry/internal/application/validate"
	"github.com/vinsa/company-registry/internal/domain"
	"github.com/vinsa/company-registry/internal/domain/entity"
	"github.com/vinsa/company-registry/internal/infrastructure/clerk"
	apphttp "github.com/vinsa/company-registry/internal/interfaces/http"
	"github.com/vinsa/company-registry/pkg/config"
	"github.com/vinsa/company-registry/pkg/logger"
)

// Bearer tokens the fake verifier accepts, mapped to Clerk user ids.
var testTokens = map[string]string{
	"tok-owner": "user_owner",
	"tok-other": "user_other",
	"tok-admin": "user_admin",
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (string, error) {
	if id, ok := testTokens[token]; ok {
		return id, nil
	}
	return "", errors.New("unknown token")
}

type fakeProfiles struct{}

func (fakeProfiles) GetUser(_ context.Context, clerkID string) (*clerk.Profile, error) {
	for _, id := range testTokens {
		if id == clerkID {
			return &clerk.Profile{
				ID:          clerkID,
				FirstName:   "Test",
				LastName:    strings.TrimPrefix(clerkID, "user_"),
				Email:       clerkID + "@example.com",
				PhoneNumber: "+919876543210",
			}, nil
		}
	}
	return nil, errors.New("no such user")
}

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.ClerkID == user.ClerkID {
			return domain.ErrUserExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByClerkID(_ context.Context, clerkID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ClerkID == clerkID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdateByClerkID(_ context.Context, clerkID string, upd entity.UserUpdate) (*entity.User, error) {
	for _, u := range r.users {
		if u.ClerkID != clerkID {
			continue
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.FullName != nil {
			u.FullName = *upd.FullName
		}
		if upd.MobileNo != nil {
			if *upd.MobileNo == "" {
				u.MobileNo = nil
			} else {
				u.MobileNo = upd.MobileNo
			}
		}
		if upd.Gender != nil {
			u.Gender = upd.Gender
		}
		u.UpdatedAt = time.Now().UTC()
		return u, nil
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *memCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	for _, c := range r.companies {
		if c.OwnerID == company.OwnerID {
			return domain.ErrCompanyExists
		}
	}
	r.companies[company.ID] = company
	return nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *memCompanyRepo) GetByOwnerID(_ context.Context, ownerID string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) Update(_ context.Context, id string, upd entity.CompanyUpdate) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	if upd.CompanyName != nil {
		c.CompanyName = *upd.CompanyName
	}
	if upd.CompanyType != nil {
		c.CompanyType = *upd.CompanyType
	}
	if upd.Industry != nil {
		c.Industry = *upd.Industry
	}
	if upd.EmployeeCount != nil {
		c.EmployeeCount = *upd.EmployeeCount
	}
	if upd.Address != nil {
		c.Address = *upd.Address
	}
	if upd.City != nil {
		c.City = *upd.City
	}
	if upd.State != nil {
		c.State = *upd.State
	}
	if upd.Pincode != nil {
		c.Pincode = *upd.Pincode
	}
	if upd.CompanyDescription != nil {
		c.CompanyDescription = *upd.CompanyDescription
	}
	if upd.Website != nil {
		if *upd.Website == "" {
			c.Website = nil
		} else {
			c.Website = upd.Website
		}
	}
	c.UpdatedAt = time.Now().UTC()
	return c, nil
}

func (r *memCompanyRepo) List(_ context.Context, limit, offset int, filter entity.CompanyFilter) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		if filter.VerificationStatus != "" && c.VerificationStatus != filter.VerificationStatus {
			continue
		}
		if filter.CompanyType != "" && c.CompanyType != filter.CompanyType {
			continue
		}
		if filter.City != "" && !containsFold(c.City, filter.City) {
			continue
		}
		if filter.State != "" && !containsFold(c.State, filter.State) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memCompanyRepo) Search(_ context.Context, term string, limit int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0)
	for _, c := range r.companies {
		if containsFold(c.CompanyName, term) || containsFold(c.Industry, term) ||
			containsFold(c.City, term) || containsFold(c.State, term) {
			out = append(out, c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memCompanyRepo) SetVerificationStatus(_ context.Context, id, status string, notes *string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	c.VerificationStatus = status
	if notes != nil {
		c.VerificationNotes = notes
	}
	c.UpdatedAt = time.Now().UTC()
	return c, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type testApp struct {
	app *fiber.App
}

// newTestApp wires the full route stack against in-memory repositories and
// fake identity services. Webhook secret stays empty here; webhook tests
// build their own handler.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	users := &memUserRepo{users: map[string]*entity.User{}}
	companies := &memCompanyRepo{companies: map[string]*entity.Company{}}

	syncUC := auth.NewUseCase(users)
	userUC := usecase.NewUserUseCase(users)
	companyUC := usecase.NewCompanyUseCase(companies, users)
	val := validate.New()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.NewErrorHandler(log, false),
	})
	apphttp.Register(app, apphttp.RouterDeps{
		Auth:       apphttp.NewAuthHandler(syncUC, userUC),
		Users:      apphttp.NewUserHandler(userUC, val),
		Companies:  apphttp.NewCompanyHandler(companyUC, val),
		Webhooks:   apphttp.NewWebhookHandler(syncUC, "", false, log),
		Verifier:   fakeVerifier{},
		Profiles:   fakeProfiles{},
		Clerk:      config.ClerkConfig{AdminIDs: []string{"user_admin"}},
		Production: false,
	})
	return &testApp{app: app}
}

func (ta *testApp) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// syncOwner registers the tok-owner user through the sync endpoint.
func (ta *testApp) syncOwner(t *testing.T) {
	t.Helper()
	resp := ta.do(t, http.MethodPost, "/api/auth/sync-user", "tok-owner", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func validCompanyPayload() map[string]interface{} {
	return map[string]interface{}{
		"company_name":        "Acme Engineering",
		"company_type":        "private_limited",
		"industry":            "Manufacturing",
		"employee_count":      "11-50",
		"address":             "42 Industrial Estate, Phase II",
		"city":                "Pune",
		"state":               "Maharashtra",
		"pincode":             "411001",
		"company_description": "Precision components for industrial automation lines, serving OEM customers across western India.",
		"website":             "https://acme.example.com",
	}
}
