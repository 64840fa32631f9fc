package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCompany(t *testing.T, ta *testApp) map[string]interface{} {
	t.Helper()
	ta.syncOwner(t)
	resp := ta.do(t, http.MethodPost, "/api/companies/", "tok-owner", validCompanyPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	return body["data"].(map[string]interface{})
}

func TestCreateCompany_Success(t *testing.T) {
	ta := newTestApp(t)
	ta.syncOwner(t)

	resp := ta.do(t, http.MethodPost, "/api/companies/", "tok-owner", validCompanyPayload())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Company registered successfully with VINSA branding!", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Acme Engineering - made by VINSA", data["company_name"])
	assert.Equal(t, "pending", data["verification_status"])
	require.Contains(t, data, "owner")
}

func TestCreateCompany_WithoutProfile(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/companies/", "tok-owner", validCompanyPayload())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "User profile not found. Please complete your profile first.", body["error"])
}

func TestCreateCompany_SecondCompanyRejected(t *testing.T) {
	ta := newTestApp(t)
	createCompany(t, ta)

	resp := ta.do(t, http.MethodPost, "/api/companies/", "tok-owner", validCompanyPayload())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "User already has a registered company", body["error"])
}

func TestCreateCompany_ValidationErrorsAllReported(t *testing.T) {
	ta := newTestApp(t)
	ta.syncOwner(t)

	payload := validCompanyPayload()
	delete(payload, "pincode")
	payload["company_description"] = "too short"

	resp := ta.do(t, http.MethodPost, "/api/companies/", "tok-owner", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Validation failed", body["error"])

	details, ok := body["details"].([]interface{})
	require.True(t, ok)
	require.Len(t, details, 2, "both violations must be reported in one response")

	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.(map[string]interface{})["field"].(string))
	}
	assert.ElementsMatch(t, []string{"pincode", "company_description"}, fields)
}

func TestMyCompany_NotRegistered(t *testing.T) {
	ta := newTestApp(t)
	ta.syncOwner(t)

	resp := ta.do(t, http.MethodGet, "/api/companies/my-company", "tok-owner", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Company not found", body["error"])
}

func TestMyCompany_AfterCreate(t *testing.T) {
	ta := newTestApp(t)
	created := createCompany(t, ta)

	resp := ta.do(t, http.MethodGet, "/api/companies/my-company", "tok-owner", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, created["id"], data["id"])
}

func TestUpdateMyCompany_CityOnlyKeepsBrandedName(t *testing.T) {
	ta := newTestApp(t)
	created := createCompany(t, ta)

	resp := ta.do(t, http.MethodPut, "/api/companies/my-company", "tok-owner",
		map[string]interface{}{"city": "Mumbai"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Company profile updated successfully (VINSA branding maintained)", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Mumbai", data["city"])
	assert.Equal(t, created["company_name"], data["company_name"])
}

func TestUpdateMyCompany_RenameRebranded(t *testing.T) {
	ta := newTestApp(t)
	createCompany(t, ta)

	resp := ta.do(t, http.MethodPut, "/api/companies/my-company", "tok-owner",
		map[string]interface{}{"company_name": "Acme Global"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Acme Global - made by VINSA", data["company_name"])
}

func TestGetCompanyByID(t *testing.T) {
	ta := newTestApp(t)
	created := createCompany(t, ta)

	resp := ta.do(t, http.MethodGet, "/api/companies/"+created["id"].(string), "tok-admin", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	missing := ta.do(t, http.MethodGet, "/api/companies/does-not-exist", "tok-admin", nil)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	body := decode(t, missing)
	assert.Equal(t, "Company not found", body["error"])
}

func TestListCompanies_FiltersAndPagination(t *testing.T) {
	ta := newTestApp(t)
	createCompany(t, ta)

	resp := ta.do(t, http.MethodGet, "/api/companies/?verification_status=pending&city=pun&limit=10", "tok-other", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	data := body["data"].([]interface{})
	assert.Len(t, data, 1)

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(10), pagination["limit"])
	assert.Equal(t, float64(1), pagination["total"])

	none := ta.do(t, http.MethodGet, "/api/companies/?verification_status=verified", "tok-other", nil)
	noneBody := decode(t, none)
	assert.Empty(t, noneBody["data"])
}

func TestSearchCompanies(t *testing.T) {
	ta := newTestApp(t)
	createCompany(t, ta)

	resp := ta.do(t, http.MethodGet, "/api/companies/search/acme", "tok-other", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	search := body["search"].(map[string]interface{})
	assert.Equal(t, "acme", search["term"])
	assert.Equal(t, float64(1), search["results"])
}

func TestSearchCompanies_MatchesAnySearchableField(t *testing.T) {
	ta := newTestApp(t)
	createCompany(t, ta)

	// Each term matches exactly one field of the seeded company: industry
	// "Manufacturing", city "Pune", state "Maharashtra". None appears in the
	// company name, so a hit proves the OR branch for that field.
	for _, term := range []string{"manufactur", "pune", "maharashtra"} {
		resp := ta.do(t, http.MethodGet, "/api/companies/search/"+term, "tok-other", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode(t, resp)
		search := body["search"].(map[string]interface{})
		assert.Equal(t, float64(1), search["results"], "term %q must match", term)
	}

	upper := ta.do(t, http.MethodGet, "/api/companies/search/MANUFACTURING", "tok-other", nil)
	upperBody := decode(t, upper)
	assert.Equal(t, float64(1), upperBody["search"].(map[string]interface{})["results"],
		"matching is case-insensitive")

	miss := ta.do(t, http.MethodGet, "/api/companies/search/warehouse", "tok-other", nil)
	missBody := decode(t, miss)
	assert.Equal(t, float64(0), missBody["search"].(map[string]interface{})["results"])
}

func TestListCompanies_NegativePagingClamped(t *testing.T) {
	ta := newTestApp(t)
	createCompany(t, ta)

	resp := ta.do(t, http.MethodGet, "/api/companies/?limit=-5&offset=-2", "tok-other", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(50), pagination["limit"])
	assert.Equal(t, float64(0), pagination["offset"])
	assert.Len(t, body["data"], 1)

	search := ta.do(t, http.MethodGet, "/api/companies/search/acme?limit=-1", "tok-other", nil)
	assert.Equal(t, http.StatusOK, search.StatusCode)
	searchBody := decode(t, search)
	assert.Equal(t, float64(20), searchBody["search"].(map[string]interface{})["limit"])
}

func TestSetVerificationStatus_AdminOnly(t *testing.T) {
	ta := newTestApp(t)
	created := createCompany(t, ta)
	path := "/api/companies/" + created["id"].(string) + "/verification"

	denied := ta.do(t, http.MethodPut, path, "tok-owner",
		map[string]interface{}{"verification_status": "verified"})
	assert.Equal(t, http.StatusForbidden, denied.StatusCode)

	resp := ta.do(t, http.MethodPut, path, "tok-admin",
		map[string]interface{}{"verification_status": "verified", "verification_notes": "Docs checked"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Company verification status updated to: verified", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "verified", data["verification_status"])
	assert.Equal(t, "Docs checked", data["verification_notes"])
}

func TestSetVerificationStatus_InvalidValue(t *testing.T) {
	ta := newTestApp(t)
	created := createCompany(t, ta)

	resp := ta.do(t, http.MethodPut, "/api/companies/"+created["id"].(string)+"/verification", "tok-admin",
		map[string]interface{}{"verification_status": "approved"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Validation failed", body["error"])
}
