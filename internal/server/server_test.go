package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleet-admin/internal/config"
	"fleet-admin/internal/database"
	"fleet-admin/internal/export"
	"fleet-admin/internal/models"
	"fleet-admin/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	db       *database.DB
	cfg      *config.Config
	server   *Server
	customer *models.Customer
	other    *models.Customer
	root     *models.Account
	child    *models.Account
	foreign  *models.Account
	user     *models.User
	token    string
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.cfg = &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", Environment: "testing"},
		JWT: config.JWTConfig{
			PrivateKey:          privateKey,
			PublicKey:           publicKey,
			Issuer:              "fleet-admin",
			AccessTokenDuration: time.Hour,
		},
		Security:   config.SecurityConfig{RateLimitPerSecond: 100, ExportRateLimitPerSecond: 100},
		Pagination: config.PaginationConfig{DefaultPerPage: 20, MaxPerPage: 100},
		Export:     config.ExportConfig{MaxRows: 100, Location: time.UTC},
	}

	reg := prometheus.NewRegistry()
	s.server = New(s.cfg, s.db, Options{Registerer: reg, Gatherer: reg})

	s.customer = database.CreateTestCustomer(s.T(), s.db, "Harbor Logistics")
	s.other = database.CreateTestCustomer(s.T(), s.db, "Other Fleet")
	s.root = database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, "Main Depot", nil)
	s.child = database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, "North Yard", &s.root.AccountID)
	s.foreign = database.CreateTestAccount(s.T(), s.db, s.other.CustomerID, "Elsewhere", nil)
	s.user = database.CreateTestUser(s.T(), s.db, s.customer.CustomerID, "dispatch@harbor.test", s.root.AccountID, s.child.AccountID)

	token, _, err := services.NewTokenService(&s.cfg.JWT).GenerateAccessToken(s.user)
	s.Require().NoError(err)
	s.token = token
}

func (s *ServerTestSuite) do(path string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do("/health", false)
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *ServerTestSuite) TestAPIRequiresToken() {
	rec := s.do("/api/v1/customers", false)
	s.Equal(http.StatusUnauthorized, rec.Code)

	body := s.decode(rec)
	errBody := body["error"].(map[string]interface{})
	s.Equal("AUTH_001", errBody["code"])
	s.Equal(rec.Header().Get("X-Trace-ID"), errBody["trace_id"])
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do("/nope", false)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_004")
}

func (s *ServerTestSuite) TestListOwnAccounts() {
	rec := s.do("/api/v1/users/me/accounts?account_id=all", true)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	body := s.decode(rec)
	s.Len(body["data"], 2)
	meta := body["meta"].(map[string]interface{})
	s.Equal(float64(2), meta["total"])
	s.Equal(float64(1), meta["totalPages"])
}

func (s *ServerTestSuite) TestListOwnAccounts_UnassignedIDIsEmpty() {
	rec := s.do(fmt.Sprintf("/api/v1/users/me/accounts?account_id=%d", s.foreign.AccountID), true)
	s.Equal(http.StatusOK, rec.Code)

	body := s.decode(rec)
	s.Empty(body["data"])
	s.Equal(float64(0), body["meta"].(map[string]interface{})["total"])
}

func (s *ServerTestSuite) TestListOwnAccounts_InvalidScope() {
	rec := s.do("/api/v1/users/me/accounts?account_id=abc", true)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "SCOPE_001")

	rec = s.do("/api/v1/users/me/accounts?account_id=%3C1%3E", true)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *ServerTestSuite) TestListOwnAccounts_UnusableTokensAreDropped() {
	for _, suffix := range []string{",abc", ",-3", ",0"} {
		rec := s.do(fmt.Sprintf("/api/v1/users/me/accounts?account_id=%d%s", s.root.AccountID, suffix), true)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		body := s.decode(rec)
		data := body["data"].([]interface{})
		s.Require().Len(data, 1, suffix)
		s.Equal(float64(s.root.AccountID), data[0].(map[string]interface{})["account_id"])
	}
}

func (s *ServerTestSuite) TestMalformedBodyWritesOneResponse() {
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/customers/%d/accounts", s.customer.CustomerID), strings.NewReader("{bad json"))
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decode(rec)
	s.Equal("VALIDATION_001", body["error"].(map[string]interface{})["code"])
	s.NotContains(rec.Body.String(), `"statusCode":200`)
}

func (s *ServerTestSuite) TestUnusableNumericFilterIsRejected() {
	rec := s.do(fmt.Sprintf("/api/v1/customers/%d/accounts?parent_account_id=1.5", s.customer.CustomerID), true)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "parent_account_id must be a non-negative whole number")

	rec = s.do(fmt.Sprintf("/api/v1/customers/%d/accounts?parent_account_id=%d", s.customer.CustomerID, s.root.AccountID), true)
	s.Equal(http.StatusOK, rec.Code)
	s.Len(s.decode(rec)["data"], 1)
}

func (s *ServerTestSuite) TestListCustomerAccounts_All() {
	rec := s.do(fmt.Sprintf("/api/v1/customers/%d/accounts?account_ids=all", s.customer.CustomerID), true)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(2), s.decode(rec)["meta"].(map[string]interface{})["total"])
}

func (s *ServerTestSuite) TestAccountDetail() {
	rec := s.do(fmt.Sprintf("/api/v1/accounts/%d", s.child.AccountID), true)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	data := s.decode(rec)["data"].(map[string]interface{})
	related := data["related_accounts"].([]interface{})
	s.Require().Len(related, 1)
	s.Equal("parent", related[0].(map[string]interface{})["relationship"])
}

func (s *ServerTestSuite) TestAccountDetail_OtherCustomerIsNotFound() {
	rec := s.do(fmt.Sprintf("/api/v1/accounts/%d", s.foreign.AccountID), true)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "ACCOUNT_001")
}

func (s *ServerTestSuite) TestSecondaryContacts() {
	rec := s.do(fmt.Sprintf("/api/v1/accounts/%d/secondary-contacts", s.root.AccountID), true)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Len(s.decode(rec)["data"], 1)

	rec = s.do(fmt.Sprintf("/api/v1/accounts/%d/secondary-contacts", s.foreign.AccountID), true)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.decode(rec)["data"])
}

func (s *ServerTestSuite) TestExportCustomerAccounts() {
	rec := s.do(fmt.Sprintf("/api/v1/customers/%d/accounts/export?perPage=10", s.customer.CustomerID), true)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(export.ContentType, rec.Header().Get("Content-Type"))
	s.Contains(rec.Header().Get("Content-Disposition"), fmt.Sprintf("customer-%d_page_1_of_1_", s.customer.CustomerID))

	metrics := s.do("/metrics", false)
	s.Equal(http.StatusOK, metrics.Code)
	s.Contains(metrics.Body.String(), "fleet_exports_total")
}

func (s *ServerTestSuite) TestExportTooLarge() {
	rec := s.do(fmt.Sprintf("/api/v1/customers/%d/users/export?perPage=100&page=1", s.customer.CustomerID), true)
	s.Equal(http.StatusOK, rec.Code)

	// Above the listing maximum the export row limit decides, not the listing clamp.
	rec = s.do(fmt.Sprintf("/api/v1/customers/%d/users/export?perPage=150", s.customer.CustomerID), true)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "EXPORT_001")

	s.cfg.Export.MaxRows = 5
	reg := prometheus.NewRegistry()
	s.server = New(s.cfg, s.db, Options{Registerer: reg, Gatherer: reg})

	rec = s.do(fmt.Sprintf("/api/v1/customers/%d/users/export?perPage=50", s.customer.CustomerID), true)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "EXPORT_001")
}

func (s *ServerTestSuite) TestCustomerNotFound() {
	rec := s.do("/api/v1/customers/999999/accounts", true)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "CUSTOMER_001")
}
