package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleet-admin/internal/config"
	"fleet-admin/internal/export"
	"fleet-admin/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testPagination = config.PaginationConfig{DefaultPerPage: 20, MaxPerPage: 100}

func newTestContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func newTestContextWithBody(target, contentType, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest("GET", target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func withCaller(c echo.Context, caller models.Caller) {
	c.Set(CallerContextKey, caller)
}

func testArtifact(t *testing.T, filename string) *export.Artifact {
	t.Helper()
	wb, err := export.Build(export.Sheet{
		Name:    "Accounts",
		Title:   "Accounts",
		Columns: []export.Column{{Header: "Account ID", Key: "id"}},
		Rows:    []export.Row{{"id": 1}},
	})
	require.NoError(t, err)
	return &export.Artifact{Filename: filename, Workbook: wb}
}

func testTime() time.Time {
	return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
}

func fakeAccount(id, customerID int64) models.Account {
	return models.Account{
		AccountID:     id,
		CustomerID:    customerID,
		AccountName:   gofakeit.Company(),
		AccountNumber: gofakeit.Numerify("AC########"),
		Status:        models.AccountStatusActive,
		CreatedAt:     testTime(),
	}
}
