package handlers

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"fleet-admin/internal/dto"
	"fleet-admin/internal/errors"
	"fleet-admin/internal/filter"
	"fleet-admin/internal/models"
	"fleet-admin/internal/scope"
	"fleet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// CallerContextKey holds the authenticated models.Caller
	CallerContextKey = "caller"
	// SelfAlias resolves a user id path parameter to the caller
	SelfAlias = "me"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getCallerFromContext returns the caller stored by the auth middleware
func getCallerFromContext(c echo.Context) (models.Caller, error) {
	caller, ok := c.Get(CallerContextKey).(models.Caller)
	if !ok || caller.UserID <= 0 {
		return models.Caller{}, ErrUnauthorized
	}
	return caller, nil
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// parseUserIDParam reads a user id path parameter, resolving "me" to the caller
func parseUserIDParam(c echo.Context, name string, caller models.Caller) (int64, error) {
	if strings.EqualFold(strings.TrimSpace(c.Param(name)), SelfAlias) {
		return caller.UserID, nil
	}
	return parseIDParam(c, name)
}

// bindQuery binds and validates a query DTO. Every failure is returned for the HTTP error
// handler to render, so a non-nil result always ends the handler.
func bindQuery(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters").WithInternal(err)
	}
	if err := c.Validate(dst); err != nil {
		return err
	}
	return nil
}

// sendServiceError maps service and core errors onto the error envelope
func sendServiceError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case goerrors.Is(err, services.ErrUserNotFound):
		return SendError(c, errors.UserNotFound)
	case goerrors.Is(err, services.ErrCustomerNotFound):
		return SendError(c, errors.CustomerNotFound)
	case goerrors.Is(err, scope.ErrInvalidScope):
		return SendError(c, errors.ScopeInvalid, errors.WithDetails(err.Error()))
	case goerrors.Is(err, dto.ErrInvalidNumber):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	case goerrors.Is(err, filter.ErrInvalidDate):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	case goerrors.Is(err, services.ErrExportTooLarge):
		return SendError(c, errors.ExportTooLarge)
	default:
		return SendSystemError(c, err)
	}
}
