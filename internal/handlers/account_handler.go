package handlers

import (
	"net/http"

	"fleet-admin/internal/config"
	"fleet-admin/internal/dto"
	"fleet-admin/internal/errors"
	"fleet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account listing, export and detail requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
	exportService  services.ExportServiceInterface
	pagination     config.PaginationConfig
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface, exportService services.ExportServiceInterface, pagination config.PaginationConfig) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		exportService:  exportService,
		pagination:     pagination,
	}
}

// ListCustomerAccounts lists a customer's accounts
// @Summary List customer accounts
// @Description Paginated accounts of a customer. account_ids narrows the listing to the given ids.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param customerId path int true "Customer ID"
// @Param account_ids query string false "all, one id or a comma separated list"
// @Param page query int false "Page number (default 1)"
// @Param perPage query int false "Page size (default 20)"
// @Success 200 {object} PaginatedResponse "Accounts page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / SCOPE_001 / VALIDATION_007"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers/{customerId}/accounts [get]
func (h *AccountHandler) ListCustomerAccounts(c echo.Context) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid customer ID"))
	}

	var query dto.AccountListQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	filters, err := query.Filters()
	if err != nil {
		return sendServiceError(c, err)
	}
	page := query.Params(h.pagination.DefaultPerPage, h.pagination.MaxPerPage)

	accounts, total, err := h.accountService.ListCustomerAccounts(c.Request().Context(), customerID, query.AccountIDs, filters, page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendPaginated(c, accounts, page.Meta(total), nil)
}

// ExportCustomerAccounts downloads one page of a customer's accounts
// @Summary Export customer accounts
// @Tags Accounts
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param customerId path int true "Customer ID"
// @Success 200 {file} file "Spreadsheet"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / SCOPE_001 / VALIDATION_007"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 422 {object} errors.ErrorResponse "EXPORT_001 - Page too large to export"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers/{customerId}/accounts/export [get]
func (h *AccountHandler) ExportCustomerAccounts(c echo.Context) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid customer ID"))
	}

	var query dto.AccountListQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	filters, err := query.Filters()
	if err != nil {
		return sendServiceError(c, err)
	}
	page := query.ExportParams(h.pagination.DefaultPerPage)

	artifact, err := h.exportService.ExportCustomerAccounts(c.Request().Context(), customerID, query.AccountIDs, filters, page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendDownload(c, artifact)
}

// ListUserAccounts lists the accounts assigned to a user
// @Summary List user accounts
// @Description Accounts assigned to a user of the caller's customer. "me" addresses the caller.
// @Description account_id is "all", one id or a comma separated list; ids outside the assignment are dropped.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID or me"
// @Param account_id query string false "all, one id or a comma separated list"
// @Success 200 {object} PaginatedResponse "Accounts page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / SCOPE_001 / VALIDATION_007"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/accounts [get]
func (h *AccountHandler) ListUserAccounts(c echo.Context) error {
	caller, err := getCallerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	userID, err := parseUserIDParam(c, "userId", caller)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid user ID"))
	}

	var query dto.AccountListQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	filters, err := query.Filters()
	if err != nil {
		return sendServiceError(c, err)
	}
	page := query.Params(h.pagination.DefaultPerPage, h.pagination.MaxPerPage)

	accounts, total, err := h.accountService.ListUserAccounts(c.Request().Context(), caller, userID, query.AccountID, filters, page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendPaginated(c, accounts, page.Meta(total), map[string]interface{}{"userId": userID})
}

// ExportUserAccounts downloads one page of a user's assigned accounts
// @Summary Export user accounts
// @Tags Accounts
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param userId path string true "User ID or me"
// @Success 200 {file} file "Spreadsheet"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 422 {object} errors.ErrorResponse "EXPORT_001 - Page too large to export"
// @Router /users/{userId}/accounts/export [get]
func (h *AccountHandler) ExportUserAccounts(c echo.Context) error {
	caller, err := getCallerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	userID, err := parseUserIDParam(c, "userId", caller)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid user ID"))
	}

	var query dto.AccountListQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	filters, err := query.Filters()
	if err != nil {
		return sendServiceError(c, err)
	}
	page := query.ExportParams(h.pagination.DefaultPerPage)

	artifact, err := h.exportService.ExportUserAccounts(c.Request().Context(), caller, userID, query.AccountID, filters, page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendDownload(c, artifact)
}

// GetAccountDetail returns an account with its parent, siblings or children
// @Summary Get account detail
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} SuccessResponse "Account with related accounts"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccountDetail(c echo.Context) error {
	caller, err := getCallerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account ID"))
	}

	detail, err := h.accountService.GetAccountDetail(c.Request().Context(), caller, accountID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, detail, "")
}
