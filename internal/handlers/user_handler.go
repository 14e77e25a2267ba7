package handlers

import (
	"fleet-admin/internal/config"
	"fleet-admin/internal/dto"
	"fleet-admin/internal/errors"
	"fleet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles user and secondary contact listings
type UserHandler struct {
	userService   services.UserServiceInterface
	exportService services.ExportServiceInterface
	pagination    config.PaginationConfig
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserServiceInterface, exportService services.ExportServiceInterface, pagination config.PaginationConfig) *UserHandler {
	return &UserHandler{
		userService:   userService,
		exportService: exportService,
		pagination:    pagination,
	}
}

// ListCustomerUsers lists a customer's users
// @Summary List customer users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param customerId path int true "Customer ID"
// @Param first_name query string false "Substring match"
// @Param user_role_id query int false "Role ID"
// @Param is_customer_user query string false "true / false"
// @Success 200 {object} PaginatedResponse "Users page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / VALIDATION_007"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers/{customerId}/users [get]
func (h *UserHandler) ListCustomerUsers(c echo.Context) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid customer ID"))
	}

	var query dto.UserListQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	filters, err := query.Filters()
	if err != nil {
		return sendServiceError(c, err)
	}
	page := query.Params(h.pagination.DefaultPerPage, h.pagination.MaxPerPage)

	users, total, err := h.userService.ListCustomerUsers(c.Request().Context(), customerID, filters, page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendPaginated(c, users, page.Meta(total), nil)
}

// ExportCustomerUsers downloads one page of a customer's users
// @Summary Export customer users
// @Tags Users
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param customerId path int true "Customer ID"
// @Success 200 {file} file "Spreadsheet"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 422 {object} errors.ErrorResponse "EXPORT_001 - Page too large to export"
// @Router /customers/{customerId}/users/export [get]
func (h *UserHandler) ExportCustomerUsers(c echo.Context) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid customer ID"))
	}

	var query dto.UserListQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	filters, err := query.Filters()
	if err != nil {
		return sendServiceError(c, err)
	}
	page := query.ExportParams(h.pagination.DefaultPerPage)

	artifact, err := h.exportService.ExportCustomerUsers(c.Request().Context(), customerID, filters, page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendDownload(c, artifact)
}

// ListSecondaryContacts lists the users assigned to an account
// @Summary List secondary contacts
// @Description Users assigned to the account. An account outside the caller's assignment yields an empty page.
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} PaginatedResponse "Contacts page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/secondary-contacts [get]
func (h *UserHandler) ListSecondaryContacts(c echo.Context) error {
	caller, err := getCallerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account ID"))
	}

	var query dto.SecondaryContactQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	page := query.Params(h.pagination.DefaultPerPage, h.pagination.MaxPerPage)

	contacts, total, err := h.userService.ListSecondaryContacts(c.Request().Context(), caller, accountID, query.Filters(), page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendPaginated(c, contacts, page.Meta(total), map[string]interface{}{"accountId": accountID})
}

// ExportSecondaryContacts downloads one page of an account's secondary contacts
// @Summary Export secondary contacts
// @Tags Users
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param accountId path int true "Account ID"
// @Success 200 {file} file "Spreadsheet"
// @Failure 422 {object} errors.ErrorResponse "EXPORT_001 - Page too large to export"
// @Router /accounts/{accountId}/secondary-contacts/export [get]
func (h *UserHandler) ExportSecondaryContacts(c echo.Context) error {
	caller, err := getCallerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account ID"))
	}

	var query dto.SecondaryContactQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	page := query.ExportParams(h.pagination.DefaultPerPage)

	artifact, err := h.exportService.ExportSecondaryContacts(c.Request().Context(), caller, accountID, query.Filters(), page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendDownload(c, artifact)
}
