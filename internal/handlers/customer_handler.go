package handlers

import (
	"net/http"

	"fleet-admin/internal/config"
	"fleet-admin/internal/dto"
	"fleet-admin/internal/errors"
	"fleet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer listing and lookup
type CustomerHandler struct {
	customerService services.CustomerServiceInterface
	exportService   services.ExportServiceInterface
	pagination      config.PaginationConfig
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService services.CustomerServiceInterface, exportService services.ExportServiceInterface, pagination config.PaginationConfig) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		exportService:   exportService,
		pagination:      pagination,
	}
}

// ListCustomers lists customers
// @Summary List customers
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param customer_name query string false "Substring match"
// @Param is_deleted query string false "true / false / all"
// @Success 200 {object} PaginatedResponse "Customers page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / VALIDATION_007"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	var query dto.CustomerListQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	filters, err := query.Filters()
	if err != nil {
		return sendServiceError(c, err)
	}
	page := query.Params(h.pagination.DefaultPerPage, h.pagination.MaxPerPage)

	customers, total, err := h.customerService.ListCustomers(c.Request().Context(), filters, page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendPaginated(c, customers, page.Meta(total), nil)
}

// ExportCustomers downloads one page of customers
// @Summary Export customers
// @Tags Customers
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Spreadsheet"
// @Failure 422 {object} errors.ErrorResponse "EXPORT_001 - Page too large to export"
// @Router /customers/export [get]
func (h *CustomerHandler) ExportCustomers(c echo.Context) error {
	var query dto.CustomerListQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}
	filters, err := query.Filters()
	if err != nil {
		return sendServiceError(c, err)
	}
	page := query.ExportParams(h.pagination.DefaultPerPage)

	artifact, err := h.exportService.ExportCustomers(c.Request().Context(), filters, page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendDownload(c, artifact)
}

// GetCustomer returns one customer
// @Summary Get customer
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param customerId path int true "Customer ID"
// @Success 200 {object} SuccessResponse "Customer"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid customer ID"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{customerId} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid customer ID"))
	}

	customer, err := h.customerService.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, customer, "")
}
