package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"fleet-admin/internal/errors"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"
	"fleet-admin/internal/services"
	"fleet-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// CustomerHandlerTestSuite is the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	customerService *service_mocks.MockCustomerServiceInterface
	exportService   *service_mocks.MockExportServiceInterface
	handler         *CustomerHandler
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customerService = service_mocks.NewMockCustomerServiceInterface(s.ctrl)
	s.exportService = service_mocks.NewMockExportServiceInterface(s.ctrl)
	s.handler = NewCustomerHandler(s.customerService, s.exportService, testPagination)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestListCustomers_Success() {
	c, rec := newTestContext("/api/v1/customers?customer_name=fleet&is_deleted=all&page=0&perPage=-3")
	name := "fleet"
	deleted := "all"

	s.customerService.EXPECT().
		ListCustomers(gomock.Any(), models.CustomerFilters{CustomerName: &name, IsDeleted: &deleted}, pagination.Params{Page: 1, PerPage: 1, Skip: 0, Take: 1}).
		Return([]models.Customer{{CustomerID: 7, CustomerName: "Fleet Co", CreatedAt: testTime()}}, int64(3), nil)

	s.NoError(s.handler.ListCustomers(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp PaginatedResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(int64(3), resp.Meta.Total)
	s.Equal(3, resp.Meta.TotalPages)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_RejectsUnknownDeletedFlag() {
	c, _ := newTestContext("/api/v1/customers?is_deleted=maybe")
	s.Error(s.handler.ListCustomers(c))
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_Success() {
	c, rec := newTestContext("/api/v1/customers/7")
	c.SetParamNames("customerId")
	c.SetParamValues("7")

	s.customerService.EXPECT().GetCustomer(gomock.Any(), int64(7)).
		Return(&models.Customer{CustomerID: 7, CustomerName: "Fleet Co"}, nil)

	s.NoError(s.handler.GetCustomer(c))
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(float64(200), body["statusCode"])
	s.Equal("Fleet Co", body["data"].(map[string]interface{})["customer_name"])
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_NotFound() {
	c, rec := newTestContext("/api/v1/customers/8")
	c.SetParamNames("customerId")
	c.SetParamValues("8")

	s.customerService.EXPECT().GetCustomer(gomock.Any(), int64(8)).Return(nil, services.ErrCustomerNotFound)

	s.NoError(s.handler.GetCustomer(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.CustomerNotFound), resp.Error.Code)
	s.Equal("trace-123", resp.Error.TraceID)
}

func (s *CustomerHandlerTestSuite) TestExportCustomers_Success() {
	c, rec := newTestContext("/api/v1/customers/export?perPage=50")

	s.customerService.EXPECT().ListCustomers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.exportService.EXPECT().
		ExportCustomers(gomock.Any(), models.CustomerFilters{}, pagination.Params{Page: 1, PerPage: 50, Skip: 0, Take: 50}).
		Return(testArtifact(s.T(), "customers_all_page_1_of_1.xlsx"), nil)

	s.NoError(s.handler.ExportCustomers(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("attachment; filename=customers_all_page_1_of_1.xlsx", rec.Header().Get("Content-Disposition"))
}
