package services

import (
	"context"
	"errors"
	"testing"

	"fleet-admin/internal/filter"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"
	"fleet-admin/internal/repositories"
	"fleet-admin/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// CustomerServiceTestSuite is the test suite for CustomerService
type CustomerServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	service      CustomerServiceInterface
	ctx          context.Context
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.service = NewCustomerService(s.customerRepo, discardLogger())
	s.ctx = context.Background()
}

func (s *CustomerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (s *CustomerServiceTestSuite) TestListCustomers() {
	page := pagination.FromInts(1, 2)

	var counted filter.Predicate
	s.customerRepo.EXPECT().Count(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p filter.Predicate) (int64, error) {
			counted = p
			return 5, nil
		})
	s.customerRepo.EXPECT().Find(s.ctx, gomock.Any(), page).Return([]models.Customer{{CustomerID: 1}, {CustomerID: 2}}, nil)

	customers, total, err := s.service.ListCustomers(s.ctx, models.CustomerFilters{}, page)
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Len(customers, 2)
	s.True(counted.Has(filter.KindSoftDelete, "is_deleted"))
}

func (s *CustomerServiceTestSuite) TestListCustomers_Empty() {
	s.customerRepo.EXPECT().Count(s.ctx, gomock.Any()).Return(int64(0), nil)

	customers, total, err := s.service.ListCustomers(s.ctx, models.CustomerFilters{}, pagination.FromInts(1, 20))
	s.Require().NoError(err)
	s.Zero(total)
	s.NotNil(customers)
}

func (s *CustomerServiceTestSuite) TestListCustomers_FindFailure() {
	s.customerRepo.EXPECT().Count(s.ctx, gomock.Any()).Return(int64(3), nil)
	s.customerRepo.EXPECT().Find(s.ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("broken pipe"))

	_, _, err := s.service.ListCustomers(s.ctx, models.CustomerFilters{}, pagination.FromInts(1, 20))
	s.Error(err)
	s.Contains(err.Error(), "failed to list customers")
}

func (s *CustomerServiceTestSuite) TestGetCustomer() {
	s.customerRepo.EXPECT().FindByID(s.ctx, int64(1)).Return(&models.Customer{CustomerID: 1, CustomerName: "Acme"}, nil)

	customer, err := s.service.GetCustomer(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Acme", customer.CustomerName)
}

func (s *CustomerServiceTestSuite) TestGetCustomer_NotFound() {
	s.customerRepo.EXPECT().FindByID(s.ctx, int64(8)).Return(nil, repositories.ErrCustomerNotFound)

	customer, err := s.service.GetCustomer(s.ctx, 8)
	s.ErrorIs(err, ErrCustomerNotFound)
	s.Nil(customer)
}
