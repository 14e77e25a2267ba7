package services

import (
	"context"
	"testing"

	"fleet-admin/internal/filter"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"
	"fleet-admin/internal/repositories"
	"fleet-admin/internal/repositories/repository_mocks"
	"fleet-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// UserServiceTestSuite is the test suite for the user service
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	userRepo     *repository_mocks.MockUserRepositoryInterface
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	exportLogger *service_mocks.MockExportLoggerInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	service      UserServiceInterface
	ctx          context.Context
	page         pagination.Params
	caller       models.Caller
}

func (s *UserServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.exportLogger = service_mocks.NewMockExportLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewUserService(s.userRepo, s.customerRepo, s.exportLogger, s.metrics, discardLogger())
	s.ctx = context.Background()
	s.page = pagination.FromInts(2, 10)
	s.caller = models.Caller{UserID: 4, CustomerID: 1, AssignedAccountIDs: []int64{101, 102}}
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestListCustomerUsers() {
	s.customerRepo.EXPECT().FindByID(s.ctx, int64(1)).Return(&models.Customer{CustomerID: 1}, nil)

	var counted filter.Predicate
	s.userRepo.EXPECT().Count(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p filter.Predicate) (int64, error) {
			counted = p
			return 12, nil
		})
	s.userRepo.EXPECT().Find(s.ctx, gomock.Any(), s.page).Return([]models.User{{UserID: 11}, {UserID: 12}}, nil)

	email := "@example.com"
	users, total, err := s.service.ListCustomerUsers(s.ctx, 1, models.UserFilters{Email: &email}, s.page)
	s.Require().NoError(err)
	s.Equal(int64(12), total)
	s.Len(users, 2)
	s.True(counted.Has(filter.KindEquals, "customer_id"))
	s.True(counted.Has(filter.KindContains, "email"))
}

func (s *UserServiceTestSuite) TestListCustomerUsers_CustomerNotFound() {
	s.customerRepo.EXPECT().FindByID(s.ctx, int64(1)).Return(nil, repositories.ErrCustomerNotFound)

	_, _, err := s.service.ListCustomerUsers(s.ctx, 1, models.UserFilters{}, s.page)
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *UserServiceTestSuite) TestListSecondaryContacts_MemberAccount() {
	var found filter.Predicate
	s.userRepo.EXPECT().Count(s.ctx, gomock.Any()).Return(int64(1), nil)
	s.userRepo.EXPECT().Find(s.ctx, gomock.Any(), s.page).DoAndReturn(
		func(_ context.Context, p filter.Predicate, _ pagination.Params) ([]models.User, error) {
			found = p
			return []models.User{{UserID: 20}}, nil
		})

	users, total, err := s.service.ListSecondaryContacts(s.ctx, s.caller, 102, models.SecondaryContactFilters{}, s.page)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(users, 1)

	clauses := found.Clauses()
	s.Require().NotEmpty(clauses)
	s.Equal(filter.KindRaw, clauses[0].Kind)
	s.Equal([]interface{}{[]int64{102}}, clauses[0].Args)
}

func (s *UserServiceTestSuite) TestListSecondaryContacts_NonMemberIsEmpty() {
	s.exportLogger.EXPECT().LogScopeMembershipMiss(s.ctx, int64(4), "999")
	s.metrics.EXPECT().IncrementCounter("scope_empty", map[string]string{"operation": "secondary_contacts"})

	users, total, err := s.service.ListSecondaryContacts(s.ctx, s.caller, 999, models.SecondaryContactFilters{}, s.page)
	s.Require().NoError(err)
	s.Zero(total)
	s.NotNil(users)
	s.Empty(users)
}

func (s *UserServiceTestSuite) TestListSecondaryContacts_NoMatches() {
	s.userRepo.EXPECT().Count(s.ctx, gomock.Any()).Return(int64(0), nil)

	users, total, err := s.service.ListSecondaryContacts(s.ctx, s.caller, 101, models.SecondaryContactFilters{}, s.page)
	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(users)
}
