package repositories

import (
	"context"
	"testing"

	"fleet-admin/internal/database"
	"fleet-admin/internal/filter"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"

	"github.com/stretchr/testify/suite"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	db       *database.DB
	repo     UserRepositoryInterface
	ctx      context.Context
	customer *models.Customer
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
	s.ctx = context.Background()
	s.customer = database.CreateTestCustomer(s.T(), s.db, "Northwind Logistics")
}

func (s *UserRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestFindByID_LoadsRoleAndAssignment() {
	role := &models.UserRole{Name: "Fleet Manager", Description: "Manages fleets"}
	s.Require().NoError(s.db.Create(role).Error)

	east := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, "East", nil)
	west := database.CreateTestAccount(s.T(), s.db, s.customer.CustomerID, "West", nil)
	user := database.CreateTestUser(s.T(), s.db, s.customer.CustomerID, "dana@northwind.example", west.AccountID, east.AccountID)
	s.Require().NoError(s.db.Model(user).Update("user_role_id", role.UserRoleID).Error)

	found, err := s.repo.FindByID(s.ctx, user.UserID)
	s.NoError(err)
	s.Equal("dana@northwind.example", found.Email)
	s.Equal("Fleet Manager", found.RoleName())
	s.ElementsMatch([]int64{east.AccountID, west.AccountID}, found.AssignedAccountIDs)
}

func (s *UserRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := s.repo.FindByID(s.ctx, 424242)
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestAssignedAccountIDs_EmptyIsNotNil() {
	user := database.CreateTestUser(s.T(), s.db, s.customer.CustomerID, "nobody@northwind.example")

	ids, err := s.repo.AssignedAccountIDs(s.ctx, user.UserID)
	s.NoError(err)
	s.NotNil(ids)
	s.Empty(ids)
}

func (s *UserRepositoryTestSuite) TestCountAndFind() {
	for _, email := range []string{"a@northwind.example", "b@northwind.example", "c@northwind.example"} {
		database.CreateTestUser(s.T(), s.db, s.customer.CustomerID, email)
	}
	other := database.CreateTestCustomer(s.T(), s.db, "Contoso")
	database.CreateTestUser(s.T(), s.db, other.CustomerID, "x@contoso.example")

	predicate := filter.ForUsers(models.UserFilters{CustomerID: &s.customer.CustomerID})
	total, err := s.repo.Count(s.ctx, predicate)
	s.NoError(err)
	s.Equal(int64(3), total)

	users, err := s.repo.Find(s.ctx, predicate, pagination.Normalize("1", "2"))
	s.NoError(err)
	s.Require().Len(users, 2)
	s.Equal("a@northwind.example", users[0].Email)
	s.Equal("b@northwind.example", users[1].Email)
}
