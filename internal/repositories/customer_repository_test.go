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

type CustomerRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo CustomerRepositoryInterface
	ctx  context.Context
}

func (s *CustomerRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCustomerRepository(s.db.DB)
	s.ctx = context.Background()
}

func TestCustomerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryTestSuite))
}

func (s *CustomerRepositoryTestSuite) TestFindByID_HidesDeleted() {
	live := database.CreateTestCustomer(s.T(), s.db, "Northwind")
	gone := database.CreateTestCustomer(s.T(), s.db, "Gone Freight")
	s.Require().NoError(s.db.Model(gone).Update("is_deleted", true).Error)

	found, err := s.repo.FindByID(s.ctx, live.CustomerID)
	s.NoError(err)
	s.Equal("Northwind", found.CustomerName)

	_, err = s.repo.FindByID(s.ctx, gone.CustomerID)
	s.ErrorIs(err, ErrCustomerNotFound)

	_, err = s.repo.FindByID(s.ctx, 31337)
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositoryTestSuite) TestCountAndFind_WithNameFilter() {
	database.CreateTestCustomer(s.T(), s.db, "Northwind Logistics")
	database.CreateTestCustomer(s.T(), s.db, "Northwind Rail")
	database.CreateTestCustomer(s.T(), s.db, "Contoso Freight")

	name := "northwind"
	predicate := filter.ForCustomers(models.CustomerFilters{CustomerName: &name})

	total, err := s.repo.Count(s.ctx, predicate)
	s.NoError(err)
	s.Equal(int64(2), total)

	customers, err := s.repo.Find(s.ctx, predicate, pagination.Normalize("", ""))
	s.NoError(err)
	s.Require().Len(customers, 2)
	s.Equal("Northwind Logistics", customers[0].CustomerName)
}
