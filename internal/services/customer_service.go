package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fleet-admin/internal/filter"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"
	"fleet-admin/internal/repositories"
)

// CustomerService lists and loads customers
type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepositoryInterface, logger *slog.Logger) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ListCustomers returns one page of customers matching filters
func (s *CustomerService) ListCustomers(ctx context.Context, filters models.CustomerFilters, page pagination.Params) ([]models.Customer, int64, error) {
	predicate := filter.ForCustomers(filters)

	total, err := s.customerRepo.Count(ctx, predicate)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}
	if total == 0 {
		return []models.Customer{}, 0, nil
	}

	customers, err := s.customerRepo.Find(ctx, predicate, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	s.logger.Debug("customers listed", "total", total, "page", page.Page)
	return customers, total, nil
}

// GetCustomer returns a live customer
func (s *CustomerService) GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}
