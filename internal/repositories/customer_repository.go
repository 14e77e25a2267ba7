package repositories

import (
	"context"
	"errors"
	"fmt"

	"fleet-admin/internal/filter"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"

	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{db: db}
}

func (r *customerRepository) Count(ctx context.Context, predicate filter.Predicate) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Scopes(predicate.Scope()).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return total, nil
}

func (r *customerRepository) Find(ctx context.Context, predicate filter.Predicate, page pagination.Params) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Scopes(predicate.Scope()).
		Order("customer_id ASC").
		Offset(page.Skip).Limit(page.Take).
		Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

func (r *customerRepository) FindByID(ctx context.Context, customerID int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND is_deleted = ?", customerID, false).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}
