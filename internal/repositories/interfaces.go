package repositories

import (
	"context"

	"fleet-admin/internal/filter"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Count(ctx context.Context, predicate filter.Predicate) (int64, error)
	Find(ctx context.Context, predicate filter.Predicate, page pagination.Params) ([]models.Account, error)
	// FindByID returns the account whether or not it is soft-deleted
	FindByID(ctx context.Context, accountID int64) (*models.Account, error)
	// FindLiveByID returns ErrAccountNotFound for a soft-deleted account
	FindLiveByID(ctx context.Context, accountID int64) (*models.Account, error)
	FindChildren(ctx context.Context, parentID int64) ([]models.Account, error)
	FindSiblings(ctx context.Context, parentID, excludeID int64) ([]models.Account, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Count(ctx context.Context, predicate filter.Predicate) (int64, error)
	Find(ctx context.Context, predicate filter.Predicate, page pagination.Params) ([]models.User, error)
	// FindByID loads the user with role and assigned account ids
	FindByID(ctx context.Context, userID int64) (*models.User, error)
	AssignedAccountIDs(ctx context.Context, userID int64) ([]int64, error)
}

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	Count(ctx context.Context, predicate filter.Predicate) (int64, error)
	Find(ctx context.Context, predicate filter.Predicate, page pagination.Params) ([]models.Customer, error)
	// FindByID returns ErrCustomerNotFound for missing and soft-deleted customers
	FindByID(ctx context.Context, customerID int64) (*models.Customer, error)
}
