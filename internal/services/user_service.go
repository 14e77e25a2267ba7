package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fleet-admin/internal/filter"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"
	"fleet-admin/internal/repositories"
	"fleet-admin/internal/scope"
)

// userService implements UserServiceInterface
type userService struct {
	userRepo     repositories.UserRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	exportLogger ExportLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewUserService creates a user service
func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	exportLogger ExportLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &userService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		exportLogger: exportLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

func (s *userService) ListCustomerUsers(
	ctx context.Context,
	customerID int64,
	filters models.UserFilters,
	page pagination.Params,
) ([]models.User, int64, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, 0, ErrCustomerNotFound
		}
		return nil, 0, fmt.Errorf("failed to verify customer: %w", err)
	}

	filters.CustomerID = &customerID
	return s.list(ctx, filter.ForUsers(filters), page)
}

func (s *userService) ListSecondaryContacts(
	ctx context.Context,
	caller models.Caller,
	accountID int64,
	filters models.SecondaryContactFilters,
	page pagination.Params,
) ([]models.User, int64, error) {
	requested := strconv.FormatInt(accountID, 10)

	resolved, err := scope.Resolve(caller, requested, scope.UserAssignment)
	if err != nil {
		return nil, 0, err
	}
	if resolved.Empty {
		s.exportLogger.LogScopeMembershipMiss(ctx, caller.UserID, requested)
		s.metrics.IncrementCounter("scope_empty", map[string]string{"operation": "secondary_contacts"})
		return []models.User{}, 0, nil
	}

	filters.AccountIDs = resolved.AccountIDs
	return s.list(ctx, filter.ForSecondaryContacts(filters), page)
}

func (s *userService) list(ctx context.Context, predicate filter.Predicate, page pagination.Params) ([]models.User, int64, error) {
	total, err := s.userRepo.Count(ctx, predicate)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	if total == 0 {
		return []models.User{}, 0, nil
	}

	users, err := s.userRepo.Find(ctx, predicate, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}
