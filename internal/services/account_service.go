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
	"fleet-admin/internal/scope"
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo  repositories.AccountRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	hierarchy    AccountHierarchyServiceInterface
	exportLogger ExportLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewAccountService creates an account service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	hierarchy AccountHierarchyServiceInterface,
	exportLogger ExportLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo:  accountRepo,
		userRepo:     userRepo,
		customerRepo: customerRepo,
		hierarchy:    hierarchy,
		exportLogger: exportLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

func (s *accountService) ListCustomerAccounts(
	ctx context.Context,
	customerID int64,
	scopeRaw string,
	filters models.AccountFilters,
	page pagination.Params,
) ([]models.Account, int64, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, 0, ErrCustomerNotFound
		}
		return nil, 0, fmt.Errorf("failed to verify customer: %w", err)
	}

	// "all" on a customer listing is every account of the customer, the same as no scope.
	if scope.IsAll(scopeRaw) {
		scopeRaw = ""
	}
	resolved, err := scope.Resolve(models.Caller{CustomerID: customerID}, scopeRaw, scope.CustomerListing)
	if err != nil {
		return nil, 0, err
	}
	if resolved.Empty {
		return []models.Account{}, 0, nil
	}

	// Requested ids never widen the listing beyond the customer.
	filters.CustomerID = &customerID
	filters.AccountIDs = resolved.AccountIDs

	return s.list(ctx, filters, page)
}

func (s *accountService) ListUserAccounts(
	ctx context.Context,
	caller models.Caller,
	userID int64,
	scopeRaw string,
	filters models.AccountFilters,
	page pagination.Params,
) ([]models.Account, int64, error) {
	target, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("failed to load user: %w", err)
	}
	if target.CustomerID != caller.CustomerID {
		return nil, 0, ErrUserNotFound
	}

	owner := models.Caller{
		UserID:             target.UserID,
		CustomerID:         target.CustomerID,
		AssignedAccountIDs: target.AssignedAccountIDs,
	}
	resolved, err := scope.Resolve(owner, scopeRaw, scope.UserAssignment)
	if err != nil {
		return nil, 0, err
	}
	if resolved.Empty {
		s.exportLogger.LogScopeMembershipMiss(ctx, target.UserID, scopeRaw)
		s.metrics.IncrementCounter("scope_empty", map[string]string{"operation": "user_accounts"})
		return []models.Account{}, 0, nil
	}

	filters.AccountIDs = resolved.AccountIDs
	return s.list(ctx, filters, page)
}

func (s *accountService) GetAccountDetail(ctx context.Context, caller models.Caller, accountID int64) (*models.AccountDetail, error) {
	return s.hierarchy.GetAccountDetail(ctx, caller, accountID)
}

func (s *accountService) list(ctx context.Context, filters models.AccountFilters, page pagination.Params) ([]models.Account, int64, error) {
	predicate := filter.ForAccounts(filters)

	total, err := s.accountRepo.Count(ctx, predicate)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	if total == 0 {
		return []models.Account{}, 0, nil
	}

	accounts, err := s.accountRepo.Find(ctx, predicate, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	s.logger.Debug("accounts listed",
		"total", total,
		"page", page.Page,
		"scope_size", len(filters.AccountIDs),
	)
	return accounts, total, nil
}
