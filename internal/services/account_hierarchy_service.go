package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fleet-admin/internal/models"
	"fleet-admin/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// accountHierarchyService implements AccountHierarchyServiceInterface
type accountHierarchyService struct {
	accountRepo repositories.AccountRepositoryInterface
	logger      *slog.Logger
}

// NewAccountHierarchyService creates a hierarchy resolver over the account store
func NewAccountHierarchyService(accountRepo repositories.AccountRepositoryInterface, logger *slog.Logger) AccountHierarchyServiceInterface {
	return &accountHierarchyService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// ResolveRelated returns the accounts related to account. A root yields its children
// untagged; a child yields its parent first, then its siblings. A parent that is missing
// or deleted is omitted.
func (s *accountHierarchyService) ResolveRelated(ctx context.Context, account *models.Account) ([]models.RelatedAccount, error) {
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if account.IsRoot() {
		children, err := s.accountRepo.FindChildren(ctx, account.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to load child accounts: %w", err)
		}
		related := make([]models.RelatedAccount, 0, len(children))
		for i := range children {
			related = append(related, models.NewRelatedAccount(&children[i], ""))
		}
		return related, nil
	}

	parentID := *account.ParentAccountID

	var (
		parent   *models.Account
		siblings []models.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.accountRepo.FindLiveByID(gctx, parentID)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				s.logger.Warn("parent account missing", "account_id", account.AccountID, "parent_account_id", parentID)
				return nil
			}
			return fmt.Errorf("failed to load parent account: %w", err)
		}
		parent = p
		return nil
	})
	g.Go(func() error {
		found, err := s.accountRepo.FindSiblings(gctx, parentID, account.AccountID)
		if err != nil {
			return fmt.Errorf("failed to load sibling accounts: %w", err)
		}
		siblings = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	related := make([]models.RelatedAccount, 0, len(siblings)+1)
	if parent != nil {
		related = append(related, models.NewRelatedAccount(parent, models.RelationshipParent))
	}
	for i := range siblings {
		related = append(related, models.NewRelatedAccount(&siblings[i], models.RelationshipSibling))
	}
	return related, nil
}

// GetAccountDetail loads a live account of the caller's customer with its related accounts
func (s *accountHierarchyService) GetAccountDetail(ctx context.Context, caller models.Caller, accountID int64) (*models.AccountDetail, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.IsDeleted || account.CustomerID != caller.CustomerID {
		return nil, ErrAccountNotFound
	}

	related, err := s.ResolveRelated(ctx, account)
	if err != nil {
		return nil, err
	}

	return &models.AccountDetail{
		Account:         account,
		RelatedAccounts: related,
	}, nil
}
