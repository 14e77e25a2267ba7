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

var ErrAccountNotFound = errors.New("account not found")

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Count counts accounts matching the predicate
func (r *accountRepository) Count(ctx context.Context, predicate filter.Predicate) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).
		Scopes(predicate.Scope()).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return total, nil
}

// Find retrieves one page of accounts matching the predicate, ordered by id
func (r *accountRepository) Find(ctx context.Context, predicate filter.Predicate, page pagination.Params) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Scopes(predicate.Scope()).
		Order("account_id ASC").
		Offset(page.Skip).Limit(page.Take).
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// FindByID retrieves an account by ID
func (r *accountRepository) FindByID(ctx context.Context, accountID int64) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// FindLiveByID retrieves a non-deleted account by ID
func (r *accountRepository) FindLiveByID(ctx context.Context, accountID int64) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND is_deleted = ?", accountID, false).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// FindChildren retrieves the non-deleted children of a root account
func (r *accountRepository) FindChildren(ctx context.Context, parentID int64) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Where("parent_account_id = ? AND is_deleted = ?", parentID, false).
		Order("account_id ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get child accounts: %w", err)
	}
	return accounts, nil
}

// FindSiblings retrieves the non-deleted accounts sharing parentID, excluding excludeID
func (r *accountRepository) FindSiblings(ctx context.Context, parentID, excludeID int64) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Where("parent_account_id = ? AND account_id <> ? AND is_deleted = ?", parentID, excludeID, false).
		Order("account_id ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get sibling accounts: %w", err)
	}
	return accounts, nil
}
