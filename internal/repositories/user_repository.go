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

var ErrUserNotFound = errors.New("user not found")

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{
		db: db,
	}
}

// Count counts users matching the predicate
func (r *UserRepository) Count(ctx context.Context, predicate filter.Predicate) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Scopes(predicate.Scope()).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

// Find retrieves one page of users with their role, ordered by id
func (r *UserRepository) Find(ctx context.Context, predicate filter.Predicate, page pagination.Params) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Scopes(predicate.Scope()).
		Order("user_id ASC").
		Offset(page.Skip).Limit(page.Take).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// FindByID retrieves a user with role and account assignment
func (r *UserRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Role").
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	ids, err := r.AssignedAccountIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.AssignedAccountIDs = ids

	return &user, nil
}

// AssignedAccountIDs returns the ids of the accounts assigned to a user
func (r *UserRepository) AssignedAccountIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	if err := r.db.WithContext(ctx).Model(&models.UserAccount{}).
		Where("user_id = ?", userID).
		Order("account_id ASC").
		Pluck("account_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get assigned accounts: %w", err)
	}
	return ids, nil
}
