package services

import (
	"context"
	"time"

	"fleet-admin/internal/export"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"
)

// AccountServiceInterface defines account listing and detail operations
type AccountServiceInterface interface {
	// ListCustomerAccounts lists a customer's accounts. Requested ids are taken as given.
	ListCustomerAccounts(ctx context.Context, customerID int64, scopeRaw string, filters models.AccountFilters, page pagination.Params) ([]models.Account, int64, error)
	// ListUserAccounts lists the accounts assigned to a user of the caller's customer
	ListUserAccounts(ctx context.Context, caller models.Caller, userID int64, scopeRaw string, filters models.AccountFilters, page pagination.Params) ([]models.Account, int64, error)
	GetAccountDetail(ctx context.Context, caller models.Caller, accountID int64) (*models.AccountDetail, error)
}

// AccountHierarchyServiceInterface resolves parent, child and sibling relationships
type AccountHierarchyServiceInterface interface {
	ResolveRelated(ctx context.Context, account *models.Account) ([]models.RelatedAccount, error)
	GetAccountDetail(ctx context.Context, caller models.Caller, accountID int64) (*models.AccountDetail, error)
}

// UserServiceInterface defines user listing operations
type UserServiceInterface interface {
	ListCustomerUsers(ctx context.Context, customerID int64, filters models.UserFilters, page pagination.Params) ([]models.User, int64, error)
	// ListSecondaryContacts lists users assigned to accountID. An account outside the
	// caller's assignment yields an empty page.
	ListSecondaryContacts(ctx context.Context, caller models.Caller, accountID int64, filters models.SecondaryContactFilters, page pagination.Params) ([]models.User, int64, error)
}

// CustomerServiceInterface defines customer operations
type CustomerServiceInterface interface {
	ListCustomers(ctx context.Context, filters models.CustomerFilters, page pagination.Params) ([]models.Customer, int64, error)
	GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error)
}

// ExportServiceInterface renders listing pages as spreadsheet downloads
type ExportServiceInterface interface {
	ExportCustomerAccounts(ctx context.Context, customerID int64, scopeRaw string, filters models.AccountFilters, page pagination.Params) (*export.Artifact, error)
	ExportUserAccounts(ctx context.Context, caller models.Caller, userID int64, scopeRaw string, filters models.AccountFilters, page pagination.Params) (*export.Artifact, error)
	ExportCustomerUsers(ctx context.Context, customerID int64, filters models.UserFilters, page pagination.Params) (*export.Artifact, error)
	ExportSecondaryContacts(ctx context.Context, caller models.Caller, accountID int64, filters models.SecondaryContactFilters, page pagination.Params) (*export.Artifact, error)
	ExportCustomers(ctx context.Context, filters models.CustomerFilters, page pagination.Params) (*export.Artifact, error)
}

// TokenServiceInterface validates the bearer tokens presented by callers
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// ExportLoggerInterface emits structured events for exports and scope resolution
type ExportLoggerInterface interface {
	LogExportGenerated(ctx context.Context, entity, filename string, rows int, durationMs int64)
	LogExportFailed(ctx context.Context, entity string, errorMsg string)
	LogScopeMembershipMiss(ctx context.Context, userID int64, requested string)
}
