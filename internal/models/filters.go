package models

import "time"

// AccountFilters contains filter criteria for account queries.
// Nil fields impose no constraint.
type AccountFilters struct {
	CustomerID          *int64
	AccountIDs          []int64
	ParentAccountID     *int64
	AccountName         *string
	AccountNumber       *string
	LegacyAccountNumber *string
	AccountType         *string
	Status              *string
	NumberOfUsers       *int64
	// IsDeleted is the raw deletion-status override; unset keeps deleted accounts out.
	IsDeleted   *string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserFilters contains filter criteria for user queries
type UserFilters struct {
	CustomerID     *int64
	FirstName      *string
	LastName       *string
	Email          *string
	PhoneNumber    *string
	Designation    *string
	Status         *string
	UserRoleID     *int64
	IsCustomerUser *string
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
}

// CustomerFilters contains filter criteria for customer queries
type CustomerFilters struct {
	CustomerName    *string
	CustomerClass   *string
	ReferenceNumber *string
	Status          *string
	IsDeleted       *string
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
}

// SecondaryContactFilters filters the users assigned to a set of accounts
type SecondaryContactFilters struct {
	AccountIDs  []int64
	FirstName   *string
	LastName    *string
	Email       *string
	Designation *string
	Status      *string
	PhoneNumber *string
}
