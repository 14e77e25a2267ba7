package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
	AccountStatusClosed   = "closed"

	RelationshipParent  = "parent"
	RelationshipSibling = "sibling"
)

var (
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountSelfParent   = errors.New("account cannot be its own parent")
)

// Account is a customer account. Accounts form a one-level hierarchy: an account with a
// parent is a child, an account without one is a root and may have children.
type Account struct {
	AccountID            int64     `gorm:"column:account_id;primaryKey;autoIncrement" json:"account_id"`
	ParentAccountID      *int64    `gorm:"column:parent_account_id;index" json:"parent_account_id"`
	CustomerID           int64     `gorm:"column:customer_id;not null;index" json:"customer_id"`
	AccountName          string    `gorm:"column:account_name;type:varchar(255);not null" json:"account_name"`
	AccountNumber        string    `gorm:"column:account_number;type:varchar(50)" json:"account_number"`
	LegacyAccountNumber  string    `gorm:"column:legacy_account_number;type:varchar(50)" json:"legacy_account_number"`
	AccountType          string    `gorm:"column:account_type;type:varchar(50)" json:"account_type"`
	Status               string    `gorm:"column:status;type:varchar(20);not null;default:'active'" json:"status"`
	NumberOfUsers        int       `gorm:"column:number_of_users;not null;default:0" json:"number_of_users"`
	IsDeleted            bool      `gorm:"column:is_deleted;not null;default:false;index" json:"is_deleted"`
	PrimaryContactUserID *int64    `gorm:"column:primary_contact_user_id" json:"primary_contact_user_id"`
	CreatedAt            time.Time `gorm:"column:created_at;not null" json:"created_at"`
	CreatedBy            *int64    `gorm:"column:created_by" json:"created_by"`
	UpdatedAt            time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
	UpdatedBy            *int64    `gorm:"column:updated_by" json:"updated_by"`
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsRoot reports whether the account is a top-level account
func (a *Account) IsRoot() bool {
	return a.ParentAccountID == nil
}

// BeforeCreate defaults the status and validates the account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = AccountStatusActive
	}
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.AccountName == "" {
		return ErrAccountNameRequired
	}
	if a.ParentAccountID != nil && a.AccountID != 0 && *a.ParentAccountID == a.AccountID {
		return ErrAccountSelfParent
	}
	return nil
}

// RelatedAccount is an account returned alongside a selected account. Relationship is
// "parent" or "sibling" for a child selection and empty for the children of a root.
type RelatedAccount struct {
	AccountID           int64  `json:"account_id"`
	ParentAccountID     *int64 `json:"parent_account_id"`
	CustomerID          int64  `json:"customer_id"`
	AccountName         string `json:"account_name"`
	AccountNumber       string `json:"account_number"`
	LegacyAccountNumber string `json:"legacy_account_number"`
	AccountType         string `json:"account_type"`
	Status              string `json:"status"`
	NumberOfUsers       int    `json:"number_of_users"`
	Relationship        string `json:"relationship,omitempty"`
}

// NewRelatedAccount projects an account and tags it with a relationship
func NewRelatedAccount(a *Account, relationship string) RelatedAccount {
	return RelatedAccount{
		AccountID:           a.AccountID,
		ParentAccountID:     a.ParentAccountID,
		CustomerID:          a.CustomerID,
		AccountName:         a.AccountName,
		AccountNumber:       a.AccountNumber,
		LegacyAccountNumber: a.LegacyAccountNumber,
		AccountType:         a.AccountType,
		Status:              a.Status,
		NumberOfUsers:       a.NumberOfUsers,
		Relationship:        relationship,
	}
}

// AccountDetail is a single account together with its related accounts
type AccountDetail struct {
	Account         *Account         `json:"account"`
	RelatedAccounts []RelatedAccount `json:"related_accounts"`
}
