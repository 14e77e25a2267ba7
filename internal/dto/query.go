package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fleet-admin/internal/filter"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"
)

// ErrInvalidNumber is returned for a numeric filter that is not a non-negative int64
var ErrInvalidNumber = errors.New("invalid number")

// PageQuery carries the raw pagination parameters. They are normalized, never rejected.
type PageQuery struct {
	Page    string `query:"page"`
	PerPage string `query:"perPage"`
}

// Params normalizes the page query. An absent perPage takes defaultPerPage and the result is
// capped at maxPerPage.
func (q PageQuery) Params(defaultPerPage, maxPerPage int) pagination.Params {
	perPage := q.PerPage
	if strings.TrimSpace(perPage) == "" && defaultPerPage > 0 {
		perPage = strconv.Itoa(defaultPerPage)
	}
	return pagination.Normalize(q.Page, perPage).Clamp(maxPerPage)
}

// ExportParams normalizes the page query of an export. The listing cap does not apply; the
// export row limit is checked by the export service instead.
func (q PageQuery) ExportParams(defaultPerPage int) pagination.Params {
	return q.Params(defaultPerPage, 0)
}

// CreatedRange is the created_at window shared by every listing
type CreatedRange struct {
	CreatedFrom string `query:"created_from" validate:"omitempty,date_bound"`
	CreatedTo   string `query:"created_to" validate:"omitempty,date_bound"`
}

// Bounds parses the window. A date-only upper bound covers the whole day.
func (r CreatedRange) Bounds() (from, to *time.Time, err error) {
	if from, err = filter.ParseDateBound(r.CreatedFrom, false); err != nil {
		return nil, nil, err
	}
	if to, err = filter.ParseDateBound(r.CreatedTo, true); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// AccountListQuery is the query string of the account listings and exports
type AccountListQuery struct {
	PageQuery
	CreatedRange
	// AccountIDs scopes the per-customer listing
	AccountIDs string `query:"account_ids" validate:"omitempty,scope_token"`
	// AccountID scopes the per-user listing: "all", one id or a comma separated list
	AccountID           string `query:"account_id" validate:"omitempty,scope_token"`
	ParentAccountID     string `query:"parent_account_id" validate:"omitempty,int64_value"`
	AccountName         string `query:"account_name" validate:"omitempty,max=255"`
	AccountNumber       string `query:"account_number" validate:"omitempty,max=50"`
	LegacyAccountNumber string `query:"legacy_account_number" validate:"omitempty,max=50"`
	AccountType         string `query:"account_type" validate:"omitempty,max=50"`
	Status              string `query:"status" validate:"omitempty,max=20"`
	NumberOfUsers       string `query:"number_of_users" validate:"omitempty,int64_value"`
	IsDeleted           string `query:"is_deleted" validate:"omitempty,deleted_flag"`
}

// Filters converts the query into account filters
func (q AccountListQuery) Filters() (models.AccountFilters, error) {
	from, to, err := q.Bounds()
	if err != nil {
		return models.AccountFilters{}, err
	}
	parentID, err := optionalInt("parent_account_id", q.ParentAccountID)
	if err != nil {
		return models.AccountFilters{}, err
	}
	numberOfUsers, err := optionalInt("number_of_users", q.NumberOfUsers)
	if err != nil {
		return models.AccountFilters{}, err
	}
	return models.AccountFilters{
		ParentAccountID:     parentID,
		AccountName:         optionalString(q.AccountName),
		AccountNumber:       optionalString(q.AccountNumber),
		LegacyAccountNumber: optionalString(q.LegacyAccountNumber),
		AccountType:         optionalString(q.AccountType),
		Status:              optionalString(q.Status),
		NumberOfUsers:       numberOfUsers,
		IsDeleted:           optionalString(q.IsDeleted),
		CreatedFrom:         from,
		CreatedTo:           to,
	}, nil
}

// UserListQuery is the query string of the per-customer user listing
type UserListQuery struct {
	PageQuery
	CreatedRange
	FirstName      string `query:"first_name" validate:"omitempty,max=100"`
	LastName       string `query:"last_name" validate:"omitempty,max=100"`
	Email          string `query:"email" validate:"omitempty,max=255"`
	PhoneNumber    string `query:"phone_number" validate:"omitempty,max=30"`
	Designation    string `query:"designation" validate:"omitempty,max=100"`
	Status         string `query:"status" validate:"omitempty,max=20"`
	UserRoleID     string `query:"user_role_id" validate:"omitempty,int64_value"`
	IsCustomerUser string `query:"is_customer_user" validate:"omitempty,oneof=true false"`
}

// Filters converts the query into user filters
func (q UserListQuery) Filters() (models.UserFilters, error) {
	from, to, err := q.Bounds()
	if err != nil {
		return models.UserFilters{}, err
	}
	roleID, err := optionalInt("user_role_id", q.UserRoleID)
	if err != nil {
		return models.UserFilters{}, err
	}
	return models.UserFilters{
		FirstName:      optionalString(q.FirstName),
		LastName:       optionalString(q.LastName),
		Email:          optionalString(q.Email),
		PhoneNumber:    optionalString(q.PhoneNumber),
		Designation:    optionalString(q.Designation),
		Status:         optionalString(q.Status),
		UserRoleID:     roleID,
		IsCustomerUser: optionalString(q.IsCustomerUser),
		CreatedFrom:    from,
		CreatedTo:      to,
	}, nil
}

// SecondaryContactQuery is the query string of the secondary contact listing
type SecondaryContactQuery struct {
	PageQuery
	FirstName   string `query:"first_name" validate:"omitempty,max=100"`
	LastName    string `query:"last_name" validate:"omitempty,max=100"`
	Email       string `query:"email" validate:"omitempty,max=255"`
	PhoneNumber string `query:"phone_number" validate:"omitempty,max=30"`
	Designation string `query:"designation" validate:"omitempty,max=100"`
	Status      string `query:"status" validate:"omitempty,max=20"`
}

// Filters converts the query into secondary contact filters
func (q SecondaryContactQuery) Filters() models.SecondaryContactFilters {
	return models.SecondaryContactFilters{
		FirstName:   optionalString(q.FirstName),
		LastName:    optionalString(q.LastName),
		Email:       optionalString(q.Email),
		PhoneNumber: optionalString(q.PhoneNumber),
		Designation: optionalString(q.Designation),
		Status:      optionalString(q.Status),
	}
}

// CustomerListQuery is the query string of the customer listing
type CustomerListQuery struct {
	PageQuery
	CreatedRange
	CustomerName    string `query:"customer_name" validate:"omitempty,max=255"`
	CustomerClass   string `query:"customer_class" validate:"omitempty,max=50"`
	ReferenceNumber string `query:"reference_number" validate:"omitempty,max=50"`
	Status          string `query:"status" validate:"omitempty,max=20"`
	IsDeleted       string `query:"is_deleted" validate:"omitempty,deleted_flag"`
}

// Filters converts the query into customer filters
func (q CustomerListQuery) Filters() (models.CustomerFilters, error) {
	from, to, err := q.Bounds()
	if err != nil {
		return models.CustomerFilters{}, err
	}
	return models.CustomerFilters{
		CustomerName:    optionalString(q.CustomerName),
		CustomerClass:   optionalString(q.CustomerClass),
		ReferenceNumber: optionalString(q.ReferenceNumber),
		Status:          optionalString(q.Status),
		IsDeleted:       optionalString(q.IsDeleted),
		CreatedFrom:     from,
		CreatedTo:       to,
	}, nil
}

func optionalString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

// optionalInt parses a supplied numeric filter. A value that was sent but cannot be used is an
// error so the filter is never dropped.
func optionalInt(name, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, name, raw)
	}
	return &v, nil
}
