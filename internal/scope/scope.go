// Package scope resolves which account ids a query may touch.
package scope

import (
	"errors"
	"strconv"
	"strings"

	"fleet-admin/internal/models"
)

// AllToken requests the caller's full assignment
const AllToken = "all"

// ErrInvalidScope is returned when a requested id list has no usable id
var ErrInvalidScope = errors.New("invalid account scope")

// Policy describes how an endpoint treats a requested scope
type Policy struct {
	// VerifyMembership intersects requested ids with the caller's assignment. Ids outside
	// it are dropped silently so inaccessible accounts are never confirmed to exist.
	VerifyMembership bool
	// DefaultToCustomer constrains an unscoped request to the caller's customer instead of
	// the caller's assignment.
	DefaultToCustomer bool
}

var (
	// CustomerListing is the per-customer account listing: ids are taken as given.
	CustomerListing = Policy{VerifyMembership: false, DefaultToCustomer: true}
	// UserAssignment limits every query to the accounts assigned to the user.
	UserAssignment = Policy{VerifyMembership: true, DefaultToCustomer: false}
)

// Result is the authoritative scope of a query
type Result struct {
	// AccountIDs restricts the query when non-empty
	AccountIDs []int64
	// CustomerID restricts the query to a customer when no id set applies
	CustomerID *int64
	// Empty signals that the query must return no rows without touching the store
	Empty bool
}

// Unrestricted reports whether the result adds no account or customer constraint
func (r Result) Unrestricted() bool {
	return !r.Empty && len(r.AccountIDs) == 0 && r.CustomerID == nil
}

// Resolve computes the account ids a request may touch
func Resolve(caller models.Caller, requested string, policy Policy) (Result, error) {
	requested = strings.TrimSpace(requested)

	if requested == "" {
		if policy.DefaultToCustomer {
			customerID := caller.CustomerID
			return Result{CustomerID: &customerID}, nil
		}
		return fromAssignment(caller.AssignedAccountIDs), nil
	}

	if IsAll(requested) {
		return fromAssignment(caller.AssignedAccountIDs), nil
	}

	ids, err := ParseIDs(requested)
	if err != nil {
		return Result{}, err
	}

	if !policy.VerifyMembership {
		return Result{AccountIDs: ids}, nil
	}

	allowed := make([]int64, 0, len(ids))
	for _, id := range ids {
		if caller.HasAccount(id) {
			allowed = append(allowed, id)
		}
	}
	if len(allowed) == 0 {
		return Result{Empty: true}, nil
	}
	return Result{AccountIDs: allowed}, nil
}

// IsAll reports whether requested asks for the full scope
func IsAll(requested string) bool {
	return strings.EqualFold(strings.TrimSpace(requested), AllToken)
}

// ParseIDs parses a comma separated id list. Non-positive and unparseable tokens are
// discarded and duplicates removed, keeping first-seen order.
func ParseIDs(raw string) ([]int64, error) {
	tokens := strings.Split(raw, ",")
	ids := make([]int64, 0, len(tokens))
	seen := make(map[int64]struct{}, len(tokens))

	for _, token := range tokens {
		id, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, ErrInvalidScope
	}
	return ids, nil
}

func fromAssignment(assigned []int64) Result {
	if len(assigned) == 0 {
		return Result{Empty: true}
	}
	ids := make([]int64, len(assigned))
	copy(ids, assigned)
	return Result{AccountIDs: ids}
}
