package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccount_Validate(t *testing.T) {
	parent := int64(4)
	self := int64(9)

	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{name: "root account", account: Account{AccountName: "Depot"}},
		{name: "child account", account: Account{AccountID: 9, AccountName: "Yard", ParentAccountID: &parent}},
		{name: "missing name", account: Account{}, wantErr: ErrAccountNameRequired},
		{name: "own parent", account: Account{AccountID: 9, AccountName: "Loop", ParentAccountID: &self}, wantErr: ErrAccountSelfParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.account.Validate(), tt.wantErr)
		})
	}
}

func TestAccount_BeforeCreateDefaultsStatus(t *testing.T) {
	account := &Account{AccountName: "Depot"}
	assert.NoError(t, account.BeforeCreate(nil))
	assert.Equal(t, AccountStatusActive, account.Status)

	closed := &Account{AccountName: "Depot", Status: AccountStatusClosed}
	assert.NoError(t, closed.BeforeCreate(nil))
	assert.Equal(t, AccountStatusClosed, closed.Status)
}

func TestAccount_IsRoot(t *testing.T) {
	parent := int64(1)
	assert.True(t, (&Account{}).IsRoot())
	assert.False(t, (&Account{ParentAccountID: &parent}).IsRoot())
}

func TestNewRelatedAccount(t *testing.T) {
	parent := int64(1)
	a := &Account{
		AccountID:       2,
		ParentAccountID: &parent,
		CustomerID:      7,
		AccountName:     "North Yard",
		AccountNumber:   "AC100",
		AccountType:     "fleet",
		Status:          AccountStatusActive,
		NumberOfUsers:   3,
		IsDeleted:       true,
	}

	related := NewRelatedAccount(a, RelationshipSibling)

	assert.Equal(t, RelatedAccount{
		AccountID:       2,
		ParentAccountID: &parent,
		CustomerID:      7,
		AccountName:     "North Yard",
		AccountNumber:   "AC100",
		AccountType:     "fleet",
		Status:          AccountStatusActive,
		NumberOfUsers:   3,
		Relationship:    RelationshipSibling,
	}, related)
}

func TestCaller_HasAccount(t *testing.T) {
	caller := Caller{UserID: 1, CustomerID: 7, AssignedAccountIDs: []int64{3, 5}}
	assert.True(t, caller.HasAccount(5))
	assert.False(t, caller.HasAccount(4))
	assert.False(t, Caller{}.HasAccount(0))
}

func TestUser_Names(t *testing.T) {
	u := &User{FirstName: "Ada", LastName: "Byrne"}
	assert.Equal(t, "Ada Byrne", u.FullName())
	assert.Equal(t, "", u.RoleName())

	u.Role = &UserRole{Name: "Fleet Manager"}
	assert.Equal(t, "Fleet Manager", u.RoleName())
}
