package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleQuery struct {
	CreatedFrom string `query:"created_from" validate:"omitempty,date_bound"`
	AccountIDs  string `query:"account_ids" validate:"omitempty,scope_token"`
	IsDeleted   string `query:"is_deleted" validate:"omitempty,deleted_flag"`
	ParentID    string `query:"parent_account_id" validate:"omitempty,int64_value"`
}

func TestValidator_DateBound(t *testing.T) {
	v := NewValidator().GetValidate()

	for _, raw := range []string{"", "2024-01-31", "2024-01-31T10:00:00Z", "2024-01-31T10:00:00+02:00"} {
		assert.NoError(t, v.Struct(sampleQuery{CreatedFrom: raw}), raw)
	}
	for _, raw := range []string{"31/01/2024", "yesterday", "2024-13-01"} {
		assert.Error(t, v.Struct(sampleQuery{CreatedFrom: raw}), raw)
	}
}

func TestValidator_ScopeToken(t *testing.T) {
	v := NewValidator().GetValidate()

	// Unusable tokens are left for the scope resolver to discard.
	for _, raw := range []string{"all", "ALL", "101", "101, 102,103", ",,", "5,abc", "5,-3", "+7", "abc", "5,1.5"} {
		assert.NoError(t, v.Struct(sampleQuery{AccountIDs: raw}), raw)
	}
	for _, raw := range []string{"101;102", "1/2", "5,'1'", "<5>"} {
		assert.Error(t, v.Struct(sampleQuery{AccountIDs: raw}), raw)
	}
}

func TestValidator_Int64Value(t *testing.T) {
	v := NewValidator().GetValidate()

	for _, raw := range []string{"", "0", "12", " 42 ", "9223372036854775807"} {
		assert.NoError(t, v.Struct(sampleQuery{ParentID: raw}), raw)
	}
	for _, raw := range []string{"1.5", "99999999999999999999", "-1", "1e3", "x"} {
		assert.Error(t, v.Struct(sampleQuery{ParentID: raw}), raw)
	}
}

func TestValidator_DeletedFlag(t *testing.T) {
	v := NewValidator().GetValidate()

	for _, raw := range []string{"true", "False", "all", "any"} {
		assert.NoError(t, v.Struct(sampleQuery{IsDeleted: raw}), raw)
	}
	assert.Error(t, v.Struct(sampleQuery{IsDeleted: "maybe"}))
}

func TestValidator_ReportsQueryNames(t *testing.T) {
	err := NewValidator().GetValidate().Struct(sampleQuery{AccountIDs: "101;102"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "account_ids", verrs[0].Field())
	assert.Equal(t, "scope_token", verrs[0].Tag())
}

func TestGetValidator_ReturnsSharedInstance(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
