package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func TestBuilder_SkipsAbsentValues(t *testing.T) {
	p := New().
		Contains("account_name", nil).
		Contains("account_name", strPtr("   ")).
		EqualsString("status", strPtr("")).
		Equals("customer_id", nil).
		Bool("is_customer_user", nil, false).
		DateRange("created_at", nil, nil).
		In("account_id", nil).
		In("account_id", []int64{}).
		Build()

	assert.True(t, p.IsEmpty())
}

func TestBuilder_AddsTypedClauses(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := New().
		Contains("account_name", strPtr(" North ")).
		Equals("customer_id", intPtr(3)).
		Bool("is_customer_user", strPtr("true"), false).
		DateRange("created_at", &from, nil).
		In("account_id", []int64{1, 2}).
		Build()

	clauses := p.Clauses()
	require.Len(t, clauses, 5)

	assert.Equal(t, KindContains, clauses[0].Kind)
	assert.Equal(t, []interface{}{"%North%"}, clauses[0].Args)
	assert.Equal(t, "customer_id = ?", clauses[1].SQL)
	assert.Equal(t, []interface{}{int64(3)}, clauses[1].Args)
	assert.Equal(t, []interface{}{true}, clauses[2].Args)
	assert.Equal(t, KindDateFrom, clauses[3].Kind)
	assert.False(t, p.Has(KindDateTo, "created_at"))
	assert.Equal(t, "account_id IN ?", clauses[4].SQL)
}

func TestBuilder_ContainsEscapesWildcards(t *testing.T) {
	p := New().Contains("account_name", strPtr("50%_off")).Build()

	assert.Equal(t, []interface{}{`%50\%\_off%`}, p.Clauses()[0].Args)
}

func TestBuilder_SoftDeleteModes(t *testing.T) {
	assert.Equal(t, []interface{}{false}, New().SoftDelete("is_deleted", ExcludeDeleted).Build().Clauses()[0].Args)
	assert.Equal(t, []interface{}{true}, New().SoftDelete("is_deleted", OnlyDeleted).Build().Clauses()[0].Args)
	assert.True(t, New().SoftDelete("is_deleted", IncludeDeleted).Build().IsEmpty())
}

func TestPredicate_ClausesIsACopy(t *testing.T) {
	p := New().Equals("customer_id", intPtr(1)).Build()
	clauses := p.Clauses()
	clauses[0].Column = "changed"

	assert.True(t, p.Has(KindEquals, "customer_id"))
}

func TestCoerceBool(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name     string
		value    interface{}
		fallback bool
		want     bool
	}{
		{"string true", "true", false, true},
		{"string false", "false", true, false},
		{"mixed case", " TRUE ", false, true},
		{"native true", true, false, true},
		{"native false", false, true, false},
		{"pointer", &yes, false, true},
		{"pointer false", &no, true, false},
		{"nil pointer falls back", (*bool)(nil), true, true},
		{"garbage falls back", "yes", false, false},
		{"garbage falls back to true", "1", true, true},
		{"number falls back", 1, false, false},
		{"nil falls back", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceBool(tt.value, tt.fallback))
		})
	}
}

func TestDeletedModeFromRaw(t *testing.T) {
	assert.Equal(t, ExcludeDeleted, DeletedModeFromRaw(nil))
	assert.Equal(t, ExcludeDeleted, DeletedModeFromRaw(strPtr("")))
	assert.Equal(t, ExcludeDeleted, DeletedModeFromRaw(strPtr("false")))
	assert.Equal(t, ExcludeDeleted, DeletedModeFromRaw(strPtr("maybe")))
	assert.Equal(t, OnlyDeleted, DeletedModeFromRaw(strPtr("true")))
	assert.Equal(t, IncludeDeleted, DeletedModeFromRaw(strPtr("all")))
}

func TestParseDateBound(t *testing.T) {
	got, err := ParseDateBound("", false)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseDateBound("2024-02-10", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseDateBound("2024-02-10", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 10, 23, 59, 59, 999999999, time.UTC), *got)

	got, err = ParseDateBound("2024-02-10T08:30:00Z", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC), *got)

	_, err = ParseDateBound("10/02/2024", false)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
