package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fleet-admin/internal/pagination"
)

func TestDateFormatter(t *testing.T) {
	at := time.Date(2023, 12, 31, 23, 5, 0, 0, time.UTC)

	assert.Equal(t, "12/31/2023, 11:05:00 PM", Date().Apply(at, 0, 0))
	assert.Equal(t, "12/31/2023, 11:05:00 PM", Date().Apply(&at, 0, 0))
	assert.Equal(t, "12/31/2023, 11:05:00 PM", Date().Apply("2023-12-31T23:05:00Z", 0, 0))
	assert.Equal(t, NotAvailable, Date().Apply(nil, 0, 0))
	assert.Equal(t, NotAvailable, Date().Apply((*time.Time)(nil), 0, 0))
	assert.Equal(t, NotAvailable, Date().Apply(time.Time{}, 0, 0))
	assert.Equal(t, NotAvailable, Date().Apply("not a date", 0, 0))

	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2023-12-31 18:05", DateIn("2006-01-02 15:04", est).Apply(at, 0, 0))
}

func TestBooleanFormatter(t *testing.T) {
	yes := true
	assert.Equal(t, "Yes", Boolean().Apply(true, 0, 0))
	assert.Equal(t, "No", Boolean().Apply(false, 0, 0))
	assert.Equal(t, "Yes", Boolean().Apply(&yes, 0, 0))
	assert.Equal(t, "Yes", Boolean().Apply("TRUE", 0, 0))
	assert.Equal(t, "No", Boolean().Apply(nil, 0, 0))
}

func TestCurrencyFormatter(t *testing.T) {
	assert.Equal(t, "$10.00", Currency().Apply(10, 0, 0))
	assert.Equal(t, "$10.50", Currency().Apply(10.5, 0, 0))
	assert.Equal(t, "$0.13", Currency().Apply(decimal.RequireFromString("0.125"), 0, 0))
	assert.Equal(t, "$99.90", Currency().Apply("99.9", 0, 0))
	assert.Equal(t, NotAvailable, Currency().Apply("abc", 0, 0))
	assert.Equal(t, NotAvailable, Currency().Apply(nil, 0, 0))
}

func TestSerialFormatter(t *testing.T) {
	assert.Equal(t, 1, Serial().Apply(nil, 0, 0))
	assert.Equal(t, 43, Serial().Apply("ignored", 40, 2))
}

func TestCellValueNilHandling(t *testing.T) {
	var s *string
	assert.Equal(t, NotAvailable, cellValue(nil))
	assert.Equal(t, NotAvailable, cellValue(s))
	name := "fleet"
	assert.Equal(t, "fleet", cellValue(&name))
	assert.Equal(t, 7, cellValue(7))
}

func TestPageSubtitle(t *testing.T) {
	meta := pagination.NewMeta(45, 3, 20)
	assert.Equal(t,
		"Page 3 of 3 | Records 41-45 of 45 | Date: 1/2/2024, 3:04:05 PM",
		PageSubtitle(meta, 40, "1/2/2024, 3:04:05 PM"))

	meta = pagination.NewMeta(0, 1, 20)
	assert.Equal(t,
		"Page 1 of 0 | Records 1-0 of 0 | Date: now",
		PageSubtitle(meta, 0, "now"))
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 678000000, time.UTC)

	assert.Equal(t, "2024-01-02T03-04-05", Timestamp(at))
	assert.Equal(t, "accounts_all_page_1_of_3_2024-01-02T03-04-05.xlsx", Filename("accounts", "all", 1, 3, at))
	assert.Equal(t, "secondary_contacts_101-102_page_2_of_2_2024-01-02T03-04-05.xlsx",
		Filename("secondary_contacts", "101,102", 2, 2, at))
	assert.Equal(t, "users_all_page_1_of_0_2024-01-02T03-04-05.xlsx", Filename("users", "", 1, 0, at))
}
