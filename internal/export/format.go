package export

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NotAvailable is written for values that are missing after formatting
const NotAvailable = "N/A"

// DateLayout matches an en-US locale date-time string
const DateLayout = "1/2/2006, 3:04:05 PM"

// FormatKind selects how a column value is rendered
type FormatKind int

const (
	FormatNone FormatKind = iota
	FormatDate
	FormatBoolean
	FormatCurrency
	FormatSerial
	FormatCustom
)

// Formatter renders a cell value. Build a Formatter with one of the constructors; the zero
// value writes values unchanged.
type Formatter struct {
	Kind     FormatKind
	Layout   string
	Location *time.Location
	Custom   func(value interface{}) interface{}
}

func Date() Formatter {
	return Formatter{Kind: FormatDate, Layout: DateLayout, Location: time.UTC}
}

// DateIn renders dates with layout in loc
func DateIn(layout string, loc *time.Location) Formatter {
	if layout == "" {
		layout = DateLayout
	}
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{Kind: FormatDate, Layout: layout, Location: loc}
}

func Boolean() Formatter {
	return Formatter{Kind: FormatBoolean}
}

func Currency() Formatter {
	return Formatter{Kind: FormatCurrency}
}

// Serial numbers rows from the sheet's offset, ignoring the column value
func Serial() Formatter {
	return Formatter{Kind: FormatSerial}
}

func Custom(fn func(value interface{}) interface{}) Formatter {
	return Formatter{Kind: FormatCustom, Custom: fn}
}

// Apply renders value. rowIndex is zero based within the sheet and skip is the number of
// records before this page.
func (f Formatter) Apply(value interface{}, skip, rowIndex int) interface{} {
	switch f.Kind {
	case FormatDate:
		return formatDate(value, f.Layout, f.Location)
	case FormatBoolean:
		return formatBoolean(value)
	case FormatCurrency:
		return formatCurrency(value)
	case FormatSerial:
		return skip + rowIndex + 1
	case FormatCustom:
		if f.Custom == nil {
			return value
		}
		return f.Custom(value)
	default:
		return value
	}
}

func formatDate(value interface{}, layout string, loc *time.Location) interface{} {
	if layout == "" {
		layout = DateLayout
	}
	if loc == nil {
		loc = time.UTC
	}

	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return NotAvailable
		}
		t = *v
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return NotAvailable
		}
		t = parsed
	default:
		return NotAvailable
	}

	if t.IsZero() {
		return NotAvailable
	}
	return t.In(loc).Format(layout)
}

func formatBoolean(value interface{}) interface{} {
	switch v := value.(type) {
	case bool:
		return yesNo(v)
	case *bool:
		return yesNo(v != nil && *v)
	case string:
		return yesNo(strings.EqualFold(strings.TrimSpace(v), "true"))
	default:
		return yesNo(false)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatCurrency(value interface{}) interface{} {
	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return NotAvailable
		}
		d = *v
	case float64:
		d = decimal.NewFromFloat(v)
	case float32:
		d = decimal.NewFromFloat32(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int32:
		d = decimal.NewFromInt32(v)
	case int64:
		d = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return NotAvailable
		}
		d = parsed
	default:
		return NotAvailable
	}
	return "$" + d.StringFixed(2)
}

// cellValue turns a formatted value into what is written to the sheet
func cellValue(value interface{}) interface{} {
	if isNil(value) {
		return NotAvailable
	}
	switch v := value.(type) {
	case *string:
		return *v
	case *int64:
		return *v
	case *int:
		return *v
	case fmt.Stringer:
		return v.String()
	}
	return value
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}
