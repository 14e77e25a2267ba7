package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"fleet-admin/internal/filter"
	"fleet-admin/internal/scope"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var instance *Validator

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// scopeTokenPattern admits any comma list; the scope resolver drops the tokens it cannot use.
var scopeTokenPattern = regexp.MustCompile(`^[0-9A-Za-z.,\s+-]+$`)

// NewValidator creates a new validator instance with the query rules registered
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("date_bound", validateDateBound)
	_ = v.RegisterValidation("scope_token", validateScopeToken)
	_ = v.RegisterValidation("deleted_flag", validateDeletedFlag)
	_ = v.RegisterValidation("int64_value", validateInt64Value)

	// Report fields by the query parameter a client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "param", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// validateDateBound accepts YYYY-MM-DD or RFC 3339 timestamps
func validateDateBound(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if strings.TrimSpace(raw) == "" {
		return true
	}
	_, err := filter.ParseDateBound(raw, false)
	return err == nil
}

// validateScopeToken accepts "all" or a comma separated list of tokens
func validateScopeToken(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" || strings.EqualFold(raw, scope.AllToken) {
		return true
	}
	return scopeTokenPattern.MatchString(raw)
}

// validateDeletedFlag accepts the deletion-status overrides understood by the filters
func validateDeletedFlag(fl validator.FieldLevel) bool {
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "", "true", "false", "all", "any":
		return true
	}
	return false
}

// validateInt64Value accepts a non-negative whole number that fits in an int64
func validateInt64Value(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	return err == nil && v >= 0
}
