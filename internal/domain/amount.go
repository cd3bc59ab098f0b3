package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError reports a user-supplied field that failed validation.
// No state may be mutated once one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// RequireField rejects empty text for a required field.
func RequireField(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: field, Reason: "is required"}
	}
	return s, nil
}

// ParseAmount converts user-entered text into a decimal value. It is the
// single entry point for numeric input; form values never reach the ledger
// without passing through here.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, &ValidationError{Field: field, Reason: "is required"}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Reason: "must be a number"}
	}
	return d, nil
}
