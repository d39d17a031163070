package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValidationError describes a single rejected field value.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// nonBlank reports whether s contains anything besides whitespace.
func nonBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ValidationError{Field: "date", Msg: fmt.Sprintf("%q is not a YYYY-MM-DD date", s)}
	}
	return t, nil
}

// ParseAmount parses a decimal money amount from user or file input.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, ValidationError{Field: "amount", Msg: fmt.Sprintf("%q is not a number", s)}
	}
	return d, nil
}
