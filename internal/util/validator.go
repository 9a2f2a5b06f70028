package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(10000000)

// ValidateAmount requires a positive amount below 10,000,000.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount.String())
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount.String())
	}
	return nil
}

// ValidateMonth checks a YYYY-MM month key.
func ValidateMonth(month string) error {
	if month == "" {
		return fmt.Errorf("month is empty")
	}
	if len(month) != 7 {
		return fmt.Errorf("invalid month format %q, expected YYYY-MM", month)
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("invalid month format %q, expected YYYY-MM", month)
	}
	return nil
}

var dateLayouts = []string{
	time.RFC3339,          // 2025-06-03T00:00:00+02:00
	"2006-01-02T15:04:05", // 2025-06-03T00:00:00
	"2006-01-02",          // 2025-06-03
}

// ParseDate accepts the layouts the mobile client sends and returns the calendar
// date at 00:00 UTC.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}
