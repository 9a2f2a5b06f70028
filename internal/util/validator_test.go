package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateAmount_Positive(t *testing.T) {
	testCases := []string{"0.01", "1", "100.5", "9999999.99"}

	for _, s := range testCases {
		if err := ValidateAmount(decimal.RequireFromString(s)); err != nil {
			t.Errorf("ValidateAmount(%s) error = %v, want nil", s, err)
		}
	}
}

func TestValidateAmount_Invalid(t *testing.T) {
	testCases := []string{"0", "-0.01", "-100", "10000000", "100000000"}

	for _, s := range testCases {
		if err := ValidateAmount(decimal.RequireFromString(s)); err == nil {
			t.Errorf("ValidateAmount(%s) error = nil, want error", s)
		}
	}
}

func TestValidateMonth(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "2025-06"}
	for _, m := range valid {
		if err := ValidateMonth(m); err != nil {
			t.Errorf("ValidateMonth(%q) error = %v, want nil", m, err)
		}
	}

	invalid := []string{"", "2024-1", "2024-13", "2024/01", "June", "2024-01-01"}
	for _, m := range invalid {
		if err := ValidateMonth(m); err == nil {
			t.Errorf("ValidateMonth(%q) error = nil, want error", m)
		}
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2025-06-03", "2025-06-03T15:04:05", "2025-06-03T23:30:00+02:00"} {
		got, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q) error = %v", s, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", s, got, want)
		}
	}

	for _, s := range []string{"", "2024/01/01", "01-01-2024", "2024-13-01", "not-a-date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", s)
		}
	}
}
