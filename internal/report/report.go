// Package report renders transaction exports and the monthly statement.
package report

import (
	"strings"

	"finai/internal/models"
)

var transactionHeader = []string{"Date", "Type", "Category", "Amount", "Description"}

func transactionRow(t models.Transaction) []string {
	return []string{
		t.Date.Format("2006-01-02"),
		t.Type,
		t.Category,
		t.Amount.StringFixed(2),
		t.Description,
	}
}

func trimTo(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "..."
}
