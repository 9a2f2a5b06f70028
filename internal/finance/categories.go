package finance

import (
	"slices"
	"strings"

	"finai/internal/models"
)

var (
	expenseCategories = []string{
		"Food",
		"Transportation",
		"Housing",
		"Utilities",
		"Entertainment",
		"Healthcare",
		"Shopping",
		"Other",
	}

	incomeCategories = []string{
		"Salary",
		"Freelance",
		"Investments",
		"Gift",
		"Other",
	}
)

// ValidateCategory reports whether category belongs to the closed list for txType.
// Unknown transaction types are never valid.
func ValidateCategory(category, txType string) bool {
	switch txType {
	case models.TypeIncome:
		return slices.Contains(incomeCategories, category)
	case models.TypeExpense:
		return slices.Contains(expenseCategories, category)
	}
	return false
}

// Categories returns copies of the allowed category lists keyed by transaction type.
func Categories() map[string][]string {
	return map[string][]string{
		models.TypeIncome:  slices.Clone(incomeCategories),
		models.TypeExpense: slices.Clone(expenseCategories),
	}
}

// NormalizeCategory matches category case-insensitively against the list for txType and
// returns the canonical spelling.
func NormalizeCategory(category, txType string) (string, bool) {
	var list []string
	switch txType {
	case models.TypeIncome:
		list = incomeCategories
	case models.TypeExpense:
		list = expenseCategories
	}
	category = strings.TrimSpace(category)
	for _, c := range list {
		if strings.EqualFold(c, category) {
			return c, true
		}
	}
	return "", false
}
