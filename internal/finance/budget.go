package finance

import (
	"time"

	"finai/internal/models"

	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierNominal  Tier = "nominal"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

var (
	warningThreshold  = decimal.NewFromInt(75)
	criticalThreshold = decimal.NewFromInt(90)
)

type BudgetUsage struct {
	Spent      decimal.Decimal `json:"spent"`
	Percentage decimal.Decimal `json:"percentage"`
	Tier       Tier            `json:"tier"`
}

// CheckBudgetUsage classifies spent against a budget amount. The tier is decided on the
// unrounded percentage; the reported percentage is rounded to two places.
func CheckBudgetUsage(amount, spent decimal.Decimal) BudgetUsage {
	pct := Percent(spent, amount)

	tier := TierNominal
	switch {
	case pct.GreaterThanOrEqual(criticalThreshold):
		tier = TierCritical
	case pct.GreaterThanOrEqual(warningThreshold):
		tier = TierWarning
	}

	return BudgetUsage{Spent: spent, Percentage: pct.Round(2), Tier: tier}
}

// SpentByCategory sums expense amounts per category for the month starting at month.
func SpentByCategory(txs []models.Transaction, month time.Time) map[string]decimal.Decimal {
	start := MonthStart(month)
	out := make(map[string]decimal.Decimal)
	for _, c := range expenseByCategory(txs, start, start.AddDate(0, 1, 0)) {
		out[c.Category] = c.Amount
	}
	return out
}
