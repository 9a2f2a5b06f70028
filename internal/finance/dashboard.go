// Package finance holds the pure aggregation logic behind the dashboard, budget usage,
// goal milestones and the assistant's financial summary. Nothing here touches storage.
package finance

import (
	"fmt"
	"sort"
	"time"

	"finai/internal/models"

	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

// TrendMonths is the number of months in the dashboard trend.
const TrendMonths = 6

type CategoryAmount struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"` // share of total expense
}

type MonthlyTrend struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type DashboardResult struct {
	Month             string           `json:"month"`
	TotalIncome       decimal.Decimal  `json:"total_income"`
	TotalExpense      decimal.Decimal  `json:"total_expense"`
	CategoryBreakdown []CategoryAmount `json:"category_breakdown"`
	TopCategories     []CategoryAmount `json:"top_categories"`
	MonthlyTrends     []MonthlyTrend   `json:"monthly_trends"`
}

// ParseMonth parses a YYYY-MM key into the first instant of that month (UTC).
func ParseMonth(month string) (time.Time, error) {
	if len(month) != len(monthLayout) {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return t, nil
}

// MonthStart truncates t to the first day of its month, keeping the location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthKey formats t as YYYY-MM.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}

func inWindow(d, start, end time.Time) bool {
	return !d.Before(start) && d.Before(end)
}

// totals sums income and expense for transactions dated in [start, end).
func totals(txs []models.Transaction, start, end time.Time) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for i := range txs {
		t := &txs[i]
		if !inWindow(t.Date, start, end) {
			continue
		}
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}

// expenseByCategory groups expenses in [start, end) by category, in first-seen order.
func expenseByCategory(txs []models.Transaction, start, end time.Time) []CategoryAmount {
	index := make(map[string]int)
	var out []CategoryAmount
	for i := range txs {
		t := &txs[i]
		if !t.IsExpense() || !inWindow(t.Date, start, end) {
			continue
		}
		pos, ok := index[t.Category]
		if !ok {
			pos = len(out)
			index[t.Category] = pos
			out = append(out, CategoryAmount{Category: t.Category, Amount: decimal.Zero})
		}
		out[pos].Amount = out[pos].Amount.Add(t.Amount)
	}
	return out
}

// rankByAmount returns a copy sorted descending by amount; equal amounts keep their order.
func rankByAmount(in []CategoryAmount) []CategoryAmount {
	out := make([]CategoryAmount, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// BuildDashboard aggregates txs for the month starting at month. Transactions outside
// the month only contribute to the six-month trend.
func BuildDashboard(txs []models.Transaction, month time.Time) DashboardResult {
	start := MonthStart(month)
	end := start.AddDate(0, 1, 0)

	res := DashboardResult{Month: MonthKey(start)}
	res.TotalIncome, res.TotalExpense = totals(txs, start, end)

	res.CategoryBreakdown = expenseByCategory(txs, start, end)
	if res.CategoryBreakdown == nil {
		res.CategoryBreakdown = []CategoryAmount{}
	}
	for i := range res.CategoryBreakdown {
		res.CategoryBreakdown[i].Percentage = Percent(res.CategoryBreakdown[i].Amount, res.TotalExpense).Round(2)
	}

	top := rankByAmount(res.CategoryBreakdown)
	if len(top) > 3 {
		top = top[:3]
	}
	res.TopCategories = top

	res.MonthlyTrends = make([]MonthlyTrend, 0, TrendMonths)
	for i := TrendMonths - 1; i >= 0; i-- {
		ms := start.AddDate(0, -i, 0)
		income, expense := totals(txs, ms, ms.AddDate(0, 1, 0))
		res.MonthlyTrends = append(res.MonthlyTrends, MonthlyTrend{
			Month:   MonthKey(ms),
			Income:  income,
			Expense: expense,
		})
	}

	return res
}

// TrendWindow returns the date range BuildDashboard reads for month: the oldest trend
// month through the end of the reference month.
func TrendWindow(month time.Time) (from, to time.Time) {
	start := MonthStart(month)
	return start.AddDate(0, -(TrendMonths - 1), 0), start.AddDate(0, 1, 0)
}
