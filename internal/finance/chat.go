package finance

import (
	"fmt"
	"strings"
	"time"

	"finai/internal/models"

	"github.com/shopspring/decimal"
)

// momAlertRatio is the month-over-month expense growth above which the summary warns.
var momAlertRatio = decimal.RequireFromString("1.10")

const averageMonths = 6

// ChatInput is everything the assistant summary is built from, for one user.
type ChatInput struct {
	Transactions []models.Transaction
	Budgets      []models.Budget // Spent populated
	Goals        []models.SavingGoal
	Range        *DateRange // nil means all transactions
	Now          time.Time
}

// BuildChatContext renders the financial summary used as the assistant's system prompt.
func BuildChatContext(in ChatInput) string {
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	scoped := in.Transactions
	if in.Range != nil {
		scoped = make([]models.Transaction, 0, len(in.Transactions))
		for _, t := range in.Transactions {
			if in.Range.Contains(t.Date) {
				scoped = append(scoped, t)
			}
		}
	}

	var b strings.Builder
	b.WriteString("You are a helpful personal finance assistant. Use the user's financial summary below to answer.\n\n")

	if in.Range != nil {
		fmt.Fprintf(&b, "Period: %s\n", in.Range.From.Format("January 2006"))
	} else {
		b.WriteString("Period: all time\n")
	}

	income, expense := sumByType(scoped)
	fmt.Fprintf(&b, "Total income: %s\n", income.StringFixed(2))
	fmt.Fprintf(&b, "Total expense: %s\n", expense.StringFixed(2))
	fmt.Fprintf(&b, "Estimated savings: %s\n", income.Sub(expense).StringFixed(2))
	fmt.Fprintf(&b, "Transactions: %d\n", len(scoped))

	if biggest, ok := biggestExpenseCategory(scoped); ok {
		fmt.Fprintf(&b, "Biggest expense category: %s (%s)\n", biggest.Category, biggest.Amount.StringFixed(2))
	}

	avgIncome, avgExpense := trailingAverages(in.Transactions, now)
	fmt.Fprintf(&b, "Average monthly income (last %d months): %s\n", averageMonths, avgIncome.StringFixed(2))
	fmt.Fprintf(&b, "Average monthly expense (last %d months): %s\n", averageMonths, avgExpense.StringFixed(2))

	if increase, ok := expenseIncrease(in.Transactions, now); ok {
		fmt.Fprintf(&b, "Alert: last month's expenses rose %.1f%% compared to the month before.\n", increase)
	}

	b.WriteString("\nBudgets:\n")
	if len(in.Budgets) == 0 {
		b.WriteString("- none\n")
	}
	for _, bu := range in.Budgets {
		fmt.Fprintf(&b, "- %s %s: %s of %s spent\n", bu.Month, bu.Category, bu.Spent.StringFixed(2), bu.Amount.StringFixed(2))
	}

	b.WriteString("\nSaving goals:\n")
	if len(in.Goals) == 0 {
		b.WriteString("- none\n")
	}
	for _, g := range in.Goals {
		fmt.Fprintf(&b, "- %s: %s / %s\n", g.Title, g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2))
	}

	return b.String()
}

func sumByType(txs []models.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}

func biggestExpenseCategory(txs []models.Transaction) (CategoryAmount, bool) {
	ranked := rankByAmount(expenseByCategory(txs, time.Time{}, maxTime))
	if len(ranked) == 0 {
		return CategoryAmount{}, false
	}
	return ranked[0], true
}

var maxTime = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// trailingAverages averages income and expense over the calendar months now-5..now,
// dividing by the number of those months that have any transaction.
func trailingAverages(txs []models.Transaction, now time.Time) (income, expense decimal.Decimal) {
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := current.AddDate(0, -(averageMonths - 1), 0)
	to := current.AddDate(0, 1, 0)

	active := make(map[string]struct{})
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range txs {
		if !inWindow(t.Date, from, to) {
			continue
		}
		active[MonthKey(t.Date)] = struct{}{}
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	if len(active) == 0 {
		return decimal.Zero, decimal.Zero
	}
	n := decimal.NewFromInt(int64(len(active)))
	return income.Div(n), expense.Div(n)
}

// expenseIncrease compares last calendar month's expense with the month before it.
// It returns the increase in percent when it exceeds 10%.
func expenseIncrease(txs []models.Transaction, now time.Time) (float64, bool) {
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := current.AddDate(0, -1, 0)
	prior := current.AddDate(0, -2, 0)

	_, lastExpense := totals(txs, last, current)
	_, priorExpense := totals(txs, prior, last)
	if !priorExpense.IsPositive() || !lastExpense.GreaterThan(priorExpense.Mul(momAlertRatio)) {
		return 0, false
	}
	pct, _ := Percent(lastExpense.Sub(priorExpense), priorExpense).Float64()
	return pct, true
}
