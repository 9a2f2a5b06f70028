package finance

import (
	"strings"
	"testing"
	"time"

	"finai/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildChatContext_Totals(t *testing.T) {
	now := day(2024, time.June, 15)
	in := ChatInput{
		Transactions: []models.Transaction{
			tx(models.TypeIncome, "Salary", "2000", day(2024, time.June, 1)),
			tx(models.TypeExpense, "Food", "50", day(2024, time.June, 3)),
			tx(models.TypeExpense, "Food", "30", day(2024, time.June, 4)),
			tx(models.TypeExpense, "Housing", "70", day(2024, time.June, 5)),
		},
		Budgets: []models.Budget{{Category: "Food", Month: "2024-06", Amount: decimal.NewFromInt(100), Spent: decimal.NewFromInt(80)}},
		Goals:   []models.SavingGoal{goal(1, "Holiday", "250", "1000")},
		Now:     now,
	}

	out := BuildChatContext(in)

	for _, want := range []string{
		"Period: all time",
		"Total income: 2000.00",
		"Total expense: 150.00",
		"Estimated savings: 1850.00",
		"Transactions: 4",
		"Biggest expense category: Food (80.00)",
		"Average monthly income (last 6 months): 2000.00",
		"- 2024-06 Food: 80.00 of 100.00 spent",
		"- Holiday: 250.00 / 1000.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("context missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "Alert:") {
		t.Errorf("unexpected alert\n%s", out)
	}
}

func TestBuildChatContext_RangeFilter(t *testing.T) {
	in := ChatInput{
		Transactions: []models.Transaction{
			tx(models.TypeExpense, "Food", "10", day(2023, time.June, 3)),
			tx(models.TypeExpense, "Shopping", "500", day(2023, time.July, 3)),
		},
		Range: &DateRange{From: day(2023, time.June, 1), To: day(2023, time.July, 1)},
		Now:   day(2024, time.January, 10),
	}
	out := BuildChatContext(in)

	for _, want := range []string{"Period: June 2023", "Total expense: 10.00", "Transactions: 1", "Biggest expense category: Food (10.00)"} {
		if !strings.Contains(out, want) {
			t.Errorf("context missing %q\n%s", want, out)
		}
	}
}

func TestBuildChatContext_NoExpensesOmitsBiggest(t *testing.T) {
	out := BuildChatContext(ChatInput{Now: day(2024, time.June, 1)})
	if strings.Contains(out, "Biggest expense category") {
		t.Errorf("unexpected biggest category line\n%s", out)
	}
	if !strings.Contains(out, "Average monthly expense (last 6 months): 0.00") {
		t.Errorf("expected zero average\n%s", out)
	}
}

func TestBuildChatContext_AveragesCountActiveMonths(t *testing.T) {
	now := day(2024, time.June, 20)
	in := ChatInput{
		Transactions: []models.Transaction{
			tx(models.TypeExpense, "Food", "100", day(2024, time.June, 1)),
			tx(models.TypeExpense, "Food", "300", day(2024, time.March, 1)),
			tx(models.TypeExpense, "Food", "9999", day(2023, time.December, 1)), // outside trailing window
		},
		Now: now,
	}
	out := BuildChatContext(in)
	if !strings.Contains(out, "Average monthly expense (last 6 months): 200.00") {
		t.Errorf("expected average over two active months\n%s", out)
	}
}

func TestBuildChatContext_MonthOverMonthAlert(t *testing.T) {
	now := day(2024, time.June, 10)
	tests := []struct {
		name      string
		prior     string
		last      string
		wantAlert string
	}{
		{"25 percent rise", "100", "125", "Alert: last month's expenses rose 25.0%"},
		{"exactly 10 percent", "100", "110", ""},
		{"fractional", "300", "334", "Alert: last month's expenses rose 11.3%"},
		{"no prior spending", "0", "500", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txs []models.Transaction
			if tt.prior != "0" {
				txs = append(txs, tx(models.TypeExpense, "Food", tt.prior, day(2024, time.April, 10)))
			}
			txs = append(txs, tx(models.TypeExpense, "Food", tt.last, day(2024, time.May, 10)))

			out := BuildChatContext(ChatInput{Transactions: txs, Now: now})
			if tt.wantAlert == "" {
				if strings.Contains(out, "Alert:") {
					t.Errorf("unexpected alert\n%s", out)
				}
				return
			}
			if !strings.Contains(out, tt.wantAlert) {
				t.Errorf("context missing %q\n%s", tt.wantAlert, out)
			}
		})
	}
}
