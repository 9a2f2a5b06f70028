package service

import (
	"context"
	"errors"
	"strings"

	"finai/internal/finance"
	"finai/internal/logger"
	"finai/internal/models"
	"finai/internal/store"
	"finai/internal/util"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// BudgetInput is the client-editable part of a budget.
type BudgetInput struct {
	Category string
	Amount   decimal.Decimal
	Month    string
}

// BudgetView is a budget with its usage for the month.
type BudgetView struct {
	models.Budget
	Percentage decimal.Decimal `json:"percentage"`
	Tier       finance.Tier    `json:"tier"`
}

// BudgetService manages monthly category budgets.
type BudgetService struct {
	budgets store.BudgetStore
	txs     store.TransactionStore
	log     zerolog.Logger
}

// NewBudgetService tags log with the budget component.
func NewBudgetService(budgets store.BudgetStore, txs store.TransactionStore, log zerolog.Logger) *BudgetService {
	return &BudgetService{budgets: budgets, txs: txs, log: logger.WithComponent(log, logger.ComponentBudget)}
}

func validateBudget(in *BudgetInput) error {
	in.Category = strings.TrimSpace(in.Category)
	in.Month = strings.TrimSpace(in.Month)
	if !finance.ValidateCategory(in.Category, models.TypeExpense) {
		return validationf("invalid budget category %q", in.Category)
	}
	if err := util.ValidateAmount(in.Amount); err != nil {
		return validationf("%s", err.Error())
	}
	if err := util.ValidateMonth(in.Month); err != nil {
		return validationf("%s", err.Error())
	}
	return nil
}

func errBudgetExists(in BudgetInput) error {
	return validationf("budget for %s in %s already exists", in.Category, in.Month)
}

// Create adds a budget. A second budget for the same category and month is rejected.
func (s *BudgetService) Create(ctx context.Context, userID string, in BudgetInput) (*models.Budget, error) {
	if err := validateBudget(&in); err != nil {
		return nil, err
	}

	existing, err := s.budgets.ListByMonth(ctx, userID, in.Month)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if b.Category == in.Category {
			return nil, errBudgetExists(in)
		}
	}

	b := &models.Budget{UserID: userID, Category: in.Category, Amount: in.Amount.Round(2), Month: in.Month}
	if err := s.budgets.Create(ctx, b); err != nil {
		// lost the race against a concurrent create
		if errors.Is(err, store.ErrDuplicate) {
			return nil, errBudgetExists(in)
		}
		return nil, err
	}
	return b, nil
}

// ListForMonth returns the month's budgets with spending joined from expense transactions.
func (s *BudgetService) ListForMonth(ctx context.Context, userID, month string) ([]BudgetView, error) {
	start, err := finance.ParseMonth(month)
	if err != nil {
		return nil, validationf("%s", err.Error())
	}

	budgets, err := s.budgets.ListByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	txs, err := s.txs.List(ctx, userID, store.TransactionFilter{
		From: start,
		To:   start.AddDate(0, 1, 0),
		Type: models.TypeExpense,
	})
	if err != nil {
		return nil, err
	}
	return withUsage(budgets, finance.SpentByCategory(txs, start)), nil
}

func withUsage(budgets []models.Budget, spent map[string]decimal.Decimal) []BudgetView {
	out := make([]BudgetView, 0, len(budgets))
	for _, b := range budgets {
		s, ok := spent[b.Category]
		if !ok {
			s = decimal.Zero
		}
		usage := finance.CheckBudgetUsage(b.Amount, s)
		b.Spent = usage.Spent
		out = append(out, BudgetView{Budget: b, Percentage: usage.Percentage, Tier: usage.Tier})
	}
	return out
}

// Update changes a budget. Moving it onto another budget's category and month is rejected.
func (s *BudgetService) Update(ctx context.Context, userID string, id uint, in BudgetInput) (*models.Budget, error) {
	if err := validateBudget(&in); err != nil {
		return nil, err
	}
	b, err := s.budgets.Get(ctx, userID, id)
	if err != nil {
		return nil, fromStore(err, "budget")
	}

	existing, err := s.budgets.ListByMonth(ctx, userID, in.Month)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.ID != id && other.Category == in.Category {
			return nil, errBudgetExists(in)
		}
	}

	b.Category = in.Category
	b.Amount = in.Amount.Round(2)
	b.Month = in.Month
	if err := s.budgets.Update(ctx, b); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, errBudgetExists(in)
		}
		return nil, fromStore(err, "budget")
	}
	return b, nil
}

// Delete removes one of the user's budgets.
func (s *BudgetService) Delete(ctx context.Context, userID string, id uint) error {
	if err := s.budgets.Delete(ctx, userID, id); err != nil {
		return fromStore(err, "budget")
	}
	return nil
}
