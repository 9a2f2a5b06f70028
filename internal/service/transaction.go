package service

import (
	"context"
	"strings"
	"time"

	"finai/internal/finance"
	"finai/internal/logger"
	"finai/internal/models"
	"finai/internal/store"
	"finai/internal/util"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const maxDescriptionLen = 255

// TransactionInput is the client-editable part of a transaction.
type TransactionInput struct {
	Amount      decimal.Decimal
	Category    string
	Type        string
	Date        time.Time
	Description string
}

// TransactionQuery filters a listing. Month is YYYY-MM; empty fields are ignored.
type TransactionQuery struct {
	Month    string
	Type     string
	Category string
}

// TransactionService validates and persists income and expense records.
type TransactionService struct {
	txs store.TransactionStore
	log zerolog.Logger
}

// NewTransactionService tags log with the transaction component.
func NewTransactionService(txs store.TransactionStore, log zerolog.Logger) *TransactionService {
	return &TransactionService{txs: txs, log: logger.WithComponent(log, logger.ComponentTransaction)}
}

func validateTransaction(in *TransactionInput) error {
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)

	if in.Type != models.TypeIncome && in.Type != models.TypeExpense {
		return validationf("type must be income or expense")
	}
	if err := util.ValidateAmount(in.Amount); err != nil {
		return validationf("%s", err.Error())
	}
	if !finance.ValidateCategory(in.Category, in.Type) {
		return validationf("invalid category %q for %s", in.Category, in.Type)
	}
	if in.Date.IsZero() {
		return validationf("date is required")
	}
	if len(in.Description) > maxDescriptionLen {
		return validationf("description too long (max %d)", maxDescriptionLen)
	}
	return nil
}

// Create validates in and stores it for the user.
func (s *TransactionService) Create(ctx context.Context, userID string, in TransactionInput) (*models.Transaction, error) {
	if err := validateTransaction(&in); err != nil {
		return nil, err
	}
	t := &models.Transaction{
		UserID:      userID,
		Amount:      in.Amount.Round(2),
		Category:    in.Category,
		Type:        in.Type,
		Date:        in.Date,
		Description: in.Description,
	}
	if err := s.txs.Create(ctx, t); err != nil {
		return nil, err
	}
	s.log.Debug().Str("user_id", userID).Uint("transaction_id", t.ID).Msg("transaction created")
	return t, nil
}

// List returns the user's transactions matching q, newest first.
func (s *TransactionService) List(ctx context.Context, userID string, q TransactionQuery) ([]models.Transaction, error) {
	var f store.TransactionFilter
	if q.Month != "" {
		start, err := finance.ParseMonth(q.Month)
		if err != nil {
			return nil, validationf("%s", err.Error())
		}
		f.From, f.To = start, start.AddDate(0, 1, 0)
	}
	if q.Type != "" {
		if q.Type != models.TypeIncome && q.Type != models.TypeExpense {
			return nil, validationf("type must be income or expense")
		}
		f.Type = q.Type
	}
	f.Category = strings.TrimSpace(q.Category)
	return s.txs.List(ctx, userID, f)
}

// Get returns one of the user's transactions.
func (s *TransactionService) Get(ctx context.Context, userID string, id uint) (*models.Transaction, error) {
	t, err := s.txs.Get(ctx, userID, id)
	if err != nil {
		return nil, fromStore(err, "transaction")
	}
	return t, nil
}

// Update replaces every field of an existing transaction.
func (s *TransactionService) Update(ctx context.Context, userID string, id uint, in TransactionInput) (*models.Transaction, error) {
	if err := validateTransaction(&in); err != nil {
		return nil, err
	}
	t, err := s.txs.Get(ctx, userID, id)
	if err != nil {
		return nil, fromStore(err, "transaction")
	}
	t.Amount = in.Amount.Round(2)
	t.Category = in.Category
	t.Type = in.Type
	t.Date = in.Date
	t.Description = in.Description
	if err := s.txs.Update(ctx, t); err != nil {
		return nil, fromStore(err, "transaction")
	}
	return t, nil
}

// Delete removes one of the user's transactions.
func (s *TransactionService) Delete(ctx context.Context, userID string, id uint) error {
	if err := s.txs.Delete(ctx, userID, id); err != nil {
		return fromStore(err, "transaction")
	}
	s.log.Debug().Str("user_id", userID).Uint("transaction_id", id).Msg("transaction deleted")
	return nil
}
