// Package store is the persistence layer. Every query is scoped to the owning user.
package store

import (
	"context"
	"errors"
	"time"

	"finai/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
}

// TransactionFilter narrows a transaction listing. Zero values mean no constraint.
// The date range is half-open: From <= date < To.
type TransactionFilter struct {
	From     time.Time
	To       time.Time
	Type     string
	Category string
}

type TransactionStore interface {
	Create(ctx context.Context, t *models.Transaction) error
	Get(ctx context.Context, userID string, id uint) (*models.Transaction, error)
	// List returns the newest transactions first.
	List(ctx context.Context, userID string, f TransactionFilter) ([]models.Transaction, error)
	Update(ctx context.Context, t *models.Transaction) error
	Delete(ctx context.Context, userID string, id uint) error
}

type BudgetStore interface {
	Create(ctx context.Context, b *models.Budget) error
	Get(ctx context.Context, userID string, id uint) (*models.Budget, error)
	ListByMonth(ctx context.Context, userID, month string) ([]models.Budget, error)
	ListByUser(ctx context.Context, userID string) ([]models.Budget, error)
	Update(ctx context.Context, b *models.Budget) error
	Delete(ctx context.Context, userID string, id uint) error
}

type GoalStore interface {
	Create(ctx context.Context, g *models.SavingGoal) error
	Get(ctx context.Context, userID string, id uint) (*models.SavingGoal, error)
	List(ctx context.Context, userID string) ([]models.SavingGoal, error)
	Update(ctx context.Context, g *models.SavingGoal) error
	Delete(ctx context.Context, userID string, id uint) error
	// AddContribution atomically increments the goal's current amount and returns the
	// updated goal.
	AddContribution(ctx context.Context, userID string, id uint, amount decimal.Decimal) (*models.SavingGoal, error)
}

type NotificationStore interface {
	// Emit inserts n unless the user already has a notification with the same
	// UniqueKey. It reports whether a row was written.
	Emit(ctx context.Context, n *models.Notification) (bool, error)
	Create(ctx context.Context, n *models.Notification) error
	// List returns the newest notifications first.
	List(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID string, id uint) error
}

type AuditLogStore interface {
	Create(ctx context.Context, l *models.AuditLog) error
	List(ctx context.Context, userID string, page, size int) ([]models.AuditLog, int64, error)
}

// Store groups the per-entity stores.
type Store struct {
	Users         UserStore
	Transactions  TransactionStore
	Budgets       BudgetStore
	Goals         GoalStore
	Notifications NotificationStore
	AuditLogs     AuditLogStore
}

// NewGorm returns a Store backed by db.
func NewGorm(db *gorm.DB) *Store {
	return &Store{
		Users:         &gormUserStore{db: db},
		Transactions:  &gormTransactionStore{db: db},
		Budgets:       &gormBudgetStore{db: db},
		Goals:         &gormGoalStore{db: db},
		Notifications: &gormNotificationStore{db: db},
		AuditLogs:     &gormAuditLogStore{db: db},
	}
}

// mapError converts gorm sentinel errors into store errors.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

// deleted maps a delete result to ErrNotFound when nothing matched.
func deleted(res *gorm.DB) error {
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
