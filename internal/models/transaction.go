package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is one dated income or expense entry owned by a user.
// Date holds a calendar date at 00:00 UTC.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      string          `gorm:"size:36;index:idx_tx_user_date,priority:1;not null" json:"-"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Category    string          `gorm:"size:32;not null" json:"category"`
	Type        string          `gorm:"size:16;not null" json:"type"` // income / expense
	Date        time.Time       `gorm:"index:idx_tx_user_date,priority:2;not null" json:"date"`
	Description string          `gorm:"size:255" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"-"`
}

func (t Transaction) IsIncome() bool  { return t.Type == TypeIncome }
func (t Transaction) IsExpense() bool { return t.Type == TypeExpense }
