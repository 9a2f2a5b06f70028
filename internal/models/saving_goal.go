package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingGoal tracks progress towards a target amount. CurrentAmount may exceed TargetAmount.
type SavingGoal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        string          `gorm:"size:36;index;not null" json:"-"`
	Title         string          `gorm:"size:128;not null" json:"title"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"current_amount"`
	Deadline      *time.Time      `json:"deadline"`
	CreatedAt     time.Time       `json:"created_at"`
}
