package models

import "github.com/shopspring/decimal"

// Budget is a monthly spending cap for one category.
// (user_id, category, month) is unique at the storage layer.
type Budget struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	UserID   string          `gorm:"size:36;not null;uniqueIndex:idx_budget_user_category_month,priority:1" json:"-"`
	Category string          `gorm:"size:32;not null;uniqueIndex:idx_budget_user_category_month,priority:2" json:"category"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Month    string          `gorm:"size:7;not null;uniqueIndex:idx_budget_user_category_month,priority:3" json:"month"` // YYYY-MM

	// Spent is derived from expense transactions at read time, never persisted.
	Spent decimal.Decimal `gorm:"-" json:"spent"`
}
