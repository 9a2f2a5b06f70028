package store

import (
	"context"
	"fmt"

	"finai/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type gormGoalStore struct {
	db *gorm.DB
}

func (s *gormGoalStore) Create(ctx context.Context, g *models.SavingGoal) error {
	if err := s.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create goal: %w", mapError(err))
	}
	return nil
}

func (s *gormGoalStore) Get(ctx context.Context, userID string, id uint) (*models.SavingGoal, error) {
	var g models.SavingGoal
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&g).Error; err != nil {
		return nil, mapError(err)
	}
	return &g, nil
}

func (s *gormGoalStore) List(ctx context.Context, userID string) ([]models.SavingGoal, error) {
	var out []models.SavingGoal
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return out, nil
}

// Update writes the editable fields. current_amount only changes through AddContribution.
func (s *gormGoalStore) Update(ctx context.Context, g *models.SavingGoal) error {
	res := s.db.WithContext(ctx).
		Model(&models.SavingGoal{}).
		Where("id = ? AND user_id = ?", g.ID, g.UserID).
		Select("title", "target_amount", "deadline").
		Updates(g)
	if res.Error != nil {
		return fmt.Errorf("update goal: %w", mapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormGoalStore) Delete(ctx context.Context, userID string, id uint) error {
	return deleted(s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavingGoal{}))
}

// AddContribution adds amount in a single statement. SQLite keeps decimal columns as REAL,
// so the sum is rounded to cents in SQL.
func (s *gormGoalStore) AddContribution(ctx context.Context, userID string, id uint, amount decimal.Decimal) (*models.SavingGoal, error) {
	var g models.SavingGoal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.SavingGoal{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("current_amount", gorm.Expr("ROUND(current_amount + ?, 2)", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&g).Error
	})
	if err != nil {
		return nil, mapError(err)
	}
	g.CurrentAmount = g.CurrentAmount.Round(2)
	return &g, nil
}
