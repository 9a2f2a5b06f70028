package store

import (
	"context"
	"fmt"

	"finai/internal/models"

	"gorm.io/gorm"
)

type gormBudgetStore struct {
	db *gorm.DB
}

// Create returns ErrDuplicate when the user already has a budget for the category and month.
func (s *gormBudgetStore) Create(ctx context.Context, b *models.Budget) error {
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create budget: %w", mapError(err))
	}
	return nil
}

func (s *gormBudgetStore) Get(ctx context.Context, userID string, id uint) (*models.Budget, error) {
	var b models.Budget
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&b).Error; err != nil {
		return nil, mapError(err)
	}
	return &b, nil
}

func (s *gormBudgetStore) ListByMonth(ctx context.Context, userID, month string) ([]models.Budget, error) {
	var out []models.Budget
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("category ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return out, nil
}

func (s *gormBudgetStore) ListByUser(ctx context.Context, userID string) ([]models.Budget, error) {
	var out []models.Budget
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("month DESC").Order("category ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return out, nil
}

func (s *gormBudgetStore) Update(ctx context.Context, b *models.Budget) error {
	res := s.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("id = ? AND user_id = ?", b.ID, b.UserID).
		Select("category", "amount", "month").
		Updates(b)
	if res.Error != nil {
		return fmt.Errorf("update budget: %w", mapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormBudgetStore) Delete(ctx context.Context, userID string, id uint) error {
	return deleted(s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{}))
}
