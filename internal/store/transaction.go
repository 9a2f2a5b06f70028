package store

import (
	"context"
	"fmt"

	"finai/internal/models"

	"gorm.io/gorm"
)

type gormTransactionStore struct {
	db *gorm.DB
}

func (s *gormTransactionStore) Create(ctx context.Context, t *models.Transaction) error {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create transaction: %w", mapError(err))
	}
	return nil
}

func (s *gormTransactionStore) Get(ctx context.Context, userID string, id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

func (s *gormTransactionStore) List(ctx context.Context, userID string, f TransactionFilter) ([]models.Transaction, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !f.From.IsZero() {
		q = q.Where("date >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("date < ?", f.To)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var out []models.Transaction
	if err := q.Order("date DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

func (s *gormTransactionStore) Update(ctx context.Context, t *models.Transaction) error {
	res := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Select("amount", "category", "type", "date", "description").
		Updates(t)
	if res.Error != nil {
		return fmt.Errorf("update transaction: %w", mapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormTransactionStore) Delete(ctx context.Context, userID string, id uint) error {
	return deleted(s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{}))
}
