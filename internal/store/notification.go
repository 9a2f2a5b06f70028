package store

import (
	"context"
	"fmt"

	"finai/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormNotificationStore struct {
	db *gorm.DB
}

func (s *gormNotificationStore) Emit(ctx context.Context, n *models.Notification) (bool, error) {
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(n)
	if res.Error != nil {
		return false, fmt.Errorf("emit notification: %w", mapError(res.Error))
	}
	return res.RowsAffected == 1, nil
}

func (s *gormNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create notification: %w", mapError(err))
	}
	return nil
}

func (s *gormNotificationStore) List(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}

func (s *gormNotificationStore) MarkRead(ctx context.Context, userID string, id uint) error {
	res := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
