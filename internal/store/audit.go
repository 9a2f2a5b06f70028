package store

import (
	"context"
	"fmt"

	"finai/internal/models"

	"gorm.io/gorm"
)

type gormAuditLogStore struct {
	db *gorm.DB
}

func (s *gormAuditLogStore) Create(ctx context.Context, l *models.AuditLog) error {
	if err := s.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// List returns one page of the user's audit trail, newest first, and the total count.
func (s *gormAuditLogStore) List(ctx context.Context, userID string, page, size int) ([]models.AuditLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	q := s.db.WithContext(ctx).Model(&models.AuditLog{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	var out []models.AuditLog
	err := q.Session(&gorm.Session{}).Order("created_at DESC").Order("id DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&out).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	return out, total, nil
}
