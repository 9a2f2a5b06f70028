package store

import (
	"context"
	"fmt"
	"strings"

	"finai/internal/models"

	"gorm.io/gorm"
)

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) Create(ctx context.Context, u *models.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", mapError(err))
	}
	return nil
}

func (s *gormUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (s *gormUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (s *gormUserStore) Update(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		return fmt.Errorf("update user: %w", mapError(err))
	}
	return nil
}
