package database

import (
	"fmt"

	"finai/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates tables and indexes for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Budget{},
		&models.SavingGoal{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
