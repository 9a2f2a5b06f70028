package models

import "time"

// User represents application user. ID is a UUID string.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"` // stored lower-case
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`

	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `gorm:"index" json:"-"`
	LastLoginAt         *time.Time `json:"-"`
	LastLoginIP         string     `gorm:"size:64" json:"-"`
}
