package models

import "time"

// Notification is a user-facing alert. (user_id, unique_key) is unique so each
// logical event is stored at most once.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_notification_user_key,priority:1" json:"-"`
	Message   string    `gorm:"size:512;not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	UniqueKey string    `gorm:"size:128;not null;uniqueIndex:idx_notification_user_key,priority:2" json:"unique_key"`
}
