package service

import (
	"context"
	"strings"

	"finai/internal/events"
	"finai/internal/logger"
	"finai/internal/models"
	"finai/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxNotificationLen = 512

type NotificationService struct {
	notifications store.NotificationStore
	publisher     events.Publisher
	log           zerolog.Logger
}

func NewNotificationService(notifications store.NotificationStore, publisher events.Publisher, log zerolog.Logger) *NotificationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &NotificationService{
		notifications: notifications,
		publisher:     publisher,
		log:           logger.WithComponent(log, logger.ComponentNotification),
	}
}

// Emit stores a notification once per (user, uniqueKey) and reports whether it was new.
// New notifications are published; publish failures are only logged.
func (s *NotificationService) Emit(ctx context.Context, userID, message, uniqueKey string) (bool, error) {
	n := &models.Notification{UserID: userID, Message: message, UniqueKey: uniqueKey}
	created, err := s.notifications.Emit(ctx, n)
	if err != nil {
		return false, err
	}
	if created {
		s.publish(ctx, n)
	}
	return created, nil
}

// Create stores a manual notification under a generated key.
func (s *NotificationService) Create(ctx context.Context, userID, message string) (*models.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, validationf("message is required")
	}
	if len(message) > maxNotificationLen {
		return nil, validationf("message too long (max %d)", maxNotificationLen)
	}

	n := &models.Notification{UserID: userID, Message: message, UniqueKey: "manual-" + uuid.NewString()}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	s.publish(ctx, n)
	return n, nil
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.notifications.List(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID string, id uint) error {
	if err := s.notifications.MarkRead(ctx, userID, id); err != nil {
		return fromStore(err, "notification")
	}
	return nil
}

func (s *NotificationService) publish(ctx context.Context, n *models.Notification) {
	err := s.publisher.Publish(ctx, events.NotificationEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Message:        n.Message,
		UniqueKey:      n.UniqueKey,
		CreatedAt:      n.CreatedAt,
	})
	if err != nil {
		s.log.Error().Err(err).Uint("notification_id", n.ID).Msg("publish notification event failed")
	}
}
