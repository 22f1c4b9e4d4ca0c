package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// Compile-time check that NotificationService implements ports.NotificationService.
var _ ports.NotificationService = (*NotificationService)(nil)

var errNotificationNotFound = fmt.Errorf("%w: notification not found", domain.ErrNotFound)

// NotificationService implements ports.NotificationService. Users only ever
// see and change their own notifications.
type NotificationService struct {
	notifications ports.NotificationStore
	users         ports.UserStore
	logger        *slog.Logger
}

// NewNotificationService creates a NotificationService. A nil logger discards output.
func NewNotificationService(notifications ports.NotificationStore, users ports.UserStore, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		logger:        logging.OrDiscard(logger),
	}
}

// ListNotifications returns the actor's notifications, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, actorID string) ([]notification.Notification, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}
	return s.notifications.ListNotificationsForUser(ctx, actor.ID), nil
}

// UnreadCount returns how many of the actor's notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context, actorID string) (int, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return 0, err
	}
	return s.notifications.UnreadCount(ctx, actor.ID), nil
}

// MarkRead marks one notification read. Another user's notification is
// reported as not found.
func (s *NotificationService) MarkRead(ctx context.Context, actorID, id string) (*notification.Notification, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}

	n, ok := s.notifications.GetNotification(ctx, id)
	if !ok || n.UserID != actor.ID {
		return nil, errNotificationNotFound
	}

	updated, ok := s.notifications.MarkNotificationRead(ctx, id)
	if !ok {
		return nil, errNotificationNotFound
	}
	return &updated, nil
}

// MarkAllRead marks all of the actor's notifications read.
func (s *NotificationService) MarkAllRead(ctx context.Context, actorID string) (int, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return 0, err
	}

	n := s.notifications.MarkAllNotificationsRead(ctx, actor.ID)
	s.logger.InfoContext(ctx, "marked notifications read",
		slog.String("user_id", actor.ID),
		slog.Int("count", n),
	)
	return n, nil
}
