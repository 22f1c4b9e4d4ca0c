package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
)

// CreateNotification stores n under a fresh ID. A zero CreatedAt is set to now.
func (s *Store) CreateNotification(_ context.Context, n notification.Notification) notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertNotificationLocked(n)
}

// GetNotification returns the notification with the given ID.
func (s *Store) GetNotification(_ context.Context, id string) (notification.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notifications[id]
	return n, ok
}

// ListNotificationsForUser returns the user's notifications, newest first.
func (s *Store) ListNotificationsForUser(_ context.Context, userID string) []notification.Notification {
	s.mu.RLock()
	out := make([]notification.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b notification.Notification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// MarkNotificationRead sets the read flag. Marking an already read
// notification is a no-op that still succeeds.
func (s *Store) MarkNotificationRead(_ context.Context, id string) (notification.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return notification.Notification{}, false
	}
	n.Read = true
	s.notifications[id] = n
	return n, true
}

// MarkAllNotificationsRead marks every unread notification of the user read
// and returns how many changed.
func (s *Store) MarkAllNotificationsRead(_ context.Context, userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for id, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			s.notifications[id] = n
			changed++
		}
	}
	return changed
}

// UnreadCount returns the number of unread notifications for the user.
func (s *Store) UnreadCount(_ context.Context, userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}
