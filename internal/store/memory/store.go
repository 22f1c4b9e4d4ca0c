// Package memory implements the entity store in process memory.
//
// A single Store owns users, tasks and notifications in id-keyed maps behind
// one RWMutex. Every mutation and the notifications it derives are applied
// inside one write-locked section, so readers never observe a task change
// without its notifications. All values handed out are copies.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// errNotInitialized is reported by HealthCheck for a zero-value Store.
var errNotInitialized = errors.New("memory: store not initialized")

// Store is the in-memory entity store. Create one with New.
type Store struct {
	mu            sync.RWMutex
	users         map[string]user.User
	tasks         map[string]task.Task
	notifications map[string]notification.Notification

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the generator used for new entity IDs.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		users:         make(map[string]user.User),
		tasks:         make(map[string]task.Task),
		notifications: make(map[string]notification.Notification),
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "entity-store"
}

// HealthCheck implements ports.HealthChecker. The store has no external
// dependency, so it is healthy once constructed.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.users == nil || s.tasks == nil || s.notifications == nil {
		return errNotInitialized
	}
	return nil
}

// insertNotificationLocked stores n under a fresh ID. Callers hold s.mu.
func (s *Store) insertNotificationLocked(n notification.Notification) notification.Notification {
	n.ID = s.newID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}
	s.notifications[n.ID] = n
	return n
}
