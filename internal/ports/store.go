package ports

import (
	"context"

	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
)

// UserStore persists user accounts. Lookups report absence with ok=false
// rather than an error; the application layer decides what absence means.
type UserStore interface {
	// CreateUser assigns an ID, applies defaults and stores the user.
	// Returns domain.ErrConflict if the username is already taken.
	CreateUser(ctx context.Context, u user.User) (user.User, error)

	GetUser(ctx context.Context, id string) (user.User, bool)
	GetUserByUsername(ctx context.Context, username string) (user.User, bool)

	// UpdateUserLanguage changes the only mutable user field.
	UpdateUserLanguage(ctx context.Context, id string, lang user.Language) (user.User, bool)

	ListMaids(ctx context.Context) []user.User
}

// TaskChange describes the outcome of a task write: the stored task, the
// status transition it caused and any notifications emitted alongside it.
type TaskChange struct {
	Task          task.Task
	Transition    task.Transition
	Notifications []notification.Notification
}

// TaskUpdate decides, from the task as currently stored, which patch to
// apply. It runs inside the store's write section, so it sees the live task
// and must not call back into the store. A non-nil error aborts the update
// and leaves the task untouched.
type TaskUpdate func(current task.Task) (task.Patch, error)

// ApplyPatch returns a TaskUpdate that applies p unconditionally.
func ApplyPatch(p task.Patch) TaskUpdate {
	return func(task.Task) (task.Patch, error) { return p, nil }
}

// TaskStore persists tasks. Every write and its derived notifications are
// applied atomically.
type TaskStore interface {
	// CreateTask assigns an ID, normalizes defaults and stores the task.
	// When the task has an assignee, exactly one task_assigned notification
	// is emitted in the same step.
	CreateTask(ctx context.Context, t task.Task) TaskChange

	GetTask(ctx context.Context, id string) (task.Task, bool)

	// UpdateTask asks update for a patch against the live task and merges
	// it in one step. A transition into completed emits one task_completed
	// notification per owner. ok is false when the task does not exist;
	// err is whatever update returned.
	UpdateTask(ctx context.Context, id string, update TaskUpdate) (change TaskChange, ok bool, err error)

	DeleteTask(ctx context.Context, id string) bool

	// List methods order by deadline descending, missing deadlines last.
	ListTasks(ctx context.Context) []task.Task
	ListTasksByAssignee(ctx context.Context, userID string) []task.Task
	ListTasksByCreator(ctx context.Context, userID string) []task.Task
}

// NotificationStore persists notifications.
type NotificationStore interface {
	CreateNotification(ctx context.Context, n notification.Notification) notification.Notification
	GetNotification(ctx context.Context, id string) (notification.Notification, bool)

	// ListNotificationsForUser returns the user's notifications, newest first.
	ListNotificationsForUser(ctx context.Context, userID string) []notification.Notification

	MarkNotificationRead(ctx context.Context, id string) (notification.Notification, bool)

	// MarkAllNotificationsRead flips every unread notification of the user
	// and returns how many changed.
	MarkAllNotificationsRead(ctx context.Context, userID string) int

	UnreadCount(ctx context.Context, userID string) int
}

// Store is the full entity store.
type Store interface {
	UserStore
	TaskStore
	NotificationStore
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
