package ports

import (
	"context"

	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Username string    `json:"username" validate:"required,min=3"`
	Password string    `json:"password" validate:"required,min=4"`
	Name     string    `json:"name"     validate:"required,min=2"`
	Role     user.Role `json:"role"     validate:"required,oneof=owner maid"`
}

// LoginInput carries credentials plus the role the client claims to sign in as.
type LoginInput struct {
	Username string    `json:"username" validate:"required"`
	Password string    `json:"password" validate:"required"`
	Role     user.Role `json:"role"     validate:"required,oneof=owner maid"`
}

// AuthService defines the service port for account and credential operations.
// Session issuance is handled by the transport; the service only proves identity.
type AuthService interface {
	// Register creates an account. Returns domain.ErrValidation for bad input
	// and domain.ErrConflict if the username is taken.
	Register(ctx context.Context, in RegisterInput) (*user.User, error)

	// Login verifies credentials. Returns domain.ErrNotAuthenticated for
	// unknown users or wrong passwords, and domain.ErrRoleMismatch when the
	// account exists with a different role.
	Login(ctx context.Context, in LoginInput) (*user.User, error)

	// CurrentUser resolves the session's user. Returns
	// domain.ErrNotAuthenticated if the user no longer exists.
	CurrentUser(ctx context.Context, userID string) (*user.User, error)
}

// UserService defines the service port for user directory operations.
type UserService interface {
	ListMaids(ctx context.Context, actorID string) ([]user.User, error)
	UpdateLanguage(ctx context.Context, actorID string, lang user.Language) (*user.User, error)
}

// TaskService defines the service port for task operations. Every method
// acts on behalf of actorID, the authenticated session user.
type TaskService interface {
	// ListTasks returns the tasks visible to the actor.
	ListTasks(ctx context.Context, actorID string) ([]task.Task, error)

	// ListMyTasks returns the tasks assigned to the actor.
	ListMyTasks(ctx context.Context, actorID string) ([]task.Task, error)

	// GetTask returns a task by ID. Returns domain.ErrNotFound if absent.
	GetTask(ctx context.Context, actorID, id string) (*task.Task, error)

	// CreateTask creates a task owned by the actor. Returns
	// domain.ErrForbidden for non-owners and domain.ErrValidation for bad input.
	CreateTask(ctx context.Context, actorID string, t *task.Task) (*task.Task, error)

	// UpdateTask applies a partial update. Maids may only update tasks
	// assigned to them and only their permitted fields.
	UpdateTask(ctx context.Context, actorID, id string, p task.Patch) (*task.Task, error)

	// DeleteTask removes a task. Owners only.
	DeleteTask(ctx context.Context, actorID, id string) error
}

// NotificationService defines the service port for a user's notifications.
type NotificationService interface {
	ListNotifications(ctx context.Context, actorID string) ([]notification.Notification, error)
	UnreadCount(ctx context.Context, actorID string) (int, error)

	// MarkRead marks one of the actor's notifications read. Returns
	// domain.ErrNotFound if it does not exist or belongs to someone else.
	MarkRead(ctx context.Context, actorID, id string) (*notification.Notification, error)

	// MarkAllRead marks every notification of the actor read and returns
	// how many changed.
	MarkAllRead(ctx context.Context, actorID string) (int, error)
}

// Session is an authenticated client session.
type Session struct {
	Token  string
	UserID string
}

// SessionStore issues and resolves client sessions.
type SessionStore interface {
	Create(ctx context.Context, userID string) (Session, error)
	Get(ctx context.Context, token string) (Session, bool)
	Delete(ctx context.Context, token string)
}
