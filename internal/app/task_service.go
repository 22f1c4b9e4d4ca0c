package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/domain/access"
	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

var (
	errTaskNotFound    = fmt.Errorf("%w: task not found", domain.ErrNotFound)
	errAssigneeNotMaid = domain.NewValidationError(string(task.FieldAssignedTo), "must reference a maid")
)

// TaskService implements ports.TaskService. Authorization is decided by the
// access package; the store applies the lifecycle and emits notifications.
type TaskService struct {
	tasks  ports.TaskStore
	users  ports.UserStore
	events ports.EventRecorder
	logger *slog.Logger
}

// NewTaskService creates a TaskService. A nil recorder records nothing and a
// nil logger discards output.
func NewTaskService(tasks ports.TaskStore, users ports.UserStore, events ports.EventRecorder, logger *slog.Logger) *TaskService {
	if events == nil {
		events = noopRecorder{}
	}
	return &TaskService{
		tasks:  tasks,
		users:  users,
		events: events,
		logger: logging.OrDiscard(logger),
	}
}

// ListTasks returns every task to owners and the assigned tasks to maids.
func (s *TaskService) ListTasks(ctx context.Context, actorID string) ([]task.Task, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}

	scope := access.TaskScope(actor)
	if scope.All {
		return s.tasks.ListTasks(ctx), nil
	}
	return s.tasks.ListTasksByAssignee(ctx, scope.AssigneeID), nil
}

// ListMyTasks returns the tasks assigned to the actor regardless of role.
func (s *TaskService) ListMyTasks(ctx context.Context, actorID string) ([]task.Task, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}
	return s.tasks.ListTasksByAssignee(ctx, actor.ID), nil
}

// GetTask returns a task to any authenticated user.
func (s *TaskService) GetTask(ctx context.Context, actorID, id string) (*task.Task, error) {
	if _, err := loadActor(ctx, s.users, actorID); err != nil {
		return nil, err
	}

	t, ok := s.tasks.GetTask(ctx, id)
	if !ok {
		return nil, errTaskNotFound
	}
	return &t, nil
}

// CreateTask creates a task owned by the actor. Only owners may create tasks.
func (s *TaskService) CreateTask(ctx context.Context, actorID string, t *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task",
		slog.String("actor_id", actorID),
		slog.String("title", t.Title),
	)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}
	if err := access.CanCreateTask(actor); err != nil {
		return nil, err
	}

	draft := t.Clone()
	draft.CreatedBy = actor.ID
	if draft.Status == "" {
		draft.Status = task.StatusPending
	}
	if draft.Priority == "" {
		draft.Priority = task.PriorityMedium
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(ctx, draft.AssignedTo); err != nil {
		return nil, err
	}

	change := s.tasks.CreateTask(ctx, draft)
	s.events.RecordTaskEvent(ctx, ports.TaskEventCreated)
	s.recordNotifications(ctx, change.Notifications)

	return &change.Task, nil
}

// UpdateTask applies the part of p the actor is allowed to change. Maid
// updates are narrowed to their permitted fields; the rest is dropped.
// Authorization is decided against the task as stored at the moment of the
// write, so a reassignment that lands first is always respected.
func (s *TaskService) UpdateTask(ctx context.Context, actorID, id string, p task.Patch) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task",
		slog.String("actor_id", actorID),
		slog.String("task_id", id),
	)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}

	// Roles never change and users are never deleted, so the assignee can
	// be checked before taking the store lock. Only owners may reassign.
	if actor.IsOwner() && p.AssignedTo.Set {
		if err := s.checkAssignee(ctx, p.AssignedTo.Value); err != nil {
			return nil, err
		}
	}

	change, ok, err := s.tasks.UpdateTask(ctx, id, func(current task.Task) (task.Patch, error) {
		allowed, err := access.AuthorizeTaskUpdate(actor, &current, p)
		if err != nil {
			return task.Patch{}, err
		}
		return allowed, allowed.Validate()
	})
	switch {
	case !ok:
		return nil, errTaskNotFound
	case errors.Is(err, domain.ErrForbidden):
		s.logger.WarnContext(ctx, "task update denied",
			slog.String("operation", "UpdateTask"),
			slog.String("actor_id", actorID),
			slog.String("task_id", id),
			slog.Any("error", err),
		)
		return nil, err
	case err != nil:
		return nil, err
	}

	tr := change.Transition
	if tr.Changed() && !tr.From.CanTransition(tr.To) {
		s.logger.DebugContext(ctx, "task moved against the usual status flow",
			slog.String("task_id", id),
			slog.String("from", tr.From.String()),
			slog.String("to", tr.To.String()),
		)
	}

	s.events.RecordTaskEvent(ctx, ports.TaskEventUpdated)
	if tr.Completed() {
		s.logger.InfoContext(ctx, "task completed",
			slog.String("task_id", id),
			slog.Int("notified", len(change.Notifications)),
		)
		s.events.RecordTaskEvent(ctx, ports.TaskEventCompleted)
	}
	s.recordNotifications(ctx, change.Notifications)

	return &change.Task, nil
}

// DeleteTask removes a task. Only owners may delete tasks.
func (s *TaskService) DeleteTask(ctx context.Context, actorID, id string) error {
	s.logger.InfoContext(ctx, "deleting task",
		slog.String("actor_id", actorID),
		slog.String("task_id", id),
	)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return err
	}
	if err := access.CanDeleteTask(actor); err != nil {
		return err
	}

	if !s.tasks.DeleteTask(ctx, id) {
		return errTaskNotFound
	}
	s.events.RecordTaskEvent(ctx, ports.TaskEventDeleted)
	return nil
}

// checkAssignee requires a non-nil assignee to be an existing maid.
func (s *TaskService) checkAssignee(ctx context.Context, assigneeID *string) error {
	if assigneeID == nil {
		return nil
	}
	u, ok := s.users.GetUser(ctx, *assigneeID)
	if !ok || !u.IsMaid() {
		return errAssigneeNotMaid
	}
	return nil
}

func (s *TaskService) recordNotifications(ctx context.Context, ns []notification.Notification) {
	counts := make(map[notification.Type]int, 1)
	for _, n := range ns {
		counts[n.Type]++
	}
	for typ, n := range counts {
		s.events.RecordNotifications(ctx, typ.String(), n)
	}
}
