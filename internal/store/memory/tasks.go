package memory

import (
	"context"

	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// CreateTask stores a new task with a fresh ID and creation defaults. A task
// created with an assignee produces exactly one task_assigned notification
// for that assignee. Creating a task directly as completed never notifies.
func (s *Store) CreateTask(_ context.Context, t task.Task) ports.TaskChange {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t = t.Clone()
	t.ID = s.newID()
	t.Normalize(now)
	s.tasks[t.ID] = t

	change := ports.TaskChange{
		Task:       t.Clone(),
		Transition: task.Transition{From: t.Status, To: t.Status},
	}
	if t.AssignedTo != nil {
		n := s.insertNotificationLocked(notification.Assigned(*t.AssignedTo, t.Title, now))
		change.Notifications = append(change.Notifications, n)
	}
	return change
}

// GetTask returns the task with the given ID.
func (s *Store) GetTask(_ context.Context, id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return task.Task{}, false
	}
	return t.Clone(), true
}

// UpdateTask runs update against the stored task and merges the patch it
// returns, all under the write lock. When the merge moves the task into
// completed from any other status, every owner receives one task_completed
// notification naming the task as it was titled before the update.
func (s *Store) UpdateTask(_ context.Context, id string, update ports.TaskUpdate) (ports.TaskChange, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return ports.TaskChange{}, false, nil
	}

	p, err := update(t.Clone())
	if err != nil {
		return ports.TaskChange{}, true, err
	}

	now := s.now()
	title := t.Title
	tr := t.Apply(p, now)
	s.tasks[id] = t

	change := ports.TaskChange{Task: t.Clone(), Transition: tr}
	if tr.Completed() {
		for _, n := range notification.Completed(s.ownerIDsLocked(), title, now) {
			change.Notifications = append(change.Notifications, s.insertNotificationLocked(n))
		}
	}
	return change, true, nil
}

// DeleteTask removes the task and reports whether it existed. Notifications
// that mention it are kept.
func (s *Store) DeleteTask(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// ListTasks returns every task, latest deadline first.
func (s *Store) ListTasks(_ context.Context) []task.Task {
	return s.listTasks(func(task.Task) bool { return true })
}

// ListTasksByAssignee returns the tasks assigned to userID, latest deadline first.
func (s *Store) ListTasksByAssignee(_ context.Context, userID string) []task.Task {
	return s.listTasks(func(t task.Task) bool { return t.IsAssignedTo(userID) })
}

// ListTasksByCreator returns the tasks created by userID, latest deadline first.
func (s *Store) ListTasksByCreator(_ context.Context, userID string) []task.Task {
	return s.listTasks(func(t task.Task) bool { return t.CreatedBy == userID })
}

func (s *Store) listTasks(keep func(task.Task) bool) []task.Task {
	s.mu.RLock()
	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	s.mu.RUnlock()

	task.SortByDeadlineDesc(out)
	return out
}
