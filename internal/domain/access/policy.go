// Package access holds the role-based authorization rules for tasks. The
// rules are pure functions of the acting user and the target task; callers
// translate the returned errors into transport responses.
package access

import (
	"fmt"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
)

// MaidFields is the allow-list of task fields a maid may change on a task
// assigned to them.
var MaidFields = []task.Field{
	task.FieldStatus,
	task.FieldNotes,
	task.FieldPhotoEvidence,
	task.FieldCompletedAt,
}

// Rule violation errors. All wrap domain.ErrForbidden.
var (
	ErrCreateNotOwner = fmt.Errorf("%w: only owners can create tasks", domain.ErrForbidden)
	ErrDeleteNotOwner = fmt.Errorf("%w: only owners can delete tasks", domain.ErrForbidden)
	ErrNotAssignee    = fmt.Errorf("%w: cannot update this task", domain.ErrForbidden)
)

// CanCreateTask allows owners only.
func CanCreateTask(actor *user.User) error {
	if actor == nil || !actor.IsOwner() {
		return ErrCreateNotOwner
	}
	return nil
}

// CanDeleteTask allows owners only.
func CanDeleteTask(actor *user.User) error {
	if actor == nil || !actor.IsOwner() {
		return ErrDeleteNotOwner
	}
	return nil
}

// AuthorizeTaskUpdate decides what part of patch the actor may apply to t.
// Owners may change any field of any task. A maid may only touch a task
// assigned to them, and only the MaidFields subset: other fields are
// silently dropped from the returned patch rather than rejected.
func AuthorizeTaskUpdate(actor *user.User, t *task.Task, patch task.Patch) (task.Patch, error) {
	switch {
	case actor == nil:
		return task.Patch{}, ErrNotAssignee
	case actor.IsOwner():
		return patch, nil
	case actor.IsMaid() && t.IsAssignedTo(actor.ID):
		return FilterPatch(patch, MaidFields), nil
	default:
		return task.Patch{}, ErrNotAssignee
	}
}

// FilterPatch intersects the patch with an explicit field allow-list.
func FilterPatch(patch task.Patch, allowed []task.Field) task.Patch {
	return patch.Only(allowed...)
}

// Scope describes which tasks a listing returns.
type Scope struct {
	// All is true when every task is visible.
	All bool
	// AssigneeID restricts the listing to tasks assigned to this user when
	// All is false.
	AssigneeID string
}

// TaskScope returns the listing scope for the actor. Owners see every task
// in the system, including tasks created by other owners; maids see only
// tasks assigned to them.
func TaskScope(actor *user.User) Scope {
	if actor.IsOwner() {
		return Scope{All: true}
	}
	return Scope{AssigneeID: actor.ID}
}

// Visible reports whether t falls inside the scope.
func (s Scope) Visible(t *task.Task) bool {
	return s.All || t.IsAssignedTo(s.AssigneeID)
}
