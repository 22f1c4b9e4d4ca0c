// Package task defines the Task entity, its lifecycle rules and the partial
// update type used to mutate it.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
)

// Task is a unit of household work created by an owner and optionally
// assigned to a maid. References to users are ids only.
type Task struct {
	ID            string
	Title         string
	Description   *string
	Status        Status
	Priority      Priority
	AssignedTo    *string
	CreatedBy     string
	Deadline      *time.Time
	CompletedAt   *time.Time
	PhotoEvidence *string
	Notes         *string
}

// Validate checks business rules for the Task entity. Checks run in field
// order and stop at the first failure.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return domain.NewValidationError("title", domain.MsgRequired)
	}
	if !t.Status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("invalid: %q", t.Status))
	}
	if !t.Priority.IsValid() {
		return domain.NewValidationError("priority", fmt.Sprintf("invalid: %q", t.Priority))
	}
	if strings.TrimSpace(t.CreatedBy) == "" {
		return domain.NewValidationError("createdBy", domain.MsgRequired)
	}
	return nil
}

// IsAssignedTo reports whether the task is assigned to the given user id.
func (t *Task) IsAssignedTo(userID string) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}

// Clone returns a deep copy so callers cannot alias stored state.
func (t Task) Clone() Task {
	t.Description = clonePtr(t.Description)
	t.AssignedTo = clonePtr(t.AssignedTo)
	t.Deadline = clonePtr(t.Deadline)
	t.CompletedAt = clonePtr(t.CompletedAt)
	t.PhotoEvidence = clonePtr(t.PhotoEvidence)
	t.Notes = clonePtr(t.Notes)
	return t
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
