package task

import "time"

// Transition describes the status change produced by applying a Patch.
type Transition struct {
	From Status
	To   Status
}

// Completed reports whether the update crossed into StatusCompleted from a
// non-completed status. Completion side effects fire on this edge only, so
// re-completing a completed task is not a completion.
func (tr Transition) Completed() bool {
	return tr.From != StatusCompleted && tr.To == StatusCompleted
}

// Changed reports whether the status moved at all.
func (tr Transition) Changed() bool {
	return tr.From != tr.To
}

// Apply merges the present patch fields into t and returns the resulting
// status transition.
//
// completedAt follows the status, not the patch: it is stamped when the
// task first crosses into completed (using the patch value when supplied,
// otherwise now) and is kept from then on, including when the task is moved
// back out of completed. A completedAt in the patch is ignored on any update
// that is not the completion edge.
func (t *Task) Apply(p Patch, now time.Time) Transition {
	tr := Transition{From: t.Status}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description.Set {
		t.Description = clonePtr(p.Description.Value)
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.AssignedTo.Set {
		t.AssignedTo = clonePtr(p.AssignedTo.Value)
	}
	if p.Deadline.Set {
		t.Deadline = clonePtr(p.Deadline.Value)
	}
	if p.PhotoEvidence.Set {
		t.PhotoEvidence = clonePtr(p.PhotoEvidence.Value)
	}
	if p.Notes.Set {
		t.Notes = clonePtr(p.Notes.Value)
	}

	tr.To = t.Status

	if tr.Completed() && t.CompletedAt == nil {
		stamp := now
		if p.CompletedAt.Set && p.CompletedAt.Value != nil {
			stamp = *p.CompletedAt.Value
		}
		t.CompletedAt = &stamp
	}

	return tr
}

// Normalize fills creation defaults: pending status, medium priority and a
// completedAt that agrees with the initial status.
func (t *Task) Normalize(now time.Time) {
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	switch {
	case t.Status != StatusCompleted:
		t.CompletedAt = nil
	case t.CompletedAt == nil:
		stamp := now
		t.CompletedAt = &stamp
	}
}
