package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
)

// Field names a patchable Task field. Values match the JSON field names
// used by clients.
type Field string

const (
	FieldTitle         Field = "title"
	FieldDescription   Field = "description"
	FieldStatus        Field = "status"
	FieldPriority      Field = "priority"
	FieldAssignedTo    Field = "assignedTo"
	FieldDeadline      Field = "deadline"
	FieldCompletedAt   Field = "completedAt"
	FieldPhotoEvidence Field = "photoEvidence"
	FieldNotes         Field = "notes"
)

// Nullable is a patch value that distinguishes "absent" (Set false) from
// "explicitly null" (Set true, Value nil).
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present, non-null value.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null returns a present null value.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Patch is a partial update. Only present fields are merged.
type Patch struct {
	Title         *string
	Description   Nullable[string]
	Status        *Status
	Priority      *Priority
	AssignedTo    Nullable[string]
	Deadline      Nullable[time.Time]
	CompletedAt   Nullable[time.Time]
	PhotoEvidence Nullable[string]
	Notes         Nullable[string]
}

// Fields returns the names of the fields present in the patch.
func (p Patch) Fields() []Field {
	var fields []Field
	if p.Title != nil {
		fields = append(fields, FieldTitle)
	}
	if p.Description.Set {
		fields = append(fields, FieldDescription)
	}
	if p.Status != nil {
		fields = append(fields, FieldStatus)
	}
	if p.Priority != nil {
		fields = append(fields, FieldPriority)
	}
	if p.AssignedTo.Set {
		fields = append(fields, FieldAssignedTo)
	}
	if p.Deadline.Set {
		fields = append(fields, FieldDeadline)
	}
	if p.CompletedAt.Set {
		fields = append(fields, FieldCompletedAt)
	}
	if p.PhotoEvidence.Set {
		fields = append(fields, FieldPhotoEvidence)
	}
	if p.Notes.Set {
		fields = append(fields, FieldNotes)
	}
	return fields
}

// IsEmpty reports whether no field is present.
func (p Patch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Only returns a copy of the patch keeping just the allowed fields. Fields
// outside the allow-list are dropped, not rejected.
func (p Patch) Only(allowed ...Field) Patch {
	keep := make(map[Field]bool, len(allowed))
	for _, f := range allowed {
		keep[f] = true
	}

	var out Patch
	if keep[FieldTitle] {
		out.Title = p.Title
	}
	if keep[FieldDescription] {
		out.Description = p.Description
	}
	if keep[FieldStatus] {
		out.Status = p.Status
	}
	if keep[FieldPriority] {
		out.Priority = p.Priority
	}
	if keep[FieldAssignedTo] {
		out.AssignedTo = p.AssignedTo
	}
	if keep[FieldDeadline] {
		out.Deadline = p.Deadline
	}
	if keep[FieldCompletedAt] {
		out.CompletedAt = p.CompletedAt
	}
	if keep[FieldPhotoEvidence] {
		out.PhotoEvidence = p.PhotoEvidence
	}
	if keep[FieldNotes] {
		out.Notes = p.Notes
	}
	return out
}

// Validate checks the present fields in declaration order and returns the
// first failure.
func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return domain.NewValidationError(string(FieldTitle), domain.MsgNotEmpty)
	}
	if p.Status != nil && !p.Status.IsValid() {
		return domain.NewValidationError(string(FieldStatus), fmt.Sprintf("invalid: %q", *p.Status))
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return domain.NewValidationError(string(FieldPriority), fmt.Sprintf("invalid: %q", *p.Priority))
	}
	return nil
}
