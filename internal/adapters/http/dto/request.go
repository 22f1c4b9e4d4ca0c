package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/platform/validation"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

const msgNotNull = "must not be null"

// RegisterRequest represents the JSON body for creating an account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
	Name     string `json:"name"     validate:"required,min=2"`
	Role     string `json:"role"     validate:"required,oneof=owner maid"`
}

// Validate checks the request against its field rules.
func (r *RegisterRequest) Validate() error {
	return validation.Struct(r)
}

// ToInput converts the request to the service input.
func (r *RegisterRequest) ToInput() ports.RegisterInput {
	return ports.RegisterInput{
		Username: r.Username,
		Password: r.Password,
		Name:     r.Name,
		Role:     user.Role(r.Role),
	}
}

// LoginRequest represents the JSON body for logging in. The role must match
// the role the account was registered with.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"required,oneof=owner maid"`
}

// Validate checks the request against its field rules.
func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// ToInput converts the request to the service input.
func (r *LoginRequest) ToInput() ports.LoginInput {
	return ports.LoginInput{
		Username: r.Username,
		Password: r.Password,
		Role:     user.Role(r.Role),
	}
}

// UpdateLanguageRequest represents the JSON body for changing the caller's
// language preference.
type UpdateLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en ar hi id fil ur tw am"`
}

// Validate checks the request against its field rules.
func (r *UpdateLanguageRequest) Validate() error {
	return validation.Struct(r)
}

// CreateTaskRequest represents the JSON body for creating a task.
type CreateTaskRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description *string    `json:"description"`
	Status      string     `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high"`
	AssignedTo  *string    `json:"assignedTo"  validate:"omitnil,min=1"`
	Deadline    *Timestamp `json:"deadline"`
	CompletedAt *Timestamp `json:"completedAt"`
	Notes       *string    `json:"notes"`
}

// Validate checks the request against its field rules.
func (r *CreateTaskRequest) Validate() error {
	return validation.Struct(r)
}

// ToDomain converts the request to a task draft. Status and priority are
// left empty when absent so the service applies its defaults.
func (r *CreateTaskRequest) ToDomain() *task.Task {
	return &task.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      task.Status(r.Status),
		Priority:    task.Priority(r.Priority),
		AssignedTo:  r.AssignedTo,
		Deadline:    timePtr(r.Deadline),
		CompletedAt: timePtr(r.CompletedAt),
		Notes:       r.Notes,
	}
}

// UpdateTaskRequest represents the JSON body for a partial task update.
// Absent keys leave a field unchanged; an explicit null clears a nullable
// field. Unknown keys are ignored.
type UpdateTaskRequest struct {
	patch task.Patch
}

// UnmarshalJSON decodes the body key by key so that absent and null values
// stay distinguishable.
func (r *UpdateTaskRequest) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var p task.Patch
	err := errors.Join(
		decodeValue(raw, task.FieldTitle, &p.Title),
		decodeNullable(raw, task.FieldDescription, &p.Description),
		decodeValue(raw, task.FieldStatus, &p.Status),
		decodeValue(raw, task.FieldPriority, &p.Priority),
		decodeNullable(raw, task.FieldAssignedTo, &p.AssignedTo),
		decodeNullableTime(raw, task.FieldDeadline, &p.Deadline),
		decodeNullableTime(raw, task.FieldCompletedAt, &p.CompletedAt),
		decodeNullable(raw, task.FieldPhotoEvidence, &p.PhotoEvidence),
		decodeNullable(raw, task.FieldNotes, &p.Notes),
	)
	if err != nil {
		return firstValidationError(err)
	}

	r.patch = p
	return nil
}

// Validate checks the values of the present fields.
func (r *UpdateTaskRequest) Validate() error {
	return r.patch.Validate()
}

// Patch returns the decoded partial update.
func (r *UpdateTaskRequest) Patch() task.Patch {
	return r.patch
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// decodeValue decodes a non-nullable field into dst when present.
func decodeValue[T any](raw map[string]json.RawMessage, f task.Field, dst **T) error {
	v, ok := raw[string(f)]
	if !ok {
		return nil
	}
	if isNull(v) {
		return domain.NewValidationError(string(f), msgNotNull)
	}
	var out T
	if err := json.Unmarshal(v, &out); err != nil {
		return domain.NewValidationError(string(f), "has the wrong type")
	}
	*dst = &out
	return nil
}

func decodeNullable[T any](raw map[string]json.RawMessage, f task.Field, dst *task.Nullable[T]) error {
	v, ok := raw[string(f)]
	if !ok {
		return nil
	}
	if isNull(v) {
		*dst = task.Null[T]()
		return nil
	}
	var out T
	if err := json.Unmarshal(v, &out); err != nil {
		return domain.NewValidationError(string(f), "has the wrong type")
	}
	*dst = task.Some(out)
	return nil
}

func decodeNullableTime(raw map[string]json.RawMessage, f task.Field, dst *task.Nullable[time.Time]) error {
	v, ok := raw[string(f)]
	if !ok {
		return nil
	}
	if isNull(v) {
		*dst = task.Null[time.Time]()
		return nil
	}
	t, err := parseTimestamp(v)
	if err != nil {
		return domain.NewValidationError(string(f), err.Error())
	}
	*dst = task.Some(t)
	return nil
}

// firstValidationError picks the first field error out of a joined error so
// the response names a single field.
func firstValidationError(err error) error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	}
	return err
}
