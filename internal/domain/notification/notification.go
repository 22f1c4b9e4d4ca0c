// Package notification defines the Notification entity and the builders
// used to derive notifications from task events.
package notification

import (
	"fmt"
	"time"
)

// Type categorizes a notification.
type Type string

const (
	TypeTaskAssigned  Type = "task_assigned"
	TypeTaskCompleted Type = "task_completed"
	TypeReminder      Type = "reminder"
	TypeGeneral       Type = "general"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeTaskAssigned, TypeTaskCompleted, TypeReminder, TypeGeneral:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Titles used for generated notifications.
const (
	TitleTaskAssigned  = "New Task Assigned"
	TitleTaskCompleted = "Task Completed"
)

// Notification is a read-tracked message addressed to one user.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      Type
	Read      bool
	CreatedAt time.Time
}

// Assigned builds the notification sent to a maid when a task is assigned
// to them. The ID is left empty for the store to fill.
func Assigned(maidID, taskTitle string, now time.Time) Notification {
	return Notification{
		UserID:    maidID,
		Title:     TitleTaskAssigned,
		Message:   fmt.Sprintf("You have been assigned '%s'", taskTitle),
		Type:      TypeTaskAssigned,
		CreatedAt: now,
	}
}

// Completed builds one notification per owner for a task that was just
// completed.
func Completed(ownerIDs []string, taskTitle string, now time.Time) []Notification {
	out := make([]Notification, 0, len(ownerIDs))
	for _, id := range ownerIDs {
		out = append(out, Notification{
			UserID:    id,
			Title:     TitleTaskCompleted,
			Message:   fmt.Sprintf("'%s' has been marked as completed", taskTitle),
			Type:      TypeTaskCompleted,
			CreatedAt: now,
		})
	}
	return out
}
