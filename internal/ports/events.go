package ports

import "context"

// Task event names reported to the EventRecorder.
const (
	TaskEventCreated   = "created"
	TaskEventUpdated   = "updated"
	TaskEventCompleted = "completed"
	TaskEventDeleted   = "deleted"
)

// EventRecorder counts domain events. Implemented by telemetry.Metrics.
type EventRecorder interface {
	RecordTaskEvent(ctx context.Context, event string)
	RecordNotifications(ctx context.Context, notificationType string, n int)
}
