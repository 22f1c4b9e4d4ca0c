package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName scopes all instruments to the service's module path.
const meterName = "github.com/jsamuelsen11/household-tasks"

// Attribute keys for metric labels.
var (
	AttrHTTPMethod       = attribute.Key("http.method")
	AttrHTTPStatus       = attribute.Key("http.status_code")
	AttrHTTPRoute        = attribute.Key("http.route")
	AttrResult           = attribute.Key("result")
	AttrTaskEvent        = attribute.Key("event")
	AttrNotificationType = attribute.Key("type")
)

// Metrics holds the service's instruments and implements
// ports.EventRecorder. A nil *Metrics is valid and records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	TaskEvents            metric.Int64Counter
	NotificationsEmitted  metric.Int64Counter
}

type counterSpec struct {
	dst         *metric.Int64Counter
	name        string
	description string
	unit        string
}

// NewMetrics registers every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)
	m := &Metrics{}

	var err error
	m.ServerRequestDuration, err = meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	counters := []counterSpec{
		{&m.ServerRequestTotal, "http.server.request.total", "Total number of incoming HTTP requests", "{request}"},
		{&m.TaskEvents, "tasks.events.total", "Task lifecycle events by kind", "{event}"},
		{&m.NotificationsEmitted, "notifications.emitted.total", "Notifications generated from task events", "{notification}"},
	}
	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.description), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
	}

	return m, nil
}

// RecordTaskEvent increments tasks.events.total for the given event.
func (m *Metrics) RecordTaskEvent(ctx context.Context, event string) {
	if m == nil {
		return
	}
	m.TaskEvents.Add(ctx, 1, metric.WithAttributes(AttrTaskEvent.String(event)))
}

// RecordNotifications adds n to notifications.emitted.total for the given type.
func (m *Metrics) RecordNotifications(ctx context.Context, notificationType string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.NotificationsEmitted.Add(ctx, int64(n), metric.WithAttributes(AttrNotificationType.String(notificationType)))
}
