package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/household-tasks/internal/platform/telemetry"
)

// These tests are not parallel because they replace the global
// TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

// tracedRouter mounts the middleware on a chi router the way the server
// does, so route patterns are available.
func tracedRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Patch("/api/tasks/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func spanAttrs(span tracetest.SpanStub) map[string]any {
	attrs := make(map[string]any)
	for _, a := range span.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return attrs
}

func TestOpenTelemetry_NamesSpanAfterRoute(t *testing.T) {
	exporter := setupTracer(t)

	rec := httptest.NewRecorder()
	tracedRouter(nil, http.StatusOK).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/tasks/task-42", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Name != "HTTP PATCH /api/tasks/{id}" {
		t.Errorf("span name = %q, want route pattern", spans[0].Name)
	}

	attrs := spanAttrs(spans[0])
	if attrs["http.route"] != "/api/tasks/{id}" {
		t.Errorf("http.route = %v", attrs["http.route"])
	}
	if attrs["url.path"] != "/api/tasks/task-42" {
		t.Errorf("url.path = %v", attrs["url.path"])
	}
	if status, ok := attrs["http.status_code"].(int64); !ok || status != http.StatusOK {
		t.Errorf("http.status_code = %v, want 200", attrs["http.status_code"])
	}
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	exporter := setupTracer(t)

	rec := httptest.NewRecorder()
	tracedRouter(nil, http.StatusOK).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Name != "HTTP GET" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "HTTP GET")
	}
	if got := spanAttrs(spans[0])["http.route"]; got != "unmatched" {
		t.Errorf("http.route = %v, want unmatched", got)
	}
}

func TestOpenTelemetry_SetsErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	rec := httptest.NewRecorder()
	tracedRouter(nil, http.StatusInternalServerError).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/tasks/t", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("span status code = %d, want Error", spans[0].Status.Code)
	}
}

func TestOpenTelemetry_RecordsRouteMetrics(t *testing.T) {
	setupTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	router := tracedRouter(metrics, http.StatusForbidden)
	for _, id := range []string{"task-1", "task-2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/tasks/"+id, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("request total data = %T", m.Data)
			}
			if len(sum.DataPoints) != 1 {
				t.Fatalf("data points = %d, want 1 series for both ids", len(sum.DataPoints))
			}
			if sum.DataPoints[0].Value != 2 {
				t.Errorf("count = %d, want 2", sum.DataPoints[0].Value)
			}
			route, _ := sum.DataPoints[0].Attributes.Value(telemetry.AttrHTTPRoute)
			if route.AsString() != "/api/tasks/{id}" {
				t.Errorf("route label = %q", route.AsString())
			}
			return
		}
	}
	t.Fatal("http.server.request.total not collected")
}

func TestOpenTelemetry_NilMetricsNoPanic(t *testing.T) {
	t.Parallel()

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
