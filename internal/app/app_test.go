package app

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/household-tasks/internal/platform/credentials"
	"github.com/jsamuelsen11/household-tasks/internal/store/memory"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string { return &s }

// recorder captures domain events in memory.
type recorder struct {
	mu            sync.Mutex
	events        []string
	notifications map[string]int
}

func (r *recorder) RecordTaskEvent(_ context.Context, event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) RecordNotifications(_ context.Context, typ string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.notifications == nil {
		r.notifications = make(map[string]int)
	}
	r.notifications[typ] += n
}

// seededStore returns a store loaded with the demo household.
func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New(memory.WithClock(func() time.Time { return testNow }))
	if err := s.Seed(context.Background(), testHasher()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return s
}

func testHasher() *credentials.BcryptHasher {
	return credentials.NewBcryptHasher(bcrypt.MinCost)
}
