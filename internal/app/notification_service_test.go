package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/store/memory"
)

func TestNotificationService_ListAndCount(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	svc := NewNotificationService(store, store, discardLogger())
	ctx := context.Background()

	got, err := svc.ListNotifications(ctx, memory.SeedMaid1ID)
	if err != nil {
		t.Fatalf("ListNotifications() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "notif-2" {
		t.Fatalf("ListNotifications() = %+v, want notif-2 only", got)
	}

	count, err := svc.UnreadCount(ctx, memory.SeedMaid1ID)
	if err != nil {
		t.Fatalf("UnreadCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("UnreadCount() = %d, want 1", count)
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actorID string
		id      string
		wantErr error
	}{
		{name: "own notification", actorID: memory.SeedOwnerID, id: "notif-1"},
		{name: "another user's notification", actorID: memory.SeedMaid1ID, id: "notif-1", wantErr: domain.ErrNotFound},
		{name: "unknown notification", actorID: memory.SeedOwnerID, id: "notif-404", wantErr: domain.ErrNotFound},
		{name: "unknown actor", actorID: "ghost", id: "notif-1", wantErr: domain.ErrNotAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := seededStore(t)
			svc := NewNotificationService(store, store, discardLogger())

			got, err := svc.MarkRead(context.Background(), tt.actorID, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("MarkRead() error = %v, want %v", err, tt.wantErr)
				}
				if n, _ := store.GetNotification(context.Background(), "notif-1"); n.Read {
					t.Error("notif-1 marked read by a rejected call")
				}
				return
			}
			if err != nil {
				t.Fatalf("MarkRead() error = %v", err)
			}
			if !got.Read {
				t.Error("Read = false after MarkRead")
			}
		})
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	svc := NewNotificationService(store, store, discardLogger())
	ctx := context.Background()

	n, err := svc.MarkAllRead(ctx, memory.SeedOwnerID)
	if err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}
	if n != 1 {
		t.Errorf("MarkAllRead() = %d, want 1", n)
	}

	again, err := svc.MarkAllRead(ctx, memory.SeedOwnerID)
	if err != nil {
		t.Fatalf("second MarkAllRead() error = %v", err)
	}
	if again != 0 {
		t.Errorf("second MarkAllRead() = %d, want 0", again)
	}

	// Other users are untouched.
	if c, _ := svc.UnreadCount(ctx, memory.SeedMaid1ID); c != 1 {
		t.Errorf("maid-1 UnreadCount() = %d, want 1", c)
	}
}
