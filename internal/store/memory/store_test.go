package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
	"github.com/jsamuelsen11/household-tasks/internal/store/memory"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// clock is a settable time source for deterministic timestamps.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func newTestStore(t *testing.T) (*memory.Store, *clock) {
	t.Helper()
	c := &clock{now: testNow}
	return memory.New(memory.WithClock(c.Now), memory.WithIDGenerator(sequentialIDs())), c
}

func updateTask(t *testing.T, s *memory.Store, id string, p task.Patch) (ports.TaskChange, bool) {
	t.Helper()
	change, ok, err := s.UpdateTask(context.Background(), id, ports.ApplyPatch(p))
	require.NoError(t, err)
	return change, ok
}

func mustCreateUser(t *testing.T, s *memory.Store, username string, role user.Role) user.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), user.User{
		Username:     username,
		PasswordHash: "hash",
		Name:         username + " name",
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string       { return &s }
func timePtr(t time.Time) *time.Time { return &t }
func statusPtr(s task.Status) *task.Status {
	return &s
}

func TestCreateUser_DefaultsAndUniqueness(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "alice", user.RoleOwner)
	assert.Equal(t, "id-001", u.ID)
	assert.Equal(t, user.LanguageEnglish, u.Language)
	assert.Nil(t, u.AvatarURL)

	_, err := s.CreateUser(ctx, user.User{Username: "alice", Name: "Other", Role: user.RoleMaid})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate CreateUser error = %v, want ErrConflict", err)
	}

	got, ok := s.GetUserByUsername(ctx, "alice")
	require.True(t, ok)
	assert.Equal(t, u.ID, got.ID)

	_, ok = s.GetUser(ctx, "missing")
	assert.False(t, ok)
}

func TestUpdateUserLanguage(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "maria", user.RoleMaid)

	got, ok := s.UpdateUserLanguage(ctx, u.ID, user.LanguageHindi)
	require.True(t, ok)
	assert.Equal(t, user.LanguageHindi, got.Language)

	stored, _ := s.GetUser(ctx, u.ID)
	assert.Equal(t, user.LanguageHindi, stored.Language)

	_, ok = s.UpdateUserLanguage(ctx, "missing", user.LanguageHindi)
	assert.False(t, ok)
}

func TestListMaids_OnlyMaids(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	mustCreateUser(t, s, "owner", user.RoleOwner)
	mustCreateUser(t, s, "zed", user.RoleMaid)
	mustCreateUser(t, s, "amy", user.RoleMaid)

	maids := s.ListMaids(context.Background())
	require.Len(t, maids, 2)
	assert.Equal(t, "amy", maids[0].Username)
	assert.Equal(t, "zed", maids[1].Username)
}

func TestCreateTask_DefaultsAndAssignmentNotification(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	maid := mustCreateUser(t, s, "maid1", user.RoleMaid)

	change := s.CreateTask(ctx, task.Task{
		Title:      "Wash car",
		AssignedTo: strPtr(maid.ID),
		CreatedBy:  owner.ID,
	})

	assert.Equal(t, task.StatusPending, change.Task.Status)
	assert.Equal(t, task.PriorityMedium, change.Task.Priority)
	assert.Nil(t, change.Task.CompletedAt)
	require.Len(t, change.Notifications, 1)

	notes := s.ListNotificationsForUser(ctx, maid.ID)
	require.Len(t, notes, 1)
	assert.Equal(t, notification.TypeTaskAssigned, notes[0].Type)
	assert.Equal(t, "New Task Assigned", notes[0].Title)
	assert.Equal(t, "You have been assigned 'Wash car'", notes[0].Message)
	assert.False(t, notes[0].Read)
	assert.Equal(t, 1, s.UnreadCount(ctx, maid.ID))
	assert.Empty(t, s.ListNotificationsForUser(ctx, owner.ID))
}

func TestCreateTask_UnassignedEmitsNothing(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)

	change := s.CreateTask(ctx, task.Task{Title: "Water plants", CreatedBy: owner.ID})
	assert.Empty(t, change.Notifications)
	assert.Empty(t, s.ListNotificationsForUser(ctx, owner.ID))
}

func TestCreateTask_CompletedAtCreation(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)

	change := s.CreateTask(ctx, task.Task{
		Title:       "Already done",
		Status:      task.StatusCompleted,
		CreatedBy:   owner.ID,
		CompletedAt: timePtr(testNow.Add(-48 * time.Hour)),
	})

	require.NotNil(t, change.Task.CompletedAt)
	assert.True(t, change.Task.CompletedAt.Equal(testNow))
	assert.Empty(t, s.ListNotificationsForUser(ctx, owner.ID), "creation never emits completion")
}

func TestCreateTask_IgnoresCallerCompletedAtWhenNotCompleted(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)

	change := s.CreateTask(context.Background(), task.Task{
		Title:       "Pending",
		CreatedBy:   owner.ID,
		CompletedAt: timePtr(testNow),
	})
	assert.Nil(t, change.Task.CompletedAt)
}

func TestUpdateTask_CompletionEdge(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	owner2 := mustCreateUser(t, s, "owner2", user.RoleOwner)
	maid := mustCreateUser(t, s, "maid1", user.RoleMaid)

	created := s.CreateTask(ctx, task.Task{Title: "Mop", AssignedTo: strPtr(maid.ID), CreatedBy: owner.ID})

	clk.Advance(time.Hour)
	change, ok := updateTask(t, s, created.Task.ID, task.Patch{Status: statusPtr(task.StatusCompleted)})
	require.True(t, ok)
	assert.True(t, change.Transition.Completed())
	require.NotNil(t, change.Task.CompletedAt)
	assert.True(t, change.Task.CompletedAt.Equal(testNow.Add(time.Hour)))
	assert.Len(t, change.Notifications, 2)

	for _, id := range []string{owner.ID, owner2.ID} {
		notes := s.ListNotificationsForUser(ctx, id)
		require.Len(t, notes, 1, "owner %s", id)
		assert.Equal(t, notification.TypeTaskCompleted, notes[0].Type)
		assert.Equal(t, "Task Completed", notes[0].Title)
		assert.Equal(t, "'Mop' has been marked as completed", notes[0].Message)
	}

	// Second completion is not an edge.
	firstStamp := *change.Task.CompletedAt
	clk.Advance(time.Hour)
	again, ok := updateTask(t, s, created.Task.ID, task.Patch{Status: statusPtr(task.StatusCompleted)})
	require.True(t, ok)
	assert.False(t, again.Transition.Completed())
	assert.Empty(t, again.Notifications)
	assert.True(t, again.Task.CompletedAt.Equal(firstStamp))
	assert.Len(t, s.ListNotificationsForUser(ctx, owner.ID), 1)
}

func TestUpdateTask_CompletionUsesSuppliedTimestamp(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	created := s.CreateTask(ctx, task.Task{Title: "Iron", CreatedBy: owner.ID})

	supplied := testNow.Add(-30 * time.Minute)
	change, ok := updateTask(t, s, created.Task.ID, task.Patch{
		Status:      statusPtr(task.StatusCompleted),
		CompletedAt: task.Some(supplied),
	})
	require.True(t, ok)
	assert.True(t, change.Task.CompletedAt.Equal(supplied))
}

func TestUpdateTask_ReopenKeepsCompletedAt(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	created := s.CreateTask(ctx, task.Task{Title: "Dust", CreatedBy: owner.ID})

	done, _ := updateTask(t, s, created.Task.ID, task.Patch{Status: statusPtr(task.StatusCompleted)})
	stamp := *done.Task.CompletedAt

	clk.Advance(time.Hour)
	reopened, _ := updateTask(t, s, created.Task.ID, task.Patch{Status: statusPtr(task.StatusInProgress)})
	require.NotNil(t, reopened.Task.CompletedAt)
	assert.True(t, reopened.Task.CompletedAt.Equal(stamp))

	clk.Advance(time.Hour)
	redone, _ := updateTask(t, s, created.Task.ID, task.Patch{Status: statusPtr(task.StatusCompleted)})
	assert.True(t, redone.Transition.Completed())
	assert.Len(t, redone.Notifications, 1)
	assert.True(t, redone.Task.CompletedAt.Equal(stamp))
}

func TestUpdateTask_NotFound(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	_, ok, err := s.UpdateTask(context.Background(), "missing", ports.ApplyPatch(task.Patch{Title: strPtr("x")}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateTask_ReassignDoesNotNotify(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	maid := mustCreateUser(t, s, "maid1", user.RoleMaid)
	created := s.CreateTask(ctx, task.Task{Title: "Cook", CreatedBy: owner.ID})

	change, ok := updateTask(t, s, created.Task.ID, task.Patch{AssignedTo: task.Some(maid.ID)})
	require.True(t, ok)
	assert.Empty(t, change.Notifications)
	assert.Equal(t, maid.ID, *change.Task.AssignedTo)
}

func TestUpdateTask_RenameAndCompleteNamesPriorTitle(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	created := s.CreateTask(ctx, task.Task{Title: "Mop", CreatedBy: owner.ID})

	change, ok := updateTask(t, s, created.Task.ID, task.Patch{
		Title:  strPtr("Mop kitchen"),
		Status: statusPtr(task.StatusCompleted),
	})
	require.True(t, ok)
	assert.Equal(t, "Mop kitchen", change.Task.Title)
	require.Len(t, change.Notifications, 1)
	assert.Equal(t, "'Mop' has been marked as completed", change.Notifications[0].Message)
}

func TestUpdateTask_RejectedUpdateLeavesTaskUntouched(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	maid := mustCreateUser(t, s, "maid1", user.RoleMaid)
	created := s.CreateTask(ctx, task.Task{Title: "Cook", AssignedTo: strPtr(maid.ID), CreatedBy: owner.ID})

	errRejected := errors.New("rejected")
	var seen task.Task
	_, ok, err := s.UpdateTask(ctx, created.Task.ID, func(current task.Task) (task.Patch, error) {
		seen = current
		return task.Patch{Status: statusPtr(task.StatusCompleted)}, errRejected
	})
	require.True(t, ok)
	require.ErrorIs(t, err, errRejected)
	assert.Equal(t, created.Task.ID, seen.ID)
	assert.Equal(t, maid.ID, *seen.AssignedTo)

	got, found := s.GetTask(ctx, created.Task.ID)
	require.True(t, found)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Empty(t, s.ListNotificationsForUser(ctx, owner.ID))
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	created := s.CreateTask(ctx, task.Task{Title: "Trash", CreatedBy: owner.ID})

	assert.True(t, s.DeleteTask(ctx, created.Task.ID))
	assert.False(t, s.DeleteTask(ctx, created.Task.ID))
	_, ok := s.GetTask(ctx, created.Task.ID)
	assert.False(t, ok)
}

func TestListTasks_OrderingAndScopes(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	maid1 := mustCreateUser(t, s, "maid1", user.RoleMaid)
	maid2 := mustCreateUser(t, s, "maid2", user.RoleMaid)

	early := s.CreateTask(ctx, task.Task{Title: "early", CreatedBy: owner.ID, AssignedTo: strPtr(maid1.ID), Deadline: timePtr(testNow)})
	none := s.CreateTask(ctx, task.Task{Title: "none", CreatedBy: owner.ID, AssignedTo: strPtr(maid1.ID)})
	late := s.CreateTask(ctx, task.Task{Title: "late", CreatedBy: owner.ID, AssignedTo: strPtr(maid2.ID), Deadline: timePtr(testNow.Add(48 * time.Hour))})

	all := s.ListTasks(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, []string{late.Task.ID, early.Task.ID, none.Task.ID}, ids(all))

	mine := s.ListTasksByAssignee(ctx, maid1.ID)
	assert.Equal(t, []string{early.Task.ID, none.Task.ID}, ids(mine))

	assert.Len(t, s.ListTasksByCreator(ctx, owner.ID), 3)
	assert.Empty(t, s.ListTasksByCreator(ctx, maid1.ID))
}

func TestReturnedValuesAreCopies(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	created := s.CreateTask(ctx, task.Task{Title: "Original", CreatedBy: owner.ID, Notes: strPtr("keep")})

	got, _ := s.GetTask(ctx, created.Task.ID)
	got.Title = "mutated"
	*got.Notes = "mutated"

	again, _ := s.GetTask(ctx, created.Task.ID)
	assert.Equal(t, "Original", again.Title)
	assert.Equal(t, "keep", *again.Notes)
}

func TestNotifications_ReadState(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore(t)
	ctx := context.Background()

	first := s.CreateNotification(ctx, notification.Notification{UserID: "u1", Title: "a", Type: notification.TypeGeneral})
	clk.Advance(time.Minute)
	second := s.CreateNotification(ctx, notification.Notification{UserID: "u1", Title: "b", Type: notification.TypeReminder})
	s.CreateNotification(ctx, notification.Notification{UserID: "u2", Title: "c", Type: notification.TypeGeneral})

	list := s.ListNotificationsForUser(ctx, "u1")
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, 2, s.UnreadCount(ctx, "u1"))

	n, ok := s.MarkNotificationRead(ctx, first.ID)
	require.True(t, ok)
	assert.True(t, n.Read)
	_, ok = s.MarkNotificationRead(ctx, first.ID)
	assert.True(t, ok, "marking twice succeeds")
	assert.Equal(t, 1, s.UnreadCount(ctx, "u1"))

	assert.Equal(t, 1, s.MarkAllNotificationsRead(ctx, "u1"))
	assert.Equal(t, 0, s.MarkAllNotificationsRead(ctx, "u1"))
	assert.Equal(t, 0, s.UnreadCount(ctx, "u1"))
	assert.Equal(t, 1, s.UnreadCount(ctx, "u2"))

	_, ok = s.MarkNotificationRead(ctx, "missing")
	assert.False(t, ok)
}

func TestConcurrentCompletion_NotifiesOnce(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner", user.RoleOwner)
	created := s.CreateTask(ctx, task.Task{Title: "Race", CreatedBy: owner.ID})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = s.UpdateTask(ctx, created.Task.ID, ports.ApplyPatch(task.Patch{Status: statusPtr(task.StatusCompleted)}))
		}()
	}
	wg.Wait()

	assert.Len(t, s.ListNotificationsForUser(ctx, owner.ID), 1)
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	assert.Equal(t, "entity-store", s.Name())
	assert.NoError(t, s.HealthCheck(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.HealthCheck(ctx), context.Canceled)

	var zero memory.Store
	assert.Error(t, zero.HealthCheck(context.Background()))
}

func ids(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].ID
	}
	return out
}
