package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/household-tasks/internal/domain/notification"
	"github.com/jsamuelsen11/household-tasks/internal/domain/task"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// SeedPassword is the password of every demo account.
const SeedPassword = "1234"

// Demo account IDs.
const (
	SeedOwnerID = "owner-1"
	SeedMaid1ID = "maid-1"
	SeedMaid2ID = "maid-2"
)

// ErrAlreadySeeded is returned by Seed when the store already holds users.
var ErrAlreadySeeded = errors.New("memory: store already seeded")

// Seed loads the demo household: one owner, two maids, five tasks and two
// notifications. Timestamps are relative to the store clock. Seeding
// bypasses notification emission; the seeded notifications are stored as is.
func (s *Store) Seed(_ context.Context, hasher ports.PasswordHasher) error {
	hash, err := hasher.Hash(SeedPassword)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) > 0 {
		return ErrAlreadySeeded
	}

	today := s.now()
	tomorrow := today.AddDate(0, 0, 1)
	nextWeek := today.AddDate(0, 0, 7)
	yesterday := today.Add(-24 * time.Hour)
	halfDayAgo := today.Add(-12 * time.Hour)
	hourAgo := today.Add(-time.Hour)

	for _, u := range []user.User{
		{ID: SeedOwnerID, Username: "owner", Name: "John Smith", Role: user.RoleOwner, Language: user.LanguageEnglish},
		{ID: SeedMaid1ID, Username: "maid1", Name: "Maria Santos", Role: user.RoleMaid, Language: user.LanguageFilipino},
		{ID: SeedMaid2ID, Username: "maid2", Name: "Fatima Ahmed", Role: user.RoleMaid, Language: user.LanguageArabic},
	} {
		u.PasswordHash = hash
		s.users[u.ID] = u
	}

	for _, t := range []task.Task{
		{
			ID:          "task-1",
			Title:       "Clean living room",
			Description: ptr("Vacuum, dust all surfaces, and organize the coffee table"),
			Status:      task.StatusPending,
			Priority:    task.PriorityHigh,
			AssignedTo:  ptr(SeedMaid1ID),
			Deadline:    ptr(today),
		},
		{
			ID:          "task-2",
			Title:       "Wash dishes",
			Description: ptr("Clean all dishes in the sink and organize the kitchen"),
			Status:      task.StatusInProgress,
			Priority:    task.PriorityMedium,
			AssignedTo:  ptr(SeedMaid1ID),
			Deadline:    ptr(today),
			Notes:       ptr("Started at 10:00 AM"),
		},
		{
			ID:          "task-3",
			Title:       "Laundry",
			Description: ptr("Wash, dry, fold, and put away all laundry"),
			Status:      task.StatusPending,
			Priority:    task.PriorityMedium,
			AssignedTo:  ptr(SeedMaid2ID),
			Deadline:    ptr(tomorrow),
		},
		{
			ID:          "task-4",
			Title:       "Clean bathrooms",
			Description: ptr("Deep clean all bathrooms including toilets, sinks, and mirrors"),
			Status:      task.StatusCompleted,
			Priority:    task.PriorityHigh,
			AssignedTo:  ptr(SeedMaid1ID),
			Deadline:    ptr(yesterday),
			CompletedAt: ptr(halfDayAgo),
			Notes:       ptr("All done, used new cleaning supplies"),
		},
		{
			ID:          "task-5",
			Title:       "Grocery shopping",
			Description: ptr("Buy items from the shopping list on the fridge"),
			Status:      task.StatusPending,
			Priority:    task.PriorityLow,
			AssignedTo:  ptr(SeedMaid2ID),
			Deadline:    ptr(nextWeek),
		},
	} {
		t.CreatedBy = SeedOwnerID
		s.tasks[t.ID] = t
	}

	for _, n := range []notification.Notification{
		{
			ID:        "notif-1",
			UserID:    SeedOwnerID,
			Title:     notification.TitleTaskCompleted,
			Message:   "Maria Santos completed 'Clean bathrooms'",
			Type:      notification.TypeTaskCompleted,
			CreatedAt: halfDayAgo,
		},
		{
			ID:        "notif-2",
			UserID:    SeedMaid1ID,
			Title:     notification.TitleTaskAssigned,
			Message:   "You have been assigned 'Clean living room'",
			Type:      notification.TypeTaskAssigned,
			CreatedAt: hourAgo,
		},
	} {
		s.notifications[n.ID] = n
	}

	return nil
}

func ptr[T any](v T) *T {
	return &v
}
