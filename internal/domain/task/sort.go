package task

import (
	"cmp"
	"slices"
	"time"
)

// deadlineKey returns the sort key for a task deadline. A missing deadline
// sorts as the Unix epoch.
func deadlineKey(t *Task) time.Time {
	if t.Deadline == nil {
		return time.Unix(0, 0)
	}
	return *t.Deadline
}

// SortByDeadlineDesc orders tasks latest deadline first. Tasks without a
// deadline rank as the epoch and so come last. Equal keys fall back to id
// order for stable output.
func SortByDeadlineDesc(tasks []Task) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		if c := deadlineKey(&b).Compare(deadlineKey(&a)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
