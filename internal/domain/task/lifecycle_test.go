package task

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func statusPtr(s Status) *Status { return &s }

func TestApply_MergesPresentFieldsOnly(t *testing.T) {
	t.Parallel()

	tk := validTask()
	tk.Description = strPtr("vacuum")

	tr := tk.Apply(Patch{
		Notes:    Some("started"),
		Priority: func() *Priority { p := PriorityLow; return &p }(),
	}, testNow)

	if tr.Changed() {
		t.Errorf("Changed() = true for a patch without status")
	}
	if tk.Notes == nil || *tk.Notes != "started" {
		t.Errorf("Notes = %v, want started", tk.Notes)
	}
	if tk.Priority != PriorityLow {
		t.Errorf("Priority = %q, want low", tk.Priority)
	}
	if tk.Description == nil || *tk.Description != "vacuum" {
		t.Errorf("Description changed by absent field: %v", tk.Description)
	}
	if tk.Title != "Clean living room" {
		t.Errorf("Title changed by absent field: %q", tk.Title)
	}
}

func TestApply_NullClearsNullableField(t *testing.T) {
	t.Parallel()

	tk := validTask()
	tk.Apply(Patch{AssignedTo: Null[string]()}, testNow)

	if tk.AssignedTo != nil {
		t.Errorf("AssignedTo = %v, want nil", *tk.AssignedTo)
	}
}

func TestApply_CompletionEdge(t *testing.T) {
	t.Parallel()

	supplied := testNow.Add(-time.Hour)

	tests := []struct {
		name          string
		from          Status
		patch         Patch
		wantCompleted bool
		wantStamp     *time.Time
	}{
		{
			name:          "pending to completed stamps now",
			from:          StatusPending,
			patch:         Patch{Status: statusPtr(StatusCompleted)},
			wantCompleted: true,
			wantStamp:     &testNow,
		},
		{
			name:          "in_progress to completed uses supplied time",
			from:          StatusInProgress,
			patch:         Patch{Status: statusPtr(StatusCompleted), CompletedAt: Some(supplied)},
			wantCompleted: true,
			wantStamp:     &supplied,
		},
		{
			name:          "supplied null still stamps now",
			from:          StatusPending,
			patch:         Patch{Status: statusPtr(StatusCompleted), CompletedAt: Null[time.Time]()},
			wantCompleted: true,
			wantStamp:     &testNow,
		},
		{
			name:  "pending to in_progress is not completion",
			from:  StatusPending,
			patch: Patch{Status: statusPtr(StatusInProgress)},
		},
		{
			name:  "completedAt without completion is ignored",
			from:  StatusPending,
			patch: Patch{CompletedAt: Some(supplied)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tk := validTask()
			tk.Status = tt.from

			tr := tk.Apply(tt.patch, testNow)

			if got := tr.Completed(); got != tt.wantCompleted {
				t.Errorf("Completed() = %v, want %v", got, tt.wantCompleted)
			}
			switch {
			case tt.wantStamp == nil && tk.CompletedAt != nil:
				t.Errorf("CompletedAt = %v, want nil", *tk.CompletedAt)
			case tt.wantStamp != nil && (tk.CompletedAt == nil || !tk.CompletedAt.Equal(*tt.wantStamp)):
				t.Errorf("CompletedAt = %v, want %v", tk.CompletedAt, *tt.wantStamp)
			}
		})
	}
}

func TestApply_RecompletingIsNotAnEdge(t *testing.T) {
	t.Parallel()

	tk := validTask()
	first := tk.Apply(Patch{Status: statusPtr(StatusCompleted)}, testNow)
	if !first.Completed() {
		t.Fatal("first completion not reported")
	}
	stamp := *tk.CompletedAt

	later := testNow.Add(time.Hour)
	second := tk.Apply(Patch{Status: statusPtr(StatusCompleted), CompletedAt: Some(later)}, later)

	if second.Completed() {
		t.Error("second completion reported as an edge")
	}
	if !tk.CompletedAt.Equal(stamp) {
		t.Errorf("CompletedAt = %v, want unchanged %v", *tk.CompletedAt, stamp)
	}
}

func TestApply_LeavingCompletedKeepsCompletedAt(t *testing.T) {
	t.Parallel()

	tk := validTask()
	tk.Apply(Patch{Status: statusPtr(StatusCompleted)}, testNow)

	tr := tk.Apply(Patch{Status: statusPtr(StatusInProgress)}, testNow.Add(time.Minute))
	if tr.Completed() {
		t.Error("reopening reported as completion")
	}
	if tk.CompletedAt == nil {
		t.Fatal("CompletedAt cleared on reopening")
	}

	again := tk.Apply(Patch{Status: statusPtr(StatusCompleted)}, testNow.Add(time.Hour))
	if !again.Completed() {
		t.Error("completing a reopened task is an edge")
	}
	if !tk.CompletedAt.Equal(testNow) {
		t.Errorf("CompletedAt = %v, want first stamp %v", *tk.CompletedAt, testNow)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults", func(t *testing.T) {
		t.Parallel()
		tk := Task{Title: "Laundry", CreatedBy: "owner-1", CompletedAt: timePtr(testNow)}
		tk.Normalize(testNow)

		if tk.Status != StatusPending {
			t.Errorf("Status = %q, want pending", tk.Status)
		}
		if tk.Priority != PriorityMedium {
			t.Errorf("Priority = %q, want medium", tk.Priority)
		}
		if tk.CompletedAt != nil {
			t.Error("CompletedAt set on a pending task")
		}
	})

	t.Run("created completed gets a stamp", func(t *testing.T) {
		t.Parallel()
		tk := Task{Title: "Laundry", CreatedBy: "owner-1", Status: StatusCompleted}
		tk.Normalize(testNow)

		if tk.CompletedAt == nil || !tk.CompletedAt.Equal(testNow) {
			t.Errorf("CompletedAt = %v, want %v", tk.CompletedAt, testNow)
		}
	})

	t.Run("created completed keeps supplied stamp", func(t *testing.T) {
		t.Parallel()
		supplied := testNow.Add(-2 * time.Hour)
		tk := Task{Title: "Laundry", CreatedBy: "owner-1", Status: StatusCompleted, CompletedAt: &supplied}
		tk.Normalize(testNow)

		if tk.CompletedAt == nil || !tk.CompletedAt.Equal(supplied) {
			t.Errorf("CompletedAt = %v, want %v", tk.CompletedAt, supplied)
		}
	})
}
