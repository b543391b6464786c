package planner

import (
	"strings"
	"testing"
)

func TestAnalyzeTasks(t *testing.T) {
	tasks := []Task{
		{Name: "Resume edit", Category: CategoryApplicationFocus, Priority: PriorityHigh},
		{Name: "Cover letter", Category: CategoryApplicationFocus, Priority: PriorityMedium},
		{Name: "Standup", Category: CategorySchedule, Priority: PriorityHigh},
		{Name: "Read paper", Category: CategoryResearchLearning, Priority: PriorityLow},
	}

	in := AnalyzeTasks(tasks)

	if in.Total != 4 {
		t.Errorf("total: got %d, want 4", in.Total)
	}
	if in.Carryable != 3 {
		t.Errorf("carryable: got %d, want 3", in.Carryable)
	}
	if in.Scheduled != 1 {
		t.Errorf("scheduled: got %d, want 1", in.Scheduled)
	}
	if in.ByCategory[CategoryApplicationFocus] != 2 {
		t.Errorf("application focus count: got %d, want 2", in.ByCategory[CategoryApplicationFocus])
	}
	if in.ByPriority[PriorityHigh] != 2 {
		t.Errorf("high priority count: got %d, want 2", in.ByPriority[PriorityHigh])
	}

	joined := strings.Join(in.Notes, "\n")
	if !strings.Contains(joined, "Application Focus") {
		t.Errorf("expected a note about the largest category, got %v", in.Notes)
	}
	if !strings.Contains(joined, "2 high priority") {
		t.Errorf("expected a note about open high priority tasks, got %v", in.Notes)
	}
	if !strings.Contains(joined, "will not carry over") {
		t.Errorf("expected a note about schedule items, got %v", in.Notes)
	}
}

func TestAnalyzeTasks_Empty(t *testing.T) {
	in := AnalyzeTasks(nil)
	if in.Total != 0 {
		t.Errorf("total: got %d, want 0", in.Total)
	}
	if len(in.Notes) != 1 || !strings.Contains(in.Notes[0], "No unfinished tasks") {
		t.Errorf("expected the empty-day note, got %v", in.Notes)
	}
}
