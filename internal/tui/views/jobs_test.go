package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/morrow/internal/tui/msgs"
)

func TestJobsModel_Navigate(t *testing.T) {
	m := NewJobsModel(testPlan())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.Cursor() != 1 {
		t.Errorf("expected cursor to be 1 after 'j', got %d", m.Cursor())
	}

	// 2 jobs, cursor clamps at the end
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 1 {
		t.Errorf("expected cursor to clamp at 1, got %d", m.Cursor())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.Cursor() != 0 {
		t.Errorf("expected cursor to be 0 after 'k', got %d", m.Cursor())
	}
}

func TestJobsModel_RemoveJob(t *testing.T) {
	plan := testPlan()
	m := NewJobsModel(plan)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	if plan.JobCount() != 1 {
		t.Fatalf("expected 1 job after remove, got %d", plan.JobCount())
	}
	if plan.Jobs[0].Name != "Platform Engineer" {
		t.Errorf("expected remaining job to be Platform Engineer, got %q", plan.Jobs[0].Name)
	}
	if m.Cursor() != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", m.Cursor())
	}
}

func TestJobsModel_Reorder_Down(t *testing.T) {
	plan := testPlan()
	m := NewJobsModel(plan)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'J'}})

	if plan.Jobs[0].Name != "Platform Engineer" {
		t.Errorf("expected Platform Engineer first after reorder, got %q", plan.Jobs[0].Name)
	}
	if plan.Jobs[1].Name != "Backend Engineer" {
		t.Errorf("expected Backend Engineer second after reorder, got %q", plan.Jobs[1].Name)
	}
	if m.Cursor() != 1 {
		t.Errorf("expected cursor to follow the job to 1, got %d", m.Cursor())
	}
}

func TestJobsModel_Reorder_Up(t *testing.T) {
	plan := testPlan()
	m := NewJobsModel(plan)
	m.cursor = 1

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'K'}})

	if plan.Jobs[0].Name != "Platform Engineer" {
		t.Errorf("expected Platform Engineer first after reorder, got %q", plan.Jobs[0].Name)
	}
	if m.Cursor() != 0 {
		t.Errorf("expected cursor to follow the job to 0, got %d", m.Cursor())
	}
}

func TestJobsModel_Reorder_TopIsNoop(t *testing.T) {
	plan := testPlan()
	m := NewJobsModel(plan)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'K'}})

	if plan.Jobs[0].Name != "Backend Engineer" {
		t.Errorf("expected order unchanged, got %q first", plan.Jobs[0].Name)
	}
	if m.Cursor() != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", m.Cursor())
	}
}

func TestJobsModel_EscReturnsToReview(t *testing.T) {
	m := NewJobsModel(testPlan())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected command from esc")
	}
	if _, ok := cmd().(msgs.GoToReviewMsg); !ok {
		t.Errorf("expected msgs.GoToReviewMsg, got %T", cmd())
	}
}

func TestJobsModel_View(t *testing.T) {
	m := NewJobsModel(testPlan())
	m.SetSize(100, 30)

	view := stripANSI(m.View())
	if !strings.Contains(view, "Edit featured jobs") {
		t.Errorf("expected title in view, got: %s", view)
	}
	if !strings.Contains(view, "1. Backend Engineer") {
		t.Errorf("expected ranked job line in view, got: %s", view)
	}
	if !strings.Contains(view, "due September 12, 2025") {
		t.Errorf("expected deadline in view, got: %s", view)
	}
}

func TestJobsModel_View_Empty(t *testing.T) {
	plan := testPlan()
	plan.Jobs = nil

	m := NewJobsModel(plan)
	m.SetSize(100, 30)

	view := stripANSI(m.View())
	if !strings.Contains(view, "No featured jobs in this plan.") {
		t.Errorf("expected empty message in view, got: %s", view)
	}
}
