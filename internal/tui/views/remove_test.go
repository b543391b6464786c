package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/morrow/internal/tui/msgs"
)

func typeInto(t *testing.T, m RemoveModel, s string) RemoveModel {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestRemoveModel_StartsEmpty(t *testing.T) {
	m := NewRemoveModel(testPlan())

	if m.phase != removeSearching {
		t.Errorf("expected searching phase, got %d", m.phase)
	}
	if m.Matches() != nil {
		t.Errorf("expected no matches before typing, got %v", m.Matches())
	}
}

func TestRemoveModel_TypeToSearch(t *testing.T) {
	m := NewRemoveModel(testPlan())

	m = typeInto(t, m, "paper")

	if len(m.Matches()) != 1 || m.Matches()[0] != 1 {
		t.Fatalf("expected match [1], got %v", m.Matches())
	}
}

func TestRemoveModel_CursorResetsWhenMatchesShrink(t *testing.T) {
	m := NewRemoveModel(testPlan())

	// "re" matches all three fixture tasks
	m = typeInto(t, m, "re")
	if len(m.Matches()) != 3 {
		t.Fatalf("expected 3 matches, got %v", m.Matches())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.cursor)
	}

	// Narrowing to "rec" leaves only the recruiter task
	m = typeInto(t, m, "c")
	if len(m.Matches()) != 1 || m.Matches()[0] != 2 {
		t.Fatalf("expected match [2], got %v", m.Matches())
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor to reset to 0, got %d", m.cursor)
	}
}

func TestRemoveModel_EnterSelectsMatch(t *testing.T) {
	m := NewRemoveModel(testPlan())
	m = typeInto(t, m, "paper")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.phase != removeConfirming {
		t.Errorf("expected confirming phase, got %d", m.phase)
	}
	if m.target != 1 {
		t.Errorf("expected target index 1, got %d", m.target)
	}
}

func TestRemoveModel_EnterWithoutMatchesStays(t *testing.T) {
	m := NewRemoveModel(testPlan())
	m = typeInto(t, m, "zzz")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.phase != removeSearching {
		t.Errorf("expected to stay in searching phase, got %d", m.phase)
	}
}

func TestRemoveModel_ConfirmRemoves(t *testing.T) {
	plan := testPlan()
	m := NewRemoveModel(plan)
	m = typeInto(t, m, "paper")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	if plan.TaskCount() != 2 {
		t.Fatalf("expected 2 tasks after remove, got %d", plan.TaskCount())
	}
	for _, task := range plan.Tasks {
		if task.Name == "Read compiler paper" {
			t.Error("expected the matched task to be removed")
		}
	}
	if cmd == nil {
		t.Fatal("expected command after confirming")
	}
	if _, ok := cmd().(msgs.GoToReviewMsg); !ok {
		t.Errorf("expected msgs.GoToReviewMsg, got %T", cmd())
	}
}

func TestRemoveModel_DeclineKeepsTask(t *testing.T) {
	plan := testPlan()
	m := NewRemoveModel(plan)
	m = typeInto(t, m, "paper")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	if plan.TaskCount() != 3 {
		t.Errorf("expected all 3 tasks kept, got %d", plan.TaskCount())
	}
	if m.phase != removeSearching {
		t.Errorf("expected to return to searching phase, got %d", m.phase)
	}
	if !m.input.Focused() {
		t.Error("expected the search input to regain focus")
	}
}

func TestRemoveModel_EscReturnsToReview(t *testing.T) {
	m := NewRemoveModel(testPlan())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected command from esc")
	}
	if _, ok := cmd().(msgs.GoToReviewMsg); !ok {
		t.Errorf("expected msgs.GoToReviewMsg, got %T", cmd())
	}
}

func TestRemoveModel_View_Search(t *testing.T) {
	m := NewRemoveModel(testPlan())
	m.SetSize(80, 24)

	view := stripANSI(m.View())
	if !strings.Contains(view, "Remove a task") {
		t.Errorf("expected title in view, got: %s", view)
	}
	if !strings.Contains(view, "Matches appear as you type.") {
		t.Errorf("expected typing hint in view, got: %s", view)
	}

	m = typeInto(t, m, "zzz")
	view = stripANSI(m.View())
	if !strings.Contains(view, "No tasks match.") {
		t.Errorf("expected no-match message in view, got: %s", view)
	}
}

func TestRemoveModel_View_Confirm(t *testing.T) {
	m := NewRemoveModel(testPlan())
	m.SetSize(80, 24)
	m = typeInto(t, m, "paper")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := stripANSI(m.View())
	if !strings.Contains(view, `Remove "Read compiler paper" from tomorrow's plan?`) {
		t.Errorf("expected confirmation prompt in view, got: %s", view)
	}
}
