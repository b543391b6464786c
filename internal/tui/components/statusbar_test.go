package components

import (
	"strings"
	"testing"
)

func TestStatusBar_Render_SingleItem(t *testing.T) {
	sb := NewStatusBar()
	result := sb.Render(50, []string{"q Quit"})

	if !strings.Contains(result, "q Quit") {
		t.Errorf("expected result to contain 'q Quit', got: %s", result)
	}
}

func TestStatusBar_Render_MultipleItems(t *testing.T) {
	sb := NewStatusBar()
	items := []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	result := sb.Render(60, items)

	if !strings.Contains(result, "↑↓ Navigate") {
		t.Errorf("expected result to contain '↑↓ Navigate', got: %s", result)
	}
	if !strings.Contains(result, "Enter Select") {
		t.Errorf("expected result to contain 'Enter Select', got: %s", result)
	}
	if !strings.Contains(result, "q Quit") {
		t.Errorf("expected result to contain 'q Quit', got: %s", result)
	}
}

func TestStatusBar_Render_SeparatorFormat(t *testing.T) {
	sb := NewStatusBar()
	items := []string{"A", "B", "C"}
	result := sb.Render(40, items)

	if !strings.Contains(result, "A • B • C") {
		t.Errorf("expected items to be joined with ' • ', got: %s", result)
	}
}

func TestStatusBar_Render_EmptyItems(t *testing.T) {
	sb := NewStatusBar()

	// Should not panic; styling may pad the empty content
	_ = sb.Render(50, []string{})
}

func TestStatusBar_Render_NarrowWidth(t *testing.T) {
	sb := NewStatusBar()
	items := []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	result := sb.Render(20, items)

	if result == "" {
		t.Error("expected non-empty result even with narrow width")
	}
}

func TestStatusBar_RenderWithNote_RightAligned(t *testing.T) {
	sb := NewStatusBar()
	result := sb.RenderWithNote(40, []string{"q Quit"}, "Sep 5 → Sep 6")

	if !strings.Contains(result, "q Quit") {
		t.Errorf("expected result to contain the items, got: %s", result)
	}
	if !strings.Contains(result, "Sep 5 → Sep 6") {
		t.Errorf("expected result to contain the note, got: %s", result)
	}
	if !strings.Contains(result, "q Quit ") {
		t.Errorf("expected padding between items and note, got: %s", result)
	}
}

func TestStatusBar_RenderWithNote_DropsNoteWhenNarrow(t *testing.T) {
	sb := NewStatusBar()
	result := sb.RenderWithNote(12, []string{"q Quit"}, "a long note that cannot fit")

	if strings.Contains(result, "a long note") {
		t.Errorf("expected the note to be dropped at narrow width, got: %s", result)
	}
	if !strings.Contains(result, "q Quit") {
		t.Errorf("expected the items to survive, got: %s", result)
	}
}

func TestStatusBar_RenderWithNote_EmptyNote(t *testing.T) {
	sb := NewStatusBar()

	plain := sb.Render(50, []string{"q Quit"})
	noted := sb.RenderWithNote(50, []string{"q Quit"}, "")

	if plain != noted {
		t.Errorf("expected empty note to fall back to Render, got: %q vs %q", noted, plain)
	}
}
