package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/tui/components"
	"github.com/pablasso/morrow/internal/tui/msgs"
	"github.com/pablasso/morrow/internal/tui/styles"
	"github.com/pablasso/morrow/internal/util"
)

// removePhase is the current phase of the remove-by-search flow.
type removePhase int

const (
	removeSearching removePhase = iota
	removeConfirming
)

// RemoveModel removes a task by name: substring search, pick a match,
// confirm.
type RemoveModel struct {
	plan    *planner.Plan
	phase   removePhase
	input   textinput.Model
	matches []int // indexes into plan.Tasks
	cursor  int   // position within matches
	target  int   // plan index pending confirmation
	width   int
	height  int
}

// NewRemoveModel creates a RemoveModel searching the given plan.
func NewRemoveModel(plan *planner.Plan) RemoveModel {
	ti := textinput.New()
	ti.Placeholder = "Search task names..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	return RemoveModel{
		plan:  plan,
		phase: removeSearching,
		input: ti,
	}
}

// Init implements tea.Model.
func (m RemoveModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m RemoveModel) Update(msg tea.Msg) (RemoveModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.phase == removeConfirming {
			return m.updateConfirming(msg)
		}
		return m.updateSearching(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m RemoveModel) updateSearching(msg tea.KeyMsg) (RemoveModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return msgs.GoToReviewMsg{} }
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.matches) > 0 {
			m.target = m.matches[m.cursor]
			m.phase = removeConfirming
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.matches = m.plan.FindTasks(m.input.Value())
	if m.cursor >= len(m.matches) {
		m.cursor = 0
	}
	return m, cmd
}

func (m RemoveModel) updateConfirming(msg tea.KeyMsg) (RemoveModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.plan.RemoveTask(m.target)
		return m, func() tea.Msg { return msgs.GoToReviewMsg{} }
	case "n", "esc":
		m.phase = removeSearching
		m.input.Focus()
		// Indexes may be stale after edits elsewhere; search again
		m.matches = m.plan.FindTasks(m.input.Value())
		m.cursor = 0
		return m, textinput.Blink
	}
	return m, nil
}

// View implements tea.Model.
func (m RemoveModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Remove a task")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	if m.phase == removeConfirming {
		b.WriteString(m.renderConfirm())
	} else {
		b.WriteString(m.renderSearch())
	}

	lines := strings.Count(b.String(), "\n") + 1
	remaining := m.height - lines - 1
	if remaining > 0 {
		b.WriteString(strings.Repeat("\n", remaining))
	}

	var statusItems []string
	if m.phase == removeConfirming {
		statusItems = []string{"y Remove", "n Keep"}
	} else {
		statusItems = []string{"Type to search", "↑↓ Pick", "Enter Select", "Esc Back"}
	}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

func (m RemoveModel) renderSearch() string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))
	b.WriteString("\n\n")

	if strings.TrimSpace(m.input.Value()) == "" {
		hint := styles.SubtleStyle.Render("Matches appear as you type.")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hint))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.matches) == 0 {
		none := styles.SubtleStyle.Render("No tasks match.")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, none))
		b.WriteString("\n")
		return b.String()
	}

	for pos, idx := range m.matches {
		t := m.plan.Tasks[idx]
		name := util.TruncateText(t.Name, 40)
		var line string
		if pos == m.cursor {
			line = styles.SelectedStyle.Render("→ "+name) + "  " + styles.SubtleStyle.Render(string(t.Category))
		} else {
			line = "  " + name + "  " + styles.SubtleStyle.Render(string(t.Category))
		}
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m RemoveModel) renderConfirm() string {
	var b strings.Builder

	name := m.plan.Tasks[m.target].Name
	prompt := fmt.Sprintf("Remove %q from tomorrow's plan?", name)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	options := styles.SelectedStyle.Render("[y]") + " Remove   " + styles.SubtleStyle.Render("[n] Keep")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, options))
	b.WriteString("\n")

	return b.String()
}

// SetSize updates the model dimensions.
func (m *RemoveModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Matches returns the indexes of the current matches.
func (m RemoveModel) Matches() []int {
	return m.matches
}
