package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/tui/components"
	"github.com/pablasso/morrow/internal/tui/msgs"
	"github.com/pablasso/morrow/internal/tui/styles"
	"github.com/pablasso/morrow/internal/util"
)

// JobsModel is the featured job editor: a cursor list where jobs can be
// removed or reordered. Ranking gave the initial order; the reviewer has
// the last word.
type JobsModel struct {
	plan   *planner.Plan
	cursor int
	width  int
	height int
}

// NewJobsModel creates a JobsModel editing the given plan.
func NewJobsModel(plan *planner.Plan) JobsModel {
	return JobsModel{plan: plan}
}

// Init implements tea.Model.
func (m JobsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m JobsModel) Update(msg tea.Msg) (JobsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "b":
			return m, func() tea.Msg { return msgs.GoToReviewMsg{} }
		case "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.plan.JobCount()-1 {
				m.cursor++
			}
		case "d":
			if m.plan.JobCount() > 0 {
				m.plan.RemoveJob(m.cursor)
				if m.cursor >= m.plan.JobCount() && m.cursor > 0 {
					m.cursor--
				}
			}
		case "K", "shift+up":
			if m.cursor > 0 {
				m.plan.MoveJob(m.cursor, m.cursor-1)
				m.cursor--
			}
		case "J", "shift+down":
			if m.cursor < m.plan.JobCount()-1 {
				m.plan.MoveJob(m.cursor, m.cursor+1)
				m.cursor++
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m JobsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Edit featured jobs")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	if m.plan.JobCount() == 0 {
		empty := styles.SubtleStyle.Render("No featured jobs in this plan.")
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, empty))
		b.WriteString("\n")
	} else {
		for i, j := range m.plan.Jobs {
			b.WriteString(m.renderJobLine(i, j))
			b.WriteString("\n")
		}
	}

	lines := strings.Count(b.String(), "\n") + 1
	remaining := m.height - lines - 1
	if remaining > 0 {
		b.WriteString(strings.Repeat("\n", remaining))
	}

	statusItems := []string{"↑↓ Navigate", "K/J Reorder", "d Remove", "Esc Back"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

func (m JobsModel) renderJobLine(i int, j planner.Job) string {
	marker := "  "
	if i == m.cursor {
		marker = "→ "
	}

	line := fmt.Sprintf("%s%d. %-40s [%s]", marker, i+1, util.TruncateText(j.Name, 40), j.Priority)
	if j.HasDeadline() {
		line += fmt.Sprintf("  due %s", j.Deadline.Display())
	}

	if i == m.cursor {
		line = styles.SelectedStyle.Render(line)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

// SetSize updates the model dimensions.
func (m *JobsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the current cursor position.
func (m JobsModel) Cursor() int {
	return m.cursor
}
