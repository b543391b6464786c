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

// TasksModel is the carryover task editor: a cursor list where tasks can
// be removed, reprioritized, or recategorized in place.
type TasksModel struct {
	plan   *planner.Plan
	cursor int
	width  int
	height int
}

// NewTasksModel creates a TasksModel editing the given plan.
func NewTasksModel(plan *planner.Plan) TasksModel {
	return TasksModel{plan: plan}
}

// Init implements tea.Model.
func (m TasksModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TasksModel) Update(msg tea.Msg) (TasksModel, tea.Cmd) {
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
			if m.cursor < m.plan.TaskCount()-1 {
				m.cursor++
			}
		case "d":
			if m.plan.TaskCount() > 0 {
				m.plan.RemoveTask(m.cursor)
				if m.cursor >= m.plan.TaskCount() && m.cursor > 0 {
					m.cursor--
				}
			}
		case "p":
			if m.plan.TaskCount() > 0 {
				next := nextPriority(m.plan.Tasks[m.cursor].Priority)
				m.plan.SetTaskPriority(m.cursor, next)
			}
		case "c":
			if m.plan.TaskCount() > 0 {
				next := nextCategory(m.plan.Tasks[m.cursor].Category)
				m.plan.SetTaskCategory(m.cursor, next)
			}
		}
	}
	return m, nil
}

// nextPriority cycles High → Medium → Low → High.
func nextPriority(p planner.Priority) planner.Priority {
	order := planner.Priorities()
	for i, cand := range order {
		if cand == p {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// nextCategory cycles through the known categories in display order.
// Unknown or empty categories restart the cycle.
func nextCategory(c planner.Category) planner.Category {
	order := planner.Categories()
	for i, cand := range order {
		if cand == c {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// View implements tea.Model.
func (m TasksModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Edit carryover tasks")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	if m.plan.TaskCount() == 0 {
		empty := styles.SubtleStyle.Render("No carryover tasks. Use 'add' from the review menu.")
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, empty))
		b.WriteString("\n")
	} else {
		for i, t := range m.plan.Tasks {
			b.WriteString(m.renderTaskLine(i, t))
			b.WriteString("\n")
		}
	}

	lines := strings.Count(b.String(), "\n") + 1
	remaining := m.height - lines - 1
	if remaining > 0 {
		b.WriteString(strings.Repeat("\n", remaining))
	}

	statusItems := []string{"↑↓ Navigate", "d Remove", "p Priority", "c Category", "Esc Back"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

func (m TasksModel) renderTaskLine(i int, t planner.Task) string {
	marker := "  "
	if i == m.cursor {
		marker = "→ "
	}

	category := string(t.Category)
	if category == "" {
		category = "Other Tasks"
	}

	line := fmt.Sprintf("%s%-7s %-22s %s", marker, t.Priority, category, util.TruncateText(t.Name, 40))
	if i == m.cursor {
		line = styles.SelectedStyle.Render(line)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

// SetSize updates the model dimensions.
func (m *TasksModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the current cursor position.
func (m TasksModel) Cursor() int {
	return m.cursor
}
