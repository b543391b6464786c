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

// reviewCommand is one entry in the review menu. Each maps a shortcut to a
// single-keyword command over the plan.
type reviewCommand struct {
	Shortcut    string
	Keyword     string
	Description string
}

// reviewCommands lists the menu in display order.
var reviewCommands = []reviewCommand{
	{Shortcut: "p", Keyword: "preview", Description: "Read the full page text"},
	{Shortcut: "t", Keyword: "tasks", Description: "Edit carryover tasks"},
	{Shortcut: "j", Keyword: "jobs", Description: "Edit the featured job list"},
	{Shortcut: "a", Keyword: "add", Description: "Add a task for tomorrow"},
	{Shortcut: "r", Keyword: "remove", Description: "Remove a task by name"},
	{Shortcut: "y", Keyword: "approve", Description: "Publish this plan to Notion"},
	{Shortcut: "c", Keyword: "cancel", Description: "Discard without publishing"},
}

// ReviewModel is the hub of the review shell: it shows the plan summary
// and dispatches to the editing sub-views.
type ReviewModel struct {
	plan   *planner.Plan
	cursor int
	width  int
	height int
}

// NewReviewModel creates a ReviewModel over the given plan.
func NewReviewModel(plan *planner.Plan) ReviewModel {
	return ReviewModel{plan: plan}
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReviewModel) Update(msg tea.Msg) (ReviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		// No vim-style j/k here: j is the jobs shortcut.
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(reviewCommands)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.commandAt(m.cursor)
		case "esc":
			return m, reviewDecided(false)
		default:
			for i, c := range reviewCommands {
				if msg.String() == c.Shortcut {
					return m, m.commandAt(i)
				}
			}
		}
	}
	return m, nil
}

// commandAt returns the transition command for the menu entry at idx.
func (m ReviewModel) commandAt(idx int) tea.Cmd {
	if idx < 0 || idx >= len(reviewCommands) {
		return nil
	}
	switch reviewCommands[idx].Keyword {
	case "preview":
		return func() tea.Msg { return msgs.GoToPreviewMsg{} }
	case "tasks":
		return func() tea.Msg { return msgs.GoToTasksMsg{} }
	case "jobs":
		return func() tea.Msg { return msgs.GoToJobsMsg{} }
	case "add":
		return func() tea.Msg { return msgs.GoToAddMsg{} }
	case "remove":
		return func() tea.Msg { return msgs.GoToRemoveMsg{} }
	case "approve":
		return reviewDecided(true)
	case "cancel":
		return reviewDecided(false)
	}
	return nil
}

func reviewDecided(approved bool) tea.Cmd {
	return func() tea.Msg { return msgs.ReviewDoneMsg{Approved: approved} }
}

// View implements tea.Model.
func (m ReviewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Review tomorrow's plan")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	dates := fmt.Sprintf("%s → %s", m.plan.Today.Display(), m.plan.Tomorrow.Display())
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render(dates)))
	b.WriteString("\n\n")

	summary := m.renderSummary()
	menu := m.renderMenu()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.BoxStyle.Render(summary),
		"  ",
		styles.BoxStyle.Render(menu),
	)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")

	// Pad so the status bar sits at the bottom
	lines := strings.Count(b.String(), "\n") + 1
	remaining := m.height - lines - 1
	if remaining > 0 {
		b.WriteString(strings.Repeat("\n", remaining))
	}

	statusItems := []string{"↑↓ Navigate", "Enter Select", "y Approve", "c Cancel"}
	b.WriteString(components.NewStatusBar().RenderWithNote(m.width, statusItems, dates))

	return b.String()
}

// renderSummary builds the left panel: counts, categories, jobs.
func (m ReviewModel) renderSummary() string {
	var lines []string

	lines = append(lines, styles.SectionStyle.Render("Carryover tasks"))
	if m.plan.TaskCount() == 0 {
		lines = append(lines, styles.SubtleStyle.Render("  none"))
	}
	for _, g := range m.plan.Groups() {
		name := string(g.Category)
		if name == "" {
			name = "Other Tasks"
		}
		lines = append(lines, fmt.Sprintf("  %-22s %d", name, len(g.Tasks)))
	}
	lines = append(lines, "")

	lines = append(lines, styles.SectionStyle.Render("Featured jobs"))
	if m.plan.JobCount() == 0 {
		lines = append(lines, styles.SubtleStyle.Render("  none"))
	}
	const maxJobLines = 5
	for i, j := range m.plan.Jobs {
		if i == maxJobLines {
			lines = append(lines, styles.SubtleStyle.Render(fmt.Sprintf("  +%d more", m.plan.JobCount()-maxJobLines)))
			break
		}
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, util.TruncateText(j.Name, 34)))
	}

	if m.plan.SkippedTasks > 0 || m.plan.SkippedJobs > 0 {
		lines = append(lines, "")
		skipped := fmt.Sprintf("Skipped malformed: %d task(s), %d job(s)", m.plan.SkippedTasks, m.plan.SkippedJobs)
		lines = append(lines, styles.WarnStyle.Render(skipped))
	}

	return strings.Join(lines, "\n")
}

// renderMenu builds the right panel: the command list with cursor.
func (m ReviewModel) renderMenu() string {
	var lines []string

	lines = append(lines, styles.SectionStyle.Render("Commands"))
	for i, c := range reviewCommands {
		line := fmt.Sprintf("[%s] %-8s", c.Shortcut, c.Keyword)
		if i == m.cursor {
			line = styles.SelectedStyle.Render(line)
		} else {
			line = styles.SubtleStyle.Render(line)
		}
		line += " " + styles.SubtleStyle.Render(c.Description)
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// SetSize updates the model dimensions.
func (m *ReviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the current cursor position.
func (m ReviewModel) Cursor() int {
	return m.cursor
}
