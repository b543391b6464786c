package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/morrow/internal/archive"
	"github.com/pablasso/morrow/internal/tui/components"
	"github.com/pablasso/morrow/internal/tui/msgs"
	"github.com/pablasso/morrow/internal/tui/styles"
)

// RunListModel is the model for the run history view.
type RunListModel struct {
	runs    []*archive.Run
	cursor  int
	runsDir string
	width   int
	height  int
}

// NewRunListModel creates a RunListModel and loads recorded runs from the
// runs directory.
func NewRunListModel(runsDir string) RunListModel {
	m := RunListModel{
		runsDir: runsDir,
	}
	runs, err := archive.NewStorage(runsDir).List()
	if err == nil {
		m.runs = runs
	}
	return m
}

// Init implements tea.Model.
func (m RunListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m RunListModel) Update(msg tea.Msg) (RunListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "h", "q":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.runs)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m RunListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if len(m.runs) == 0 {
		return m.renderEmptyView()
	}

	return m.renderNormalView()
}

// renderNormalView renders the run list with a detail panel for the
// selected run.
func (m RunListModel) renderNormalView() string {
	var b strings.Builder

	title := styles.TitleStyle.Render("Past runs")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	var runLines []string
	for i, run := range m.runs {
		runLines = append(runLines, m.formatRunLine(i, run))
	}
	runList := strings.Join(runLines, "\n")

	detail := m.renderDetail(m.runs[m.cursor])

	content := titleLine + "\n\n" +
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, runList) + "\n\n" +
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, detail)

	statusBarHeight := 1
	contentHeight := lipgloss.Height(content)
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3 // bias towards top
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(content)

	bottomPadding := availableHeight - topPadding - contentHeight
	if bottomPadding > 0 {
		b.WriteString(strings.Repeat("\n", bottomPadding))
	}
	b.WriteString("\n")

	statusItems := []string{"↑↓ Navigate", "Esc Back"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// formatRunLine formats a single run line for display.
func (m RunListModel) formatRunLine(index int, run *archive.Run) string {
	indicator := " "
	if index == m.cursor {
		indicator = styles.SelectedStyle.Render("→")
	}

	dates := fmt.Sprintf("%s → %s", run.Today.String(), run.Tomorrow.String())

	taskCountStr := fmt.Sprintf("%d tasks", run.TaskCount)
	if run.TaskCount == 1 {
		taskCountStr = "1 task"
	}

	return fmt.Sprintf("%s %s %-23s %9s   %-9s %s",
		indicator,
		m.statusDot(run.Status),
		dates,
		taskCountStr,
		string(run.Status),
		styles.SubtleStyle.Render(run.CreatedAt.Format("Jan 2 15:04")),
	)
}

// statusDot returns a colored dot for a run status.
func (m RunListModel) statusDot(status archive.Status) string {
	switch status {
	case archive.StatusPublished:
		return styles.SuccessStyle.Render("●")
	case archive.StatusPartial:
		return styles.WarnStyle.Render("●")
	case archive.StatusFailed:
		return styles.ErrorStyle.Render("●")
	default:
		return styles.SubtleStyle.Render("●")
	}
}

// renderDetail renders the detail panel for the selected run.
func (m RunListModel) renderDetail(run *archive.Run) string {
	var lines []string

	lines = append(lines, styles.SectionStyle.Render("Run "+run.RunID))
	if run.PageURL != "" {
		lines = append(lines, "Page: "+run.PageURL)
	}
	lines = append(lines, fmt.Sprintf("Records: %d tasks, %d jobs", run.TaskCount, run.JobCount))
	if skipped := run.SkippedTasks + run.SkippedJobs; skipped > 0 {
		lines = append(lines, styles.WarnStyle.Render(fmt.Sprintf("Skipped %d malformed records", skipped)))
	}

	for _, name := range run.FailedRecords {
		lines = append(lines, styles.ErrorStyle.Render("✗")+" "+name)
	}

	if run.Insights != nil && len(run.Insights.Notes) > 0 {
		lines = append(lines, "")
		for _, note := range run.Insights.Notes {
			lines = append(lines, styles.SubtleStyle.Render(note))
		}
	}

	return styles.BoxStyle.Render(strings.Join(lines, "\n"))
}

// renderEmptyView renders the view when no runs are recorded.
func (m RunListModel) renderEmptyView() string {
	var b strings.Builder

	title := styles.TitleStyle.Render("Past runs")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	msg1 := "No runs recorded yet."
	msg2 := "Runs show up here after you publish or cancel a plan."
	msg1Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg1)
	msg2Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render(msg2))

	statusBarHeight := 1
	contentHeight := 5 // title + spacing + msg1 + spacing + msg2
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n\n")
	b.WriteString(msg1Line)
	b.WriteString("\n\n")
	b.WriteString(msg2Line)

	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	statusItems := []string{"Esc Back"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *RunListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Runs returns the loaded run records.
func (m RunListModel) Runs() []*archive.Run {
	return m.runs
}

// Cursor returns the current cursor position.
func (m RunListModel) Cursor() int {
	return m.cursor
}
