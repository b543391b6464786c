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
)

// addStep is the current step of the add-task form.
type addStep int

const (
	addStepName addStep = iota
	addStepCategory
	addStepPriority
)

// AddModel is the add-task form: name, then category, then priority. The
// finished task lands in the plan scheduled for tomorrow.
type AddModel struct {
	plan       *planner.Plan
	step       addStep
	input      textinput.Model
	categories []planner.Category
	priorities []planner.Priority
	catCursor  int
	prioCursor int
	errMsg     string
	width      int
	height     int
}

// NewAddModel creates an AddModel appending to the given plan.
func NewAddModel(plan *planner.Plan) AddModel {
	ti := textinput.New()
	ti.Placeholder = "Task name..."
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	return AddModel{
		plan:       plan,
		step:       addStepName,
		input:      ti,
		categories: planner.Categories(),
		priorities: planner.Priorities(),
	}
}

// Init implements tea.Model.
func (m AddModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m AddModel) Update(msg tea.Msg) (AddModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.step {
		case addStepName:
			return m.updateNameStep(msg)
		case addStepCategory:
			return m.updateCategoryStep(msg)
		case addStepPriority:
			return m.updatePriorityStep(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AddModel) updateNameStep(msg tea.KeyMsg) (AddModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return msgs.GoToReviewMsg{} }
	case "enter":
		if strings.TrimSpace(m.input.Value()) == "" {
			m.errMsg = "A task needs a name."
			return m, nil
		}
		m.errMsg = ""
		m.step = addStepCategory
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AddModel) updateCategoryStep(msg tea.KeyMsg) (AddModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.step = addStepName
		m.input.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
		}
	case "down", "j":
		if m.catCursor < len(m.categories)-1 {
			m.catCursor++
		}
	case "enter":
		m.step = addStepPriority
	}
	return m, nil
}

func (m AddModel) updatePriorityStep(msg tea.KeyMsg) (AddModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.step = addStepCategory
		return m, nil
	case "up", "k":
		if m.prioCursor > 0 {
			m.prioCursor--
		}
	case "down", "j":
		if m.prioCursor < len(m.priorities)-1 {
			m.prioCursor++
		}
	case "enter":
		task := planner.Task{
			Name:         strings.TrimSpace(m.input.Value()),
			Done:         false,
			ScheduledFor: m.plan.Tomorrow,
			Priority:     m.priorities[m.prioCursor],
			Category:     m.categories[m.catCursor],
		}
		if err := m.plan.AddTask(task); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return msgs.GoToReviewMsg{} }
	}
	return m, nil
}

// View implements tea.Model.
func (m AddModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Add a task for tomorrow")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	var form string
	switch m.step {
	case addStepName:
		form = m.renderNameStep()
	case addStepCategory:
		form = m.renderCategoryStep()
	case addStepPriority:
		form = m.renderPriorityStep()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.BoxStyle.Render(form)))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.ErrorStyle.Render(m.errMsg)))
		b.WriteString("\n")
	}

	lines := strings.Count(b.String(), "\n") + 1
	remaining := m.height - lines - 1
	if remaining > 0 {
		b.WriteString(strings.Repeat("\n", remaining))
	}

	var statusItems []string
	switch m.step {
	case addStepName:
		statusItems = []string{"Enter Next", "Esc Cancel"}
	default:
		statusItems = []string{"↑↓ Select", "Enter Next", "Esc Back"}
	}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

func (m AddModel) renderNameStep() string {
	var lines []string
	lines = append(lines, styles.SectionStyle.Render("Step 1 of 3: Name"))
	lines = append(lines, "")
	lines = append(lines, m.input.View())
	return strings.Join(lines, "\n")
}

func (m AddModel) renderCategoryStep() string {
	var lines []string
	lines = append(lines, styles.SectionStyle.Render("Step 2 of 3: Category"))
	lines = append(lines, styles.SubtleStyle.Render(fmt.Sprintf("Task: %s", m.input.Value())))
	lines = append(lines, "")
	for i, c := range m.categories {
		line := "  " + string(c)
		if i == m.catCursor {
			line = styles.SelectedStyle.Render("→ " + string(c))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m AddModel) renderPriorityStep() string {
	var lines []string
	lines = append(lines, styles.SectionStyle.Render("Step 3 of 3: Priority"))
	lines = append(lines, styles.SubtleStyle.Render(fmt.Sprintf("Task: %s  (%s)", m.input.Value(), m.categories[m.catCursor])))
	lines = append(lines, "")
	for i, p := range m.priorities {
		line := "  " + string(p)
		if i == m.prioCursor {
			line = styles.SelectedStyle.Render("→ " + string(p))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// SetSize updates the model dimensions.
func (m *AddModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Step returns the current form step.
func (m AddModel) Step() addStep {
	return m.step
}
