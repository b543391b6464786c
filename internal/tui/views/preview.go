package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/morrow/internal/page"
	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/tui/components"
	"github.com/pablasso/morrow/internal/tui/msgs"
	"github.com/pablasso/morrow/internal/tui/styles"
)

// PreviewModel shows the full page text in a scrollable viewport, exactly
// as the renderer will publish it.
type PreviewModel struct {
	viewport viewport.Model
	content  string
	width    int
	height   int
}

// NewPreviewModel creates a PreviewModel rendering the given plan.
func NewPreviewModel(plan *planner.Plan) PreviewModel {
	vp := viewport.New(0, 0)
	content := page.Preview(plan)
	vp.SetContent(content)

	return PreviewModel{
		viewport: vp,
		content:  content,
	}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (PreviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "b":
			return m, func() tea.Msg { return msgs.GoToReviewMsg{} }
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	// Everything else (arrows, page keys, mouse wheel) scrolls the viewport
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Page preview")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	scroll := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	statusItems := []string{"↑↓ Scroll", "PgUp/PgDn Page", "Esc Back"}
	b.WriteString(components.NewStatusBar().RenderWithNote(m.width, statusItems, scroll))

	return b.String()
}

// SetSize updates the model dimensions and resizes the viewport.
func (m *PreviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Title takes 2 lines, status bar 1
	vpHeight := height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
}

// Content returns the rendered page text.
func (m PreviewModel) Content() string {
	return m.content
}
