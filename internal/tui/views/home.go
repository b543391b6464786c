package views

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/morrow/internal/tui/components"
	"github.com/pablasso/morrow/internal/tui/msgs"
	"github.com/pablasso/morrow/internal/tui/styles"
)

// MenuItem represents a menu option in the home view.
type MenuItem struct {
	Label       string
	Shortcut    string
	Description string
}

// MenuSection represents a group of related menu items.
type MenuSection struct {
	Title string
	Items []MenuItem
}

// HomeModel is the model for the home view landing screen.
type HomeModel struct {
	sections     []MenuSection
	cursor       int
	morrowExists bool
	width        int
	height       int
	notice       string // One-line note from a previous view, e.g. a cancelled review
}

// NewHomeModel creates a new HomeModel, checking if morrowDir exists.
func NewHomeModel(morrowDir string) HomeModel {
	morrowExists := false
	if morrowDir != "" {
		if info, err := os.Stat(morrowDir); err == nil && info.IsDir() {
			morrowExists = true
		}
	}

	return HomeModel{
		sections: []MenuSection{
			{
				Title: "Plan",
				Items: []MenuItem{
					{Label: "Start today's rollover", Shortcut: "r", Description: "Build and review tomorrow's plan"},
				},
			},
			{
				Title: "History",
				Items: []MenuItem{
					{Label: "Past runs", Shortcut: "l", Description: "Browse recorded rollover runs"},
				},
			},
			{
				Title: "",
				Items: []MenuItem{
					{Label: "Quit", Shortcut: "q", Description: ""},
				},
			},
		},
		cursor:       0,
		morrowExists: morrowExists,
	}
}

// Init implements tea.Model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// If .morrow doesn't exist, only handle quit
		if !m.morrowExists {
			if msg.String() == "q" || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, func() tea.Msg { return msgs.StartRolloverMsg{} }
		case "l":
			return m, func() tea.Msg { return msgs.GoToRunListMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			totalItems := m.totalMenuItems()
			if m.cursor < totalItems-1 {
				m.cursor++
			}
		case "enter":
			return m.selectCurrentItem()
		}
	}
	return m, nil
}

// totalMenuItems returns the total number of menu items across all sections.
func (m HomeModel) totalMenuItems() int {
	total := 0
	for _, section := range m.sections {
		total += len(section.Items)
	}
	return total
}

// selectCurrentItem returns the appropriate message based on the selected menu item.
func (m HomeModel) selectCurrentItem() (HomeModel, tea.Cmd) {
	switch m.getShortcutAtCursor() {
	case "r":
		return m, func() tea.Msg { return msgs.StartRolloverMsg{} }
	case "l":
		return m, func() tea.Msg { return msgs.GoToRunListMsg{} }
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// getShortcutAtCursor returns the shortcut key for the currently selected item.
func (m HomeModel) getShortcutAtCursor() string {
	idx := 0
	for _, section := range m.sections {
		for _, item := range section.Items {
			if idx == m.cursor {
				return item.Shortcut
			}
			idx++
		}
	}
	return ""
}

// View implements tea.Model.
func (m HomeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.morrowExists {
		return m.renderNormalView()
	}
	return m.renderNoWorkspaceView()
}

// renderHeader returns the centered title and tagline.
func (m HomeModel) renderHeader() (titleLine, taglineLine string) {
	title := styles.TitleStyle.Render("M O R R O W")
	tagline := styles.SubtleStyle.Render("Tomorrow's plan, tonight")

	titleLine = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)
	taglineLine = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tagline)
	return titleLine, taglineLine
}

// renderNormalView renders the home view with menu options.
func (m HomeModel) renderNormalView() string {
	var b strings.Builder

	titleLine, taglineLine := m.renderHeader()

	// Build menu with sections
	var menuLines []string
	cursorIdx := 0

	for sectionIdx, section := range m.sections {
		if section.Title != "" {
			menuLines = append(menuLines, styles.SectionStyle.Render(section.Title))
		}

		for _, item := range section.Items {
			line := "[" + item.Shortcut + "] " + item.Label

			if cursorIdx == m.cursor {
				// Style the main part but keep the description subtle
				line = styles.SelectedStyle.Render(line)
			} else {
				line = styles.SubtleStyle.Render(line)
			}
			if item.Description != "" {
				line += "  " + styles.SubtleStyle.Render(item.Description)
			}
			menuLines = append(menuLines, line)
			cursorIdx++
		}

		// Spacing between sections (except after the last one)
		if sectionIdx < len(m.sections)-1 {
			menuLines = append(menuLines, "")
		}
	}

	menu := strings.Join(menuLines, "\n")

	// Vertical centering: status bar takes 1 line at the bottom
	statusBarHeight := 1
	contentHeight := 2 + 2 + len(menuLines)
	if m.notice != "" {
		contentHeight += 2 // notice line + spacing
	}
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))

	menuBlock := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menu)

	b.WriteString(titleLine)
	b.WriteString("\n")
	b.WriteString(taglineLine)
	b.WriteString("\n\n")
	b.WriteString(menuBlock)

	if m.notice != "" {
		b.WriteString("\n\n")
		noticeLine := styles.SubtleStyle.Render(m.notice)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, noticeLine))
	}

	// Remaining space above the status bar
	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	statusItems := []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// renderNoWorkspaceView renders the view when the .morrow/ directory doesn't exist.
func (m HomeModel) renderNoWorkspaceView() string {
	var b strings.Builder

	titleLine, taglineLine := m.renderHeader()

	warning1 := styles.ErrorStyle.Render("No .morrow/ directory found.")
	warning2 := styles.SubtleStyle.Render("Run 'morrow init' first to set up this directory.")

	warning1Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, warning1)
	warning2Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, warning2)

	statusBarHeight := 1
	contentHeight := 6 // title + tagline + spacing + 2 warning lines
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))

	b.WriteString(titleLine)
	b.WriteString("\n")
	b.WriteString(taglineLine)
	b.WriteString("\n\n")
	b.WriteString(warning1Line)
	b.WriteString("\n")
	b.WriteString(warning2Line)

	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	b.WriteString(components.NewStatusBar().Render(m.width, []string{"q Quit"}))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetNotice sets a one-line note rendered under the menu.
func (m *HomeModel) SetNotice(notice string) {
	m.notice = notice
}

// MorrowExists returns whether the .morrow directory exists.
func (m HomeModel) MorrowExists() bool {
	return m.morrowExists
}

// Cursor returns the current cursor position.
func (m HomeModel) Cursor() int {
	return m.cursor
}
