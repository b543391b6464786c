package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/morrow/internal/config"
	"github.com/pablasso/morrow/internal/logging"
	"github.com/pablasso/morrow/internal/notion"
	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/rollover"
	"github.com/pablasso/morrow/internal/tui/components"
	"github.com/pablasso/morrow/internal/tui/msgs"
	"github.com/pablasso/morrow/internal/tui/styles"
)

// loadingState represents the current state of the loading view.
type loadingState int

const (
	loadingFetching loadingState = iota
	loadingFailed
)

// PrepareFunc is the function type for building the day's plan. It loads
// configuration, fetches the remote records, and runs the decision pass.
// It can be replaced in tests to avoid real fetches.
type PrepareFunc func(ctx context.Context, day planner.Date) (*planner.Plan, *notion.Client, rollover.Options, error)

// Dependency injection for testing
var preparePlan PrepareFunc = prepareFromEnv

// SetPrepareFunc replaces the plan preparation function (for testing).
func SetPrepareFunc(f PrepareFunc) {
	preparePlan = f
}

// GetPrepareFunc returns the current plan preparation function (for testing).
func GetPrepareFunc() PrepareFunc {
	return preparePlan
}

// prepareFromEnv is the production preparation path: environment config,
// real Notion client, real fetch.
func prepareFromEnv(ctx context.Context, day planner.Date) (*planner.Plan, *notion.Client, rollover.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, rollover.Options{}, err
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, nil, rollover.Options{}, err
	}

	client := notion.New(notion.Config{
		APIKey:     cfg.Notion.APIKey,
		BaseURL:    cfg.Notion.BaseURL,
		RateLimit:  cfg.Notion.RateLimitRPS,
		MaxRetries: cfg.Notion.MaxRetries,
		RetryDelay: cfg.Notion.RetryDelay,
		Logger:     logger,
	})

	opts := rollover.Options{
		TasksDatabaseID: cfg.Notion.TasksDatabaseID,
		JobsDatabaseID:  cfg.Notion.JobsDatabaseID,
		ParentPageID:    cfg.Notion.ParentPageID,
		Today:           day,
		MaxFeatureJobs:  cfg.Planner.MaxFeatureJobs,
		Buckets:         cfg.Planner.Buckets(),
	}

	plan, err := rollover.Prepare(ctx, client, opts)
	if err != nil {
		return nil, nil, rollover.Options{}, err
	}
	return plan, client, opts, nil
}

// LoadingModel is the model for the fetch-and-decide progress view.
type LoadingModel struct {
	state   loadingState
	day     planner.Date
	spinner spinner.Model
	err     error
	width   int
	height  int
}

// NewLoadingModel creates a new LoadingModel planning from the given day.
func NewLoadingModel(day planner.Date) LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return LoadingModel{
		state:   loadingFetching,
		day:     day,
		spinner: s,
	}
}

// Init implements tea.Model.
func (m LoadingModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.startPrepare(),
	)
}

// startPrepare kicks off the fetch and decision pass in the background.
func (m LoadingModel) startPrepare() tea.Cmd {
	return func() tea.Msg {
		// When the user quits mid-fetch the program exits and the
		// goroutine dies with the process, so no cancel handle is kept.
		ctx := context.Background()

		plan, client, opts, err := preparePlan(ctx, m.day)
		if err != nil {
			return msgs.PlanFailedMsg{Err: err}
		}
		return msgs.PlanReadyMsg{Plan: plan, Client: client, Opts: opts}
	}
}

// Update implements tea.Model.
func (m LoadingModel) Update(msg tea.Msg) (LoadingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state == loadingFetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case msgs.PlanFailedMsg:
		m.state = loadingFailed
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case loadingFetching:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case loadingFailed:
			switch msg.String() {
			case "r":
				m.state = loadingFetching
				m.err = nil
				return m, tea.Batch(m.spinner.Tick, m.startPrepare())
			case "esc", "h", "enter":
				return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m LoadingModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.state == loadingFailed {
		return m.renderFailed()
	}
	return m.renderFetching()
}

func (m LoadingModel) renderFetching() string {
	var b strings.Builder

	status := fmt.Sprintf("%s Fetching tasks and jobs for %s...", m.spinner.View(), m.day.Display())
	hint := styles.SubtleStyle.Render("Querying Notion and running the decision pass")

	contentHeight := 3
	topPadding := (m.height - 1 - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, status))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hint))

	bottomPadding := m.height - 1 - topPadding - contentHeight
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	b.WriteString(components.NewStatusBar().Render(m.width, []string{"Ctrl+C Quit"}))

	return b.String()
}

func (m LoadingModel) renderFailed() string {
	var b strings.Builder

	title := styles.ErrorStyle.Render("Could not build the plan")
	detail := m.err.Error()

	contentHeight := 3
	topPadding := (m.height - 1 - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, detail))

	bottomPadding := m.height - 1 - topPadding - contentHeight
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	b.WriteString(components.NewStatusBar().Render(m.width, []string{"r Retry", "Esc Home", "q Quit"}))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *LoadingModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Day returns the day the plan is being built from.
func (m LoadingModel) Day() planner.Date {
	return m.day
}

// Err returns the preparation error, if any.
func (m LoadingModel) Err() error {
	return m.err
}
