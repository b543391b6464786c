// Package tui implements the interactive shell: a home screen, the plan
// review loop, a live publish monitor, and the run history browser.
package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/morrow/internal/archive"
	"github.com/pablasso/morrow/internal/notion"
	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/rollover"
	"github.com/pablasso/morrow/internal/tui/msgs"
	"github.com/pablasso/morrow/internal/tui/styles"
	"github.com/pablasso/morrow/internal/tui/views"
)

const morrowDir = ".morrow"

// Minimum terminal size the layout stays readable at.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// View represents the different screens in the TUI.
type View int

const (
	ViewHome View = iota
	ViewLoading
	ViewReview
	ViewPreview
	ViewTasks
	ViewJobs
	ViewAdd
	ViewRemove
	ViewPublish
	ViewRunList
)

// Outcome is the reviewer's decision when the shell runs in review-only
// mode.
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeApproved
)

// programHandleMsg delivers the running program handle so the publish
// monitor can stream events into it from a goroutine.
type programHandleMsg struct {
	program *tea.Program
}

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	home    views.HomeModel
	loading views.LoadingModel
	review  views.ReviewModel
	preview views.PreviewModel
	tasks   views.TasksModel
	jobs    views.JobsModel
	add     views.AddModel
	remove  views.RemoveModel
	publish views.PublishModel
	runList views.RunListModel

	program *tea.Program

	// Set by PlanReadyMsg and carried through review into publication
	plan   *planner.Plan
	client *notion.Client
	opts   rollover.Options

	reviewOnly bool
	outcome    Outcome
}

// Run starts the full interactive shell on the home screen.
func Run() error {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	// Send blocks until the program starts receiving, so the handle has
	// to arrive from a goroutine.
	go p.Send(programHandleMsg{program: p})
	_, err := p.Run()
	return err
}

// Review runs the shell in review-only mode: it opens directly on the
// review menu and returns the reviewer's decision. Nothing is written
// to the remote workspace either way.
func Review(plan *planner.Plan) (Outcome, error) {
	p := tea.NewProgram(
		reviewOnlyModel(plan),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return OutcomeCancelled, err
	}
	if m, ok := final.(Model); ok {
		return m.outcome, nil
	}
	return OutcomeCancelled, nil
}

func initialModel() Model {
	return Model{
		currentView: ViewHome,
		home:        views.NewHomeModel(morrowDir),
	}
}

func reviewOnlyModel(plan *planner.Plan) Model {
	return Model{
		currentView: ViewReview,
		review:      views.NewReviewModel(plan),
		plan:        plan,
		reviewOnly:  true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case programHandleMsg:
		m.program = msg.program
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateCurrentView(msg)

	case msgs.GoToHomeMsg:
		m.home = views.NewHomeModel(morrowDir)
		m.home.SetSize(m.width, m.height)
		m.currentView = ViewHome
		return m, m.home.Init()

	case msgs.StartRolloverMsg:
		m.loading = views.NewLoadingModel(planner.Today())
		m.loading.SetSize(m.width, m.height)
		m.currentView = ViewLoading
		return m, m.loading.Init()

	case msgs.GoToRunListMsg:
		m.runList = views.NewRunListModel(filepath.Join(morrowDir, "runs"))
		m.runList.SetSize(m.width, m.height)
		m.currentView = ViewRunList
		return m, m.runList.Init()

	case msgs.PlanReadyMsg:
		m.plan = msg.Plan
		m.client = msg.Client
		m.opts = msg.Opts
		m.review = views.NewReviewModel(m.plan)
		m.review.SetSize(m.width, m.height)
		m.currentView = ViewReview
		return m, m.review.Init()

	case msgs.GoToReviewMsg:
		m.review = views.NewReviewModel(m.plan)
		m.review.SetSize(m.width, m.height)
		m.currentView = ViewReview
		return m, m.review.Init()

	case msgs.GoToPreviewMsg:
		m.preview = views.NewPreviewModel(m.plan)
		m.preview.SetSize(m.width, m.height)
		m.currentView = ViewPreview
		return m, m.preview.Init()

	case msgs.GoToTasksMsg:
		m.tasks = views.NewTasksModel(m.plan)
		m.tasks.SetSize(m.width, m.height)
		m.currentView = ViewTasks
		return m, m.tasks.Init()

	case msgs.GoToJobsMsg:
		m.jobs = views.NewJobsModel(m.plan)
		m.jobs.SetSize(m.width, m.height)
		m.currentView = ViewJobs
		return m, m.jobs.Init()

	case msgs.GoToAddMsg:
		m.add = views.NewAddModel(m.plan)
		m.add.SetSize(m.width, m.height)
		m.currentView = ViewAdd
		return m, m.add.Init()

	case msgs.GoToRemoveMsg:
		m.remove = views.NewRemoveModel(m.plan)
		m.remove.SetSize(m.width, m.height)
		m.currentView = ViewRemove
		return m, m.remove.Init()

	case msgs.ReviewDoneMsg:
		return m.handleReviewDone(msg)

	case views.PublishFinishedMsg:
		// Record the run before the monitor flips to its final screen.
		if m.plan != nil {
			if err := saveRunRecord(m.plan, msg.Result, msg.Status); err != nil {
				slog.Warn("failed to save run record", "error", err)
			}
		}
		return m.updateCurrentView(msg)
	}

	return m.updateCurrentView(msg)
}

// handleReviewDone routes the review decision: quit in review-only mode,
// otherwise publish on approval or archive the cancelled run and return
// home.
func (m Model) handleReviewDone(msg msgs.ReviewDoneMsg) (tea.Model, tea.Cmd) {
	if m.reviewOnly {
		if msg.Approved {
			m.outcome = OutcomeApproved
		} else {
			m.outcome = OutcomeCancelled
		}
		return m, tea.Quit
	}

	if !msg.Approved {
		if err := saveRunRecord(m.plan, nil, archive.StatusCancelled); err != nil {
			slog.Warn("failed to save run record", "error", err)
		}
		m.home = views.NewHomeModel(morrowDir)
		m.home.SetSize(m.width, m.height)
		m.home.SetNotice("Cancelled. Nothing was written to Notion.")
		m.currentView = ViewHome
		return m, m.home.Init()
	}

	m.publish = views.NewPublishModel(m.plan, m.client, m.opts)
	m.publish.SetSize(m.width, m.height)
	m.currentView = ViewPublish
	return m, tea.Batch(m.publish.Init(), m.publish.StartPublisher(m.program))
}

// updateCurrentView delegates a message to the active view's Update.
func (m Model) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.home, cmd = m.home.Update(msg)
	case ViewLoading:
		m.loading, cmd = m.loading.Update(msg)
	case ViewReview:
		m.review, cmd = m.review.Update(msg)
	case ViewPreview:
		m.preview, cmd = m.preview.Update(msg)
	case ViewTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case ViewJobs:
		m.jobs, cmd = m.jobs.Update(msg)
	case ViewAdd:
		m.add, cmd = m.add.Update(msg)
	case ViewRemove:
		m.remove, cmd = m.remove.Update(msg)
	case ViewPublish:
		m.publish, cmd = m.publish.Update(msg)
	case ViewRunList:
		m.runList, cmd = m.runList.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	switch m.currentView {
	case ViewHome:
		return m.home.View()
	case ViewLoading:
		return m.loading.View()
	case ViewReview:
		return m.review.View()
	case ViewPreview:
		return m.preview.View()
	case ViewTasks:
		return m.tasks.View()
	case ViewJobs:
		return m.jobs.View()
	case ViewAdd:
		return m.add.View()
	case ViewRemove:
		return m.remove.View()
	case ViewPublish:
		return m.publish.View()
	case ViewRunList:
		return m.runList.View()
	}
	return ""
}

// renderTerminalTooSmall asks for a bigger window instead of drawing a
// broken layout.
func (m Model) renderTerminalTooSmall() string {
	var b strings.Builder

	title := styles.WarnStyle.Render("Terminal too small")
	minimum := fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight)
	current := fmt.Sprintf("Current: %dx%d", m.width, m.height)

	contentHeight := 5
	topPadding := (m.height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, minimum))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, current))

	return b.String()
}

// saveRunRecord archives the run locally under the workspace directory.
func saveRunRecord(plan *planner.Plan, result *rollover.Result, status archive.Status) error {
	run, err := archive.NewRun(plan.Today, plan.Tomorrow)
	if err != nil {
		return err
	}
	run.Status = status
	run.TaskCount = plan.TaskCount()
	run.JobCount = plan.JobCount()
	run.SkippedTasks = plan.SkippedTasks
	run.SkippedJobs = plan.SkippedJobs
	run.Insights = &plan.Insights
	if result != nil {
		run.PageURL = result.PageURL
		for _, f := range result.Failed {
			run.FailedRecords = append(run.FailedRecords, f.Task.Name)
		}
	}

	storage := archive.NewStorage(filepath.Join(morrowDir, "runs"))
	return storage.Save(run)
}
