package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/morrow/internal/archive"
	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/rollover"
	"github.com/pablasso/morrow/internal/tui/components"
	"github.com/pablasso/morrow/internal/tui/msgs"
	"github.com/pablasso/morrow/internal/tui/styles"
	"github.com/pablasso/morrow/internal/util"
)

// publishState represents the current state of the publish monitor.
type publishState int

const (
	publishRunning publishState = iota
	publishCancelling
	publishDone
	publishCancelled
)

// feedKind classifies an event feed line for styling.
type feedKind int

const (
	feedInfo feedKind = iota
	feedOK
	feedFail
)

// feedEntry is a single line in the publication event feed.
type feedEntry struct {
	text string
	kind feedKind
}

// Message types for publisher events

// PublisherStartedMsg signals that the publisher has started and provides
// a cancel handle.
type PublisherStartedMsg struct {
	Cancel context.CancelFunc
}

// PageCreatedMsg is sent when the planner page has been created.
type PageCreatedMsg struct {
	Title string
	URL   string
}

// RecordStartMsg is sent when a carryover record write begins.
type RecordStartMsg struct {
	Num   int
	Total int
	Task  planner.Task
}

// RecordCreatedMsg is sent when a carryover record write succeeds.
type RecordCreatedMsg struct {
	Task planner.Task
}

// RecordFailedMsg is sent when a carryover record write fails.
type RecordFailedMsg struct {
	Task planner.Task
	Err  error
}

// PublishFinishedMsg signals that publication has finished, in any state.
type PublishFinishedMsg struct {
	Result *rollover.Result
	Err    error
	Status archive.Status
}

// publishTickMsg is used for elapsed time updates.
type publishTickMsg time.Time

// PublishModel is the model for the publish monitor view.
type PublishModel struct {
	state  publishState
	plan   *planner.Plan
	writer rollover.Writer
	opts   rollover.Options

	spinner   spinner.Model
	startTime time.Time
	elapsed   time.Duration

	currentTask string
	attempted   int
	created     int
	failedCount int
	total       int
	pageURL     string
	feed        []feedEntry

	result *rollover.Result
	err    error
	status archive.Status

	cancel context.CancelFunc // Set when the publisher starts

	width  int
	height int
}

// NewPublishModel creates a PublishModel for the approved plan.
func NewPublishModel(plan *planner.Plan, writer rollover.Writer, opts rollover.Options) PublishModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return PublishModel{
		state:     publishRunning,
		plan:      plan,
		writer:    writer,
		opts:      opts,
		spinner:   s,
		startTime: time.Now(),
		total:     plan.TaskCount(),
	}
}

// Init implements tea.Model.
func (m PublishModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.tickCmd(),
	)
}

// tickCmd returns a command that sends tick messages for elapsed time updates.
func (m PublishModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return publishTickMsg(t)
	})
}

// StartPublisher creates a command that runs publication in a goroutine,
// streaming events back into the program.
func (m *PublishModel) StartPublisher(program *tea.Program) tea.Cmd {
	return func() tea.Msg {
		// Guard against nil program
		if program == nil {
			return PublishFinishedMsg{
				Err:    fmt.Errorf("internal error: program is nil"),
				Status: archive.StatusFailed,
			}
		}

		ctx, cancel := context.WithCancel(context.Background())

		publisher := rollover.NewPublisher(m.writer, m.opts).
			WithEvents(NewPublishEvents(program))

		plan := m.plan
		go func() {
			result, err := publisher.Publish(ctx, plan)
			program.Send(PublishFinishedMsg{
				Result: result,
				Err:    err,
				Status: publishStatus(err, result),
			})
		}()

		return PublisherStartedMsg{Cancel: cancel}
	}
}

// publishStatus maps a publication outcome to an archive status.
func publishStatus(err error, result *rollover.Result) archive.Status {
	switch {
	case errors.Is(err, context.Canceled):
		return archive.StatusCancelled
	case err != nil:
		return archive.StatusFailed
	case result != nil && len(result.Failed) > 0:
		return archive.StatusPartial
	default:
		return archive.StatusPublished
	}
}

// PublishEvents adapts publisher callbacks into program messages.
type PublishEvents struct {
	program *tea.Program
}

// NewPublishEvents creates the events adapter for the given program.
func NewPublishEvents(program *tea.Program) *PublishEvents {
	return &PublishEvents{program: program}
}

// OnPageCreated implements rollover.PublisherEvents.
func (e *PublishEvents) OnPageCreated(title, url string) {
	e.program.Send(PageCreatedMsg{Title: title, URL: url})
}

// OnRecordStart implements rollover.PublisherEvents.
func (e *PublishEvents) OnRecordStart(recordNum, total int, task planner.Task) {
	e.program.Send(RecordStartMsg{Num: recordNum, Total: total, Task: task})
}

// OnRecordCreated implements rollover.PublisherEvents.
func (e *PublishEvents) OnRecordCreated(task planner.Task) {
	e.program.Send(RecordCreatedMsg{Task: task})
}

// OnRecordFailed implements rollover.PublisherEvents.
func (e *PublishEvents) OnRecordFailed(task planner.Task, err error) {
	e.program.Send(RecordFailedMsg{Task: task, Err: err})
}

var _ rollover.PublisherEvents = (*PublishEvents)(nil)

// Update implements tea.Model.
func (m PublishModel) Update(msg tea.Msg) (PublishModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state == publishRunning || m.state == publishCancelling {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case publishTickMsg:
		if m.state == publishRunning || m.state == publishCancelling {
			m.elapsed = time.Since(m.startTime)
			return m, m.tickCmd()
		}
		return m, nil

	case PublisherStartedMsg:
		m.cancel = msg.Cancel
		if m.state == publishCancelling && m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		return m, nil

	case PageCreatedMsg:
		m.pageURL = msg.URL
		m.feed = append(m.feed, feedEntry{text: "Created page " + msg.Title, kind: feedOK})
		return m, nil

	case RecordStartMsg:
		m.currentTask = msg.Task.Name
		m.total = msg.Total
		return m, nil

	case RecordCreatedMsg:
		m.attempted++
		m.created++
		m.currentTask = ""
		m.feed = append(m.feed, feedEntry{text: msg.Task.Name, kind: feedOK})
		return m, nil

	case RecordFailedMsg:
		m.attempted++
		m.failedCount++
		m.currentTask = ""
		m.feed = append(m.feed, feedEntry{text: fmt.Sprintf("%s: %v", msg.Task.Name, msg.Err), kind: feedFail})
		return m, nil

	case PublishFinishedMsg:
		m.result = msg.Result
		m.err = msg.Err
		m.status = msg.Status
		m.cancel = nil
		if msg.Status == archive.StatusCancelled {
			m.state = publishCancelled
		} else {
			m.state = publishDone
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress handles keyboard input based on current state.
func (m PublishModel) handleKeyPress(msg tea.KeyMsg) (PublishModel, tea.Cmd) {
	switch m.state {
	case publishRunning:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			// Graceful stop. If the publisher isn't wired yet, stay in
			// cancelling state and cancel once PublisherStartedMsg arrives.
			m.state = publishCancelling
			if m.cancel != nil {
				m.cancel()
				m.cancel = nil
			}
			return m, nil
		}

	case publishDone, publishCancelled:
		switch msg.String() {
		case "enter", "h":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PublishModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	switch m.state {
	case publishRunning, publishCancelling:
		return m.renderPublishing()
	case publishDone:
		return m.renderDone()
	case publishCancelled:
		return m.renderCancelled()
	}
	return ""
}

// renderPublishing renders the live monitor: status, progress, event feed.
func (m PublishModel) renderPublishing() string {
	var b strings.Builder

	title := styles.TitleStyle.Render("Publishing to Notion")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	status := "Creating the planner page..."
	if m.currentTask != "" {
		status = fmt.Sprintf("Record %d/%d: %s", m.attempted+1, m.total, util.TruncateText(m.currentTask, 40))
	} else if m.attempted > 0 {
		status = fmt.Sprintf("Wrote %d/%d records", m.attempted, m.total)
	}
	if m.state == publishCancelling {
		status = "Stopping after the current record..."
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.spinner.View()+" "+status))
	b.WriteString("\n\n")

	if m.total > 0 {
		bar := components.NewProgress(m.attempted, m.total, 30).View()
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render(m.formatDuration(m.elapsed))))
	b.WriteString("\n\n")

	// Most recent feed entries
	const maxFeedLines = 8
	start := 0
	if len(m.feed) > maxFeedLines {
		start = len(m.feed) - maxFeedLines
	}
	for _, entry := range m.feed[start:] {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderFeedEntry(entry)))
		b.WriteString("\n")
	}

	lines := strings.Count(b.String(), "\n") + 1
	remaining := m.height - lines - 1
	if remaining > 0 {
		b.WriteString(strings.Repeat("\n", remaining))
	}

	statusItems := []string{"Publishing...", "Ctrl+C Cancel"}
	if m.state == publishCancelling {
		statusItems = []string{"Stopping...", "Finished records stay in place"}
	}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

func (m PublishModel) renderFeedEntry(entry feedEntry) string {
	switch entry.kind {
	case feedOK:
		return styles.SuccessStyle.Render("✓") + " " + entry.text
	case feedFail:
		return styles.ErrorStyle.Render("✗") + " " + entry.text
	default:
		return styles.SubtleStyle.Render(entry.text)
	}
}

// renderDone renders the final summary after publication finished.
func (m PublishModel) renderDone() string {
	var b strings.Builder

	var title string
	switch m.status {
	case archive.StatusPublished:
		title = styles.SuccessStyle.Render("Plan published")
	case archive.StatusPartial:
		title = styles.WarnStyle.Render("Plan published with failures")
	default:
		title = styles.ErrorStyle.Render("Publish failed")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.ErrorStyle.Render(m.err.Error())))
		b.WriteString("\n\n")
	}

	if m.result != nil {
		if m.result.PageURL != "" {
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "Planner page: "+m.result.PageURL))
			b.WriteString("\n")
		}
		records := fmt.Sprintf("Created %d of %d task records.", m.result.RecordsCreated, m.total)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, records))
		b.WriteString("\n")

		for _, f := range m.result.Failed {
			line := styles.ErrorStyle.Render("✗") + fmt.Sprintf(" %s: %v", f.Task.Name, f.Err)
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line))
			b.WriteString("\n")
		}
	}

	if len(m.plan.Insights.Notes) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SectionStyle.Render("Workload notes")))
		b.WriteString("\n")
		for _, note := range m.plan.Insights.Notes {
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render(note)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	homeOption := styles.SelectedStyle.Render("[Enter]") + " Return to home"
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, homeOption))
	b.WriteString("\n")

	lines := strings.Count(b.String(), "\n") + 1
	remaining := m.height - lines - 1
	if remaining > 0 {
		b.WriteString(strings.Repeat("\n", remaining))
	}

	b.WriteString(components.NewStatusBar().Render(m.width, []string{"Enter Home", "q Quit"}))

	return b.String()
}

// renderCancelled renders the view after a mid-publication cancel.
func (m PublishModel) renderCancelled() string {
	var b strings.Builder

	title := styles.SubtleStyle.Render("Publication cancelled")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	message := fmt.Sprintf("Stopped after %d of %d records. Finished records stay in place.", m.created, m.total)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, message))
	b.WriteString("\n\n")

	homeOption := styles.SelectedStyle.Render("[Enter]") + " Return to home"
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, homeOption))
	b.WriteString("\n")

	lines := strings.Count(b.String(), "\n") + 1
	remaining := m.height - lines - 1
	if remaining > 0 {
		b.WriteString(strings.Repeat("\n", remaining))
	}

	b.WriteString(components.NewStatusBar().Render(m.width, []string{"Enter Home", "q Quit"}))

	return b.String()
}

// formatDuration formats a duration as MM:SS or HH:MM:SS.
func (m PublishModel) formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	mins := d / time.Minute
	d -= mins * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, mins, s)
	}
	return fmt.Sprintf("%02d:%02d", mins, s)
}

// SetSize updates the model dimensions.
func (m *PublishModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// State returns the current state of the monitor.
func (m PublishModel) State() publishState {
	return m.state
}

// PageURL returns the created page URL, when known.
func (m PublishModel) PageURL() string {
	return m.pageURL
}
