// Package display renders a single-line progress indicator for console runs.
package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/rollover"
)

// Status represents the current phase of the run.
type Status int

const (
	StatusIdle Status = iota
	StatusFetching
	StatusPublishing
	StatusCompleted
	StatusFailed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusFetching:
		return "Fetching"
	case StatusPublishing:
		return "Publishing"
	case StatusCompleted:
		return "Completed"
	case StatusFailed:
		return "Failed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// State holds the current display state.
type State struct {
	RecordNum    int
	TotalRecords int
	RecordTitle  string
	Status       Status
	StartTime    time.Time
}

// Display manages the terminal status line.
type Display struct {
	mu       sync.Mutex
	writer   io.Writer
	state    State
	ticker   *time.Ticker
	done     chan struct{}
	wg       sync.WaitGroup // Ensures goroutine exits before Stop() returns
	active   bool
	lastLine string
}

// New creates a new Display writing to the given writer.
func New(w io.Writer) *Display {
	return &Display{
		writer: w,
		done:   make(chan struct{}),
	}
}

// Start begins the display update loop.
func (d *Display) Start() {
	d.mu.Lock()
	if d.active {
		d.mu.Unlock()
		return
	}
	d.active = true
	d.state.StartTime = time.Now()
	d.ticker = time.NewTicker(time.Second)
	d.wg.Add(1)
	d.mu.Unlock()

	go d.updateLoop()
}

// Stop halts the display update loop and clears the status line.
// Blocks until the update goroutine has exited to prevent race conditions.
func (d *Display) Stop() {
	d.mu.Lock()
	if !d.active {
		d.mu.Unlock()
		return
	}
	d.active = false
	d.mu.Unlock()

	d.ticker.Stop()
	close(d.done)
	d.wg.Wait() // Wait for goroutine to exit before clearing
	d.clearLine()
}

// UpdateRecord updates the current record information.
func (d *Display) UpdateRecord(recordNum, totalRecords int, title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.RecordNum = recordNum
	d.state.TotalRecords = totalRecords
	d.state.RecordTitle = title
}

// UpdateStatus updates the run status.
func (d *Display) UpdateStatus(status Status) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Status = status
}

// OnPageCreated announces the planner page above the status line.
func (d *Display) OnPageCreated(title, url string) {
	d.PrintAbove("✓ Created page: %s", url)
}

// OnRecordStart moves the status line to the record being written.
func (d *Display) OnRecordStart(recordNum, total int, task planner.Task) {
	d.UpdateRecord(recordNum, total, task.Name)
}

// OnRecordCreated is a no-op; routine progress stays on the status line.
func (d *Display) OnRecordCreated(task planner.Task) {}

// OnRecordFailed reports a failed record above the status line.
func (d *Display) OnRecordFailed(task planner.Task, err error) {
	d.PrintAbove("✗ %s: %v", task.Name, err)
}

var _ rollover.PublisherEvents = (*Display)(nil)

// updateLoop periodically renders the status line.
func (d *Display) updateLoop() {
	defer d.wg.Done()
	d.render()
	for {
		select {
		case <-d.ticker.C:
			d.render()
		case <-d.done:
			return
		}
	}
}

// render draws the current status line.
func (d *Display) render() {
	d.mu.Lock()
	state := d.state
	lastLine := d.lastLine
	d.mu.Unlock()

	elapsed := time.Since(state.StartTime)
	line := d.formatLine(state, elapsed)

	// Only update if changed (reduces flicker)
	if line == lastLine {
		return
	}

	d.mu.Lock()
	d.lastLine = line
	d.mu.Unlock()

	// Move to start of line, clear it, write new content
	fmt.Fprintf(d.writer, "\r\033[K%s", line)
}

// formatLine creates the status line string.
func (d *Display) formatLine(state State, elapsed time.Duration) string {
	if state.Status == StatusIdle {
		return ""
	}

	timeStr := formatDuration(elapsed)

	// Before the first record there is no count to show, only the phase.
	if state.TotalRecords == 0 {
		return fmt.Sprintf("⏱ %s │ %s", timeStr, state.Status)
	}

	// Truncate title if too long
	title := state.RecordTitle
	if len(title) > 40 {
		title = title[:37] + "..."
	}

	return fmt.Sprintf("Record %d/%d: %s │ ⏱ %s │ %s",
		state.RecordNum,
		state.TotalRecords,
		title,
		timeStr,
		state.Status)
}

// clearLine clears the status line.
func (d *Display) clearLine() {
	fmt.Fprintf(d.writer, "\r\033[K")
}

// PrintAbove prints a message above the status line.
// Use this for important messages that shouldn't be overwritten.
func (d *Display) PrintAbove(format string, args ...interface{}) {
	d.clearLine()
	fmt.Fprintf(d.writer, format+"\n", args...)
	d.render()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
