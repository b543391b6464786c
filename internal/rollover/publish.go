package rollover

import (
	"context"
	"fmt"

	"github.com/pablasso/morrow/internal/notion"
	"github.com/pablasso/morrow/internal/page"
	"github.com/pablasso/morrow/internal/planner"
)

// Writer creates pages and records in the remote workspace.
type Writer interface {
	CreatePage(ctx context.Context, parentPageID, title string, children []notion.Block) (*notion.Page, error)
	CreateRecord(ctx context.Context, databaseID string, properties map[string]notion.PropertyValue) (*notion.Page, error)
}

// FailedRecord is a carryover record that could not be written.
type FailedRecord struct {
	Task planner.Task
	Err  error
}

// Result summarizes a publication.
type Result struct {
	PageURL        string
	RecordsCreated int
	Failed         []FailedRecord
}

// Publisher writes an approved plan to the remote workspace: the planner
// page first, then one carryover record per task.
type Publisher struct {
	writer Writer
	opts   Options
	events PublisherEvents
}

// NewPublisher creates a Publisher for the given writer and run options.
func NewPublisher(writer Writer, opts Options) *Publisher {
	return &Publisher{writer: writer, opts: opts}
}

// WithEvents sets an events receiver (used by the TUI and the console
// display).
func (p *Publisher) WithEvents(events PublisherEvents) *Publisher {
	p.events = events
	return p
}

// Publish creates tomorrow's page and then the carryover records,
// sequentially. A page creation failure aborts the run; individual record
// failures are collected and do not stop the remaining writes.
// Cancellation stops between calls, never mid-record.
func (p *Publisher) Publish(ctx context.Context, plan *planner.Plan) (*Result, error) {
	title := page.Title(plan.Tomorrow)
	blocks := page.Render(plan, p.opts.TasksDatabaseID, p.opts.JobsDatabaseID)

	created, err := p.writer.CreatePage(ctx, p.opts.ParentPageID, title, blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to create planner page: %w", err)
	}

	result := &Result{PageURL: created.URL}
	if p.events != nil {
		p.events.OnPageCreated(title, created.URL)
	}

	total := len(plan.Tasks)
	for i, task := range plan.Tasks {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		if p.events != nil {
			p.events.OnRecordStart(i+1, total, task)
		}

		if _, err := p.writer.CreateRecord(ctx, p.opts.TasksDatabaseID, notion.TaskProperties(task)); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.Failed = append(result.Failed, FailedRecord{Task: task, Err: err})
			if p.events != nil {
				p.events.OnRecordFailed(task, err)
			}
			continue
		}

		result.RecordsCreated++
		if p.events != nil {
			p.events.OnRecordCreated(task)
		}
	}

	return result, nil
}
