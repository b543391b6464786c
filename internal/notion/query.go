package notion

import (
	"context"

	"github.com/pablasso/morrow/internal/planner"
)

// FetchTasks returns the unfinished tasks scheduled for day, in database
// order. Records without a name are dropped; the count of dropped records
// is returned alongside.
func (c *Client) FetchTasks(ctx context.Context, databaseID string, day planner.Date) ([]planner.Task, int, error) {
	unchecked := false
	query := DatabaseQuery{
		Filter: &Filter{
			And: []Filter{
				{Property: taskDateProp, Date: &DateFilter{Equals: day.String()}},
				{Property: taskStatusProp, Checkbox: &CheckboxFilter{Equals: &unchecked}},
			},
		},
	}

	pages, err := c.QueryDatabase(ctx, databaseID, query)
	if err != nil {
		return nil, 0, err
	}

	tasks := make([]planner.Task, 0, len(pages))
	for _, p := range pages {
		tasks = append(tasks, taskFromPage(p))
	}

	valid, skipped := planner.FilterTasks(tasks)
	if skipped > 0 {
		c.logger.Warn("skipped malformed task records", "count", skipped)
	}
	return valid, skipped, nil
}

// FetchJobs returns every row of the jobs database, ordered by deadline
// then priority so the fetch order is deterministic. Records without a
// name are dropped; the count of dropped records is returned alongside.
func (c *Client) FetchJobs(ctx context.Context, databaseID string) ([]planner.Job, int, error) {
	query := DatabaseQuery{
		Sorts: []Sort{
			{Property: jobDeadlineProp, Direction: "ascending"},
			{Property: jobPriorityProp, Direction: "ascending"},
		},
	}

	pages, err := c.QueryDatabase(ctx, databaseID, query)
	if err != nil {
		return nil, 0, err
	}

	jobs := make([]planner.Job, 0, len(pages))
	for _, p := range pages {
		jobs = append(jobs, jobFromPage(p))
	}

	valid, skipped := planner.FilterJobs(jobs)
	if skipped > 0 {
		c.logger.Warn("skipped malformed job records", "count", skipped)
	}
	return valid, skipped, nil
}
