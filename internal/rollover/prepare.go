// Package rollover orchestrates the nightly run: fetch today's state from
// the remote workspace, run the carryover and ranking pass, and publish
// the approved plan.
package rollover

import (
	"context"
	"fmt"

	"github.com/pablasso/morrow/internal/planner"
)

// Fetcher reads planning inputs from the remote workspace.
type Fetcher interface {
	FetchTasks(ctx context.Context, databaseID string, day planner.Date) ([]planner.Task, int, error)
	FetchJobs(ctx context.Context, databaseID string) ([]planner.Job, int, error)
}

// Options configures a rollover run.
type Options struct {
	TasksDatabaseID string
	JobsDatabaseID  string
	ParentPageID    string
	Today           planner.Date
	MaxFeatureJobs  int
	Buckets         []planner.KeywordBucket
}

// Prepare fetches today's unfinished tasks and the job listings, runs the
// decision pass, and assembles the reviewable plan.
func Prepare(ctx context.Context, fetcher Fetcher, opts Options) (*planner.Plan, error) {
	tomorrow := opts.Today.AddDays(1)

	tasks, skippedTasks, err := fetcher.FetchTasks(ctx, opts.TasksDatabaseID, opts.Today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	jobs, skippedJobs, err := fetcher.FetchJobs(ctx, opts.JobsDatabaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	carryover := planner.SelectCarryover(tasks)
	records := planner.CarryoverRecords(carryover, tomorrow)

	ranked, err := planner.NewRanker(opts.Buckets).Rank(jobs, opts.MaxFeatureJobs)
	if err != nil {
		return nil, fmt.Errorf("failed to rank jobs: %w", err)
	}

	plan := planner.AssemblePlan(records, ranked, opts.Today, tomorrow)
	plan.SkippedTasks = skippedTasks
	plan.SkippedJobs = skippedJobs
	plan.Insights = planner.AnalyzeTasks(tasks)
	return plan, nil
}
