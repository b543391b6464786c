package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pablasso/morrow/internal/archive"
	"github.com/pablasso/morrow/internal/config"
	"github.com/pablasso/morrow/internal/display"
	"github.com/pablasso/morrow/internal/logging"
	"github.com/pablasso/morrow/internal/notion"
	"github.com/pablasso/morrow/internal/page"
	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/rollover"
	"github.com/pablasso/morrow/internal/tui"
	"github.com/spf13/cobra"
)

var (
	runDate   string
	runLimit  int
	runYes    bool
	runDryRun bool
)

func init() {
	runCmd.Flags().StringVar(&runDate, "date", "", "Plan from this day instead of today (YYYY-MM-DD)")
	runCmd.Flags().IntVar(&runLimit, "limit", -1, "Max featured jobs (overrides MORROW_PLANNER_MAX_FEATURE_JOBS)")
	runCmd.Flags().BoolVarP(&runYes, "yes", "y", false, "Skip the review prompt and publish immediately")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Print the plan and exit without writing anything")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Roll today's unfinished tasks into tomorrow's plan",
	Long:  `Fetch today's unfinished tasks and the open job listings, build tomorrow's plan, and publish it to Notion after review.`,
	RunE:  runRollover,
}

func runRollover(cmd *cobra.Command, args []string) error {
	// 1. Check prerequisites
	if err := checkPrerequisites(); err != nil {
		return err
	}

	// 2. Load configuration and set up logging
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}

	// 3. Resolve the planning day and the shortlist limit
	today := planner.Today()
	if runDate != "" {
		if today, err = planner.ParseDate(runDate); err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}
	if runLimit >= 0 {
		cfg.Planner.MaxFeatureJobs = runLimit
	}

	// 4. Create the Notion client
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
		Today:           today,
		MaxFeatureJobs:  cfg.Planner.MaxFeatureJobs,
		Buckets:         cfg.Planner.Buckets(),
	}

	// 5. Fetch and build the plan, with signal handling
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Fetching tasks and jobs for %s...\n\n", today.Display())
	plan, err := rollover.Prepare(ctx, client, opts)
	if err != nil {
		return err
	}

	// 6. Dry run stops before any write
	if runDryRun {
		fmt.Println(page.Preview(plan))
		fmt.Println("\nDry run, nothing written.")
		return nil
	}

	// 7. Review interactively unless --yes
	if !runYes {
		outcome, err := tui.Review(plan)
		if err != nil {
			return err
		}
		if outcome != tui.OutcomeApproved {
			if saveErr := saveRunRecord(plan, nil, archive.StatusCancelled); saveErr != nil {
				logger.Warn("failed to save run record", "error", saveErr)
			}
			fmt.Println("Aborted. Nothing was written to Notion.")
			return nil
		}
	}

	fmt.Println(page.Preview(plan))

	// 8. Publish with console progress
	disp := display.New(os.Stdout)
	disp.Start()
	disp.UpdateStatus(display.StatusPublishing)

	publisher := rollover.NewPublisher(client, opts).WithEvents(disp)
	result, err := publisher.Publish(ctx, plan)

	switch {
	case errors.Is(err, context.Canceled):
		disp.UpdateStatus(display.StatusCancelled)
	case err != nil:
		disp.UpdateStatus(display.StatusFailed)
	default:
		disp.UpdateStatus(display.StatusCompleted)
	}
	disp.Stop()

	// 9. Record the run locally and report
	status := runStatus(err, result)
	if saveErr := saveRunRecord(plan, result, status); saveErr != nil {
		logger.Warn("failed to save run record", "error", saveErr)
	}

	if errors.Is(err, context.Canceled) {
		fmt.Println("\nCancelled. Finished records stay in place; nothing else was written.")
		return nil
	}
	if err != nil {
		return err
	}

	printSummary(plan, result)
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d records failed", len(result.Failed), plan.TaskCount())
	}
	return nil
}

func runStatus(err error, result *rollover.Result) archive.Status {
	switch {
	case errors.Is(err, context.Canceled):
		return archive.StatusCancelled
	case err != nil:
		return archive.StatusFailed
	case len(result.Failed) > 0:
		return archive.StatusPartial
	default:
		return archive.StatusPublished
	}
}

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

func printSummary(plan *planner.Plan, result *rollover.Result) {
	fmt.Printf("\nPlanner page: %s\n", result.PageURL)
	fmt.Printf("Created %d of %d task records.\n", result.RecordsCreated, plan.TaskCount())

	if len(plan.Insights.Notes) > 0 {
		fmt.Println("\nWorkload notes:")
		for _, note := range plan.Insights.Notes {
			fmt.Println("  " + note)
		}
	}
}
