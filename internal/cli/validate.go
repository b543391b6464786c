package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pablasso/morrow/internal/config"
	"github.com/pablasso/morrow/internal/logging"
	"github.com/pablasso/morrow/internal/notion"
	"github.com/pablasso/morrow/internal/page"
	"github.com/pablasso/morrow/internal/planner"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configuration and Notion access",
	Long:  `Runs the setup checks end to end: configuration, API token, database access, the decision pass, and the page renderer. Performs no writes.`,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	// 1. Prerequisites and configuration
	if err := checkPrerequisites(); err != nil {
		return err
	}

	fmt.Println("Checking configuration...")
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  ✗ %v\n", err)
		fmt.Println("    Fix .env or the MORROW_* environment variables and rerun.")
		return fmt.Errorf("validation failed")
	}
	fmt.Printf("  ✓ Configuration loaded (%d featured jobs max, %.1f rps)\n",
		cfg.Planner.MaxFeatureJobs, cfg.Notion.RateLimitRPS)

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}

	client := notion.New(notion.Config{
		APIKey:     cfg.Notion.APIKey,
		BaseURL:    cfg.Notion.BaseURL,
		RateLimit:  cfg.Notion.RateLimitRPS,
		MaxRetries: cfg.Notion.MaxRetries,
		RetryDelay: cfg.Notion.RetryDelay,
		Logger:     logger,
	})

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	failed := 0

	// 2. API token
	fmt.Println("Checking Notion connection...")
	user, err := client.Me(ctx)
	if err != nil {
		failed++
		fmt.Printf("  ✗ %v\n", err)
		fmt.Println("    Check MORROW_NOTION_API_KEY and that the integration is active.")
	} else {
		fmt.Printf("  ✓ Connected as %s\n", user.Name)
	}

	// 3. Database access and sample queries
	today := planner.Today()

	fmt.Println("Checking database access...")
	tasks, jobs, dbFailures := checkDatabases(ctx, client, cfg, today)
	failed += dbFailures

	// 4. Decision pass over whatever the queries returned
	fmt.Println("Checking the decision pass...")
	carryover := planner.SelectCarryover(tasks)
	records := planner.CarryoverRecords(carryover, today.AddDays(1))

	ranked, err := planner.NewRanker(cfg.Planner.Buckets()).Rank(jobs, cfg.Planner.MaxFeatureJobs)
	if err != nil {
		failed++
		fmt.Printf("  ✗ %v\n", err)
	} else {
		fmt.Printf("  ✓ %d task(s) would carry over, %d job(s) shortlisted\n", len(records), len(ranked))
	}

	// 5. Renderer
	fmt.Println("Checking the page renderer...")
	plan := planner.AssemblePlan(records, ranked, today, today.AddDays(1))
	blocks := page.Render(plan, cfg.Notion.TasksDatabaseID, cfg.Notion.JobsDatabaseID)
	if len(blocks) == 0 {
		failed++
		fmt.Println("  ✗ Renderer produced no blocks")
	} else {
		fmt.Printf("  ✓ Rendered %d top-level block(s) for %q\n", len(blocks), page.Title(plan.Tomorrow))
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}

	fmt.Println("\nAll checks passed. Run: morrow run")
	return nil
}

// checkDatabases verifies both databases are reachable and queryable,
// returning whatever the sample queries produced so later checks can run
// on real data, plus the number of failed checks.
func checkDatabases(ctx context.Context, client *notion.Client, cfg *config.Config, today planner.Date) ([]planner.Task, []planner.Job, int) {
	var tasks []planner.Task
	var jobs []planner.Job
	failed := 0

	if db, err := client.RetrieveDatabase(ctx, cfg.Notion.TasksDatabaseID); err != nil {
		failed++
		fmt.Printf("  ✗ Tasks database: %v\n", err)
		fmt.Println("    Check MORROW_NOTION_TASKS_DATABASE_ID and share the database with the integration.")
	} else {
		fmt.Printf("  ✓ Tasks database %q reachable\n", notion.PlainString(db.Title))

		fetched, skipped, err := client.FetchTasks(ctx, cfg.Notion.TasksDatabaseID, today)
		if err != nil {
			failed++
			fmt.Printf("  ✗ Tasks query: %v\n", err)
		} else {
			tasks = fetched
			fmt.Printf("  ✓ %d unfinished task(s) for today (%d malformed skipped)\n", len(fetched), skipped)
		}
	}

	if db, err := client.RetrieveDatabase(ctx, cfg.Notion.JobsDatabaseID); err != nil {
		failed++
		fmt.Printf("  ✗ Jobs database: %v\n", err)
		fmt.Println("    Check MORROW_NOTION_JOBS_DATABASE_ID and share the database with the integration.")
	} else {
		fmt.Printf("  ✓ Jobs database %q reachable\n", notion.PlainString(db.Title))

		fetched, skipped, err := client.FetchJobs(ctx, cfg.Notion.JobsDatabaseID)
		if err != nil {
			failed++
			fmt.Printf("  ✗ Jobs query: %v\n", err)
		} else {
			jobs = fetched
			fmt.Printf("  ✓ %d job listing(s) found (%d malformed skipped)\n", len(fetched), skipped)
		}
	}

	return tasks, jobs, failed
}
