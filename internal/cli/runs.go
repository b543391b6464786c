package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/pablasso/morrow/internal/archive"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded rollover runs",
	Long:  `List past rollover runs recorded under .morrow/runs, newest first.`,
	RunE:  runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	// Check if morrow is initialized
	if err := RequireInitialized(); err != nil {
		return err
	}

	// Load runs from storage
	storage := archive.NewStorage(filepath.Join(morrowDir, "runs"))

	runs, err := storage.List()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	// Create tabwriter for formatted output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSTATUS\tTASKS\tJOBS\tAGE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			run.Today,
			run.Status,
			run.TaskCount,
			run.JobCount,
			formatAge(run.CreatedAt),
		)
	}

	return w.Flush()
}

// formatAge returns a human-readable relative time string.
func formatAge(t time.Time) string {
	now := time.Now()
	duration := now.Sub(t)

	if duration < time.Minute {
		return "just now"
	}

	minutes := int(duration.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := int(duration.Hours())
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd ago", days)
}
