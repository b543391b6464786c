package cli

import (
	"github.com/pablasso/morrow/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "morrow",
	Short:   "Nightly task rollover and job shortlisting for Notion",
	Long:    `Morrow carries today's unfinished Notion tasks into tomorrow, shortlists the job leads worth featuring, and publishes the approved plan as a new planner page.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(deinitCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(runsCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
