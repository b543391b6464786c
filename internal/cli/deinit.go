package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deinitForce bool
)

var deinitCmd = &cobra.Command{
	Use:   "deinit",
	Short: "Remove Morrow from the current directory",
	Long:  "Removes the .morrow/ folder and all run records. This action cannot be undone.",
	RunE:  runDeinit,
}

func init() {
	deinitCmd.Flags().BoolVarP(&deinitForce, "force", "f", false, "Skip confirmation prompt")
}

func runDeinit(cmd *cobra.Command, args []string) error {
	// Check if initialized
	info, err := os.Stat(morrowDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("morrow is not initialized in this directory")
	}
	if err != nil {
		return fmt.Errorf("failed to check .morrow directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf(".morrow exists but is not a directory")
	}

	// Calculate what will be deleted
	runCount, totalSize, err := calculateDirStats(morrowDir)
	if err != nil {
		return fmt.Errorf("failed to analyze .morrow/: %w", err)
	}

	// Show confirmation unless --force
	if !deinitForce {
		fmt.Printf("This will delete .morrow/ (%d runs, %s). Continue? [y/N] ", runCount, formatSize(totalSize))

		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Remove the directory
	if err := os.RemoveAll(morrowDir); err != nil {
		return fmt.Errorf("failed to remove .morrow/: %w", err)
	}

	// Drop the ignore entry only once the token file itself is gone; an
	// existing .env should stay ignored.
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		if err := removeFromGitignore(gitignoreEntry); err != nil {
			return fmt.Errorf("failed to update .gitignore: %w", err)
		}
	}

	fmt.Println("Morrow has been removed from this directory.")
	return nil
}

func calculateDirStats(dir string) (runCount int, totalSize int64, err error) {
	runsDir := filepath.Join(dir, "runs")
	entries, readErr := os.ReadDir(runsDir)
	if readErr == nil {
		runCount = len(entries)
	}

	err = filepath.Walk(dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})
	return
}

func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
