package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const (
	envFile        = ".env"
	gitignoreEntry = ".env"
)

const envTemplate = `# Morrow configuration. Real environment variables override these values.

# Notion integration token (create one at https://www.notion.so/my-integrations)
MORROW_NOTION_API_KEY=

# Databases and the parent page for generated planner pages (32-hex IDs)
MORROW_NOTION_TASKS_DATABASE_ID=
MORROW_NOTION_JOBS_DATABASE_ID=
MORROW_NOTION_PARENT_PAGE_ID=

# Optional tuning
#MORROW_PLANNER_MAX_FEATURE_JOBS=4
#MORROW_NOTION_RATE_LIMIT_RPS=3
#MORROW_NOTION_MAX_RETRIES=3
#MORROW_NOTION_RETRY_DELAY=1s
#MORROW_LOG_LEVEL=info
#MORROW_LOG_FILE=
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Morrow in the current directory",
	Long:  "Creates a .morrow/ folder for run records and a starter .env file.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check if already initialized
	if IsInitialized() {
		return fmt.Errorf("morrow is already initialized in this directory")
	}

	// Create .morrow directory structure
	dirs := []string{
		morrowDir,
		filepath.Join(morrowDir, "runs"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	// Write a starter .env unless one already exists
	wroteEnv := false
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		if err := os.WriteFile(envFile, []byte(envTemplate), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", envFile, err)
		}
		wroteEnv = true
	}

	// Keep the token file out of version control
	if err := addToGitignore(gitignoreEntry); err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}

	fmt.Println("Initialized Morrow in", morrowDir)
	fmt.Println("\nNext steps:")
	if wroteEnv {
		fmt.Println("  1. Fill in .env with your Notion token and database IDs")
	} else {
		fmt.Println("  1. Check .env holds your Notion token and database IDs")
	}
	fmt.Println("  2. Run: morrow validate")
	fmt.Println("  3. Run: morrow run")
	return nil
}

// addToGitignore appends entry to .gitignore, creating the file if needed.
// Entries already present are left alone.
func addToGitignore(entry string) error {
	data, err := os.ReadFile(".gitignore")
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	content := string(data)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == entry {
			return nil
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"
	return os.WriteFile(".gitignore", []byte(content), 0644)
}

// removeFromGitignore drops entry from .gitignore. A missing file is fine,
// and the file is left unchanged when removal would empty it.
func removeFromGitignore(entry string) error {
	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var kept []string
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if strings.TrimSpace(line) != entry {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return os.WriteFile(".gitignore", []byte(strings.Join(kept, "\n")+"\n"), 0644)
}
