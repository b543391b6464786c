package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const morrowDir = ".morrow"

// PrerequisiteError represents a failed prerequisite check with helpful remediation info.
type PrerequisiteError struct {
	Check   string
	Message string
	Help    string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("%s: %s\n\n%s", e.Check, e.Message, e.Help)
}

// checkPrerequisites validates the environment before the run and validate commands.
func checkPrerequisites() error {
	// Check the workspace is initialized
	if err := checkWorkspace(); err != nil {
		return err
	}

	// Check the Notion integration token is available
	if err := checkCredentials(); err != nil {
		return err
	}

	return nil
}

// checkWorkspace verifies the .morrow directory exists.
func checkWorkspace() error {
	if !IsInitialized() {
		return &PrerequisiteError{
			Check:   "Workspace",
			Message: ".morrow directory not found",
			Help:    "Run 'morrow init' first.",
		}
	}
	return nil
}

// checkCredentials verifies a Notion integration token is set, either in
// the environment or in a .env file.
func checkCredentials() error {
	// godotenv never overrides variables already set in the process.
	_ = godotenv.Load()

	if os.Getenv("MORROW_NOTION_API_KEY") == "" {
		return &PrerequisiteError{
			Check:   "Notion credentials",
			Message: "MORROW_NOTION_API_KEY is not set",
			Help:    "Add the integration token to .env or export it. Create an integration at https://www.notion.so/my-integrations",
		}
	}
	return nil
}

// IsInitialized checks if morrow is initialized in the current directory.
func IsInitialized() bool {
	info, err := os.Stat(morrowDir)
	return err == nil && info.IsDir()
}

// RequireInitialized returns an error if morrow is not initialized.
func RequireInitialized() error {
	if !IsInitialized() {
		return fmt.Errorf("morrow is not initialized. Run 'morrow init' first.")
	}
	return nil
}
