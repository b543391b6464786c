package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrerequisiteError(t *testing.T) {
	t.Run("formats error with check, message, and help", func(t *testing.T) {
		err := &PrerequisiteError{
			Check:   "Test Check",
			Message: "Something went wrong",
			Help:    "Try doing X to fix it.",
		}

		expected := "Test Check: Something went wrong\n\nTry doing X to fix it."
		if err.Error() != expected {
			t.Errorf("got %q, want %q", err.Error(), expected)
		}
	})
}

func TestCheckWorkspace(t *testing.T) {
	t.Run("initialized workspace returns nil", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		os.MkdirAll(filepath.Join(tmpDir, ".morrow"), 0755)

		err := checkWorkspace()
		if err != nil {
			t.Errorf("expected nil error in initialized workspace, got: %v", err)
		}
	})

	t.Run("uninitialized workspace returns PrerequisiteError", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		err := checkWorkspace()
		if err == nil {
			t.Error("expected error in uninitialized workspace, got nil")
		}

		prereqErr, ok := err.(*PrerequisiteError)
		if !ok {
			t.Fatalf("expected *PrerequisiteError, got %T", err)
		}

		if prereqErr.Message != ".morrow directory not found" {
			t.Errorf("got message %q, want %q", prereqErr.Message, ".morrow directory not found")
		}

		expectedHelp := "Run 'morrow init' first."
		if prereqErr.Help != expectedHelp {
			t.Errorf("got help %q, want %q", prereqErr.Help, expectedHelp)
		}
	})
}

func TestCheckCredentials(t *testing.T) {
	t.Run("token set in environment returns nil", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		t.Setenv("MORROW_NOTION_API_KEY", "secret_test")

		err := checkCredentials()
		if err != nil {
			t.Errorf("expected nil error with token set, got: %v", err)
		}
	})

	t.Run("missing token returns PrerequisiteError", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		// t.Setenv registers the restore; unset so the lookup really fails.
		t.Setenv("MORROW_NOTION_API_KEY", "")
		os.Unsetenv("MORROW_NOTION_API_KEY")

		err := checkCredentials()
		if err == nil {
			t.Error("expected error with no token, got nil")
		}

		prereqErr, ok := err.(*PrerequisiteError)
		if !ok {
			t.Fatalf("expected *PrerequisiteError, got %T", err)
		}

		if prereqErr.Check != "Notion credentials" {
			t.Errorf("got check %q, want %q", prereqErr.Check, "Notion credentials")
		}

		if prereqErr.Message != "MORROW_NOTION_API_KEY is not set" {
			t.Errorf("got message %q, want %q", prereqErr.Message, "MORROW_NOTION_API_KEY is not set")
		}
	})

	t.Run("token read from env file returns nil", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		t.Setenv("MORROW_NOTION_API_KEY", "")
		os.Unsetenv("MORROW_NOTION_API_KEY")

		envContent := "MORROW_NOTION_API_KEY=secret_from_file\n"
		if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(envContent), 0600); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}

		err := checkCredentials()
		if err != nil {
			t.Errorf("expected nil error with token in .env, got: %v", err)
		}
	})
}

func TestIsInitialized(t *testing.T) {
	t.Run("returns true when .morrow directory exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		os.MkdirAll(filepath.Join(tmpDir, ".morrow"), 0755)

		if !IsInitialized() {
			t.Error("expected IsInitialized() to return true when .morrow exists")
		}
	})

	t.Run("returns false when .morrow does not exist", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		if IsInitialized() {
			t.Error("expected IsInitialized() to return false when .morrow does not exist")
		}
	})

	t.Run("returns false when .morrow is a file not directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		os.WriteFile(filepath.Join(tmpDir, ".morrow"), []byte("not a dir"), 0644)

		if IsInitialized() {
			t.Error("expected IsInitialized() to return false when .morrow is a file")
		}
	})
}

func TestRequireInitialized(t *testing.T) {
	t.Run("returns nil when initialized", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		os.MkdirAll(filepath.Join(tmpDir, ".morrow"), 0755)

		err := RequireInitialized()
		if err != nil {
			t.Errorf("expected nil error when initialized, got: %v", err)
		}
	})

	t.Run("returns error when not initialized", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		err := RequireInitialized()
		if err == nil {
			t.Error("expected error when not initialized, got nil")
		}

		expected := "morrow is not initialized. Run 'morrow init' first."
		if err.Error() != expected {
			t.Errorf("got %q, want %q", err.Error(), expected)
		}
	})
}
