package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInit(t *testing.T) {
	t.Run("successful init creates directories and env template", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		// Run init command
		err := runInit(nil, nil)
		if err != nil {
			t.Fatalf("runInit failed: %v", err)
		}

		// Verify .morrow directory was created
		morrowInfo, err := os.Stat(".morrow")
		if err != nil {
			t.Fatalf("expected .morrow directory to exist, got error: %v", err)
		}
		if !morrowInfo.IsDir() {
			t.Error("expected .morrow to be a directory")
		}

		// Verify .morrow/runs directory was created
		runsInfo, err := os.Stat(filepath.Join(".morrow", "runs"))
		if err != nil {
			t.Fatalf("expected .morrow/runs directory to exist, got error: %v", err)
		}
		if !runsInfo.IsDir() {
			t.Error("expected .morrow/runs to be a directory")
		}

		// Verify the starter .env template was written
		envContent, err := os.ReadFile(".env")
		if err != nil {
			t.Fatalf("expected .env to exist, got error: %v", err)
		}
		if !strings.Contains(string(envContent), "MORROW_NOTION_API_KEY=") {
			t.Errorf("expected .env template to mention the token variable, got %q", string(envContent))
		}

		// Verify .gitignore keeps the token file out of version control
		content, err := os.ReadFile(".gitignore")
		if err != nil {
			t.Fatalf("expected .gitignore to exist, got error: %v", err)
		}
		if string(content) != ".env\n" {
			t.Errorf("expected .gitignore to contain the env entry, got %q", string(content))
		}
	})

	t.Run("init keeps an existing env file", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		existing := "MORROW_NOTION_API_KEY=secret_mine\n"
		if err := os.WriteFile(".env", []byte(existing), 0600); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}

		err := runInit(nil, nil)
		if err != nil {
			t.Fatalf("runInit failed: %v", err)
		}

		content, err := os.ReadFile(".env")
		if err != nil {
			t.Fatalf("failed to read .env: %v", err)
		}
		if string(content) != existing {
			t.Errorf("expected .env to be untouched, got %q", string(content))
		}
	})

	t.Run("double init fails", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		// First init should succeed
		err := runInit(nil, nil)
		if err != nil {
			t.Fatalf("first runInit failed: %v", err)
		}

		// Second init should fail
		err = runInit(nil, nil)
		if err == nil {
			t.Fatal("expected error on second init, got nil")
		}

		expectedErr := "morrow is already initialized in this directory"
		if err.Error() != expectedErr {
			t.Errorf("expected error %q, got %q", expectedErr, err.Error())
		}
	})
}

func TestAddToGitignore(t *testing.T) {
	t.Run("creates gitignore if not exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		err := addToGitignore("test-entry")
		if err != nil {
			t.Fatalf("addToGitignore failed: %v", err)
		}

		content, err := os.ReadFile(".gitignore")
		if err != nil {
			t.Fatalf("expected .gitignore to exist: %v", err)
		}
		if string(content) != "test-entry\n" {
			t.Errorf("expected 'test-entry\\n', got %q", string(content))
		}
	})

	t.Run("appends to existing gitignore", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		os.WriteFile(".gitignore", []byte("existing-entry\n"), 0644)

		err := addToGitignore("new-entry")
		if err != nil {
			t.Fatalf("addToGitignore failed: %v", err)
		}

		content, err := os.ReadFile(".gitignore")
		if err != nil {
			t.Fatalf("failed to read .gitignore: %v", err)
		}
		expected := "existing-entry\nnew-entry\n"
		if string(content) != expected {
			t.Errorf("expected %q, got %q", expected, string(content))
		}
	})

	t.Run("adds newline if file doesn't end with one", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		os.WriteFile(".gitignore", []byte("no-trailing-newline"), 0644)

		err := addToGitignore("new-entry")
		if err != nil {
			t.Fatalf("addToGitignore failed: %v", err)
		}

		content, err := os.ReadFile(".gitignore")
		if err != nil {
			t.Fatalf("failed to read .gitignore: %v", err)
		}
		expected := "no-trailing-newline\nnew-entry\n"
		if string(content) != expected {
			t.Errorf("expected %q, got %q", expected, string(content))
		}
	})

	t.Run("skips if entry already exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		os.WriteFile(".gitignore", []byte("existing-entry\n"), 0644)

		err := addToGitignore("existing-entry")
		if err != nil {
			t.Fatalf("addToGitignore failed: %v", err)
		}

		content, err := os.ReadFile(".gitignore")
		if err != nil {
			t.Fatalf("failed to read .gitignore: %v", err)
		}
		if string(content) != "existing-entry\n" {
			t.Errorf("expected unchanged content, got %q", string(content))
		}
	})
}

func TestRemoveFromGitignore(t *testing.T) {
	t.Run("removes entry from gitignore", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		os.WriteFile(".gitignore", []byte("keep-me\nremove-me\nalso-keep\n"), 0644)

		err := removeFromGitignore("remove-me")
		if err != nil {
			t.Fatalf("removeFromGitignore failed: %v", err)
		}

		content, err := os.ReadFile(".gitignore")
		if err != nil {
			t.Fatalf("failed to read .gitignore: %v", err)
		}
		expected := "keep-me\nalso-keep\n"
		if string(content) != expected {
			t.Errorf("expected %q, got %q", expected, string(content))
		}
	})

	t.Run("does nothing if gitignore doesn't exist", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		err := removeFromGitignore("any-entry")
		if err != nil {
			t.Fatalf("removeFromGitignore should not fail: %v", err)
		}
	})

	t.Run("leaves gitignore if removal would empty it", func(t *testing.T) {
		tmpDir := t.TempDir()
		originalWd, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(originalWd)

		os.WriteFile(".gitignore", []byte("only-entry\n"), 0644)

		err := removeFromGitignore("only-entry")
		if err != nil {
			t.Fatalf("removeFromGitignore failed: %v", err)
		}

		// File should still exist (we don't delete it)
		content, err := os.ReadFile(".gitignore")
		if err != nil {
			t.Fatalf("expected .gitignore to still exist: %v", err)
		}
		// Content should be unchanged since removing would make it empty
		if string(content) != "only-entry\n" {
			t.Errorf("expected unchanged content when result would be empty, got %q", string(content))
		}
	})
}
