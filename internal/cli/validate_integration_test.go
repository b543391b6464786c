package cli

import (
	"testing"

	"github.com/pablasso/morrow/internal/testutil"
)

func TestRunValidateE2E(t *testing.T) {
	ns := testutil.NewNotionServer(t, testTasksDatabaseID, testJobsDatabaseID)
	seedNotionServer(ns)
	setupRunWorkspace(t, ns)

	err := runValidate(validateCmd, nil)
	if err != nil {
		t.Fatalf("runValidate failed: %v", err)
	}

	// Validation is read only
	if got := len(ns.CreatedPages()); got != 0 {
		t.Errorf("expected no page creations, got %d", got)
	}
	if got := len(ns.CreatedRecords()); got != 0 {
		t.Errorf("expected no record creations, got %d", got)
	}
}

func TestRunValidateUnknownDatabase(t *testing.T) {
	ns := testutil.NewNotionServer(t, testTasksDatabaseID, testJobsDatabaseID)
	seedNotionServer(ns)
	setupRunWorkspace(t, ns)

	// Point the tasks database at an ID the integration cannot see
	t.Setenv("MORROW_NOTION_TASKS_DATABASE_ID", "99999999-9999-9999-9999-999999999999")

	err := runValidate(validateCmd, nil)
	if err == nil {
		t.Fatal("expected error for unknown database, got nil")
	}
	if err.Error() != "1 check(s) failed" {
		t.Errorf("expected one failed check, got %q", err.Error())
	}
}

func TestRunValidateBadConfig(t *testing.T) {
	ns := testutil.NewNotionServer(t, testTasksDatabaseID, testJobsDatabaseID)
	setupRunWorkspace(t, ns)

	// Present but malformed, so prerequisites pass and validation fails
	t.Setenv("MORROW_NOTION_API_KEY", "not-a-notion-token")

	err := runValidate(validateCmd, nil)
	if err == nil {
		t.Fatal("expected error for bad configuration, got nil")
	}
	if err.Error() != "validation failed" {
		t.Errorf("expected validation failure, got %q", err.Error())
	}
}
