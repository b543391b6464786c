// Package archive persists a local record of each rollover run under the
// workspace directory, so past runs can be listed and inspected without
// touching the remote workspace.
package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/util"
)

// Status represents a run's outcome.
type Status string

const (
	StatusPublished Status = "published"
	StatusPartial   Status = "partial"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

// Run records one rollover run.
type Run struct {
	RunID         string            `json:"runId"`                   // Short random identifier
	Today         planner.Date      `json:"today"`                   // Day the run was planned from
	Tomorrow      planner.Date      `json:"tomorrow"`                // Day the page was created for
	Status        Status            `json:"status"`                  // published, partial, cancelled, or failed
	PageURL       string            `json:"pageUrl,omitempty"`       // Created planner page
	TaskCount     int               `json:"taskCount"`               // Carryover records in the approved plan
	JobCount      int               `json:"jobCount"`                // Featured jobs in the approved plan
	SkippedTasks  int               `json:"skippedTasks,omitempty"`  // Malformed task records dropped at fetch
	SkippedJobs   int               `json:"skippedJobs,omitempty"`   // Malformed job records dropped at fetch
	Insights      *planner.Insights `json:"insights,omitempty"`      // Workload analysis of today's tasks
	FailedRecords []string          `json:"failedRecords,omitempty"` // Names of records that failed to write
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// NewRun starts a run record for the given planning days.
func NewRun(today, tomorrow planner.Date) (*Run, error) {
	id, err := util.GenerateRunID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate run ID: %w", err)
	}
	return &Run{
		RunID:     id,
		Today:     today,
		Tomorrow:  tomorrow,
		CreatedAt: time.Now(),
	}, nil
}

// Storage manages run persistence.
type Storage struct {
	dir string
}

// NewStorage creates a storage instance for the given runs directory.
func NewStorage(runsDir string) *Storage {
	return &Storage{dir: runsDir}
}

// Save persists a run to disk with atomic writes.
func (s *Storage) Save(run *Run) error {
	run.UpdatedAt = time.Now()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create runs directory: %w", err)
	}

	filename := s.runFilename(run)
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	// Atomic write: write to temp file then rename
	tmpFile := filename + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write run temp file: %w", err)
	}
	if err := os.Rename(tmpFile, filename); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename run temp file: %w", err)
	}
	return nil
}

// List returns all recorded runs, newest first.
func (s *Storage) List() ([]*Run, error) {
	pattern := filepath.Join(s.dir, "*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob runs: %w", err)
	}

	var runs []*Run
	for _, match := range matches {
		data, err := os.ReadFile(match)
		if err != nil {
			continue
		}

		var run Run
		if err := json.Unmarshal(data, &run); err != nil {
			continue
		}
		runs = append(runs, &run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}

// LoadLatest returns the most recent run, or os.ErrNotExist when none are
// recorded.
func (s *Storage) LoadLatest() (*Run, error) {
	runs, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, os.ErrNotExist
	}
	return runs[0], nil
}

// runFilename returns the path for a run file.
// Format: <dir>/<today>-<runId>.json
func (s *Storage) runFilename(run *Run) string {
	return filepath.Join(s.dir, run.Today.String()+"-"+run.RunID+".json")
}
