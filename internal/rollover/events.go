package rollover

import "github.com/pablasso/morrow/internal/planner"

// PublisherEvents receives callbacks during plan publication.
// Implement this interface in the TUI or console display to receive
// updates.
type PublisherEvents interface {
	// OnPageCreated is called when the planner page has been created
	OnPageCreated(title, url string)

	// OnRecordStart is called before each carryover record is written
	OnRecordStart(recordNum, total int, task planner.Task)

	// OnRecordCreated is called when a record write succeeds
	OnRecordCreated(task planner.Task)

	// OnRecordFailed is called when a record write fails
	OnRecordFailed(task planner.Task, err error)
}
