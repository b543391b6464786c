// Package msgs defines shared message types for TUI view transitions.
package msgs

import (
	"github.com/pablasso/morrow/internal/notion"
	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/rollover"
)

// View transition messages

// GoToHomeMsg signals transition to the home view.
type GoToHomeMsg struct{}

// GoToRunListMsg signals transition to the past runs view.
type GoToRunListMsg struct{}

// StartRolloverMsg signals that the user wants to build today's plan.
type StartRolloverMsg struct{}

// GoToReviewMsg returns to the review menu from a sub-view.
type GoToReviewMsg struct{}

// GoToPreviewMsg opens the full-page preview.
type GoToPreviewMsg struct{}

// GoToTasksMsg opens the carryover task editor.
type GoToTasksMsg struct{}

// GoToJobsMsg opens the featured job editor.
type GoToJobsMsg struct{}

// GoToAddMsg opens the add-task form.
type GoToAddMsg struct{}

// GoToRemoveMsg opens the remove-by-search flow.
type GoToRemoveMsg struct{}

// PlanReadyMsg is sent when the fetch and decision pass finish. It carries
// the client and options forward so publication can reuse them.
type PlanReadyMsg struct {
	Plan   *planner.Plan
	Client *notion.Client
	Opts   rollover.Options
}

// PlanFailedMsg is sent when the fetch or decision pass fail.
type PlanFailedMsg struct {
	Err error
}

// ReviewDoneMsg closes the review with the reviewer's decision.
type ReviewDoneMsg struct {
	Approved bool
}
