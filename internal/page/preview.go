package page

import (
	"fmt"
	"strings"

	"github.com/pablasso/morrow/internal/planner"
)

// Preview renders the plan as plain text for the terminal review. It
// mirrors the page content: tasks grouped by category with counts, then
// the featured jobs in rank order.
func Preview(plan *planner.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", Title(plan.Tomorrow))

	fmt.Fprintf(&b, "\nCarryover tasks (%d)\n", plan.TaskCount())
	if plan.TaskCount() == 0 {
		b.WriteString("  none\n")
	}
	for _, g := range plan.Groups() {
		title := string(g.Category)
		if title == "" {
			title = "Other Tasks"
		}
		fmt.Fprintf(&b, "\n  %s (%d)\n", title, len(g.Tasks))
		for _, t := range g.Tasks {
			fmt.Fprintf(&b, "    %s\n", taskLine(t))
		}
	}

	fmt.Fprintf(&b, "\nFeature jobs (%d)\n", plan.JobCount())
	if plan.JobCount() == 0 {
		b.WriteString("  none\n")
	}
	for i, j := range plan.Jobs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, jobLine(j, plan.Today))
		if j.ApplicationLink != "" {
			fmt.Fprintf(&b, "     %s\n", j.ApplicationLink)
		}
	}

	if plan.SkippedTasks > 0 || plan.SkippedJobs > 0 {
		fmt.Fprintf(&b, "\nSkipped malformed records: %d task(s), %d job(s)\n", plan.SkippedTasks, plan.SkippedJobs)
	}

	return b.String()
}
