package views

import (
	"regexp"

	"github.com/pablasso/morrow/internal/planner"
)

// testPlan builds a small reviewable plan shared across the view tests.
func testPlan() *planner.Plan {
	today := planner.NewDate(2025, 9, 5)
	tomorrow := today.AddDays(1)

	tasks := []planner.Task{
		{Name: "Resume edit", ScheduledFor: tomorrow, Priority: planner.PriorityHigh, Category: planner.CategoryApplicationFocus},
		{Name: "Read compiler paper", ScheduledFor: tomorrow, Priority: planner.PriorityMedium, Category: planner.CategoryResearchLearning},
		{Name: "Reply to recruiter", ScheduledFor: tomorrow, Priority: planner.PriorityLow, Category: planner.CategoryNetworking},
	}
	jobs := []planner.Job{
		{Name: "Backend Engineer", Priority: planner.JobPriorityHigh, Deadline: planner.NewDate(2025, 9, 12)},
		{Name: "Platform Engineer", Priority: planner.JobPriorityMid},
	}

	return planner.AssemblePlan(tasks, jobs, today, tomorrow)
}

func stripANSI(s string) string {
	ansi := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansi.ReplaceAllString(s, "")
}
