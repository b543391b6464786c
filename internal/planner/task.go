// Package planner holds the decision core: which tasks carry over to
// tomorrow, which jobs to feature, and the reviewable plan built from both.
// Everything in this package is pure in-memory logic; fetching and
// publishing live elsewhere.
package planner

// Category groups tasks into the planner's sections.
type Category string

const (
	CategoryPriorities          Category = "Priorities"
	CategoryDailyHabits         Category = "Daily Habits"
	CategoryApplicationFocus    Category = "Application Focus"
	CategoryResearchLearning    Category = "Research & Learning"
	CategoryNetworking          Category = "Networking"
	CategoryPipelineDevelopment Category = "Pipeline Development"
	CategorySchedule            Category = "Schedule"
)

// Categories returns the known categories in display order. Tasks with a
// category outside this list render in a trailing "other" section.
func Categories() []Category {
	return []Category{
		CategoryPriorities,
		CategoryDailyHabits,
		CategoryApplicationFocus,
		CategoryResearchLearning,
		CategoryNetworking,
		CategoryPipelineDevelopment,
		CategorySchedule,
	}
}

// Known reports whether c is one of the planner's categories.
func (c Category) Known() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Priority is a task's priority level.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities returns the task priority levels in descending order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Task is one actionable item from the task database.
type Task struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Done         bool     `json:"done"`
	ScheduledFor Date     `json:"scheduledFor"`
	Priority     Priority `json:"priority,omitempty"`
	Category     Category `json:"category,omitempty"`
}
