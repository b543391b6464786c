package planner

import (
	"fmt"
	"strings"
)

// Plan is the draft for tomorrow: the carryover task records plus the
// featured job shortlist, pending human review. The review shell edits the
// plan directly; none of the edit operations re-run the carryover filter
// or the ranking engine.
type Plan struct {
	Today    Date   `json:"today"`
	Tomorrow Date   `json:"tomorrow"`
	Tasks    []Task `json:"tasks"`
	Jobs     []Job  `json:"jobs"`

	// Counts of malformed records dropped during fetch, kept for the
	// final report.
	SkippedTasks int `json:"skippedTasks,omitempty"`
	SkippedJobs  int `json:"skippedJobs,omitempty"`

	// Insights summarizes today's fetched tasks for the final report.
	Insights Insights `json:"insights"`
}

// TaskGroup is one category section of the plan.
type TaskGroup struct {
	Category Category
	Tasks    []Task
}

// AssemblePlan combines the carryover records and the ranked job shortlist
// into a reviewable plan. Inputs are copied so later edits never alias the
// caller's slices.
func AssemblePlan(carryover []Task, ranked []Job, today, tomorrow Date) *Plan {
	p := &Plan{
		Today:    today,
		Tomorrow: tomorrow,
		Tasks:    make([]Task, len(carryover)),
		Jobs:     make([]Job, len(ranked)),
	}
	copy(p.Tasks, carryover)
	copy(p.Jobs, ranked)
	return p
}

// Groups returns the plan's tasks grouped by category: known categories in
// display order, empty categories omitted, uncategorized tasks in a
// trailing group with an empty Category. Within a group, task order
// follows the plan's task order.
func (p *Plan) Groups() []TaskGroup {
	byCategory := make(map[Category][]Task)
	for _, t := range p.Tasks {
		key := t.Category
		if !key.Known() {
			key = ""
		}
		byCategory[key] = append(byCategory[key], t)
	}

	var groups []TaskGroup
	for _, c := range Categories() {
		if tasks, ok := byCategory[c]; ok {
			groups = append(groups, TaskGroup{Category: c, Tasks: tasks})
		}
	}
	if tasks, ok := byCategory[""]; ok {
		groups = append(groups, TaskGroup{Category: "", Tasks: tasks})
	}
	return groups
}

// TaskCount returns the number of carryover tasks in the plan.
func (p *Plan) TaskCount() int {
	return len(p.Tasks)
}

// JobCount returns the number of featured jobs in the plan.
func (p *Plan) JobCount() int {
	return len(p.Jobs)
}

// AddTask appends a task to the plan. The name is required; a zero
// scheduled date defaults to the plan's tomorrow, and the task is always
// added as not done.
func (p *Plan) AddTask(t Task) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name is required")
	}
	t.ID = ""
	t.Done = false
	if t.ScheduledFor.IsZero() {
		t.ScheduledFor = p.Tomorrow
	}
	p.Tasks = append(p.Tasks, t)
	return nil
}

// RemoveTask removes and returns the task at index i.
func (p *Plan) RemoveTask(i int) (Task, error) {
	if i < 0 || i >= len(p.Tasks) {
		return Task{}, fmt.Errorf("task index %d out of range", i)
	}
	removed := p.Tasks[i]
	p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
	return removed, nil
}

// SetTaskPriority changes the priority of the task at index i.
func (p *Plan) SetTaskPriority(i int, priority Priority) error {
	if i < 0 || i >= len(p.Tasks) {
		return fmt.Errorf("task index %d out of range", i)
	}
	p.Tasks[i].Priority = priority
	return nil
}

// SetTaskCategory changes the category of the task at index i.
func (p *Plan) SetTaskCategory(i int, category Category) error {
	if i < 0 || i >= len(p.Tasks) {
		return fmt.Errorf("task index %d out of range", i)
	}
	p.Tasks[i].Category = category
	return nil
}

// RemoveJob removes and returns the job at index i.
func (p *Plan) RemoveJob(i int) (Job, error) {
	if i < 0 || i >= len(p.Jobs) {
		return Job{}, fmt.Errorf("job index %d out of range", i)
	}
	removed := p.Jobs[i]
	p.Jobs = append(p.Jobs[:i], p.Jobs[i+1:]...)
	return removed, nil
}

// MoveJob moves the job at index from to index to, shifting the jobs in
// between.
func (p *Plan) MoveJob(from, to int) error {
	if from < 0 || from >= len(p.Jobs) {
		return fmt.Errorf("job index %d out of range", from)
	}
	if to < 0 || to >= len(p.Jobs) {
		return fmt.Errorf("job index %d out of range", to)
	}
	if from == to {
		return nil
	}
	job := p.Jobs[from]
	rest := append(p.Jobs[:from], p.Jobs[from+1:]...)
	p.Jobs = append(rest[:to], append([]Job{job}, rest[to:]...)...)
	return nil
}

// FindTasks returns the indexes of tasks whose names contain the search
// term, case-insensitively. Used by the review shell's remove-by-search
// flow.
func (p *Plan) FindTasks(term string) []int {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var matches []int
	for i, t := range p.Tasks {
		if strings.Contains(strings.ToLower(t.Name), term) {
			matches = append(matches, i)
		}
	}
	return matches
}
