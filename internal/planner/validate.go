package planner

import "strings"

// FilterTasks drops tasks missing a name and reports how many were
// skipped. Malformed records are a data-quality signal, not a fatal fault:
// the run proceeds with whatever is valid.
func FilterTasks(tasks []Task) ([]Task, int) {
	valid := make([]Task, 0, len(tasks))
	skipped := 0
	for _, t := range tasks {
		if strings.TrimSpace(t.Name) == "" {
			skipped++
			continue
		}
		valid = append(valid, t)
	}
	return valid, skipped
}

// FilterJobs drops jobs missing a name and reports how many were skipped.
func FilterJobs(jobs []Job) ([]Job, int) {
	valid := make([]Job, 0, len(jobs))
	skipped := 0
	for _, j := range jobs {
		if strings.TrimSpace(j.Name) == "" {
			skipped++
			continue
		}
		valid = append(valid, j)
	}
	return valid, skipped
}
