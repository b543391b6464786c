package planner

import "fmt"

// Insights summarizes patterns across today's fetched tasks; it feeds the
// end-of-run report and the archived run record.
type Insights struct {
	Total      int              `json:"total"`
	Carryable  int              `json:"carryable"`
	Scheduled  int              `json:"scheduled"`
	ByCategory map[Category]int `json:"byCategory,omitempty"`
	ByPriority map[Priority]int `json:"byPriority,omitempty"`
	Notes      []string         `json:"notes,omitempty"`
}

// AnalyzeTasks computes distribution counts and advisory notes over the
// given task set (normally today's unfinished tasks).
func AnalyzeTasks(tasks []Task) Insights {
	in := Insights{
		Total:      len(tasks),
		ByCategory: make(map[Category]int),
		ByPriority: make(map[Priority]int),
	}
	if len(tasks) == 0 {
		in.Notes = append(in.Notes, "No unfinished tasks today.")
		return in
	}

	for _, t := range tasks {
		in.ByCategory[t.Category]++
		in.ByPriority[t.Priority]++
		if t.Category == CategorySchedule {
			in.Scheduled++
		} else {
			in.Carryable++
		}
	}

	// Largest category, scanned in display order so ties resolve
	// deterministically.
	var topCategory Category
	topCount := 0
	for _, c := range Categories() {
		if n := in.ByCategory[c]; n > topCount {
			topCategory = c
			topCount = n
		}
	}
	if topCount > 1 {
		in.Notes = append(in.Notes, fmt.Sprintf("Most unfinished tasks are in %s (%d).", topCategory, topCount))
	}

	if high := in.ByPriority[PriorityHigh]; high > 0 {
		in.Notes = append(in.Notes, fmt.Sprintf("%d high priority task(s) still open.", high))
	}
	if in.Scheduled > 0 {
		in.Notes = append(in.Notes, fmt.Sprintf("%d schedule item(s) will not carry over.", in.Scheduled))
	}
	return in
}
