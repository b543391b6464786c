package planner

// SelectCarryover returns the tasks eligible to carry over to tomorrow.
// The only rule here is category exclusion: Schedule tasks never carry
// over, regardless of completion state. Callers are expected to fetch only
// uncompleted tasks, but the exclusion is re-asserted here so a sloppy
// caller can't roll a schedule block forward.
//
// Input order is preserved and input tasks are never mutated. Empty input
// yields empty output.
func SelectCarryover(tasks []Task) []Task {
	carryover := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Category == CategorySchedule {
			continue
		}
		carryover = append(carryover, t)
	}
	return carryover
}

// CarryoverRecords builds the fresh task records to create for tomorrow.
// Each record copies name, priority and category verbatim, is marked not
// done, and is dated tomorrow. The ID is cleared: these are new records,
// the source tasks are never touched.
func CarryoverRecords(tasks []Task, tomorrow Date) []Task {
	records := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, Task{
			Name:         t.Name,
			Done:         false,
			ScheduledFor: tomorrow,
			Priority:     t.Priority,
			Category:     t.Category,
		})
	}
	return records
}
