package planner

// JobPriority is a job listing's priority level as kept in the jobs
// database.
type JobPriority string

const (
	JobPriorityHigh JobPriority = "High Prior"
	JobPriorityMid  JobPriority = "Mid Prior"
	JobPriorityLow  JobPriority = "Low Prior"
)

// JobPriorities returns the job priority levels in descending order.
func JobPriorities() []JobPriority {
	return []JobPriority{JobPriorityHigh, JobPriorityMid, JobPriorityLow}
}

// Job is one application opportunity from the jobs database. Jobs are
// read-only inputs: the ranking engine selects and orders them but never
// mutates or creates job records.
type Job struct {
	ID              string      `json:"id,omitempty"`
	Name            string      `json:"name"`
	Deadline        Date        `json:"deadline"`
	Priority        JobPriority `json:"priority,omitempty"`
	ApplicationLink string      `json:"applicationLink,omitempty"`
}

// HasDeadline reports whether the job carries a deadline.
func (j Job) HasDeadline() bool {
	return !j.Deadline.IsZero()
}
