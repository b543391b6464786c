package notion

import (
	"github.com/pablasso/morrow/internal/planner"
)

// Property names the two databases are expected to carry.
const (
	taskTitleProp    = "Task"
	taskStatusProp   = "Status"
	taskDateProp     = "Next Reminder"
	taskPriorityProp = "Priority Level"
	taskCategoryProp = "Category"

	jobTitleProp    = "Name"
	jobDeadlineProp = "Deadline"
	jobPriorityProp = "Priority"
	jobLinkProp     = "Application Link"
)

func (p Page) title(name string) string {
	return PlainString(p.Properties[name].Title)
}

func (p Page) checkbox(name string) bool {
	v := p.Properties[name].Checkbox
	return v != nil && *v
}

func (p Page) selectName(name string) string {
	v := p.Properties[name].Select
	if v == nil {
		return ""
	}
	return v.Name
}

func (p Page) date(name string) planner.Date {
	v := p.Properties[name].Date
	if v == nil {
		return planner.Date{}
	}
	// A record with an unparseable date keeps a zero date rather than
	// failing the whole fetch.
	d, err := planner.ParseDate(v.Start)
	if err != nil {
		return planner.Date{}
	}
	return d
}

func (p Page) urlValue(name string) string {
	return p.Properties[name].URL
}

func taskFromPage(p Page) planner.Task {
	return planner.Task{
		ID:           p.ID,
		Name:         p.title(taskTitleProp),
		Done:         p.checkbox(taskStatusProp),
		ScheduledFor: p.date(taskDateProp),
		Priority:     planner.Priority(p.selectName(taskPriorityProp)),
		Category:     planner.Category(p.selectName(taskCategoryProp)),
	}
}

func jobFromPage(p Page) planner.Job {
	return planner.Job{
		ID:              p.ID,
		Name:            p.title(jobTitleProp),
		Deadline:        p.date(jobDeadlineProp),
		Priority:        planner.JobPriority(p.selectName(jobPriorityProp)),
		ApplicationLink: p.urlValue(jobLinkProp),
	}
}

// TaskProperties builds the property payload for writing a task back as a
// new database row.
func TaskProperties(t planner.Task) map[string]PropertyValue {
	done := t.Done
	props := map[string]PropertyValue{
		taskTitleProp:  {Title: Text(t.Name)},
		taskStatusProp: {Checkbox: &done},
	}
	if !t.ScheduledFor.IsZero() {
		props[taskDateProp] = PropertyValue{Date: &DateValue{Start: t.ScheduledFor.String()}}
	}
	if t.Priority != "" {
		props[taskPriorityProp] = PropertyValue{Select: &SelectOption{Name: string(t.Priority)}}
	}
	if t.Category != "" {
		props[taskCategoryProp] = PropertyValue{Select: &SelectOption{Name: string(t.Category)}}
	}
	return props
}
