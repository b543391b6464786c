// Package page renders a reviewed plan into tomorrow's planner page: a
// Notion block tree for publishing and a plain-text preview for the
// terminal review.
package page

import (
	"fmt"
	"strings"

	"github.com/pablasso/morrow/internal/notion"
	"github.com/pablasso/morrow/internal/planner"
	"github.com/pablasso/morrow/internal/util"
)

const titlePrefix = "AI Daily Planner with Completion Tracking"

// Hints for the template's hand-edited sections.
const (
	strategicNotesHint = "Use this space for notes, blockers, and ideas as the day unfolds."
	scheduleHint       = "Time-block the day here. Schedule items are planned fresh each day."
)

// Title returns the page title for tomorrow's plan.
func Title(tomorrow planner.Date) string {
	return titlePrefix + " - " + tomorrow.Display()
}

// Render maps a plan to the block tree of tomorrow's planner page: a
// two-column layout of category sections with the featured jobs, then
// links back to both source databases.
func Render(plan *planner.Plan, tasksDatabaseID, jobsDatabaseID string) []notion.Block {
	byCategory := make(map[planner.Category][]planner.Task)
	for _, g := range plan.Groups() {
		byCategory[g.Category] = g.Tasks
	}

	left := []notion.Block{
		taskSection("🎯", planner.CategoryPriorities, byCategory),
		taskSection("🔄", planner.CategoryDailyHabits, byCategory),
		notion.Callout("📝", "Strategic Notes\n\n"+strategicNotesHint),
		jobSection(plan),
	}

	right := []notion.Block{
		notion.Callout("⏰", "Schedule\n\n"+scheduleHint),
		notion.Heading2("Tasks"),
		taskSection("📋", planner.CategoryApplicationFocus, byCategory),
		taskSection("📚", planner.CategoryResearchLearning, byCategory),
		taskSection("🤝", planner.CategoryNetworking, byCategory),
		taskSection("🔧", planner.CategoryPipelineDevelopment, byCategory),
	}
	if other := byCategory[""]; len(other) > 0 {
		right = append(right, section("❓", "Other Tasks", taskLines(other)))
	}

	return []notion.Block{
		notion.Columns(left, right),
		notion.Divider(),
		notion.DatabaseLink(tasksDatabaseID),
		notion.DatabaseLink(jobsDatabaseID),
	}
}

func taskSection(emoji string, category planner.Category, byCategory map[planner.Category][]planner.Task) notion.Block {
	return section(emoji, string(category), taskLines(byCategory[category]))
}

// section builds one callout: title, blank line, then content lines.
func section(emoji, title string, lines []string) notion.Block {
	if len(lines) == 0 {
		lines = []string{"Nothing scheduled yet."}
	}
	return notion.Callout(emoji, title+"\n\n"+strings.Join(lines, "\n"))
}

func taskLines(tasks []planner.Task) []string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = taskLine(t)
	}
	return lines
}

func taskLine(t planner.Task) string {
	box := "☐"
	if t.Done {
		box = "☑️"
	}
	return box + " " + t.Name
}

// jobSection renders the featured jobs as one callout whose lines carry
// the cleaned title, a priority badge, a deadline phrase, and the
// application link when present.
func jobSection(plan *planner.Plan) notion.Block {
	if plan.JobCount() == 0 {
		return notion.Callout("💼", "Feature Jobs\n\nNo featured listings today.")
	}

	rt := notion.Text("Feature Jobs\n")
	for _, job := range plan.Jobs {
		rt = append(rt, notion.Text("\n"+jobLine(job, plan.Today))...)
		if job.ApplicationLink != "" {
			rt = append(rt, notion.Text(" • ")...)
			rt = append(rt, notion.LinkText("apply", job.ApplicationLink)...)
		}
	}
	return notion.CalloutRich("💼", rt)
}

func jobLine(j planner.Job, today planner.Date) string {
	line := priorityBadge(j.Priority) + " " + util.CleanJobTitle(j.Name)
	if phrase := deadlinePhrase(j, today); phrase != "" {
		line += " • " + phrase
	}
	return line
}

func priorityBadge(p planner.JobPriority) string {
	switch p {
	case planner.JobPriorityHigh:
		return "🔴"
	case planner.JobPriorityMid:
		return "🟡"
	case planner.JobPriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// deadlinePhrase describes how urgent a deadline is relative to today.
func deadlinePhrase(j planner.Job, today planner.Date) string {
	if !j.HasDeadline() {
		return ""
	}
	days := today.DaysUntil(j.Deadline)
	switch {
	case days < 0:
		return "⚠️ overdue"
	case days == 0:
		return "🔥 due today"
	case days == 1:
		return "🔥 due tomorrow"
	case days <= 3:
		return fmt.Sprintf("🟡 due in %d days", days)
	case days <= 7:
		return fmt.Sprintf("🟢 due in %d days", days)
	default:
		return "due " + j.Deadline.Display()
	}
}
