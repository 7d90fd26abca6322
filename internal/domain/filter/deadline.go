package filter

import (
	"time"

	"go-taskflow/internal/domain/entity"
)

// DeadlineStatus classifies a task deadline relative to today
type DeadlineStatus string

const (
	DeadlineNone     DeadlineStatus = "none"
	DeadlineOverdue  DeadlineStatus = "overdue"
	DeadlineToday    DeadlineStatus = "today"
	DeadlineTomorrow DeadlineStatus = "tomorrow"
	DeadlineUpcoming DeadlineStatus = "upcoming"
)

// ClassifyDeadline ignores completion: a completed task with a past deadline is still "overdue" here
func (c Clock) ClassifyDeadline(deadline *time.Time) DeadlineStatus {
	if deadline == nil || deadline.IsZero() {
		return DeadlineNone
	}
	loc := c.location()
	switch {
	case SameDay(*deadline, c.Now, loc):
		return DeadlineToday
	case SameDay(*deadline, c.Today().AddDate(0, 0, 1), loc):
		return DeadlineTomorrow
	case deadline.Before(c.Now):
		return DeadlineOverdue
	default:
		return DeadlineUpcoming
	}
}

// RelativeLabel renders "Today", "Tomorrow", "Jan 2 (Past)" or "Jan 2"
func (c Clock) RelativeLabel(deadline *time.Time) string {
	if deadline == nil || deadline.IsZero() {
		return ""
	}
	short := deadline.In(c.location()).Format("Jan 2")
	switch c.ClassifyDeadline(deadline) {
	case DeadlineToday:
		return "Today"
	case DeadlineTomorrow:
		return "Tomorrow"
	case DeadlineOverdue:
		return short + " (Past)"
	default:
		return short
	}
}

// TasksByDate returns the tasks due on the calendar day of date
func TasksByDate(tasks []entity.Task, date time.Time, loc *time.Location) []entity.Task {
	result := make([]entity.Task, 0)
	for _, task := range tasks {
		if task.HasDeadline() && SameDay(*task.Deadline, date, loc) {
			result = append(result, task)
		}
	}
	return result
}

// TasksForMonth returns the tasks due in the given month, month being 1-12
func TasksForMonth(tasks []entity.Task, year int, month time.Month, loc *time.Location) []entity.Task {
	result := make([]entity.Task, 0)
	for _, task := range tasks {
		if !task.HasDeadline() {
			continue
		}
		local := task.Deadline.In(loc)
		if local.Year() == year && local.Month() == month {
			result = append(result, task)
		}
	}
	return result
}
