package filter

import (
	"strings"
	"time"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

// Status selects tasks by completion and deadline
type Status string

const (
	StatusAll       Status = "all"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusToday     Status = "today"
)

// ParseStatus accepts the known status names case-insensitively, empty meaning all
func ParseStatus(value string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(value))); s {
	case "":
		return StatusAll, nil
	case StatusAll, StatusPending, StatusCompleted, StatusOverdue, StatusToday:
		return s, nil
	default:
		return "", model.Invalid("task.error.invalid-status", value)
	}
}

// Clock is the reference instant and location used to decide what "today" is
type Clock struct {
	Now      time.Time
	Location *time.Location
}

func (c Clock) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Today returns midnight of the current day in the clock location
func (c Clock) Today() time.Time {
	return StartOfDay(c.Now, c.location())
}

// StartOfDay truncates t to midnight in loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// SameDay compares calendar days in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Equal(StartOfDay(b, loc))
}

// IsOverdue: not completed, with a deadline in the past that is not today
func (c Clock) IsOverdue(task entity.Task) bool {
	if task.Completed || !task.HasDeadline() {
		return false
	}
	return task.Deadline.Before(c.Now) && !SameDay(*task.Deadline, c.Now, c.location())
}

// IsDueToday reports a deadline falling on the current day, completed or not
func (c Clock) IsDueToday(task entity.Task) bool {
	return task.HasDeadline() && SameDay(*task.Deadline, c.Now, c.location())
}

func (c Clock) IsDueTomorrow(task entity.Task) bool {
	return task.HasDeadline() && SameDay(*task.Deadline, c.Today().AddDate(0, 0, 1), c.location())
}

func (c Clock) CompletedToday(task entity.Task) bool {
	return task.Completed && task.CompletedAt != nil && SameDay(*task.CompletedAt, c.Now, c.location())
}

// MatchesStatus applies a status filter to one task
func (c Clock) MatchesStatus(task entity.Task, status Status) bool {
	switch status {
	case StatusPending:
		return !task.Completed
	case StatusCompleted:
		return task.Completed
	case StatusOverdue:
		return c.IsOverdue(task)
	case StatusToday:
		return c.IsDueToday(task)
	default:
		return true
	}
}

// Criteria combines every list filter; zero values disable a filter
type Criteria struct {
	Status    Status
	Priority  entity.Priority
	ProjectID int64
	Search    SearchOptions
}

// Apply returns the tasks matching all criteria, keeping their order
func Apply(tasks []entity.Task, criteria Criteria, clock Clock, projectNames map[int64]string) []entity.Task {
	result := make([]entity.Task, 0, len(tasks))
	for _, task := range tasks {
		if !clock.MatchesStatus(task, criteria.Status) {
			continue
		}
		if criteria.Priority != "" && task.Priority != criteria.Priority {
			continue
		}
		if criteria.ProjectID != 0 && task.ProjectID != criteria.ProjectID {
			continue
		}
		if !criteria.Search.Matches(task, projectNames) {
			continue
		}
		result = append(result, task)
	}
	return result
}

// Overdue returns the overdue tasks
func Overdue(tasks []entity.Task, clock Clock) []entity.Task {
	return Apply(tasks, Criteria{Status: StatusOverdue}, clock, nil)
}

// DueToday returns the tasks whose deadline is today
func DueToday(tasks []entity.Task, clock Clock) []entity.Task {
	return Apply(tasks, Criteria{Status: StatusToday}, clock, nil)
}

// Upcoming returns pending tasks due after today and within the next days, deadline sorted
func Upcoming(tasks []entity.Task, clock Clock, days int) []entity.Task {
	from := clock.Today().AddDate(0, 0, 1)
	until := clock.Today().AddDate(0, 0, days+1)

	result := make([]entity.Task, 0)
	for _, task := range tasks {
		if task.Completed || !task.HasDeadline() {
			continue
		}
		if !task.Deadline.Before(from) && task.Deadline.Before(until) {
			result = append(result, task)
		}
	}
	SortByDeadline(result)
	return result
}
