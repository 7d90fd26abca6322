// Package calendar lays tasks out on a month grid.
package calendar

import (
	"time"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/filter"
	"go-taskflow/internal/domain/model"
)

const (
	Weeks       = 6
	DaysPerWeek = 7
	dateLayout  = "2006-01-02"
)

// BuildMonth returns a 6x7 grid starting on the Sunday on or before the first of the month.
// Days outside the month are kept so every week is complete.
func BuildMonth(tasks []entity.Task, year int, month time.Month, now time.Time, loc *time.Location) model.CalendarMonth {
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	today := filter.StartOfDay(now, loc)

	byDay := make(map[string][]entity.Task)
	for _, task := range tasks {
		if !task.HasDeadline() {
			continue
		}
		key := task.Deadline.In(loc).Format(dateLayout)
		byDay[key] = append(byDay[key], task)
	}

	weeks := make([][]model.CalendarDay, 0, Weeks)
	for w := 0; w < Weeks; w++ {
		week := make([]model.CalendarDay, 0, DaysPerWeek)
		for d := 0; d < DaysPerWeek; d++ {
			day := gridStart.AddDate(0, 0, w*DaysPerWeek+d)
			week = append(week, buildDay(day, month, today, byDay[day.Format(dateLayout)]))
		}
		weeks = append(weeks, week)
	}

	return model.CalendarMonth{
		Year:    year,
		Month:   int(month),
		Weeks:   weeks,
		Pending: PendingByPriority(filter.TasksForMonth(tasks, year, month, loc)),
	}
}

func buildDay(day time.Time, month time.Month, today time.Time, tasks []entity.Task) model.CalendarDay {
	if tasks == nil {
		tasks = []entity.Task{}
	}
	pending := hasPending(tasks)

	result := model.CalendarDay{
		Date:           day.Format(dateLayout),
		Day:            day.Day(),
		Tasks:          tasks,
		IsToday:        day.Equal(today),
		IsOverdue:      day.Before(today),
		IsCurrentMonth: day.Month() == month,
	}
	result.HasOverdue = result.IsOverdue && pending
	result.HasDueToday = result.IsToday && pending
	return result
}

func hasPending(tasks []entity.Task) bool {
	for _, task := range tasks {
		if !task.Completed {
			return true
		}
	}
	return false
}

// PendingByPriority counts the tasks not yet completed per priority
func PendingByPriority(tasks []entity.Task) model.PrioritySummary {
	var summary model.PrioritySummary
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		switch task.Priority {
		case entity.PriorityHigh:
			summary.High++
		case entity.PriorityMedium:
			summary.Medium++
		case entity.PriorityLow:
			summary.Low++
		}
	}
	return summary
}
