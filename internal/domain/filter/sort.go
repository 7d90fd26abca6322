package filter

import (
	"slices"
	"strings"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

// SortOrder names a supported list ordering
type SortOrder string

const (
	SortNone     SortOrder = ""
	SortPriority SortOrder = "priority"
	SortDeadline SortOrder = "deadline"
	SortCreated  SortOrder = "created"
)

func ParseSortOrder(value string) (SortOrder, error) {
	switch s := SortOrder(strings.ToLower(strings.TrimSpace(value))); s {
	case SortNone, SortPriority, SortDeadline, SortCreated:
		return s, nil
	default:
		return "", model.Invalid("task.error.invalid-sort", value)
	}
}

// Sort orders tasks in place
func Sort(tasks []entity.Task, order SortOrder) {
	switch order {
	case SortPriority:
		SortByPriority(tasks)
	case SortDeadline:
		SortByDeadline(tasks)
	case SortCreated:
		SortByCreatedAt(tasks)
	}
}

// SortByPriority puts high before medium before low; ties keep their order
func SortByPriority(tasks []entity.Task) {
	slices.SortStableFunc(tasks, func(a, b entity.Task) int {
		return b.Priority.Weight() - a.Priority.Weight()
	})
}

// SortByDeadline orders by ascending deadline with tasks without one last
func SortByDeadline(tasks []entity.Task) {
	slices.SortStableFunc(tasks, func(a, b entity.Task) int {
		switch {
		case !a.HasDeadline() && !b.HasDeadline():
			return 0
		case !a.HasDeadline():
			return 1
		case !b.HasDeadline():
			return -1
		default:
			return a.Deadline.Compare(*b.Deadline)
		}
	})
}

// SortByCreatedAt puts the newest tasks first
func SortByCreatedAt(tasks []entity.Task) {
	slices.SortStableFunc(tasks, func(a, b entity.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
