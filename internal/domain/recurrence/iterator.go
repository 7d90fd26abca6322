package recurrence

import (
	"time"

	"github.com/robfig/cron/v3"

	"go-taskflow/internal/domain/entity"
)

// Iterator walks the occurrences of a pattern from its anchor. Calendar steps are computed
// from the anchor, never from the previous occurrence, so a series anchored on the 31st
// comes back to the 31st after a short month.
type Iterator struct {
	pattern  entity.RecurrencePattern
	anchor   time.Time
	schedule cron.Schedule
	index    int
	pending  *time.Time
	prev     time.Time
}

func NewIterator(pattern entity.RecurrencePattern, anchor time.Time) (*Iterator, error) {
	if err := Validate(pattern); err != nil {
		return nil, err
	}

	it := &Iterator{pattern: pattern, anchor: anchor}
	if pattern.Type == entity.RecurrenceCron {
		schedule, err := cron.ParseStandard(pattern.Expression)
		if err != nil {
			return nil, err
		}
		it.schedule = schedule
	}
	return it, nil
}

// Next returns the next occurrence. It returns false once a cron schedule has no further match.
func (it *Iterator) Next() (time.Time, bool) {
	if it.pending != nil {
		next := *it.pending
		it.pending = nil
		return next, true
	}

	var next time.Time
	switch {
	case it.index == 0:
		next = it.anchor
	case it.schedule != nil:
		next = it.schedule.Next(it.prev)
		if next.IsZero() {
			return time.Time{}, false
		}
	default:
		next = it.at(it.index)
	}

	it.index++
	it.prev = next
	return next, true
}

// skipUntil positions a fresh iterator so that the next call to Next returns the first
// occurrence strictly after after. Cron schedules seek directly, calendar patterns jump
// to an index just before after and walk the last few steps.
func (it *Iterator) skipUntil(after time.Time) bool {
	if it.anchor.Before(after) {
		if it.schedule != nil {
			next := it.schedule.Next(after)
			if next.IsZero() {
				return false
			}
			it.index, it.prev, it.pending = 1, next, &next
			return true
		}
		it.index = it.indexBefore(after)
	}

	for range maxScan {
		next, ok := it.Next()
		if !ok {
			return false
		}
		if next.After(after) {
			it.pending = &next
			return true
		}
	}
	return false
}

// indexBefore returns an index whose occurrence is not after after. It undershoots by one
// step so daylight saving shifts and month clamping never push it past after.
func (it *Iterator) indexBefore(after time.Time) int {
	step := it.pattern.Step()
	var k int
	switch it.pattern.Type {
	case entity.RecurrenceDaily:
		k = int(after.Sub(it.anchor).Hours()/24) / step
	case entity.RecurrenceWeekly:
		k = int(after.Sub(it.anchor).Hours()/(24*7)) / step
	case entity.RecurrenceMonthly:
		k = monthsBetween(it.anchor, after) / step
	default:
		k = monthsBetween(it.anchor, after) / (12 * step)
	}
	return max(k-1, 0)
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

func (it *Iterator) at(k int) time.Time {
	step := k * it.pattern.Step()
	switch it.pattern.Type {
	case entity.RecurrenceDaily:
		return it.anchor.AddDate(0, 0, step)
	case entity.RecurrenceWeekly:
		return it.anchor.AddDate(0, 0, 7*step)
	case entity.RecurrenceMonthly:
		return AddMonthsClamped(it.anchor, step)
	default:
		return AddMonthsClamped(it.anchor, 12*step)
	}
}

// AddMonthsClamped adds months to t, clamping the day to the last day of the target month
// instead of overflowing into the next one.
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()

	return time.Date(first.Year(), first.Month(), min(day, lastDay), hour, minute, sec, t.Nanosecond(), t.Location())
}
