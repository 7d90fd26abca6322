package recurrence

import (
	"time"

	"github.com/robfig/cron/v3"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
)

// HardCap bounds every generation call, whatever the pattern says
const HardCap = 365

// maxScan bounds the walk left after the iterator has jumped close to the target date
const maxScan = 1 << 16

// Bounds are the caller limits applied on top of the pattern's own end date and max occurrences.
// Zero values disable a bound.
type Bounds struct {
	Until time.Time
	Max   int
}

// Validate checks a pattern before it is stored
func Validate(pattern entity.RecurrencePattern) error {
	switch pattern.Type {
	case entity.RecurrenceDaily, entity.RecurrenceWeekly, entity.RecurrenceMonthly, entity.RecurrenceYearly:
	case entity.RecurrenceCron:
		if _, err := cron.ParseStandard(pattern.Expression); err != nil {
			return model.Invalid("recurrence.error.invalid-cron", pattern.Expression)
		}
	default:
		return model.Invalid("recurrence.error.invalid-type", pattern.Type)
	}

	if pattern.Interval < 0 {
		return model.Invalid("recurrence.error.invalid-interval")
	}
	if pattern.MaxOccurrences < 0 {
		return model.Invalid("recurrence.error.invalid-max")
	}
	return nil
}

// Generate returns the occurrences of pattern starting at start, start included.
// Generation stops at the earliest of the pattern end date, bounds.Until, the pattern
// max occurrences, bounds.Max and HardCap.
func Generate(pattern entity.RecurrencePattern, start time.Time, bounds Bounds) ([]time.Time, error) {
	it, err := NewIterator(pattern, start)
	if err != nil {
		return nil, err
	}
	return collect(it, pattern, bounds, limit(pattern.MaxOccurrences, bounds.Max)), nil
}

// GenerateAfter returns the occurrences of the series anchored at anchor that fall strictly
// after after. The occurrences up to after count against the pattern max occurrences,
// whether or not they are still stored.
func GenerateAfter(pattern entity.RecurrencePattern, anchor, after time.Time, bounds Bounds) ([]time.Time, error) {
	it, err := NewIterator(pattern, anchor)
	if err != nil {
		return nil, err
	}

	if pattern.MaxOccurrences == 0 {
		if !it.skipUntil(after) {
			return []time.Time{}, nil
		}
		return collect(it, pattern, bounds, limit(bounds.Max)), nil
	}

	// the walk is bounded by MaxOccurrences, so it needs no seek
	consumed := 0
	for {
		next, ok := it.Next()
		if !ok {
			return []time.Time{}, nil
		}
		if next.After(after) {
			it.pending = &next
			break
		}
		consumed++
		if consumed >= pattern.MaxOccurrences {
			return []time.Time{}, nil
		}
	}
	return collect(it, pattern, bounds, limit(pattern.MaxOccurrences-consumed, bounds.Max)), nil
}

// Next returns the first occurrence strictly after after. The boolean is false when the
// series ends before that.
func Next(pattern entity.RecurrencePattern, anchor, after time.Time) (time.Time, bool, error) {
	it, err := NewIterator(pattern, anchor)
	if err != nil {
		return time.Time{}, false, err
	}
	if !it.skipUntil(after) {
		return time.Time{}, false, nil
	}
	next, ok := it.Next()
	if !ok || (pattern.EndDate != nil && next.After(*pattern.EndDate)) {
		return time.Time{}, false, nil
	}
	return next, true, nil
}

func collect(it *Iterator, pattern entity.RecurrencePattern, bounds Bounds, max int) []time.Time {
	until := earliest(pattern.EndDate, bounds.Until)

	dates := make([]time.Time, 0)
	for len(dates) < max {
		next, ok := it.Next()
		if !ok {
			break
		}
		if until != nil && next.After(*until) {
			break
		}
		dates = append(dates, next)
	}
	return dates
}

func limit(values ...int) int {
	result := HardCap
	for _, v := range values {
		if v > 0 && v < result {
			result = v
		}
	}
	return result
}

func earliest(endDate *time.Time, until time.Time) *time.Time {
	switch {
	case endDate == nil && until.IsZero():
		return nil
	case endDate == nil:
		return &until
	case until.IsZero() || endDate.Before(until):
		return endDate
	default:
		return &until
	}
}
