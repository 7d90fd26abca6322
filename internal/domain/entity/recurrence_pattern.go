package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// RecurrenceType is the unit a recurring series steps by
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceYearly  RecurrenceType = "yearly"
	RecurrenceCron    RecurrenceType = "cron"
)

// RecurrencePattern is the rule that generates the instances of a recurring series.
// It is persisted as JSON text.
type RecurrencePattern struct {
	Type           RecurrenceType `json:"type"`
	Interval       int            `json:"interval"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	MaxOccurrences int            `json:"maxOccurrences,omitempty"`
	Expression     string         `json:"expression,omitempty"`
	// Start is the first occurrence of a stored series, calendar steps are counted from it
	Start *time.Time `json:"start,omitempty"`
}

// Step returns the interval, treating zero as one
func (p RecurrencePattern) Step() int {
	if p.Interval <= 0 {
		return 1
	}
	return p.Interval
}

// Value implements driver.Valuer
func (p *RecurrencePattern) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (p *RecurrencePattern) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), p)
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, p)
	default:
		return fmt.Errorf("cannot scan %T into RecurrencePattern", src)
	}
}
