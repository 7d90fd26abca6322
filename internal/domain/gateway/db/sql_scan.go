package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-taskflow/internal/domain/entity"
)

// timeLayouts are the text forms timestamps come back in when the driver does not parse them
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// nullTime scans nullable timestamps from postgres (time.Time) and sqlite (time.Time or text).
// Scanned values are normalized to UTC.
type nullTime struct {
	Time  time.Time
	Valid bool
}

func (n *nullTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		n.Time, n.Valid = time.Time{}, false
		return nil
	case time.Time:
		n.Time, n.Valid = v.UTC(), true
		return nil
	case string:
		return n.parse(v)
	case []byte:
		return n.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into time", src)
	}
}

func (n *nullTime) parse(value string) error {
	if idx := strings.Index(value, " m="); idx > 0 {
		value = value[:idx]
	}
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			n.Time, n.Valid = t.UTC(), true
			return nil
		}
	}
	return fmt.Errorf("cannot parse time %q", value)
}

func (n nullTime) Ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}

func decodePattern(value sql.NullString) (*entity.RecurrencePattern, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	var pattern entity.RecurrencePattern
	if err := json.Unmarshal([]byte(value.String), &pattern); err != nil {
		return nil, fmt.Errorf("decode recurrence pattern: %w", err)
	}
	return &pattern, nil
}

// utc normalizes an optional instant before it is written
func utc(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.UTC()
}

// inClause renders "$from, $from+1, ..." for len(ids) placeholders and the matching args
func inClause(from int, ids []int64) (string, []any) {
	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		placeholders = append(placeholders, "$"+strconv.Itoa(from+i))
		args = append(args, id)
	}
	return strings.Join(placeholders, ", "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}
