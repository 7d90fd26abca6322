package filter

import (
	"strings"

	"go-taskflow/internal/domain/entity"
)

const (
	DefaultFuzzyThreshold = 0.6
	MinFuzzyThreshold     = 0.3
	MaxFuzzyThreshold     = 0.9
)

// Field is a task attribute the search term is matched against
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldProject     Field = "project"
)

// AllFields is the default search scope
var AllFields = []Field{FieldTitle, FieldDescription, FieldProject}

type SearchOptions struct {
	Term      string
	Fields    []Field
	Fuzzy     bool
	Threshold float64
}

// ParseFields keeps the known field names and falls back to AllFields when none is left
func ParseFields(names []string) []Field {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			switch f := Field(strings.ToLower(strings.TrimSpace(part))); f {
			case FieldTitle, FieldDescription, FieldProject:
				fields = append(fields, f)
			}
		}
	}
	if len(fields) == 0 {
		return AllFields
	}
	return fields
}

// ClampThreshold maps a requested threshold into the supported range.
// Zero means "not set" and yields the default.
func ClampThreshold(threshold float64) float64 {
	if threshold == 0 {
		return DefaultFuzzyThreshold
	}
	return min(max(threshold, MinFuzzyThreshold), MaxFuzzyThreshold)
}

// FuzzyMatch reports whether every word of term approximately appears in text.
// A term word matches a text word when it is contained in it or when their
// similarity reaches the threshold.
func FuzzyMatch(text, term string, threshold float64) bool {
	termWords := strings.Fields(strings.ToLower(term))
	if len(termWords) == 0 {
		return true
	}
	textWords := strings.Fields(strings.ToLower(text))

	for _, termWord := range termWords {
		if !matchesAnyWord(termWord, textWords, threshold) {
			return false
		}
	}
	return true
}

func matchesAnyWord(termWord string, textWords []string, threshold float64) bool {
	for _, textWord := range textWords {
		if strings.Contains(textWord, termWord) || Similarity(termWord, textWord) >= threshold {
			return true
		}
	}
	return false
}

// ContainsFold is the exact (non fuzzy) match: a case-insensitive substring test
func ContainsFold(text, term string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(strings.TrimSpace(term)))
}

// Matches reports whether task satisfies the search options. projectNames resolves
// the project field and may be nil.
func (o SearchOptions) Matches(task entity.Task, projectNames map[int64]string) bool {
	if strings.TrimSpace(o.Term) == "" {
		return true
	}

	fields := o.Fields
	if len(fields) == 0 {
		fields = AllFields
	}
	threshold := ClampThreshold(o.Threshold)

	for _, field := range fields {
		var text string
		switch field {
		case FieldTitle:
			text = task.Title
		case FieldDescription:
			text = task.Description
		case FieldProject:
			text = projectNames[task.ProjectID]
		}
		if text == "" {
			continue
		}

		if o.Fuzzy {
			if FuzzyMatch(text, o.Term, threshold) {
				return true
			}
		} else if ContainsFold(text, o.Term) {
			return true
		}
	}
	return false
}
