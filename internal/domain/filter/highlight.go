package filter

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Highlight returns the merged [start, end) rune ranges of text matching any word of term,
// compared case-insensitively.
func Highlight(text, term string) [][2]int {
	ranges := make([][2]int, 0)
	if text == "" {
		return ranges
	}

	lowerRunes := []rune(strings.ToLower(text))
	if len(lowerRunes) != utf8.RuneCountInString(text) {
		// lower casing changed the rune count, offsets would not map back
		return ranges
	}
	lower := string(lowerRunes)

	for _, word := range strings.Fields(strings.ToLower(term)) {
		wordLen := utf8.RuneCountInString(word)
		offset := 0
		for {
			idx := strings.Index(lower[offset:], word)
			if idx < 0 {
				break
			}
			byteStart := offset + idx
			start := utf8.RuneCountInString(lower[:byteStart])
			ranges = append(ranges, [2]int{start, start + wordLen})
			offset = byteStart + len(word)
		}
	}

	return mergeRanges(ranges)
}

func mergeRanges(ranges [][2]int) [][2]int {
	if len(ranges) < 2 {
		return ranges
	}
	slices.SortFunc(ranges, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})

	merged := [][2]int{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r[0] <= last[1] {
			last[1] = max(last[1], r[1])
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
