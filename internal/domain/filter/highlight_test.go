package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want [][2]int
	}{
		{name: "empty text", text: "", term: "a", want: [][2]int{}},
		{name: "no match", text: "Plan vacation", term: "zzz", want: [][2]int{}},
		{name: "case insensitive words", text: "Write the Report", term: "report write", want: [][2]int{{0, 5}, {10, 16}}},
		{name: "repeated occurrences", text: "to do or not to do", term: "do", want: [][2]int{{3, 5}, {16, 18}}},
		{name: "overlapping words merge", text: "abcdef", term: "abc bcd", want: [][2]int{{0, 4}}},
		{name: "rune offsets", text: "Café menu", term: "menu", want: [][2]int{{5, 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.term))
		})
	}
}
