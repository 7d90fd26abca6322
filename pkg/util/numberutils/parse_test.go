package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64WithError(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain", "42", 42, false},
		{"spaces", " 7 ", 7, false},
		{"negative", "-3", -3, false},
		{"letters", "abc", 0, true},
		{"empty", "", 0, true},
		{"overflow", "9223372036854775808", 9223372036854775807, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt64WithError(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToIntWithError(t *testing.T) {
	got, err := ToIntWithError("2024")
	assert.NoError(t, err)
	assert.Equal(t, 2024, got)

	_, err = ToIntWithError("12.5")
	assert.Error(t, err)
}

func TestIsInt64Positive(t *testing.T) {
	assert.True(t, IsInt64Positive(1))
	assert.False(t, IsInt64Positive(0))
	assert.False(t, IsInt64Positive(-1))
}
