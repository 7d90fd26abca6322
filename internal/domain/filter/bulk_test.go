package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-taskflow/internal/domain/model"
)

func TestValidateBulk(t *testing.T) {
	tests := []struct {
		name    string
		ids     []int64
		want    []int64
		wantErr string
	}{
		{name: "nothing selected", ids: nil, wantErr: "No tasks selected"},
		{name: "unknown id", ids: []int64{1, 99}, wantErr: "Some selected tasks not found"},
		{name: "selection order", ids: []int64{3, 1}, want: []int64{3, 1}},
		{name: "repeated id", ids: []int64{2, 2, 4}, wantErr: "Some selected tasks not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, err := ValidateBulk(tt.ids, sampleTasks())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(selected))
		})
	}
}

func TestValidateBulkMove(t *testing.T) {
	_, err := ValidateBulkMove(nil, sampleTasks(), 0)
	assert.EqualError(t, err, "No tasks selected")

	_, err = ValidateBulkMove([]int64{1}, sampleTasks(), 0)
	assert.EqualError(t, err, "No target project selected")

	selected, err := ValidateBulkMove([]int64{1}, sampleTasks(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(selected))
}
