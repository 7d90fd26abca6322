package msg

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(`
test:
  greeting: "Hello {0}, you have {1} tasks"
  failure: "Request failed: {0}"
  payload: "Payload {0}"
  latency: "took {0}"
`)))

	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{name: "primitive args", key: "test.greeting", args: []interface{}{"Ana", 3}, want: "Hello Ana, you have 3 tasks"},
		{name: "error arg", key: "test.failure", args: []interface{}{errors.New("boom")}, want: "Request failed: boom"},
		{name: "struct arg", key: "test.payload", args: []interface{}{struct {
			ID int `json:"id"`
		}{ID: 7}}, want: `Payload {"id":7}`},
		{name: "stringer arg", key: "test.latency", args: []interface{}{1500 * time.Millisecond}, want: "took 1.5s"},
		{name: "missing placeholder arg", key: "test.greeting", args: []interface{}{"Ana"}, want: "Hello Ana, you have {1} tasks"},
		{name: "unknown key", key: "test.unknown", want: "Message not found: test.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetMessage(tt.key, tt.args...))
		})
	}
}

func TestLoadDefaults_DoesNotOverride(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(`
defaults-test:
  title: "custom"
`)))
	require.NoError(t, LoadDefaults(strings.NewReader(`
defaults-test:
  title: "default"
  body: "default body"
`)))

	assert.Equal(t, "custom", GetMessage("defaults-test.title"))
	assert.Equal(t, "default body", GetMessage("defaults-test.body"))
}
