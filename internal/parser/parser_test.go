package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os-scheduler-sim/internal/requests"
)

const sample = `processcount 2   # Read 2 processes
runfor 10         # Run for 10 time units
use rr
quantum 2

process name A arrival 0 burst 5
process name B arrival 1 burst 3
end
this line is ignored
`

func TestParse(t *testing.T) {
	request, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, &requests.ScheduleRequest{
		Algorithm: "rr",
		RunFor:    10,
		Quantum:   2,
		Jobs: []requests.Job{
			{Name: "A", Arrival: 0, Burst: 5},
			{Name: "B", Arrival: 1, Burst: 3},
		},
	}, request)
}

func TestParseWithoutEnd(t *testing.T) {
	request, err := Parse(strings.NewReader("use fcfs\nrunfor 4\nprocess burst 2 name X arrival 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "fcfs", request.Algorithm)
	assert.Equal(t, []requests.Job{{Name: "X", Arrival: 1, Burst: 2}}, request.Jobs)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		msg   string
	}{
		{"unknown directive", "runfor 3\nfoo 1\n", 2, `unknown directive "foo"`},
		{"bad integer", "runfor ten\n", 1, `runfor: invalid integer "ten"`},
		{"missing integer", "quantum\n", 1, "quantum expects one integer"},
		{"use arity", "use\n", 1, "use expects one algorithm name"},
		{"odd process fields", "process name A arrival\n", 1, "process expects key/value pairs"},
		{"missing burst", "process name A arrival 0\n", 1, `process: missing "burst"`},
		{"bad burst", "process name A arrival 0 burst x\n", 1, `process burst: invalid integer "x"`},
		{"unknown key", "process name A arrival 0 burst 1 priority 2\n", 1, `process: unknown key "priority"`},
		{"repeated key", "process name A name B arrival 0 burst 1\n", 1, `process: repeated "name"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "got %v", err)
			assert.Equal(t, tt.line, syntaxErr.Line)
			assert.Equal(t, tt.msg, syntaxErr.Msg)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c2-rr.in")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	request, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, request.Jobs, 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.in"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.in")
	require.NoError(t, os.WriteFile(bad, []byte("runfor x\n"), 0o644))
	_, err = ParseFile(bad)
	assert.ErrorContains(t, err, "bad.in: line 1")
}
