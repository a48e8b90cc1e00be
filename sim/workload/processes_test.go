package workload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cpusched/sim"
)

func TestParseProcesses_WellFormed_PreservesInputOrder(t *testing.T) {
	// GIVEN three records with arrivals out of order and extra whitespace
	input := "0 0 9\n1\t1   8\n\n2 2 2\n"

	// WHEN parsed
	procs, err := ParseProcesses(strings.NewReader(input))

	// THEN records come back in file order and the blank line is skipped
	require.NoError(t, err)
	assert.Equal(t, []sim.Process{
		{ID: 0, ArrivalTime: 0, BurstTime: 9},
		{ID: 1, ArrivalTime: 1, BurstTime: 8},
		{ID: 2, ArrivalTime: 2, BurstTime: 2},
	}, procs)
}

func TestParseProcesses_RepeatedIDs_Accepted(t *testing.T) {
	// GIVEN the same id arriving twice (two bursts of one job)
	procs, err := ParseProcesses(strings.NewReader("0 0 9\n0 30 6\n"))

	// THEN both records are returned
	require.NoError(t, err)
	require.Len(t, procs, 2)
	assert.Equal(t, int64(30), procs[1].ArrivalTime)
}

func TestParseProcesses_MalformedLines_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"too few fields", "0 0 9\n1 1\n", "line 2"},
		{"too many fields", "0 0 9 4\n", "line 1"},
		{"non-integer", "0 0 nine\n", "line 1"},
		{"negative burst", "0 0 9\n1 2 -3\n", "line 2"},
		{"float arrival", "0 0.5 9\n", "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			procs, err := ParseProcesses(strings.NewReader(tt.input))
			assert.Nil(t, procs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord), "expected ErrMalformedRecord, got %v", err)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestParseProcesses_EmptyInput_ReturnsNoRecords(t *testing.T) {
	procs, err := ParseProcesses(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, procs)
}

func TestLoadProcesses_ReadsFile(t *testing.T) {
	// GIVEN a process file on disk
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 0 5\n2 1 3\n"), 0o644))

	// WHEN loaded
	procs, err := LoadProcesses(path)

	// THEN both records are parsed
	require.NoError(t, err)
	assert.Equal(t, []sim.Process{{ID: 1, ArrivalTime: 0, BurstTime: 5}, {ID: 2, ArrivalTime: 1, BurstTime: 3}}, procs)
}

func TestLoadProcesses_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadProcesses(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformedRecord))
}
