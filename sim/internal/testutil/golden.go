// Package testutil provides shared test infrastructure for the cpusched engines.
// It consolidates golden dataset types and assertion helpers used across
// the sim/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one process list with hand-traced expectations per policy.
// Processes are [id, arrival_time, burst_time] triples in input order.
type GoldenTestCase struct {
	Name        string                    `json:"name"`
	Processes   [][3]int64                `json:"processes"`
	TimeQuantum int64                     `json:"time_quantum"`
	Alpha       float64                   `json:"alpha"`
	Policies    map[string]GoldenSchedule `json:"policies"`
}

// GoldenSchedule is the expected outcome of one policy.
// Schedule entries are [time, process_id] pairs.
type GoldenSchedule struct {
	Schedule           [][2]int64 `json:"schedule"`
	AverageWaitingTime float64    `json:"average_waiting_time"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
