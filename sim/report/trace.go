package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/cpusched/sim/trace"
)

// WriteTrace encodes a decision trace as YAML.
func WriteTrace(w io.Writer, st *trace.SimulationTrace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}
	return enc.Close()
}

// WriteTraceFile writes st to dir/<policy>.trace.yaml and returns the path.
func WriteTraceFile(dir string, st *trace.SimulationTrace) (string, error) {
	path := filepath.Join(dir, st.Policy+".trace.yaml")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating trace file: %w", err)
	}
	if err := WriteTrace(file, st); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// WriteTraceSummary prints aggregate trace statistics for one policy.
func WriteTraceSummary(w io.Writer, st *trace.SimulationTrace) {
	s := trace.Summarize(st)
	_, _ = fmt.Fprintf(w, "=== %s Decision Trace ===\n", st.Policy)
	_, _ = fmt.Fprintf(w, "Dispatches       : %d\n", s.TotalDispatches)
	_, _ = fmt.Fprintf(w, "Preemptions      : %d\n", s.Preemptions)
	_, _ = fmt.Fprintf(w, "Completions      : %d\n", s.Completions)
	_, _ = fmt.Fprintf(w, "Mean queue depth : %.2f\n", s.MeanQueueDepth)
	_, _ = fmt.Fprintf(w, "Max queue depth  : %d\n", s.MaxQueueDepth)
}
