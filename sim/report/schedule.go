// Package report writes simulation results: the per-policy schedule files,
// comparison and per-process tables, Gantt charts and decision traces.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/inference-sim/cpusched/sim"
)

// ScheduleFileName returns the file name of a policy's schedule, e.g. "RR.txt".
func ScheduleFileName(res *sim.Result) string {
	return res.Policy + ".txt"
}

// WriteSchedule writes one "(time, id)" line per dispatch followed by the
// "average waiting time" trailer formatted to two decimal places.
func WriteSchedule(w io.Writer, res *sim.Result) error {
	bw := bufio.NewWriter(w)
	for _, d := range res.Schedule {
		if _, err := fmt.Fprintln(bw, d.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "average waiting time %.2f\n", res.AverageWaitingTime); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteScheduleFile writes res to dir/ScheduleFileName(res) and returns the path.
func WriteScheduleFile(dir string, res *sim.Result) (string, error) {
	path := filepath.Join(dir, ScheduleFileName(res))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating schedule file: %w", err)
	}
	if err := WriteSchedule(file, res); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
