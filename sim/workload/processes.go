// Package workload reads the process list replayed by the scheduling engines.
//
// The input format is line-oriented: one record per line, three
// whitespace-separated non-negative integers
//
//	id arrival_time burst_time
//
// Blank lines are skipped. Any other line with a different field count, or
// with a field that is not a non-negative integer, is a fatal input error.
package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim"
)

// ErrMalformedRecord reports an input line that is not "id arrival burst".
var ErrMalformedRecord = errors.New("malformed process record")

const recordFields = 3

// LoadProcesses reads and parses the process file at path.
func LoadProcesses(path string) ([]sim.Process, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer func() { _ = file.Close() }()

	procs, err := ParseProcesses(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Infof("Loaded %d processes from %s", len(procs), path)
	return procs, nil
}

// ParseProcesses parses records from r in input order.
// The first malformed line aborts parsing; no partial list is returned.
func ParseProcesses(r io.Reader) ([]sim.Process, error) {
	var procs []sim.Process
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != recordFields {
			return nil, fmt.Errorf("%w: line %d has %d fields, expected %d", ErrMalformedRecord, lineNo, len(fields), recordFields)
		}
		p, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, lineNo, err)
		}
		logrus.Debugf("record %d: %v", len(procs), p)
		procs = append(procs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading process records: %w", err)
	}
	return procs, nil
}

func parseRecord(fields []string) (sim.Process, error) {
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return sim.Process{}, fmt.Errorf("id %q: %w", fields[0], err)
	}
	arrival, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return sim.Process{}, fmt.Errorf("arrival time %q: %w", fields[1], err)
	}
	burst, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return sim.Process{}, fmt.Errorf("burst time %q: %w", fields[2], err)
	}
	if id < 0 || arrival < 0 || burst < 0 {
		return sim.Process{}, fmt.Errorf("negative value in %v", fields)
	}
	return sim.Process{ID: id, ArrivalTime: arrival, BurstTime: burst}, nil
}
