package sim

import (
	"errors"
	"fmt"
	"math"
)

// Precondition errors. Engines wrap these with the offending record, so
// callers should compare with errors.Is.
var (
	ErrEmptyWorkload       = errors.New("empty process list")
	ErrInvalidProcess      = errors.New("invalid process")
	ErrDuplicateProcess    = errors.New("duplicate process")
	ErrUnsortedArrivals    = errors.New("arrival times not in list order")
	ErrSimultaneousArrival = errors.New("simultaneous arrival")
	ErrInvalidQuantum      = errors.New("invalid time quantum")
	ErrInvalidAlpha        = errors.New("invalid alpha")
)

// processKey identifies a record: a job id may recur with a later arrival.
type processKey struct {
	id      int
	arrival int64
}

// ValidateProcesses checks the preconditions shared by all policies:
// a non-empty list, non-negative arrivals, positive bursts and no two records
// with the same (ID, ArrivalTime).
func ValidateProcesses(procs []Process) error {
	if len(procs) == 0 {
		return ErrEmptyWorkload
	}
	seen := make(map[processKey]int, len(procs))
	for i, p := range procs {
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: record %d (id %d) has negative arrival time %d", ErrInvalidProcess, i, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: record %d (id %d) has non-positive burst time %d", ErrInvalidProcess, i, p.ID, p.BurstTime)
		}
		k := processKey{id: p.ID, arrival: p.ArrivalTime}
		if first, ok := seen[k]; ok {
			return fmt.Errorf("%w: records %d and %d are both id %d arriving at %d", ErrDuplicateProcess, first, i, p.ID, p.ArrivalTime)
		}
		seen[k] = i
	}
	return nil
}

// validateArrivalOrder rejects lists whose arrival times decrease in list
// order. FCFS dispatches in list order and would otherwise run a later
// arrival ahead of an earlier one.
func validateArrivalOrder(procs []Process) error {
	for i := 1; i < len(procs); i++ {
		if procs[i].ArrivalTime < procs[i-1].ArrivalTime {
			return fmt.Errorf("%w: record %d (id %d) arrives at %d after record %d arrived at %d",
				ErrUnsortedArrivals, i, procs[i].ID, procs[i].ArrivalTime, i-1, procs[i-1].ArrivalTime)
		}
	}
	return nil
}

// validateDistinctArrivals rejects lists where two records arrive at the same
// instant. SRTF admits at most one arrival per time unit.
func validateDistinctArrivals(procs []Process) error {
	seen := make(map[int64]int, len(procs))
	for i, p := range procs {
		if first, ok := seen[p.ArrivalTime]; ok {
			return fmt.Errorf("%w: records %d (id %d) and %d (id %d) both arrive at %d",
				ErrSimultaneousArrival, first, procs[first].ID, i, p.ID, p.ArrivalTime)
		}
		seen[p.ArrivalTime] = i
	}
	return nil
}

func validateQuantum(quantum int64) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidQuantum, quantum)
	}
	return nil
}

func validateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return fmt.Errorf("%w: must be in [0, 1], got %v", ErrInvalidAlpha, alpha)
	}
	return nil
}
