// Tracks the outcome of one policy run: dispatch events, CPU occupancy and
// per-process timing (waiting, turnaround, response).

package sim

import (
	"fmt"

	"github.com/inference-sim/cpusched/sim/trace"
)

// Dispatch is a switch of the CPU to a process at a point in simulated time.
type Dispatch struct {
	Time      int64 // Simulation time of the dispatch
	ProcessID int   // ID of the process given the CPU
}

// String renders the dispatch as the "(time, id)" pair used in schedule files.
func (d Dispatch) String() string {
	return fmt.Sprintf("(%d, %d)", d.Time, d.ProcessID)
}

// Segment is a contiguous interval during which one record held the CPU.
type Segment struct {
	ProcessID int   // ID of the running process
	Index     int   // Position of the record in the input list
	Start     int64 // First time unit of the interval
	End       int64 // Exclusive end of the interval
}

// Len returns the CPU time covered by the segment.
func (s Segment) Len() int64 {
	return s.End - s.Start
}

// ProcessMetrics holds the timing outcome of one input record.
type ProcessMetrics struct {
	Process
	FirstRun   int64 // Time the record first got the CPU
	Completion int64 // Time the record finished
	Waiting    int64 // Completion - ArrivalTime - BurstTime
	Turnaround int64 // Completion - ArrivalTime
	Response   int64 // FirstRun - ArrivalTime
}

// Result is the outcome of running one policy over a process list.
type Result struct {
	Policy             string           // Policy name (FCFS, RR, SRTF, SJF)
	Schedule           []Dispatch       // Ordered dispatch events
	Segments           []Segment        // CPU occupancy timeline
	Processes          []ProcessMetrics // Per-record metrics, in input order
	AverageWaitingTime float64          // Mean of Processes[i].Waiting
	Makespan           int64            // Completion time of the last record
	IdleTime           int64            // Time in [0, Makespan) with no process running
	Trace              *trace.SimulationTrace
}

// AverageTurnaround returns the mean turnaround time across all records.
func (r *Result) AverageTurnaround() float64 {
	if len(r.Processes) == 0 {
		return 0
	}
	var sum int64
	for _, p := range r.Processes {
		sum += p.Turnaround
	}
	return float64(sum) / float64(len(r.Processes))
}

// AverageResponse returns the mean time from arrival to first dispatch.
func (r *Result) AverageResponse() float64 {
	if len(r.Processes) == 0 {
		return 0
	}
	var sum int64
	for _, p := range r.Processes {
		sum += p.Response
	}
	return float64(sum) / float64(len(r.Processes))
}

// Throughput returns completed records per time unit over the makespan.
func (r *Result) Throughput() float64 {
	if r.Makespan == 0 {
		return 0
	}
	return float64(len(r.Processes)) / float64(r.Makespan)
}

// ContextSwitches counts dispatches that hand the CPU to a different process
// than the previous dispatch did.
func (r *Result) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(r.Schedule); i++ {
		if r.Schedule[i].ProcessID != r.Schedule[i-1].ProcessID {
			switches++
		}
	}
	return switches
}

// BusyTimeByRecord sums segment lengths per input record.
func (r *Result) BusyTimeByRecord() []int64 {
	busy := make([]int64, len(r.Processes))
	for _, s := range r.Segments {
		busy[s.Index] += s.Len()
	}
	return busy
}
