// Package trace provides decision-trace recording for scheduling policy analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Reason explains why a process was given the CPU or taken off it.
type Reason string

const (
	ReasonListOrder         Reason = "list-order"         // FCFS: next record in input order
	ReasonQueueHead         Reason = "queue-head"         // RR: front of the FIFO ready queue
	ReasonIdleArrival       Reason = "idle-arrival"       // SRTF: arrived while the CPU was idle
	ReasonShorterArrival    Reason = "shorter-arrival"    // SRTF: arrival shorter than the running remainder
	ReasonShortestRemaining Reason = "shortest-remaining" // SRTF: least remaining time after a completion
	ReasonShortestPredicted Reason = "shortest-predicted" // SJF: lowest predicted burst
	ReasonQuantumExpired    Reason = "quantum-expired"    // RR: time slice used up
)

// DispatchRecord captures a single dispatch decision.
type DispatchRecord struct {
	Clock      int64   `yaml:"clock"`
	ProcessID  int     `yaml:"process_id"`
	Reason     Reason  `yaml:"reason"`
	Remaining  int64   `yaml:"remaining"`            // CPU time owed when dispatched
	QueueDepth int     `yaml:"queue_depth"`          // processes still waiting after the dispatch
	Prediction float64 `yaml:"prediction,omitempty"` // SJF predicted burst
}

// PreemptionRecord captures a running process losing the CPU before finishing.
type PreemptionRecord struct {
	Clock     int64  `yaml:"clock"`
	ProcessID int    `yaml:"process_id"`
	Remaining int64  `yaml:"remaining"`
	Reason    Reason `yaml:"reason"`
}

// CompletionRecord captures a process finishing its burst.
type CompletionRecord struct {
	Clock     int64 `yaml:"clock"`
	ProcessID int   `yaml:"process_id"`
	Waiting   int64 `yaml:"waiting"`
}
