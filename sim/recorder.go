package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim/trace"
)

// recorder accumulates the Result of a single engine run.
// Every engine reports dispatches, CPU occupancy, preemptions and completions
// through it so the accounting rules live in one place.
type recorder struct {
	result       *Result
	started      []bool
	completed    int
	totalWaiting int64
}

func newRecorder(policy string, jobs []*job) *recorder {
	r := &recorder{
		result: &Result{
			Policy:    policy,
			Schedule:  make([]Dispatch, 0, len(jobs)),
			Segments:  make([]Segment, 0, len(jobs)),
			Processes: make([]ProcessMetrics, len(jobs)),
			Trace:     trace.NewSimulationTrace(policy),
		},
		started: make([]bool, len(jobs)),
	}
	for _, j := range jobs {
		r.result.Processes[j.index] = ProcessMetrics{Process: j.Process}
	}
	return r
}

// dispatch emits a (clock, id) event and its trace record.
// queueDepth is the number of processes left waiting after the dispatch.
func (r *recorder) dispatch(clock int64, j *job, reason trace.Reason, queueDepth int) {
	logrus.Debugf("[%s][t=%d] dispatch %v (%s)", r.result.Policy, clock, j, reason)
	r.result.Schedule = append(r.result.Schedule, Dispatch{Time: clock, ProcessID: j.ID})
	rec := trace.DispatchRecord{
		Clock:      clock,
		ProcessID:  j.ID,
		Reason:     reason,
		Remaining:  j.remaining,
		QueueDepth: queueDepth,
	}
	if reason == trace.ReasonShortestPredicted {
		rec.Prediction = j.priority
	}
	r.result.Trace.RecordDispatch(rec)
	if !r.started[j.index] {
		r.started[j.index] = true
		m := &r.result.Processes[j.index]
		m.FirstRun = clock
		m.Response = clock - j.ArrivalTime
	}
}

// run records that j held the CPU over [start, end). Adjacent intervals of the
// same record are merged into one segment.
func (r *recorder) run(j *job, start, end int64) {
	if end <= start {
		return
	}
	segs := r.result.Segments
	if n := len(segs); n > 0 && segs[n-1].Index == j.index && segs[n-1].End == start {
		segs[n-1].End = end
		return
	}
	r.result.Segments = append(segs, Segment{ProcessID: j.ID, Index: j.index, Start: start, End: end})
}

// preempt records j losing the CPU with work left.
func (r *recorder) preempt(clock int64, j *job, reason trace.Reason) {
	logrus.Debugf("[%s][t=%d] preempt %v (%s)", r.result.Policy, clock, j, reason)
	r.result.Trace.RecordPreemption(trace.PreemptionRecord{
		Clock:     clock,
		ProcessID: j.ID,
		Remaining: j.remaining,
		Reason:    reason,
	})
}

// complete records j finishing at clock. Waiting time is always computed
// against the original burst, never the decremented working copy.
func (r *recorder) complete(clock int64, j *job) {
	waiting := clock - j.ArrivalTime - j.BurstTime
	logrus.Debugf("[%s][t=%d] complete %v waiting=%d", r.result.Policy, clock, j, waiting)
	m := &r.result.Processes[j.index]
	m.Completion = clock
	m.Turnaround = clock - j.ArrivalTime
	m.Waiting = waiting
	r.totalWaiting += waiting
	r.completed++
	if clock > r.result.Makespan {
		r.result.Makespan = clock
	}
	r.result.Trace.RecordCompletion(trace.CompletionRecord{Clock: clock, ProcessID: j.ID, Waiting: waiting})
}

// finish computes the aggregates and returns the Result.
// Panics if the engine left a record unfinished.
func (r *recorder) finish() *Result {
	n := len(r.result.Processes)
	if r.completed != n {
		panic(fmt.Sprintf("%s: %d of %d processes completed", r.result.Policy, r.completed, n))
	}
	var busy int64
	for _, s := range r.result.Segments {
		busy += s.Len()
	}
	r.result.IdleTime = r.result.Makespan - busy
	r.result.AverageWaitingTime = float64(r.totalWaiting) / float64(n)
	logrus.Debugf("[%s] %d processes, average waiting time %.2f", r.result.Policy, n, r.result.AverageWaitingTime)
	return r.result
}
