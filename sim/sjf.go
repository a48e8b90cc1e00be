package sim

import "github.com/inference-sim/cpusched/sim/trace"

// SJF runs non-preemptive Shortest-Job-First, ordering the ready queue by a
// predicted burst rather than the true one.
//
// Each arriving record is scored by a BurstPredictor keyed by process ID and
// inserted into the ready queue; the lowest prediction runs to completion,
// ties going to the earliest enqueued. The actual burst then feeds the
// predictor for the next record with the same ID.
func SJF(procs []Process, alpha float64) (*Result, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}

	jobs := newJobs(procs)
	rec := newRecorder(NameSJF, jobs)
	predictor := NewBurstPredictor(alpha)

	pending := append([]*job(nil), jobs...)
	var ready readyHeap
	var clock int64
	for len(pending) > 0 || ready.Len() > 0 {
		pending = admitArrivals(pending, clock, func(j *job) {
			j.priority = predictor.Predict(j.ID)
			ready.Insert(j, j.priority)
		})

		j := ready.PopMin()
		if j == nil {
			// idle until the next arrival
			clock = nextArrival(pending)
			continue
		}
		rec.dispatch(clock, j, trace.ReasonShortestPredicted, ready.Len())
		rec.run(j, clock, clock+j.remaining)
		clock += j.remaining
		j.remaining = 0
		rec.complete(clock, j)
		predictor.Observe(j.ID, j.BurstTime)
	}
	return rec.finish(), nil
}
