package sim

import "github.com/inference-sim/cpusched/sim/trace"

// FCFS runs First-Come-First-Served over procs.
//
// Records are dispatched in list order without re-sorting; the list must
// therefore already be ordered by arrival time (ErrUnsortedArrivals otherwise).
// The CPU idles until a record's arrival when it is free early.
func FCFS(procs []Process) (*Result, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}
	if err := validateArrivalOrder(procs); err != nil {
		return nil, err
	}

	jobs := newJobs(procs)
	rec := newRecorder(NameFCFS, jobs)

	var clock int64
	arrived := 0 // jobs[:arrived] have arrival <= clock
	for i, j := range jobs {
		if clock < j.ArrivalTime {
			clock = j.ArrivalTime
		}
		for arrived < len(jobs) && jobs[arrived].ArrivalTime <= clock {
			arrived++
		}
		rec.dispatch(clock, j, trace.ReasonListOrder, arrived-i-1)
		rec.run(j, clock, clock+j.remaining)
		clock += j.remaining
		j.remaining = 0
		rec.complete(clock, j)
	}
	return rec.finish(), nil
}
