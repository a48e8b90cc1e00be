package sim

import (
	"sort"

	"github.com/inference-sim/cpusched/sim/trace"
)

// SRTF runs preemptive Shortest-Remaining-Time-First in unit time steps.
//
// Precondition: no two records share an arrival time (ErrSimultaneousArrival).
// An arrival preempts the running process only when its burst is strictly
// shorter than the running remainder; the preempted process goes to the tail
// of the ready queue. After a completion the ready process with the least
// remaining time runs next, ties going to the earliest enqueued.
//
// A dispatch event is emitted only when the process executing a time unit
// differs from the one that executed the previous unit.
func SRTF(procs []Process) (*Result, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}
	if err := validateDistinctArrivals(procs); err != nil {
		return nil, err
	}

	jobs := newJobs(procs)
	rec := newRecorder(NameSRTF, jobs)

	byArrival := append([]*job(nil), jobs...)
	sort.SliceStable(byArrival, func(i, j int) bool {
		return byArrival[i].ArrivalTime < byArrival[j].ArrivalTime
	})

	var ready readyHeap
	var running, previous *job // previous executed the last time unit
	var reason trace.Reason
	var clock int64
	next := 0 // byArrival[next:] have not arrived
	for running != nil || next < len(byArrival) {
		var arriving *job
		if next < len(byArrival) && byArrival[next].ArrivalTime == clock {
			arriving = byArrival[next]
			next++
		}
		if arriving == nil && running == nil {
			// idle until the next arrival
			clock = byArrival[next].ArrivalTime
			previous = nil
			continue
		}

		switch {
		case running == nil:
			running = arriving
			reason = trace.ReasonIdleArrival
		case arriving != nil && arriving.remaining < running.remaining:
			if running == previous {
				rec.preempt(clock, running, trace.ReasonShorterArrival)
			}
			ready.Insert(running, float64(running.remaining))
			running = arriving
			reason = trace.ReasonShorterArrival
		case arriving != nil:
			ready.Insert(arriving, float64(arriving.remaining))
		}

		if running != previous {
			rec.dispatch(clock, running, reason, ready.Len())
		}
		rec.run(running, clock, clock+1)
		running.remaining--
		clock++
		previous = running

		if running.remaining == 0 {
			rec.complete(clock, running)
			running = ready.PopMin()
			reason = trace.ReasonShortestRemaining
		}
	}
	return rec.finish(), nil
}
