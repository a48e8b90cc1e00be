package sim

import "github.com/inference-sim/cpusched/sim/trace"

// RoundRobin runs preemptive Round-Robin with a fixed time quantum.
//
// At every dispatch point the engine first enqueues all newly arrived records
// in list order, and only then re-enqueues the process whose quantum just
// expired: an arrival beats a re-queue at the same instant. Every pop of the
// ready queue emits a dispatch event, including back-to-back slices of the
// same process.
func RoundRobin(procs []Process, quantum int64) (*Result, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}
	if err := validateQuantum(quantum); err != nil {
		return nil, err
	}

	jobs := newJobs(procs)
	rec := newRecorder(NameRR, jobs)

	pending := append([]*job(nil), jobs...)
	var ready readyQueue
	var expired *job // quantum-expired holdover, re-queued after arrivals
	var clock int64
	for len(pending) > 0 || ready.Len() > 0 || expired != nil {
		pending = admitArrivals(pending, clock, ready.Enqueue)
		if expired != nil {
			ready.Enqueue(expired)
			expired = nil
		}
		if ready.Len() == 0 {
			// idle until the next arrival
			clock = nextArrival(pending)
			continue
		}

		j := ready.Dequeue()
		rec.dispatch(clock, j, trace.ReasonQueueHead, ready.Len())
		if j.remaining > quantum {
			rec.run(j, clock, clock+quantum)
			clock += quantum
			j.remaining -= quantum
			rec.preempt(clock, j, trace.ReasonQuantumExpired)
			expired = j
			continue
		}
		rec.run(j, clock, clock+j.remaining)
		clock += j.remaining
		j.remaining = 0
		rec.complete(clock, j)
	}
	return rec.finish(), nil
}

// admitArrivals hands every pending job with ArrivalTime <= clock to admit,
// in list order, and returns the jobs still pending. pending is filtered in
// place.
func admitArrivals(pending []*job, clock int64, admit func(*job)) []*job {
	rest := pending[:0]
	for _, j := range pending {
		if j.ArrivalTime <= clock {
			admit(j)
			continue
		}
		rest = append(rest, j)
	}
	for i := len(rest); i < len(pending); i++ {
		pending[i] = nil
	}
	return rest
}

// nextArrival returns the earliest arrival time among pending jobs.
// Panics if pending is empty.
func nextArrival(pending []*job) int64 {
	if len(pending) == 0 {
		panic("nextArrival: no pending jobs")
	}
	next := pending[0].ArrivalTime
	for _, j := range pending[1:] {
		if j.ArrivalTime < next {
			next = j.ArrivalTime
		}
	}
	return next
}
