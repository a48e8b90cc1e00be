// Defines the Process record replayed by every policy and the job wrapper each
// engine mutates during its own run.

package sim

import (
	"fmt"
)

// Process is one CPU burst of a job in the input list.
// A Process value is never modified by an engine; engines work on jobs.
//
// The same ID may appear more than once with different arrival times: each
// record is then a later CPU burst of the same job, which is what the SJF
// predictor learns from. A record is identified by (ID, ArrivalTime).
type Process struct {
	ID          int   // Job identifier used in dispatch events
	ArrivalTime int64 // Time unit at which the burst becomes ready
	BurstTime   int64 // Total CPU time the burst requires
}

func (p Process) String() string {
	return fmt.Sprintf("[id %d : arrival_time %d,  burst_time %d]", p.ID, p.ArrivalTime, p.BurstTime)
}

// job is an engine-private working copy of a Process.
// The embedded Process keeps the original burst; only remaining and priority
// change while simulated time advances.
type job struct {
	Process

	index     int     // position in the caller's list
	remaining int64   // CPU time still owed
	priority  float64 // predicted burst (SJF only)
}

func (j *job) String() string {
	return fmt.Sprintf("job(id=%d, arrival=%d, remaining=%d/%d)", j.ID, j.ArrivalTime, j.remaining, j.BurstTime)
}

// newJobs copies procs into fresh jobs so no engine observes the caller's
// slice or another engine's mutations.
func newJobs(procs []Process) []*job {
	jobs := make([]*job, len(procs))
	for i, p := range procs {
		jobs[i] = &job{
			Process:   p,
			index:     i,
			remaining: p.BurstTime,
		}
	}
	return jobs
}
