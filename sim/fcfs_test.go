package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCFS_TwoProcesses_DispatchInListOrder(t *testing.T) {
	// GIVEN P1 (arrival 0, burst 5) and P2 (arrival 1, burst 3)
	procs := []Process{{ID: 1, ArrivalTime: 0, BurstTime: 5}, {ID: 2, ArrivalTime: 1, BurstTime: 3}}

	// WHEN scheduled FCFS
	res, err := FCFS(procs)

	// THEN P2 starts when P1 finishes and waits 5 - 1 = 4
	require.NoError(t, err)
	assert.Equal(t, []Dispatch{{Time: 0, ProcessID: 1}, {Time: 5, ProcessID: 2}}, res.Schedule)
	assert.Equal(t, int64(0), res.Processes[0].Waiting)
	assert.Equal(t, int64(4), res.Processes[1].Waiting)
	assert.Equal(t, 2.0, res.AverageWaitingTime)
}

func TestFCFS_IdleGap_JumpsToArrival(t *testing.T) {
	// GIVEN a second process arriving after the first has finished
	procs := []Process{{ID: 1, ArrivalTime: 2, BurstTime: 3}, {ID: 2, ArrivalTime: 10, BurstTime: 1}}

	res, err := FCFS(procs)

	// THEN both dispatch at their arrival and nobody waits
	require.NoError(t, err)
	assert.Equal(t, []Dispatch{{Time: 2, ProcessID: 1}, {Time: 10, ProcessID: 2}}, res.Schedule)
	assert.Equal(t, 0.0, res.AverageWaitingTime)
	assert.Equal(t, int64(11), res.Makespan)
	assert.Equal(t, int64(7), res.IdleTime) // [0,2) and [5,10)
}

func TestFCFS_EqualArrivals_ListOrderWins(t *testing.T) {
	// GIVEN two records arriving together, longer one first in the list
	procs := []Process{{ID: 9, ArrivalTime: 0, BurstTime: 4}, {ID: 3, ArrivalTime: 0, BurstTime: 1}}

	res, err := FCFS(procs)

	// THEN list order is authoritative
	require.NoError(t, err)
	assert.Equal(t, []Dispatch{{Time: 0, ProcessID: 9}, {Time: 4, ProcessID: 3}}, res.Schedule)
}

func TestFCFS_UnsortedArrivals_Rejected(t *testing.T) {
	// GIVEN a list whose arrival times decrease
	procs := []Process{{ID: 1, ArrivalTime: 5, BurstTime: 1}, {ID: 2, ArrivalTime: 0, BurstTime: 1}}

	// WHEN scheduled FCFS
	res, err := FCFS(procs)

	// THEN the precondition violation is reported instead of a schedule
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrUnsortedArrivals), "got %v", err)
}

func TestFCFS_TraceRecordsQueueDepth(t *testing.T) {
	// GIVEN three processes all ready at time 0
	procs := []Process{{ID: 1, BurstTime: 2}, {ID: 2, BurstTime: 2}, {ID: 3, BurstTime: 2}}

	res, err := FCFS(procs)

	// THEN queue depth shrinks with every dispatch
	require.NoError(t, err)
	require.Len(t, res.Trace.Dispatches, 3)
	assert.Equal(t, 2, res.Trace.Dispatches[0].QueueDepth)
	assert.Equal(t, 1, res.Trace.Dispatches[1].QueueDepth)
	assert.Equal(t, 0, res.Trace.Dispatches[2].QueueDepth)
}
