package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSJF_FirstAppearance_DefaultPredictionIgnoresAlpha(t *testing.T) {
	// GIVEN one process and several alpha values
	procs := []Process{{ID: 1, ArrivalTime: 0, BurstTime: 40}}

	for _, alpha := range []float64{0, 0.2, 0.5, 1} {
		// WHEN scheduled SJF
		res, err := SJF(procs, alpha)

		// THEN the first prediction is 5 regardless of alpha
		require.NoError(t, err)
		require.Len(t, res.Trace.Dispatches, 1)
		assert.Equal(t, DefaultPrediction, res.Trace.Dispatches[0].Prediction, "alpha=%v", alpha)
	}
}

func TestSJF_NonPreemptive_RunsToCompletion(t *testing.T) {
	// GIVEN a long job followed by a short one arriving while it runs
	procs := []Process{{ID: 1, ArrivalTime: 0, BurstTime: 5}, {ID: 2, ArrivalTime: 1, BurstTime: 3}}

	res, err := SJF(procs, 0.2)

	// THEN the short job waits for the long one: (5 - 1) / 2
	require.NoError(t, err)
	assert.Equal(t, []Dispatch{{Time: 0, ProcessID: 1}, {Time: 5, ProcessID: 2}}, res.Schedule)
	assert.Equal(t, 2.0, res.AverageWaitingTime)
}

// repeatedBursts: job 1 runs a 2-unit burst, then job 2 (burst 3) and job 1's
// second burst (4) are both ready at time 2. Job 2 is listed first.
func repeatedBursts() []Process {
	return []Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 2},
		{ID: 2, ArrivalTime: 1, BurstTime: 3},
		{ID: 1, ArrivalTime: 2, BurstTime: 4},
	}
}

func TestSJF_RepeatedID_PredictionFromHistory(t *testing.T) {
	// WHEN alpha = 0.5: job 1's second prediction = 0.5*2 + 0.5*5 = 3.5 < 5
	res, err := SJF(repeatedBursts(), 0.5)

	// THEN job 1's second burst jumps ahead of job 2
	require.NoError(t, err)
	assert.Equal(t, []Dispatch{{Time: 0, ProcessID: 1}, {Time: 2, ProcessID: 1}, {Time: 6, ProcessID: 2}}, res.Schedule)
	assert.InDelta(t, 3.5, res.Trace.Dispatches[1].Prediction, 1e-12)
	assert.InDelta(t, 5.0/3.0, res.AverageWaitingTime, 1e-12)
}

func TestSJF_AlphaZero_PredictionStaysDefault_TieKeepsInsertionOrder(t *testing.T) {
	// WHEN alpha = 0: every prediction stays 5
	res, err := SJF(repeatedBursts(), 0)

	// THEN the tie is broken by enqueue order (job 2 scanned first)
	require.NoError(t, err)
	assert.Equal(t, []Dispatch{{Time: 0, ProcessID: 1}, {Time: 2, ProcessID: 2}, {Time: 5, ProcessID: 1}}, res.Schedule)
	assert.InDelta(t, 4.0/3.0, res.AverageWaitingTime, 1e-12)
}

func TestSJF_IdleUntilArrival(t *testing.T) {
	res, err := SJF([]Process{{ID: 4, ArrivalTime: 6, BurstTime: 2}}, 0.2)

	require.NoError(t, err)
	assert.Equal(t, []Dispatch{{Time: 6, ProcessID: 4}}, res.Schedule)
	assert.Equal(t, int64(6), res.IdleTime)
}

func TestSJF_InvalidAlpha_Rejected(t *testing.T) {
	procs := []Process{{ID: 1, ArrivalTime: 0, BurstTime: 1}}
	for _, alpha := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := SJF(procs, alpha)
		assert.True(t, errors.Is(err, ErrInvalidAlpha), "alpha %v: got %v", alpha, err)
	}
}
