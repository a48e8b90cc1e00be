package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches      int
	Preemptions          int
	Completions          int
	MeanQueueDepth       float64
	MaxQueueDepth        int
	MeanWaiting          float64
	DispatchDistribution map[int]int // process ID → number of dispatches
	ReasonDistribution   map[Reason]int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchDistribution: make(map[int]int),
		ReasonDistribution:   make(map[Reason]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	summary.Preemptions = len(st.Preemptions)
	summary.Completions = len(st.Completions)

	if len(st.Dispatches) > 0 {
		totalDepth := 0
		for _, d := range st.Dispatches {
			summary.DispatchDistribution[d.ProcessID]++
			summary.ReasonDistribution[d.Reason]++
			totalDepth += d.QueueDepth
			if d.QueueDepth > summary.MaxQueueDepth {
				summary.MaxQueueDepth = d.QueueDepth
			}
		}
		summary.MeanQueueDepth = float64(totalDepth) / float64(len(st.Dispatches))
	}

	if len(st.Completions) > 0 {
		var totalWaiting int64
		for _, c := range st.Completions {
			totalWaiting += c.Waiting
		}
		summary.MeanWaiting = float64(totalWaiting) / float64(len(st.Completions))
	}

	return summary
}
