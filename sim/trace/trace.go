package trace

// TraceLevel controls how much of a run's decision trace is reported.
type TraceLevel string

const (
	// TraceLevelNone reports no trace.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions reports every dispatch, preemption and completion.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects the decisions made during one policy run.
// Each engine run owns its trace; traces are never shared between runs.
type SimulationTrace struct {
	Policy      string             `yaml:"policy"`
	Dispatches  []DispatchRecord   `yaml:"dispatches"`
	Preemptions []PreemptionRecord `yaml:"preemptions"`
	Completions []CompletionRecord `yaml:"completions"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(policy string) *SimulationTrace {
	return &SimulationTrace{
		Policy:      policy,
		Dispatches:  make([]DispatchRecord, 0),
		Preemptions: make([]PreemptionRecord, 0),
		Completions: make([]CompletionRecord, 0),
	}
}

// RecordDispatch appends a dispatch decision record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	st.Dispatches = append(st.Dispatches, record)
}

// RecordPreemption appends a preemption record.
func (st *SimulationTrace) RecordPreemption(record PreemptionRecord) {
	st.Preemptions = append(st.Preemptions, record)
}

// RecordCompletion appends a completion record.
func (st *SimulationTrace) RecordCompletion(record CompletionRecord) {
	st.Completions = append(st.Completions, record)
}
