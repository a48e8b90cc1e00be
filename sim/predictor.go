package sim

// DefaultPrediction is the burst estimate for a process ID seen for the first time.
const DefaultPrediction = 5.0

// BurstPredictor estimates the next CPU burst of a process by exponential
// averaging:
//
//	next = Alpha*lastActual + (1-Alpha)*lastPrediction
//
// The first prediction for an ID is DefaultPrediction regardless of Alpha.
// A predictor belongs to a single engine run.
type BurstPredictor struct {
	Alpha          float64
	lastPrediction map[int]float64
	lastActual     map[int]int64
}

// NewBurstPredictor creates a predictor with smoothing weight alpha in [0, 1].
func NewBurstPredictor(alpha float64) *BurstPredictor {
	return &BurstPredictor{
		Alpha:          alpha,
		lastPrediction: make(map[int]float64),
		lastActual:     make(map[int]int64),
	}
}

// Predict returns the estimate for the next burst of id and stores it as the
// id's last prediction. Until a burst of id has been observed the last
// prediction is returned unchanged.
func (p *BurstPredictor) Predict(id int) float64 {
	prev, seen := p.lastPrediction[id]
	if !seen {
		p.lastPrediction[id] = DefaultPrediction
		return DefaultPrediction
	}
	actual, observed := p.lastActual[id]
	if !observed {
		return prev
	}
	next := p.Alpha*float64(actual) + (1-p.Alpha)*prev
	p.lastPrediction[id] = next
	return next
}

// Observe records the actual length of a completed burst of id.
func (p *BurstPredictor) Observe(id int, burst int64) {
	p.lastActual[id] = burst
}

// LastPrediction returns the most recent prediction for id, if any.
func (p *BurstPredictor) LastPrediction(id int) (float64, bool) {
	v, ok := p.lastPrediction[id]
	return v, ok
}
