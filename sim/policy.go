package sim

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Policy keys accepted by NewPolicy, the CLI and policy bundles.
const (
	PolicyFCFS = "fcfs"
	PolicyRR   = "rr"
	PolicySRTF = "srtf"
	PolicySJF  = "sjf"
)

// Display names carried in Results and used for output file names.
const (
	NameFCFS = "FCFS"
	NameRR   = "RR"
	NameSRTF = "SRTF"
	NameSJF  = "SJF"
)

// Policy is a scheduling engine bound to its parameters.
// Schedule must not modify procs; implementations work on a private copy.
type Policy interface {
	Name() string
	Schedule(procs []Process) (*Result, error)
}

// PolicyParams holds the two tunable policy parameters.
type PolicyParams struct {
	TimeQuantum int64   // Round-Robin time slice (> 0)
	Alpha       float64 // SJF exponential averaging weight in [0, 1]
}

// DefaultPolicyParams returns quantum 2 and alpha 0.2.
func DefaultPolicyParams() PolicyParams {
	return PolicyParams{TimeQuantum: 2, Alpha: 0.2}
}

// FCFSPolicy dispatches in list order.
type FCFSPolicy struct{}

func (f *FCFSPolicy) Name() string { return NameFCFS }

func (f *FCFSPolicy) Schedule(procs []Process) (*Result, error) {
	return FCFS(procs)
}

// RoundRobinPolicy time-slices the CPU with a fixed quantum.
type RoundRobinPolicy struct {
	Quantum int64
}

func (r *RoundRobinPolicy) Name() string { return NameRR }

func (r *RoundRobinPolicy) Schedule(procs []Process) (*Result, error) {
	return RoundRobin(procs, r.Quantum)
}

// SRTFPolicy preempts in favour of the least remaining time.
type SRTFPolicy struct{}

func (s *SRTFPolicy) Name() string { return NameSRTF }

func (s *SRTFPolicy) Schedule(procs []Process) (*Result, error) {
	return SRTF(procs)
}

// SJFPolicy runs the lowest predicted burst to completion.
type SJFPolicy struct {
	Alpha float64
}

func (s *SJFPolicy) Name() string { return NameSJF }

func (s *SJFPolicy) Schedule(procs []Process) (*Result, error) {
	return SJF(procs, s.Alpha)
}

// NewPolicy creates a Policy by key.
// Valid keys are defined in ValidPolicies (bundle.go).
// Panics on unrecognized keys; callers check IsValidPolicy first.
func NewPolicy(name string, params PolicyParams) Policy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	switch name {
	case PolicyFCFS:
		return &FCFSPolicy{}
	case PolicyRR:
		return &RoundRobinPolicy{Quantum: params.TimeQuantum}
	case PolicySRTF:
		return &SRTFPolicy{}
	case PolicySJF:
		return &SJFPolicy{Alpha: params.Alpha}
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}

// NewPolicies creates one Policy per key, in order.
func NewPolicies(names []string, params PolicyParams) ([]Policy, error) {
	policies := make([]Policy, 0, len(names))
	for _, name := range names {
		if !IsValidPolicy(name) {
			return nil, fmt.Errorf("unknown policy %q (valid: %v)", name, PolicyNames())
		}
		policies = append(policies, NewPolicy(name, params))
	}
	return policies, nil
}

// RunAll runs every policy over procs concurrently and returns the results in
// the order of policies. Each engine copies procs, so no synchronization is
// needed beyond waiting for all of them. The first error aborts the batch.
func RunAll(policies []Policy, procs []Process) ([]*Result, error) {
	results := make([]*Result, len(policies))
	var g errgroup.Group
	for i, p := range policies {
		i, p := i, p
		g.Go(func() error {
			res, err := p.Schedule(procs)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
