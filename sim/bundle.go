package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyBundle holds policy selection and parameters, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" and do not override PolicyParams.
// An empty Policies list means "not set".
//
//	policies: [fcfs, rr, srtf, sjf]
//	round_robin:
//	  time_quantum: 2
//	sjf:
//	  alpha: 0.2
type PolicyBundle struct {
	Policies   []string         `yaml:"policies"`
	RoundRobin RoundRobinConfig `yaml:"round_robin"`
	SJF        SJFConfig        `yaml:"sjf"`
}

// RoundRobinConfig holds Round-Robin parameters.
type RoundRobinConfig struct {
	TimeQuantum *int64 `yaml:"time_quantum"`
}

// SJFConfig holds predictive SJF parameters.
type SJFConfig struct {
	Alpha *float64 `yaml:"alpha"`
}

// LoadPolicyBundle reads and parses a YAML policy configuration file.
// Unknown fields are rejected so typos surface as errors.
func LoadPolicyBundle(path string) (*PolicyBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy config: %w", err)
	}
	var bundle PolicyBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing policy config: %w", err)
	}
	return &bundle, nil
}

// ValidPolicies is the set of recognized policy keys.
// Shared by Validate() and NewPolicy() to avoid duplication.
var ValidPolicies = map[string]bool{PolicyFCFS: true, PolicyRR: true, PolicySRTF: true, PolicySJF: true}

// IsValidPolicy returns true if name is a recognized policy key.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// PolicyNames returns all policy keys in canonical run order.
func PolicyNames() []string {
	return []string{PolicyFCFS, PolicyRR, PolicySRTF, PolicySJF}
}

// Validate checks that all policy names and parameter ranges in the bundle are valid.
func (b *PolicyBundle) Validate() error {
	seen := make(map[string]bool, len(b.Policies))
	for _, name := range b.Policies {
		if !IsValidPolicy(name) {
			return fmt.Errorf("unknown policy %q", name)
		}
		if seen[name] {
			return fmt.Errorf("policy %q listed twice", name)
		}
		seen[name] = true
	}
	if b.RoundRobin.TimeQuantum != nil {
		if err := validateQuantum(*b.RoundRobin.TimeQuantum); err != nil {
			return fmt.Errorf("round_robin.time_quantum: %w", err)
		}
	}
	if b.SJF.Alpha != nil {
		if err := validateAlpha(*b.SJF.Alpha); err != nil {
			return fmt.Errorf("sjf.alpha: %w", err)
		}
	}
	return nil
}

// Apply overrides the fields of params that are set in the bundle.
func (b *PolicyBundle) Apply(params *PolicyParams) {
	if b.RoundRobin.TimeQuantum != nil {
		params.TimeQuantum = *b.RoundRobin.TimeQuantum
	}
	if b.SJF.Alpha != nil {
		params.Alpha = *b.SJF.Alpha
	}
}
