package sim

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestLoadPolicyBundle_ValidYAML(t *testing.T) {
	yaml := `
policies: [rr, sjf]
round_robin:
  time_quantum: 4
sjf:
  alpha: 0.5
`
	path := writeTempYAML(t, yaml)
	bundle, err := LoadPolicyBundle(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundle.Policies) != 2 || bundle.Policies[0] != "rr" || bundle.Policies[1] != "sjf" {
		t.Errorf("expected policies [rr sjf], got %v", bundle.Policies)
	}
	if bundle.RoundRobin.TimeQuantum == nil || *bundle.RoundRobin.TimeQuantum != 4 {
		t.Errorf("expected time quantum 4, got %v", bundle.RoundRobin.TimeQuantum)
	}
	if bundle.SJF.Alpha == nil || *bundle.SJF.Alpha != 0.5 {
		t.Errorf("expected alpha 0.5, got %v", bundle.SJF.Alpha)
	}
	if err := bundle.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoadPolicyBundle_ZeroValueIsDistinctFromUnset(t *testing.T) {
	yaml := `
sjf:
  alpha: 0
`
	path := writeTempYAML(t, yaml)
	bundle, err := LoadPolicyBundle(path)
	require.NoError(t, err)

	// alpha explicitly 0 is set; time_quantum omitted is nil
	require.NotNil(t, bundle.SJF.Alpha)
	assert.Equal(t, 0.0, *bundle.SJF.Alpha)
	assert.Nil(t, bundle.RoundRobin.TimeQuantum)
	assert.Empty(t, bundle.Policies)
}

func TestLoadPolicyBundle_UnknownField_Rejected(t *testing.T) {
	path := writeTempYAML(t, "round_robin:\n  quantum: 3\n")
	_, err := LoadPolicyBundle(path)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	assert.Contains(t, err.Error(), "parsing policy config")
}

func TestLoadPolicyBundle_MissingFile(t *testing.T) {
	_, err := LoadPolicyBundle(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestPolicyBundle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bundle  PolicyBundle
		wantErr error
		wantMsg string
	}{
		{name: "empty bundle", bundle: PolicyBundle{}},
		{name: "all policies", bundle: PolicyBundle{Policies: PolicyNames()}},
		{name: "unknown policy", bundle: PolicyBundle{Policies: []string{"lottery"}}, wantMsg: `unknown policy "lottery"`},
		{name: "duplicate policy", bundle: PolicyBundle{Policies: []string{"rr", "rr"}}, wantMsg: `policy "rr" listed twice`},
		{
			name:    "zero quantum",
			bundle:  PolicyBundle{RoundRobin: RoundRobinConfig{TimeQuantum: int64Ptr(0)}},
			wantErr: ErrInvalidQuantum,
			wantMsg: "round_robin.time_quantum",
		},
		{
			name:    "alpha above one",
			bundle:  PolicyBundle{SJF: SJFConfig{Alpha: float64Ptr(1.5)}},
			wantErr: ErrInvalidAlpha,
			wantMsg: "sjf.alpha",
		},
		{name: "alpha bounds inclusive", bundle: PolicyBundle{SJF: SJFConfig{Alpha: float64Ptr(1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bundle.Validate()
			if tt.wantErr == nil && tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.True(t, strings.Contains(err.Error(), tt.wantMsg), "error %q should mention %q", err, tt.wantMsg)
		})
	}
}

func TestPolicyBundle_Apply_OnlyOverridesSetFields(t *testing.T) {
	// GIVEN defaults and a bundle that sets only the quantum
	params := DefaultPolicyParams()
	bundle := PolicyBundle{RoundRobin: RoundRobinConfig{TimeQuantum: int64Ptr(5)}}

	// WHEN applied
	bundle.Apply(&params)

	// THEN the quantum changes and alpha keeps its default
	assert.Equal(t, int64(5), params.TimeQuantum)
	assert.Equal(t, 0.2, params.Alpha)
}

func TestPolicyNames_AllValid(t *testing.T) {
	names := PolicyNames()
	assert.Len(t, names, len(ValidPolicies))
	for _, n := range names {
		assert.True(t, IsValidPolicy(n), n)
	}
	assert.False(t, IsValidPolicy(""))
	assert.False(t, IsValidPolicy("FCFS"))
}

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
