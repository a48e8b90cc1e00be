package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/cpusched/sim"
)

// Preset is a named parameter set in defaults.yaml.
type Preset struct {
	Description string   `yaml:"description"`
	Policies    []string `yaml:"policies"`
	TimeQuantum *int64   `yaml:"time_quantum"`
	Alpha       *float64 `yaml:"alpha"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version string            `yaml:"version"`
	Presets map[string]Preset `yaml:"presets"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking so typos cause errors.
func loadDefaultsConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	return cfg, nil
}

// GetPreset looks up a named preset in the defaults file and returns it as a
// policy bundle, so it goes through the same validation as --policy-config.
func GetPreset(name, defaultsFilePath string) (*sim.PolicyBundle, error) {
	cfg, err := loadDefaultsConfig(defaultsFilePath)
	if err != nil {
		return nil, err
	}
	preset, ok := cfg.Presets[name]
	if !ok {
		return nil, fmt.Errorf("preset %q not found in %s", name, defaultsFilePath)
	}
	return &sim.PolicyBundle{
		Policies:   preset.Policies,
		RoundRobin: sim.RoundRobinConfig{TimeQuantum: preset.TimeQuantum},
		SJF:        sim.SJFConfig{Alpha: preset.Alpha},
	}, nil
}
