package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/report"
	"github.com/inference-sim/cpusched/sim/trace"
	"github.com/inference-sim/cpusched/sim/workload"
)

var (
	// CLI flags for input and output
	inputPath  string // Process list file
	outputDir  string // Directory receiving <Policy>.txt schedules
	logLevel   string // Log verbosity level
	showDetail bool   // Print per-process tables
	showGantt  bool   // Print Gantt charts
	traceLevel string // Decision trace level (none, decisions)

	// CLI flags for policy selection and parameters
	policyNames      []string // Policies to run, in order
	timeQuantum      int64    // Round-Robin time slice
	alpha            float64  // SJF exponential averaging weight
	policyConfigPath string   // YAML policy bundle
	presetName       string   // Named preset in the defaults file
	defaultsFilePath string   // Path to defaults.yaml
)

// runConfig is the fully resolved configuration of one run.
type runConfig struct {
	RunID      string // Tags the log lines of one invocation
	InputPath  string
	OutputDir  string
	Policies   []string
	Params     sim.PolicyParams
	Details    bool
	Gantt      bool
	TraceLevel trace.TraceLevel
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "Discrete-event simulator for single-CPU scheduling policies",
}

// runCmd replays a process list under each selected policy
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := resolveRunConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		startTime := time.Now()
		if err := runSimulation(cfg, os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// resolveRunConfig layers the configuration sources: built-in defaults, then
// the preset, then the policy bundle, then explicitly set flags.
func resolveRunConfig(cmd *cobra.Command) (runConfig, error) {
	cfg := runConfig{
		RunID:      xid.New().String(),
		InputPath:  inputPath,
		OutputDir:  outputDir,
		Policies:   sim.PolicyNames(),
		Params:     sim.DefaultPolicyParams(),
		Details:    showDetail,
		Gantt:      showGantt,
		TraceLevel: trace.TraceLevel(traceLevel),
	}
	if !trace.IsValidTraceLevel(traceLevel) {
		return cfg, fmt.Errorf("unknown trace level %q (valid: none, decisions)", traceLevel)
	}

	if presetName != "" {
		bundle, err := GetPreset(presetName, defaultsFilePath)
		if err != nil {
			return cfg, err
		}
		if err := applyBundle(&cfg, bundle); err != nil {
			return cfg, fmt.Errorf("preset %q: %w", presetName, err)
		}
		logrus.Infof("Applied preset %q from %s", presetName, defaultsFilePath)
	}

	if policyConfigPath != "" {
		bundle, err := sim.LoadPolicyBundle(policyConfigPath)
		if err != nil {
			return cfg, err
		}
		if err := applyBundle(&cfg, bundle); err != nil {
			return cfg, fmt.Errorf("policy config %s: %w", policyConfigPath, err)
		}
		logrus.Infof("Applied policy config %s", policyConfigPath)
	}

	// Flags win only when the user set them explicitly.
	if cmd.Flags().Changed("policies") {
		cfg.Policies = policyNames
	}
	if cmd.Flags().Changed("quantum") {
		cfg.Params.TimeQuantum = timeQuantum
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Params.Alpha = alpha
	}
	return cfg, nil
}

func applyBundle(cfg *runConfig, bundle *sim.PolicyBundle) error {
	if err := bundle.Validate(); err != nil {
		return err
	}
	if len(bundle.Policies) > 0 {
		cfg.Policies = bundle.Policies
	}
	bundle.Apply(&cfg.Params)
	return nil
}

// heading styles section titles on a terminal; color is disabled otherwise.
var heading = color.New(color.Bold, color.FgCyan)

// runSimulation loads the process list, runs every selected policy and writes
// the schedule files. Tables, charts and trace summaries go to out.
func runSimulation(cfg runConfig, out io.Writer) error {
	logger := logrus.WithField("run", cfg.RunID)
	procs, err := workload.LoadProcesses(cfg.InputPath)
	if err != nil {
		return err
	}
	for _, p := range procs {
		logger.Infof("%v", p)
	}

	policies, err := sim.NewPolicies(cfg.Policies, cfg.Params)
	if err != nil {
		return err
	}
	logger.Infof("Running %d policies over %d processes, quantum=%d, alpha=%v",
		len(policies), len(procs), cfg.Params.TimeQuantum, cfg.Params.Alpha)

	results, err := sim.RunAll(policies, procs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, res := range results {
		path, err := report.WriteScheduleFile(cfg.OutputDir, res)
		if err != nil {
			return err
		}
		logger.Infof("Wrote %s (average waiting time %.2f)", path, res.AverageWaitingTime)
	}

	_, _ = heading.Fprintln(out, "Policy comparison")
	report.WriteComparison(out, results)
	for _, res := range results {
		if cfg.Details {
			_, _ = heading.Fprintf(out, "\n%s details\n", res.Policy)
			report.WriteProcessTable(out, res)
		}
		if cfg.Gantt {
			_, _ = fmt.Fprintln(out)
			report.WriteGantt(out, res)
		}
		if cfg.TraceLevel == trace.TraceLevelDecisions {
			path, err := report.WriteTraceFile(cfg.OutputDir, res.Trace)
			if err != nil {
				return err
			}
			logger.Infof("Wrote %s", path)
			_, _ = fmt.Fprintln(out)
			report.WriteTraceSummary(out, res.Trace)
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "input.txt", "Process list: one \"id arrival_time burst_time\" record per line")
	runCmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for the <Policy>.txt schedule files")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Policy selection and parameters
	runCmd.Flags().StringSliceVar(&policyNames, "policies", sim.PolicyNames(), "Comma-separated policies to run (fcfs, rr, srtf, sjf)")
	runCmd.Flags().Int64Var(&timeQuantum, "quantum", 2, "Round-Robin time quantum")
	runCmd.Flags().Float64Var(&alpha, "alpha", 0.2, "SJF exponential averaging weight in [0, 1]")
	runCmd.Flags().StringVar(&policyConfigPath, "policy-config", "", "Path to a YAML policy bundle")
	runCmd.Flags().StringVar(&presetName, "preset", "", "Named parameter preset from the defaults file")
	runCmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to the defaults file holding presets")

	// Reporting
	runCmd.Flags().BoolVar(&showDetail, "details", false, "Print a per-process table for each policy")
	runCmd.Flags().BoolVar(&showGantt, "gantt", false, "Print a Gantt chart for each policy")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
