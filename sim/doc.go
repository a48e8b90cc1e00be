// Package sim provides the CPU scheduling engines for cpusched.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process records and the per-run working copy (job)
//   - queue.go: FIFO ready queue and the ordered ready heap
//   - fcfs.go, round_robin.go, srtf.go, sjf.go: the four policies
//   - recorder.go: dispatch events, Gantt segments and waiting-time accounting
//
// # Architecture
//
// Every engine is a pure function of its input: it validates the process list,
// takes a private value copy, simulates a single CPU and returns a Result.
// Engines share no state, so RunAll may execute several of them concurrently.
//
// Sub-packages:
//   - sim/trace/: dispatch decision records and their summary
//   - sim/workload/: parsing of the line-oriented process file
//   - sim/report/: schedule files, comparison tables, Gantt charts
//
// # Key Interfaces
//
//   - Policy: a named engine bound to its parameters (quantum, alpha)
//   - PolicyBundle: YAML-loadable policy selection and parameters
package sim
