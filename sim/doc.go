// Package sim provides the page-replacement simulation core for paging-sim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - page.go: PageID, Slot (occupied or empty), and the per-run frame set
//   - result.go: StepRecord and SimulationResult, the only output shape
//   - simulator.go: the shared reference loop (hit, cold miss, eviction)
//   - algorithm.go: the closed Algorithm enumeration and Simulate dispatch
//
// # Replacement Policies
//
// Each policy lives in its own file and implements the unexported replacer
// interface. A replacer owns all auxiliary eviction state for exactly one run:
//   - fifo.go: admission-order queue
//   - lru.go: recency-order queue
//   - optimal.go: clairvoyant lookahead over the remaining references
//   - clock.go: reference bits plus a rotating hand (second chance)
//
// # Sub-packages
//
//   - sim/trace/: optional eviction-decision recording
//   - sim/workload/: reference-string files, YAML specs, and synthetic generators
//   - sim/analysis/: frame-count sweeps, Belady anomaly detection, trial statistics
//   - sim/segment/: first-fit segmentation allocator
//
// Every Simulate call is a pure function of its inputs. No state is shared
// between calls, so runs may execute concurrently without synchronization.
package sim
