// Package analysis runs several simulations and aggregates them: side-by-side
// comparisons, frame-count sweeps with Belady anomaly detection, and
// multi-trial statistics over synthetic reference sequences.
package analysis
