package analysis

import (
	"fmt"

	"github.com/paging-sim/paging-sim/sim"
)

// SweepPoint holds the fault count of each algorithm at one frame count.
type SweepPoint struct {
	Frames int
	Faults map[sim.Algorithm]int
}

// SweepReport is the result of running the same references over a range of frame counts.
type SweepReport struct {
	Algorithms []sim.Algorithm
	Points     []SweepPoint // ascending by Frames
}

// Anomaly marks a frame count at which adding one frame increased faults
// (Belady's anomaly). Stack algorithms such as LRU and Optimal never produce one.
type Anomaly struct {
	Algorithm  sim.Algorithm
	Frames     int
	Faults     int
	PrevFaults int // faults with Frames-1 frames
}

// Sweep simulates each algorithm for every frame count in [minFrames, maxFrames].
func Sweep(refs []sim.PageID, algs []sim.Algorithm, minFrames, maxFrames int) (*SweepReport, error) {
	if minFrames < 1 {
		return nil, fmt.Errorf("%w: minimum frame count must be at least 1, got %d", sim.ErrInvalidConfiguration, minFrames)
	}
	if maxFrames < minFrames {
		return nil, fmt.Errorf("%w: maximum frame count %d is below minimum %d", sim.ErrInvalidConfiguration, maxFrames, minFrames)
	}

	report := &SweepReport{
		Algorithms: algs,
		Points:     make([]SweepPoint, 0, maxFrames-minFrames+1),
	}
	for frames := minFrames; frames <= maxFrames; frames++ {
		point := SweepPoint{Frames: frames, Faults: make(map[sim.Algorithm]int, len(algs))}
		for _, alg := range algs {
			r, err := sim.Simulate(alg, refs, frames)
			if err != nil {
				return nil, fmt.Errorf("%s with %d frames: %w", alg, frames, err)
			}
			point.Faults[alg] = r.TotalFaults
		}
		report.Points = append(report.Points, point)
	}
	return report, nil
}

// Series returns the fault counts of one algorithm, aligned with Points.
func (r *SweepReport) Series(alg sim.Algorithm) []int {
	series := make([]int, len(r.Points))
	for i, p := range r.Points {
		series[i] = p.Faults[alg]
	}
	return series
}

// Anomalies lists every point where an algorithm faulted more than at the
// previous frame count.
func (r *SweepReport) Anomalies() []Anomaly {
	var anomalies []Anomaly
	for _, alg := range r.Algorithms {
		series := r.Series(alg)
		for i := 1; i < len(series); i++ {
			if series[i] > series[i-1] {
				anomalies = append(anomalies, Anomaly{
					Algorithm:  alg,
					Frames:     r.Points[i].Frames,
					Faults:     series[i],
					PrevFaults: series[i-1],
				})
			}
		}
	}
	return anomalies
}
