package workload

import (
	"math/rand"

	"github.com/paging-sim/paging-sim/sim"
)

// PageSampler produces the page referenced at each position of a sequence.
type PageSampler interface {
	Sample(step int) sim.PageID
}

// UniformSampler draws every page with equal probability.
type UniformSampler struct {
	rng       *rand.Rand
	pageCount int
}

func (s *UniformSampler) Sample(_ int) sim.PageID {
	return sim.PageID(s.rng.Intn(s.pageCount))
}

// SequentialSampler loops over all pages in order: 0, 1, ..., n-1, 0, 1, ...
// With fewer frames than pages this defeats LRU and FIFO completely.
type SequentialSampler struct {
	pageCount int
}

func (s *SequentialSampler) Sample(step int) sim.PageID {
	return sim.PageID(step % s.pageCount)
}

// ZipfSampler favors low-numbered pages following a Zipf distribution.
type ZipfSampler struct {
	zipf *rand.Zipf
}

func (s *ZipfSampler) Sample(_ int) sim.PageID {
	return sim.PageID(s.zipf.Uint64())
}

// LocalitySampler models working-set phases. At each phase boundary a new
// window base is drawn from the phases RNG; page draws come from the pages RNG.
type LocalitySampler struct {
	pages     *rand.Rand
	phases    *rand.Rand
	pageCount int
	cfg       LocalitySpec
	base      int
}

func (s *LocalitySampler) Sample(step int) sim.PageID {
	if step%s.cfg.PhaseLength == 0 {
		s.base = s.phases.Intn(s.pageCount - s.cfg.WorkingSetSize + 1)
	}
	if s.cfg.JumpProbability > 0 && s.pages.Float64() < s.cfg.JumpProbability {
		return sim.PageID(s.pages.Intn(s.pageCount))
	}
	return sim.PageID(s.base + s.pages.Intn(s.cfg.WorkingSetSize))
}

// NewPageSampler builds the sampler for a validated spec.
func NewPageSampler(spec *ReferenceSpec, rng *PartitionedRNG) PageSampler {
	pages := rng.ForSubsystem(SubsystemPages)
	switch spec.Pattern {
	case PatternSequential:
		return &SequentialSampler{pageCount: spec.PageCount}
	case PatternZipf:
		z := spec.zipf()
		return &ZipfSampler{zipf: rand.NewZipf(pages, z.S, z.V, uint64(spec.PageCount-1))}
	case PatternLocality:
		return &LocalitySampler{
			pages:     pages,
			phases:    rng.ForSubsystem(SubsystemPhases),
			pageCount: spec.PageCount,
			cfg:       spec.locality(),
		}
	default:
		return &UniformSampler{rng: pages, pageCount: spec.PageCount}
	}
}
