package workload

import (
	"fmt"
	"sort"
)

// Built-in scenario presets for classic replacement-policy behaviors.
// Each returns a valid ReferenceSpec ready for use with Generate.

// ScenarioLoop is a cyclic scan over pageCount pages. With fewer frames than
// pages, FIFO, LRU, and Clock fault on every reference.
func ScenarioLoop(seed int64, length, pageCount int) *ReferenceSpec {
	return &ReferenceSpec{Version: "1", Seed: seed, Pattern: PatternSequential, Length: length, PageCount: pageCount}
}

// ScenarioHotSet keeps most references inside a small working set that drifts
// every few dozen references.
func ScenarioHotSet(seed int64, length, pageCount int) *ReferenceSpec {
	ws := min(4, pageCount)
	return &ReferenceSpec{
		Version: "1", Seed: seed, Pattern: PatternLocality, Length: length, PageCount: pageCount,
		Locality: &LocalitySpec{WorkingSetSize: ws, PhaseLength: 25, JumpProbability: 0.05},
	}
}

// ScenarioSkewed concentrates references on a few popular pages.
func ScenarioSkewed(seed int64, length, pageCount int) *ReferenceSpec {
	return &ReferenceSpec{
		Version: "1", Seed: seed, Pattern: PatternZipf, Length: length, PageCount: pageCount,
		Zipf: &ZipfSpec{S: 1.5, V: 1.0},
	}
}

// ScenarioRandom references every page with equal probability.
func ScenarioRandom(seed int64, length, pageCount int) *ReferenceSpec {
	return &ReferenceSpec{Version: "1", Seed: seed, Pattern: PatternUniform, Length: length, PageCount: pageCount}
}

var scenarios = map[string]func(seed int64, length, pageCount int) *ReferenceSpec{
	"loop":    ScenarioLoop,
	"hot-set": ScenarioHotSet,
	"skewed":  ScenarioSkewed,
	"random":  ScenarioRandom,
}

// ScenarioNames returns the names accepted by NewScenario, sorted.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScenario builds a named scenario preset.
func NewScenario(name string, seed int64, length, pageCount int) (*ReferenceSpec, error) {
	build, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q; valid: %v", name, ScenarioNames())
	}
	return build(seed, length, pageCount), nil
}
