package sim

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/paging-sim/paging-sim/sim/trace"
)

var (
	// ErrInvalidConfiguration is returned when the frame count is not positive.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidAlgorithm is returned by dispatch for names or values outside the four policies.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
)

// Algorithm selects a page-replacement policy.
type Algorithm int

const (
	FIFO Algorithm = iota
	LRU
	Optimal
	Clock
)

var algorithmNames = map[Algorithm]string{
	FIFO:    "FIFO",
	LRU:     "LRU",
	Optimal: "Optimal",
	Clock:   "Clock",
}

// validAlgorithms maps accepted lower-case names (and aliases) to policies.
// Shared by ParseAlgorithm and ValidAlgorithmNames.
var validAlgorithms = map[string]Algorithm{
	"fifo":          FIFO,
	"lru":           LRU,
	"optimal":       Optimal,
	"opt":           Optimal,
	"clock":         Clock,
	"second-chance": Clock,
}

// AllAlgorithms returns every policy in declaration order.
func AllAlgorithms() []Algorithm {
	return []Algorithm{FIFO, LRU, Optimal, Clock}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is one of the four known policies.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// MarshalText encodes the algorithm by name so exported traces stay readable.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(a))
	}
	return []byte(strings.ToLower(a.String())), nil
}

// UnmarshalText accepts any name understood by ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm resolves a case-insensitive policy name.
func ParseAlgorithm(name string) (Algorithm, error) {
	if alg, ok := validAlgorithms[strings.ToLower(strings.TrimSpace(name))]; ok {
		return alg, nil
	}
	return 0, fmt.Errorf("%w %q; valid: %s", ErrInvalidAlgorithm, name, strings.Join(ValidAlgorithmNames(), ", "))
}

// IsValidAlgorithm returns true if name is a recognized policy name or alias.
func IsValidAlgorithm(name string) bool {
	_, ok := validAlgorithms[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ValidAlgorithmNames returns all accepted names, sorted.
func ValidAlgorithmNames() []string {
	names := make([]string, 0, len(validAlgorithms))
	for name := range validAlgorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Simulate runs one policy over refs with frameCount frames.
func Simulate(alg Algorithm, refs []PageID, frameCount int) (*SimulationResult, error) {
	return SimulateWithTrace(alg, refs, frameCount, nil)
}

// SimulateWithTrace is Simulate plus fault-decision recording into st.
// A nil st (or one whose level is not "decisions") records nothing.
func SimulateWithTrace(alg Algorithm, refs []PageID, frameCount int, st *trace.SimulationTrace) (*SimulationResult, error) {
	switch alg {
	case FIFO:
		return simulate(alg, refs, frameCount, newFIFOReplacer, st)
	case LRU:
		return simulate(alg, refs, frameCount, newLRUReplacer, st)
	case Optimal:
		return simulate(alg, refs, frameCount, newOptimalReplacer, st)
	case Clock:
		return simulate(alg, refs, frameCount, newClockReplacer, st)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(alg))
	}
}

// SimulateFIFO evicts the page that was admitted earliest.
func SimulateFIFO(refs []PageID, frameCount int) (*SimulationResult, error) {
	return Simulate(FIFO, refs, frameCount)
}

// SimulateLRU evicts the page whose last use is oldest.
func SimulateLRU(refs []PageID, frameCount int) (*SimulationResult, error) {
	return Simulate(LRU, refs, frameCount)
}

// SimulateOptimal evicts the page whose next use is farthest in the future.
func SimulateOptimal(refs []PageID, frameCount int) (*SimulationResult, error) {
	return Simulate(Optimal, refs, frameCount)
}

// SimulateClock evicts with the second-chance reference-bit scan.
func SimulateClock(refs []PageID, frameCount int) (*SimulationResult, error) {
	return Simulate(Clock, refs, frameCount)
}
