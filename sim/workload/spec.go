package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ReferenceSpec describes a synthetic page-reference sequence.
// Loaded from YAML via LoadReferenceSpec(path).
type ReferenceSpec struct {
	Version   string        `yaml:"version"`
	Seed      int64         `yaml:"seed"`
	Pattern   string        `yaml:"pattern"`
	Length    int           `yaml:"length"`
	PageCount int           `yaml:"page_count"` // pages are numbered 0..page_count-1
	Locality  *LocalitySpec `yaml:"locality,omitempty"`
	Zipf      *ZipfSpec     `yaml:"zipf,omitempty"`
}

// LocalitySpec configures the working-set pattern. Each phase picks a
// contiguous window of WorkingSetSize pages; references stay inside the
// window except for occasional jumps anywhere in the address space.
type LocalitySpec struct {
	WorkingSetSize  int     `yaml:"working_set_size"`
	PhaseLength     int     `yaml:"phase_length"`
	JumpProbability float64 `yaml:"jump_probability"`
}

// ZipfSpec parameterizes the skewed pattern; see math/rand.NewZipf.
type ZipfSpec struct {
	S float64 `yaml:"s"` // exponent, must be > 1
	V float64 `yaml:"v"` // offset, must be >= 1
}

// Pattern names.
const (
	PatternUniform    = "uniform"
	PatternLocality   = "locality"
	PatternZipf       = "zipf"
	PatternSequential = "sequential"
)

var validPatterns = map[string]bool{
	PatternUniform: true, PatternLocality: true, PatternZipf: true, PatternSequential: true,
}

var validVersions = map[string]bool{"": true, "1": true}

// Defaults applied when the optional pattern blocks are omitted.
var (
	DefaultLocality = LocalitySpec{WorkingSetSize: 4, PhaseLength: 20, JumpProbability: 0.1}
	DefaultZipf     = ZipfSpec{S: 1.2, V: 1.0}
)

// LoadReferenceSpec reads and parses a YAML reference specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadReferenceSpec(path string) (*ReferenceSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference spec: %w", err)
	}
	var spec ReferenceSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing reference spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *ReferenceSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported version %q; valid: 1", s.Version)
	}
	if !validPatterns[s.Pattern] {
		return fmt.Errorf("unknown pattern %q; valid: uniform, locality, zipf, sequential", s.Pattern)
	}
	if s.Length < 0 {
		return fmt.Errorf("length must be non-negative, got %d", s.Length)
	}
	if s.PageCount <= 0 {
		return fmt.Errorf("page_count must be positive, got %d", s.PageCount)
	}
	if s.Locality != nil {
		if err := s.Locality.validate(s.PageCount); err != nil {
			return fmt.Errorf("locality: %w", err)
		}
	}
	if s.Zipf != nil {
		if err := s.Zipf.validate(); err != nil {
			return fmt.Errorf("zipf: %w", err)
		}
	}
	return nil
}

func (l *LocalitySpec) validate(pageCount int) error {
	if l.WorkingSetSize <= 0 || l.WorkingSetSize > pageCount {
		return fmt.Errorf("working_set_size must be in [1, %d], got %d", pageCount, l.WorkingSetSize)
	}
	if l.PhaseLength <= 0 {
		return fmt.Errorf("phase_length must be positive, got %d", l.PhaseLength)
	}
	if math.IsNaN(l.JumpProbability) || l.JumpProbability < 0 || l.JumpProbability > 1 {
		return fmt.Errorf("jump_probability must be in [0, 1], got %f", l.JumpProbability)
	}
	return nil
}

func (z *ZipfSpec) validate() error {
	if math.IsNaN(z.S) || z.S <= 1 {
		return fmt.Errorf("s must be > 1, got %f", z.S)
	}
	if math.IsNaN(z.V) || z.V < 1 {
		return fmt.Errorf("v must be >= 1, got %f", z.V)
	}
	return nil
}

// locality returns the configured locality block, or DefaultLocality clamped to the page count.
func (s *ReferenceSpec) locality() LocalitySpec {
	if s.Locality != nil {
		return *s.Locality
	}
	l := DefaultLocality
	l.WorkingSetSize = min(l.WorkingSetSize, s.PageCount)
	return l
}

func (s *ReferenceSpec) zipf() ZipfSpec {
	if s.Zipf != nil {
		return *s.Zipf
	}
	return DefaultZipf
}
