package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	sim "github.com/paging-sim/paging-sim/sim"
)

// Scenario is a named run preset in scenarios.yaml.
type Scenario struct {
	Description string       `yaml:"description"`
	References  []sim.PageID `yaml:"references"`
	Frames      int          `yaml:"frames"`
	Algorithm   string       `yaml:"algorithm"` // empty means all
}

// ScenarioConfig represents the full scenarios.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioConfig struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

func (s Scenario) algorithmName() string {
	if s.Algorithm == "" {
		return "all"
	}
	return s.Algorithm
}

func (s Scenario) validate() error {
	if s.Frames < 1 {
		return fmt.Errorf("frames: %w: must be at least 1, got %d", sim.ErrInvalidConfiguration, s.Frames)
	}
	for i, p := range s.References {
		if p < 0 {
			return fmt.Errorf("page reference %d: \"%d\" is negative", i+1, p)
		}
	}
	return nil
}

// loadScenarioConfig parses scenarios.yaml with strict field checking.
func loadScenarioConfig(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios file: %w", err)
	}
	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing scenarios file: %w", err)
	}
	return &cfg, nil
}

// loadScenario returns one validated preset by name.
func loadScenario(path, name string) (*Scenario, error) {
	cfg, err := loadScenarioConfig(path)
	if err != nil {
		return nil, err
	}
	sc, ok := cfg.Scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q in %s; available: %v", name, path, cfg.names())
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", name, err)
	}
	return &sc, nil
}

func (c *ScenarioConfig) names() []string {
	names := make([]string, 0, len(c.Scenarios))
	for name := range c.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
