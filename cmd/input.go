package cmd

import (
	"fmt"
	"strconv"
	"strings"

	sim "github.com/paging-sim/paging-sim/sim"
	"github.com/paging-sim/paging-sim/sim/workload"
)

// defaultReferences is used when no reference text is entered.
var defaultReferences = []sim.PageID{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2}

const defaultFrameCount = 3

// parseReferences parses the page reference field. Empty input selects the
// default sequence; any bad token rejects the whole field.
func parseReferences(text string) ([]sim.PageID, error) {
	if strings.TrimSpace(text) == "" {
		refs := make([]sim.PageID, len(defaultReferences))
		copy(refs, defaultReferences)
		return refs, nil
	}
	return workload.ParseReferences(text)
}

// parseFrameCount parses the frame count field. Empty input selects the default.
func parseFrameCount(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return defaultFrameCount, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("frame count: %q is not an integer", text)
	}
	if n < 1 {
		return 0, fmt.Errorf("frame count: %w: must be at least 1, got %d", sim.ErrInvalidConfiguration, n)
	}
	return n, nil
}

// parseAlgorithms expands "all" to every policy; anything else must name one.
func parseAlgorithms(name string) ([]sim.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return sim.AllAlgorithms(), nil
	}
	alg, err := sim.ParseAlgorithm(name)
	if err != nil {
		return nil, fmt.Errorf("algorithm: %w", err)
	}
	return []sim.Algorithm{alg}, nil
}

// loadReferences reads references from a file when one is given, otherwise
// from the inline text.
func loadReferences(text, file string) ([]sim.PageID, error) {
	if file != "" && strings.TrimSpace(text) != "" {
		return nil, fmt.Errorf("--refs and --refs-file are mutually exclusive")
	}
	if file != "" {
		return workload.LoadReferenceFile(file)
	}
	return parseReferences(text)
}

// runInput is the validated input of one `run` invocation.
type runInput struct {
	refs       []sim.PageID
	frames     int
	algorithms []sim.Algorithm
	source     string
}

// resolveRunInput merges a scenario preset (if any) with explicit flags.
// changed reports whether a flag was set on the command line; explicit
// flags always win over the preset.
func resolveRunInput(opts runOptions, changed func(name string) bool) (*runInput, error) {
	in := &runInput{source: "flags"}

	if opts.scenario != "" {
		sc, err := loadScenario(opts.scenariosFile, opts.scenario)
		if err != nil {
			return nil, err
		}
		in.source = "scenario " + opts.scenario
		in.refs = sc.References
		in.frames = sc.Frames
		if in.algorithms, err = parseAlgorithms(sc.algorithmName()); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", opts.scenario, err)
		}
	}

	var err error
	if opts.scenario == "" || changed("refs") || changed("refs-file") {
		if in.refs, err = loadReferences(opts.refs, opts.refsFile); err != nil {
			return nil, err
		}
	}
	if opts.scenario == "" || changed("frames") {
		if in.frames, err = parseFrameCount(opts.frames); err != nil {
			return nil, err
		}
	}
	if opts.scenario == "" || changed("algorithm") {
		if in.algorithms, err = parseAlgorithms(opts.algorithm); err != nil {
			return nil, err
		}
	}
	return in, nil
}
