package workload

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/paging-sim/paging-sim/sim"
)

// ReferenceSet is the YAML document written by `paging-sim generate` and
// accepted by LoadReferenceFile. Spec records how the sequence was produced
// and is informational only.
type ReferenceSet struct {
	Spec       *ReferenceSpec `yaml:"spec,omitempty"`
	References []sim.PageID   `yaml:"references"`
}

// ParseReferences parses a comma-separated list of non-negative page numbers.
// Whitespace around tokens is ignored; empty tokens and non-integers are errors.
func ParseReferences(text string) ([]sim.PageID, error) {
	fields := strings.Split(text, ",")
	refs := make([]sim.PageID, 0, len(fields))
	for i, field := range fields {
		page, err := parsePage(field)
		if err != nil {
			return nil, fmt.Errorf("page reference %d: %w", i+1, err)
		}
		refs = append(refs, page)
	}
	return refs, nil
}

func parsePage(token string) (sim.PageID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("empty value")
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", token)
	}
	if n < 0 {
		return 0, fmt.Errorf("%q is negative", token)
	}
	return sim.PageID(n), nil
}

// LoadReferenceFile reads a reference sequence from disk.
// Files ending in .yaml or .yml are parsed strictly as a ReferenceSet.
// Anything else is plain text: page numbers separated by commas, spaces or
// newlines, with '#' starting a comment that runs to end of line.
func LoadReferenceFile(path string) ([]sim.PageID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeReferenceSet(data)
	default:
		return parseReferenceText(data)
	}
}

func decodeReferenceSet(data []byte) ([]sim.PageID, error) {
	var set ReferenceSet
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing reference file: %w", err)
	}
	for i, p := range set.References {
		if p < 0 {
			return nil, fmt.Errorf("parsing reference file: reference %d is negative (%d)", i+1, p)
		}
	}
	if set.Spec != nil {
		logrus.Debugf("reference file generated with pattern=%s seed=%d", set.Spec.Pattern, set.Spec.Seed)
	}
	return set.References, nil
}

func parseReferenceText(data []byte) ([]sim.PageID, error) {
	var refs []sim.PageID
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		tokens := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, tok := range tokens {
			page, err := parsePage(tok)
			if err != nil {
				return nil, fmt.Errorf("reference file line %d: %w", lineNo, err)
			}
			refs = append(refs, page)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading reference file: %w", err)
	}
	return refs, nil
}

// MarshalReferenceSet renders refs (and optionally the spec that produced
// them) as YAML.
func MarshalReferenceSet(spec *ReferenceSpec, refs []sim.PageID) ([]byte, error) {
	data, err := yaml.Marshal(ReferenceSet{Spec: spec, References: refs})
	if err != nil {
		return nil, fmt.Errorf("marshaling reference set: %w", err)
	}
	return data, nil
}
