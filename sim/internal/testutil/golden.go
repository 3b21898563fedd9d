// Package testutil holds the golden dataset shared by the simulation tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// GoldenDataset mirrors testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one reference sequence with the expected fault count per policy.
// Fault keys are lower-case algorithm names ("fifo", "lru", "optimal", "clock").
type GoldenTestCase struct {
	Name       string         `json:"name"`
	References []int          `json:"references"`
	Frames     int            `json:"frames"`
	Faults     map[string]int `json:"faults"`
}

// goldenPath locates testdata/ at the repository root from this file's directory.
func goldenPath(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "resolving testutil source path")
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
}

// LoadGoldenDataset reads and decodes the golden dataset, failing the test on any error.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()
	data, err := os.ReadFile(goldenPath(t))
	require.NoError(t, err, "reading golden dataset")

	var dataset GoldenDataset
	require.NoError(t, json.Unmarshal(data, &dataset), "parsing golden dataset")
	require.NotEmpty(t, dataset.Tests, "golden dataset has no cases")
	return &dataset
}
