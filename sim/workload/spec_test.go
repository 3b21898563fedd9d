package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadReferenceSpec_ValidYAML(t *testing.T) {
	path := writeTempFile(t, "spec.yaml", `
version: "1"
seed: 7
pattern: locality
length: 200
page_count: 32
locality:
  working_set_size: 5
  phase_length: 40
  jump_probability: 0.2
`)
	spec, err := LoadReferenceSpec(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), spec.Seed)
	assert.Equal(t, PatternLocality, spec.Pattern)
	assert.Equal(t, 200, spec.Length)
	require.NotNil(t, spec.Locality)
	assert.Equal(t, 5, spec.Locality.WorkingSetSize)
	assert.Nil(t, spec.Zipf)
	assert.NoError(t, spec.Validate())
}

func TestLoadReferenceSpec_UnknownField_Rejected(t *testing.T) {
	// GIVEN a typo in a field name
	path := writeTempFile(t, "spec.yaml", "pattern: uniform\npage_cnt: 10\n")

	// WHEN loaded
	_, err := LoadReferenceSpec(path)

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestLoadReferenceSpec_NonexistentFile(t *testing.T) {
	_, err := LoadReferenceSpec("/nonexistent/spec.yaml")
	assert.Error(t, err)
}

func TestReferenceSpec_Validate_Errors(t *testing.T) {
	base := func() ReferenceSpec {
		return ReferenceSpec{Pattern: PatternUniform, Length: 10, PageCount: 8}
	}
	tests := []struct {
		name   string
		mutate func(s *ReferenceSpec)
	}{
		{"bad version", func(s *ReferenceSpec) { s.Version = "2" }},
		{"bad pattern", func(s *ReferenceSpec) { s.Pattern = "gaussian" }},
		{"negative length", func(s *ReferenceSpec) { s.Length = -1 }},
		{"zero pages", func(s *ReferenceSpec) { s.PageCount = 0 }},
		{"working set too big", func(s *ReferenceSpec) {
			s.Locality = &LocalitySpec{WorkingSetSize: 9, PhaseLength: 1}
		}},
		{"zero phase", func(s *ReferenceSpec) {
			s.Locality = &LocalitySpec{WorkingSetSize: 2, PhaseLength: 0}
		}},
		{"jump above one", func(s *ReferenceSpec) {
			s.Locality = &LocalitySpec{WorkingSetSize: 2, PhaseLength: 3, JumpProbability: 1.5}
		}},
		{"zipf s too small", func(s *ReferenceSpec) { s.Zipf = &ZipfSpec{S: 1.0, V: 1.0} }},
		{"zipf v too small", func(s *ReferenceSpec) { s.Zipf = &ZipfSpec{S: 2.0, V: 0.5} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}

	valid := base()
	assert.NoError(t, valid.Validate())
}
