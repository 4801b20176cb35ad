package namegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onomast-labs/onomast/pkg/core"
)

func TestSpecFileRoundTrip(t *testing.T) {
	spec := NewBuilder(testRand(300)).Random()
	path := filepath.Join(t.TempDir(), "language.yaml")

	require.NoError(t, SaveSpec(path, spec))
	loaded, err := LoadSpec(path)
	require.NoError(t, err)

	assert.Equal(t, spec.Pattern, loaded.Pattern)
	assert.Equal(t, spec.MinSyllables, loaded.MinSyllables)
	assert.Equal(t, spec.MaxSyllables, loaded.MaxSyllables)
	assert.Equal(t, spec.Phonemes, loaded.Phonemes)
	assert.Equal(t, spec.Restrictions, loaded.Restrictions)
	assert.Equal(t, spec.Orthography.Joiner, loaded.Orthography.Joiner)
	assert.Equal(t, spec.Orthography.Symbols, loaded.Orthography.Symbols)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSpecMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pattern: [unclosed"), 0o644))

	_, err := LoadSpec(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadSpecRejectsInvalidSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	content := "pattern: CVC\nphonemes:\n  V: [a, e]\nmin_syllables: 1\nmax_syllables: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadSpec(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidSpec)
}
