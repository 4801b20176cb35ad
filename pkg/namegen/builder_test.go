package namegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onomast-labs/onomast/pkg/core"
	"github.com/onomast-labs/onomast/pkg/phonology"
)

func TestBuilderRandomAlwaysValidates(t *testing.T) {
	b := NewBuilder(testRand(200))
	for i := 0; i < 200; i++ {
		spec := b.Random()
		require.NoError(t, spec.Validate(), "random spec %d invalid: %+v", i, spec)
	}
}

func TestBuilderRandomSyllableBounds(t *testing.T) {
	b := NewBuilder(testRand(201))
	for i := 0; i < 500; i++ {
		spec := b.Random()
		assert.GreaterOrEqual(t, spec.MinSyllables, 1)
		assert.Less(t, spec.MinSyllables, spec.MaxSyllables)
		assert.LessOrEqual(t, spec.MaxSyllables, 5)
	}
}

func TestBuilderRandomGeneratesNames(t *testing.T) {
	rng := testRand(202)
	spec := NewBuilder(rng).Random()
	l, err := New(spec, rng)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		name, err := l.GenerateName("city")
		require.NoError(t, err)
		assert.NotEmpty(t, name)
	}
}

func TestFromSelections(t *testing.T) {
	b := NewBuilder(testRand(203))

	sel := Selections{
		Pattern:      0, // "CVC"
		MinSyllables: 1,
		MaxSyllables: 3,
	}
	spec, err := b.FromSelections(sel)
	require.NoError(t, err)
	assert.Equal(t, phonology.SyllablePatterns[0], spec.Pattern)
	assert.Equal(t, phonology.DefaultRestrictions, spec.Restrictions)
	assert.NotEmpty(t, spec.Orthography.Symbols)

	l, err := New(spec, testRand(203))
	require.NoError(t, err)
	_, err = l.GenerateName("land")
	require.NoError(t, err)
}

func TestFromSelectionsOutOfRange(t *testing.T) {
	b := NewBuilder(testRand(204))

	cases := []struct {
		name string
		sel  Selections
	}{
		{"pattern too large", Selections{Pattern: len(phonology.SyllablePatterns), MinSyllables: 1, MaxSyllables: 2}},
		{"negative consonants", Selections{Consonants: -1, MinSyllables: 1, MaxSyllables: 2}},
		{"joiner too large", Selections{Joiner: len(phonology.Joiners), MinSyllables: 1, MaxSyllables: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.FromSelections(tc.sel)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidSpec)
		})
	}
}

func TestFromSelectionsInvalidSyllableRange(t *testing.T) {
	b := NewBuilder(testRand(205))
	_, err := b.FromSelections(Selections{MinSyllables: 3, MaxSyllables: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidSpec)
}
