package namegen

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onomast-labs/onomast/pkg/core"
	"github.com/onomast-labs/onomast/pkg/phonology"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// richSpec is a hand-built spec with a large syllable space so that
// fresh-morpheme collisions stay rare.
func richSpec() core.Spec {
	return core.Spec{
		Pattern: "CVC",
		Phonemes: map[string]core.PhonemeSet{
			"C": core.Phones("ptkbdgmnlrs"),
			"V": core.Phones("aeiou"),
		},
		MinSyllables: 1,
		MaxSyllables: 2,
		Restrictions: phonology.DefaultRestrictions,
		Orthography:  phonology.NewOrthography(nil, nil, " "),
	}
}

func newTestLanguage(t *testing.T, seed uint64) *Language {
	t.Helper()
	l, err := New(richSpec(), testRand(seed))
	require.NoError(t, err)
	return l
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	spec := richSpec()
	spec.MaxSyllables = 0
	_, err := New(spec, testRand(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidSpec)
}

func TestGenerateNameGlobalSubstringUniqueness(t *testing.T) {
	// Adversarial run: 200+ names across several pools; no accepted
	// name may be a substring of another, in either direction.
	l := newTestLanguage(t, 100)

	var all []string
	pools := []string{"city", "land", "river", GenericPool}
	for i := 0; i < 240; i++ {
		name, err := l.GenerateName(pools[i%len(pools)])
		require.NoError(t, err)
		all = append(all, name)
	}

	for i := range all {
		for j := range all {
			if i == j {
				continue
			}
			assert.False(t, strings.Contains(all[i], all[j]),
				"name %q contains name %q", all[i], all[j])
		}
	}
}

func TestGenerateNameLengthBounds(t *testing.T) {
	l := newTestLanguage(t, 101)
	lo, hi := l.NameLengthBounds()

	// Pattern "CVC" has length 3, so bounds are [3, 3*3*2].
	assert.Equal(t, 3, lo)
	assert.Equal(t, 18, hi)

	for i := 0; i < 100; i++ {
		name, err := l.GenerateName("city")
		require.NoError(t, err)
		length := utf8.RuneCountInString(name)
		assert.GreaterOrEqual(t, length, lo, "name %q too short", name)
		assert.LessOrEqual(t, length, hi, "name %q too long", name)
	}
}

func TestShortPatternLengthBounds(t *testing.T) {
	spec := richSpec()
	spec.Pattern = "CV"
	l, err := New(spec, testRand(102))
	require.NoError(t, err)

	// Patterns shorter than 3 tokens widen the lower bound.
	lo, hi := l.NameLengthBounds()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 16, hi)
}

func TestMorphemeReusePolicy(t *testing.T) {
	// Named pools (E=1) must reuse markedly more than the generic pool
	// (E=10). Seed both with 20 morphemes and measure the reuse rate
	// over 1000 draws; it approaches L/(L+E) as L grows.
	l := newTestLanguage(t, 103)

	seedPool := func(pool, prefix string) {
		for i := 0; i < 20; i++ {
			l.morphemes[pool] = append(l.morphemes[pool], prefix+string(rune('a'+i)))
		}
	}
	seedPool("city", "cy")
	seedPool(GenericPool, "gn")

	reuseRate := func(pool string) float64 {
		reused := 0
		for i := 0; i < 1000; i++ {
			before := len(l.morphemes[pool])
			_, err := l.morpheme(pool)
			require.NoError(t, err)
			if len(l.morphemes[pool]) == before {
				reused++
			}
		}
		return float64(reused) / 1000
	}

	named := reuseRate("city")
	generic := reuseRate(GenericPool)

	assert.Greater(t, named, 0.93, "named pool reuse rate")
	assert.Greater(t, generic, 0.80, "generic pool reuse rate")
	assert.Less(t, generic, 0.95, "generic pool must refresh more often than a named pool")
	assert.Greater(t, named, generic)
}

func TestMorphemesNeverSharedAcrossPools(t *testing.T) {
	l := newTestLanguage(t, 104)

	for i := 0; i < 150; i++ {
		_, err := l.GenerateName([]string{"city", "land"}[i%2])
		require.NoError(t, err)
	}

	owner := make(map[string]string)
	for pool, stored := range l.morphemes {
		for _, m := range stored {
			prev, taken := owner[m]
			assert.False(t, taken, "morpheme %q stored in pools %q and %q", m, prev, pool)
			owner[m] = pool
		}
	}
}

func TestWordsUniqueAcrossPools(t *testing.T) {
	l := newTestLanguage(t, 105)

	for i := 0; i < 150; i++ {
		_, err := l.GenerateName([]string{"city", "land", GenericPool}[i%3])
		require.NoError(t, err)
	}

	seen := make(map[string]string)
	for pool, stored := range l.words {
		for _, w := range stored {
			prev, taken := seen[w]
			assert.False(t, taken, "word %q stored in pools %q and %q", w, prev, pool)
			seen[w] = pool
		}
	}
}

func TestWordSyllableCount(t *testing.T) {
	// The morpheme count of a composed word is the width of the
	// configured syllable range: 2..4 gives 3 morphemes of pattern
	// "CV", hence 6 runes with this inventory.
	spec := core.Spec{
		Pattern: "CV",
		Phonemes: map[string]core.PhonemeSet{
			"C": core.Phones("ptkbdgmnlrs"),
			"V": core.Phones("aeiou"),
		},
		MinSyllables: 2,
		MaxSyllables: 4,
	}
	l, err := New(spec, testRand(106))
	require.NoError(t, err)

	word, err := l.composeWord("city")
	require.NoError(t, err)
	assert.Equal(t, 6, utf8.RuneCountInString(word))
}

func TestSeededCityPoolReusesStoredWord(t *testing.T) {
	// A "city" pool holding one stored word must, under E=2 extra
	// slots, echo that word frequently. Across 50 names at least one
	// must contain "taka".
	l := newTestLanguage(t, 107)
	l.words["city"] = []string{"taka"}

	found := false
	for i := 0; i < 50; i++ {
		name, err := l.GenerateName("city")
		require.NoError(t, err)
		if strings.Contains(strings.ToLower(name), "taka") {
			found = true
			break
		}
	}
	assert.True(t, found, "stored word was never reused as a name substituent")
}

func TestGenerateNameDeterministicGivenSeed(t *testing.T) {
	a := newTestLanguage(t, 108)
	b := newTestLanguage(t, 108)

	for i := 0; i < 30; i++ {
		pool := []string{"city", "land"}[i%2]
		nameA, err := a.GenerateName(pool)
		require.NoError(t, err)
		nameB, err := b.GenerateName(pool)
		require.NoError(t, err)
		require.Equal(t, nameA, nameB, "sequence diverged at name %d", i)
	}
}

func TestGenerateNameAttemptsExhausted(t *testing.T) {
	// Single-vowel language: every candidate name is "A", one rune,
	// below the minimum of 2, so acceptance is impossible.
	spec := core.Spec{
		Pattern: "V",
		Phonemes: map[string]core.PhonemeSet{
			"V": core.Phones("a"),
		},
		MinSyllables: 1,
		MaxSyllables: 1,
	}
	l, err := New(spec, testRand(109))
	require.NoError(t, err)
	l.SetMaxAttempts(25)

	_, err = l.GenerateName("city")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrAttemptsExhausted)
}

func TestRegistryViewsAreCopies(t *testing.T) {
	l := newTestLanguage(t, 110)
	_, err := l.GenerateName("city")
	require.NoError(t, err)

	morphs := l.Morphemes(GenitivePool)
	require.NotEmpty(t, morphs, "marker morphemes are created on first name")
	morphs[0] = "mutated"
	assert.NotEqual(t, "mutated", l.Morphemes(GenitivePool)[0])

	names := l.Names("city")
	require.Len(t, names, 1)
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", l.Names("city")[0])
}

func TestPoolsListing(t *testing.T) {
	l := newTestLanguage(t, 111)
	_, err := l.GenerateName("city")
	require.NoError(t, err)

	pools := l.Pools()
	assert.Contains(t, pools, "city")
	assert.Contains(t, pools, GenitivePool)
	assert.Contains(t, pools, DefinitePool)
}

func TestCapitalize(t *testing.T) {
	l := newTestLanguage(t, 112)
	assert.Equal(t, "Taka", l.capitalize("taka"))
	assert.Equal(t, "‘aka", l.capitalize("‘aka"), "non-letter first runes stay as-is")
	assert.Equal(t, "Šaka", l.capitalize("šaka"))
	assert.Equal(t, "", l.capitalize(""))
}

func TestLanguageImplementsFlavor(t *testing.T) {
	var _ core.Flavor = newTestLanguage(t, 113)
}
