package phonology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onomast-labs/onomast/pkg/core"
)

func cvcSpec() core.Spec {
	return core.Spec{
		Pattern: "CVC",
		Phonemes: map[string]core.PhonemeSet{
			"C": core.Phones("ptk"),
			"V": core.Phones("ai"),
		},
		MinSyllables: 1,
		MaxSyllables: 1,
	}
}

func TestGeneratorEnumeratesExactCVCSet(t *testing.T) {
	// C={p,t,k}, V={a,i}, no restrictions, identity orthography:
	// only the 3*2*3 = 18 combinations may ever appear.
	expected := make(map[string]bool)
	for _, c1 := range []string{"p", "t", "k"} {
		for _, v := range []string{"a", "i"} {
			for _, c2 := range []string{"p", "t", "k"} {
				expected[c1+v+c2] = true
			}
		}
	}
	require.Len(t, expected, 18)

	g, err := NewGenerator(cvcSpec(), testRand(7))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		syll, err := g.Generate()
		require.NoError(t, err)
		require.True(t, expected[syll], "unexpected syllable %q", syll)
		seen[syll] = true
	}
	// The weighted sampler still reaches the whole space eventually.
	assert.Greater(t, len(seen), 10, "expected broad coverage of the 18 possible syllables")
}

func TestGeneratorRespectsRestrictions(t *testing.T) {
	spec := core.Spec{
		Pattern: "CVC",
		Phonemes: map[string]core.PhonemeSet{
			"C": core.Phones("ptkbdgmnlrsʃ"),
			"V": core.Phones("aeiou"),
		},
		MinSyllables: 1,
		MaxSyllables: 1,
		Restrictions: DefaultRestrictions,
	}
	g, err := NewGenerator(spec, testRand(8))
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		syll, err := g.Generate()
		require.NoError(t, err)
		for _, f := range DefaultRestrictions.Forbidden {
			assert.NotContains(t, syll, f)
		}
		runes := []rune(syll)
		for j := 1; j < len(runes); j++ {
			assert.NotEqual(t, runes[j-1], runes[j], "adjacent duplicate in %q", syll)
		}
	}
}

func TestGeneratorOptionalMarker(t *testing.T) {
	spec := core.Spec{
		Pattern: "CV?",
		Phonemes: map[string]core.PhonemeSet{
			"C": core.Phones("p"),
			"V": core.Phones("a"),
		},
		MinSyllables: 1,
		MaxSyllables: 1,
	}
	g, err := NewGenerator(spec, testRand(9))
	require.NoError(t, err)

	got := map[string]int{}
	for i := 0; i < 1000; i++ {
		syll, err := g.Generate()
		require.NoError(t, err)
		got[syll]++
	}
	// The marker drops the vowel half the time.
	assert.Len(t, got, 2)
	assert.Greater(t, got["pa"], 0)
	assert.Greater(t, got["p"], 0)
}

func TestGeneratorOptionalMarkerOnEmptyBuffer(t *testing.T) {
	// "C??" can drop the consonant at the first marker; the second
	// marker then operates on an empty buffer and must remove nothing.
	spec := core.Spec{
		Pattern: "C??",
		Phonemes: map[string]core.PhonemeSet{
			"C": core.Phones("p"),
		},
		MinSyllables: 1,
		MaxSyllables: 1,
	}
	g, err := NewGenerator(spec, testRand(10))
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		syll, err := g.Generate()
		require.NoError(t, err)
		assert.Contains(t, []string{"", "p"}, syll)
	}
}

func TestGeneratorExhaustsOnImpossibleRestrictions(t *testing.T) {
	// Every candidate is "aa", which the doubles rule forbids.
	spec := core.Spec{
		Pattern: "VV",
		Phonemes: map[string]core.PhonemeSet{
			"V": core.Phones("a"),
		},
		MinSyllables: 1,
		MaxSyllables: 1,
		Restrictions: core.RestrictionSet{NoDoubles: true},
	}
	g, err := NewGenerator(spec, testRand(11))
	require.NoError(t, err)
	g.SetMaxAttempts(50)

	_, err = g.Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrAttemptsExhausted)
}

func TestGeneratorTransliterates(t *testing.T) {
	spec := core.Spec{
		Pattern: "CV",
		Phonemes: map[string]core.PhonemeSet{
			"C": core.Phones("ʃ"),
			"V": core.Phones("A"),
		},
		MinSyllables: 1,
		MaxSyllables: 1,
		Orthography:  NewOrthography(nil, nil, " "),
	}
	g, err := NewGenerator(spec, testRand(12))
	require.NoError(t, err)

	syll, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, "shá", syll)
}

func TestGeneratorRejectsInvalidSpec(t *testing.T) {
	spec := cvcSpec()
	spec.Pattern = "CVL"
	_, err := NewGenerator(spec, testRand(13))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidSpec)
}

func TestInventoryConsistency(t *testing.T) {
	t.Run("patterns reference known roles", func(t *testing.T) {
		for _, p := range SyllablePatterns {
			for _, tok := range p.Tokens() {
				if tok == core.Optional {
					continue
				}
				assert.True(t, core.IsRole(tok), "pattern %q has unknown token %q", p, string(tok))
			}
		}
	})

	t.Run("no empty inventories", func(t *testing.T) {
		for _, group := range [][]string{ConsonantSets, SibilantSets, LiquidSets, FinalSets, VowelSets} {
			for _, set := range group {
				assert.NotEmpty(t, core.Phones(set))
			}
		}
	})

	t.Run("orthography names align with overlays", func(t *testing.T) {
		require.Len(t, ConsonantOrthographyNames, len(ConsonantOrthographies))
		require.Len(t, VowelOrthographyNames, len(VowelOrthographies))
	})
}

func TestNewOrthographyMergePrecedence(t *testing.T) {
	o := NewOrthography(ConsonantOrthographies[1], VowelOrthographies[1], "-")

	// Overlay wins over the default table.
	assert.Equal(t, "š", o.Display("ʃ"))
	assert.Equal(t, "ä", o.Display("A"))
	// Untouched defaults survive the merge.
	assert.Equal(t, "ng", o.Display("ŋ"))
	// Identity fallback for unmapped symbols.
	assert.Equal(t, "p", o.Display("p"))
	assert.Equal(t, "-", o.Joiner)

	// Merging must not mutate the shared default table.
	assert.Equal(t, "sh", DefaultOrthography["ʃ"])
}

func TestTransliterationIdempotentOverInventories(t *testing.T) {
	// Transliterating twice equals transliterating once for every symbol
	// any inventory can produce, under every orthography variant.
	var producible []string
	for _, group := range [][]string{ConsonantSets, SibilantSets, LiquidSets, FinalSets, VowelSets} {
		for _, set := range group {
			producible = append(producible, set)
		}
	}
	raw := strings.Join(producible, "")

	for ci, cOverlay := range ConsonantOrthographies {
		for vi, vOverlay := range VowelOrthographies {
			o := NewOrthography(cOverlay, vOverlay, " ")
			once := o.Transliterate(raw)
			assert.Equal(t, once, o.Transliterate(once),
				"orthography %s/%s is not idempotent",
				ConsonantOrthographyNames[ci], VowelOrthographyNames[vi])
		}
	}
}
