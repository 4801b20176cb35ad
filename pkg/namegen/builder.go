package namegen

import (
	"fmt"
	"math/rand/v2"

	"github.com/onomast-labs/onomast/pkg/core"
	"github.com/onomast-labs/onomast/pkg/phonology"
)

// Builder assembles language specs from the phonology inventories.
type Builder struct {
	rng     *rand.Rand
	sampler *phonology.Sampler
}

// NewBuilder returns a builder over the given random source.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng, sampler: phonology.NewSampler(rng)}
}

// Random assembles a complete random spec: a weighted pattern and
// phoneme set choice, syllable bounds, orthography overlays and joiner.
// The result always validates.
func (b *Builder) Random() core.Spec {
	pattern := phonology.SyllablePatterns[b.sampler.Index(len(phonology.SyllablePatterns))]

	phonemes := map[string]core.PhonemeSet{
		string(core.RoleConsonant): core.Phones(b.sampler.Pick(phonology.ConsonantSets)),
		string(core.RoleVowel):     core.Phones(b.sampler.Pick(phonology.VowelSets)),
		string(core.RoleSibilant):  core.Phones(b.sampler.Pick(phonology.SibilantSets)),
		string(core.RoleFinal):     core.Phones(b.sampler.Pick(phonology.FinalSets)),
		string(core.RoleLiquid):    core.Phones(b.sampler.Pick(phonology.LiquidSets)),
	}

	minSyll := 1 + b.rng.IntN(2)
	maxSyll := minSyll + 1 + b.rng.IntN(5-minSyll)

	cStyle := phonology.ConsonantOrthographies[b.rng.IntN(len(phonology.ConsonantOrthographies))]
	vStyle := phonology.VowelOrthographies[b.rng.IntN(len(phonology.VowelOrthographies))]
	joiner := phonology.Joiners[b.rng.IntN(len(phonology.Joiners))]

	return core.Spec{
		Pattern:      pattern,
		Phonemes:     phonemes,
		MinSyllables: minSyll,
		MaxSyllables: maxSyll,
		Restrictions: phonology.DefaultRestrictions,
		Orthography:  phonology.NewOrthography(cStyle, vStyle, joiner),
	}
}

// Selections index into the phonology inventories to build a spec from
// explicit choices (interactive selection or flags).
type Selections struct {
	Pattern        int
	Consonants     int
	Vowels         int
	Sibilants      int
	Finals         int
	Liquids        int
	ConsonantStyle int
	VowelStyle     int
	Joiner         int
	MinSyllables   int
	MaxSyllables   int
}

// FromSelections builds and validates a spec from inventory indices.
func (b *Builder) FromSelections(sel Selections) (core.Spec, error) {
	checks := []struct {
		name string
		idx  int
		size int
	}{
		{"pattern", sel.Pattern, len(phonology.SyllablePatterns)},
		{"consonants", sel.Consonants, len(phonology.ConsonantSets)},
		{"vowels", sel.Vowels, len(phonology.VowelSets)},
		{"sibilants", sel.Sibilants, len(phonology.SibilantSets)},
		{"finals", sel.Finals, len(phonology.FinalSets)},
		{"liquids", sel.Liquids, len(phonology.LiquidSets)},
		{"consonant style", sel.ConsonantStyle, len(phonology.ConsonantOrthographies)},
		{"vowel style", sel.VowelStyle, len(phonology.VowelOrthographies)},
		{"joiner", sel.Joiner, len(phonology.Joiners)},
	}
	for _, c := range checks {
		if c.idx < 0 || c.idx >= c.size {
			return core.Spec{}, fmt.Errorf("%w: %s selection %d out of range [0,%d)", core.ErrInvalidSpec, c.name, c.idx, c.size)
		}
	}

	spec := core.Spec{
		Pattern: phonology.SyllablePatterns[sel.Pattern],
		Phonemes: map[string]core.PhonemeSet{
			string(core.RoleConsonant): core.Phones(phonology.ConsonantSets[sel.Consonants]),
			string(core.RoleVowel):     core.Phones(phonology.VowelSets[sel.Vowels]),
			string(core.RoleSibilant):  core.Phones(phonology.SibilantSets[sel.Sibilants]),
			string(core.RoleFinal):     core.Phones(phonology.FinalSets[sel.Finals]),
			string(core.RoleLiquid):    core.Phones(phonology.LiquidSets[sel.Liquids]),
		},
		MinSyllables: sel.MinSyllables,
		MaxSyllables: sel.MaxSyllables,
		Restrictions: phonology.DefaultRestrictions,
		Orthography: phonology.NewOrthography(
			phonology.ConsonantOrthographies[sel.ConsonantStyle],
			phonology.VowelOrthographies[sel.VowelStyle],
			phonology.Joiners[sel.Joiner],
		),
	}
	if err := spec.Validate(); err != nil {
		return core.Spec{}, err
	}
	return spec, nil
}
