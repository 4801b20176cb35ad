package phonology

import (
	"math/rand/v2"
	"strings"

	"github.com/onomast-labs/onomast/pkg/core"
)

// Generator synthesizes syllables for one language spec. It walks the
// pattern token by token, samples phones through the weighted sampler,
// rejects candidates that violate a restriction, and transliterates the
// surviving raw phone sequence.
type Generator struct {
	pattern      core.Pattern
	phonemes     map[string]core.PhonemeSet
	restrictions core.RestrictionSet
	ortho        core.Orthography
	rng          *rand.Rand
	sampler      *Sampler

	// maxAttempts bounds the rejection-retry loop; zero means unbounded.
	maxAttempts int
}

// NewGenerator validates the spec and returns a syllable generator bound
// to the given random source.
func NewGenerator(spec core.Spec, rng *rand.Rand) (*Generator, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		pattern:      spec.Pattern,
		phonemes:     spec.Phonemes,
		restrictions: spec.Restrictions,
		ortho:        spec.Orthography,
		rng:          rng,
		sampler:      NewSampler(rng),
	}, nil
}

// SetMaxAttempts bounds the retry loop for tests. The default of zero
// retries until a valid syllable is produced.
func (g *Generator) SetMaxAttempts(n int) {
	g.maxAttempts = n
}

// Generate returns one transliterated syllable. A candidate matching any
// restriction is discarded whole and generation restarts; with a
// restriction set that forbids every possible syllable this loops
// forever unless a retry bound is set.
func (g *Generator) Generate() (string, error) {
	for attempts := 0; ; attempts++ {
		if g.maxAttempts > 0 && attempts >= g.maxAttempts {
			return "", core.ErrAttemptsExhausted
		}

		var phones []string
		for _, tok := range g.pattern.Tokens() {
			if tok == core.Optional {
				// Drop the previous phone half the time. Dropping from
				// an already-empty buffer removes nothing.
				if g.rng.Float64() > 0.5 && len(phones) > 0 {
					phones = phones[:len(phones)-1]
				}
				continue
			}
			phones = append(phones, g.sampler.Phone(g.phonemes[string(tok)]))
		}

		raw := strings.Join(phones, "")
		if g.restrictions.Violates(raw) {
			continue
		}
		return g.ortho.Transliterate(raw), nil
	}
}
