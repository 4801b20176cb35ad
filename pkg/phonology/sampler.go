package phonology

import (
	"math"
	"math/rand/v2"

	"github.com/onomast-labs/onomast/pkg/core"
)

// DefaultSkew is the exponent applied to the uniform draw. Higher values
// bias selection more strongly toward index 0.
const DefaultSkew = 2.0

// Sampler draws elements from ordered candidate sequences with a
// monotonic bias toward lower indices. Callers must never pass an empty
// sequence; that is a precondition violation, not a runtime error.
type Sampler struct {
	rng  *rand.Rand
	skew float64
}

// NewSampler creates a sampler over the given random source with the
// default skew exponent.
func NewSampler(rng *rand.Rand) *Sampler {
	return NewSkewedSampler(rng, DefaultSkew)
}

// NewSkewedSampler creates a sampler with an explicit skew exponent.
func NewSkewedSampler(rng *rand.Rand, skew float64) *Sampler {
	return &Sampler{rng: rng, skew: skew}
}

// Index draws a biased index in [0, n).
func (s *Sampler) Index(n int) int {
	idx := int(math.Pow(s.rng.Float64(), s.skew) * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Phone draws one symbol from a phoneme set.
func (s *Sampler) Phone(set core.PhonemeSet) string {
	return set[s.Index(len(set))]
}

// Pick draws one string from an ordered slice of options.
func (s *Sampler) Pick(options []string) string {
	return options[s.Index(len(options))]
}
