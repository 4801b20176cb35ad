package namegen

import (
	"math/rand/v2"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/onomast-labs/onomast/pkg/core"
	"github.com/onomast-labs/onomast/pkg/phonology"
)

// Well-known pool identifiers.
const (
	// GenericPool is the unnamed pool. It refreshes its vocabulary more
	// often than named pools, keeping the language varied overall.
	GenericPool = ""

	// GenitivePool and DefinitePool hold the marker morphemes woven
	// into composed names ("X of Y", "the X").
	GenitivePool = "of"
	DefinitePool = "the"
)

// Extra-slot parameters of the reuse policy. A pool with L stored items
// and E extra slots reuses an existing item with probability L/(L+E),
// so small E means strong reuse.
const (
	morphemeExtrasNamed   = 1
	morphemeExtrasGeneric = 10
	wordExtrasNamed       = 2
	wordExtrasGeneric     = 3
)

// Language is the default Flavor implementation: one constructed
// language instance with exclusively owned generation state.
type Language struct {
	spec      core.Spec
	rng       *rand.Rand
	syllables *phonology.Generator
	upper     cases.Caser

	morphemes map[string][]string
	words     map[string][]string
	names     map[string]map[string]struct{}

	// minChars/maxChars derive from the pattern length; accepted names
	// have rune counts in [minChars, maxChars*2].
	minChars int
	maxChars int

	// maxAttempts bounds every retry loop; zero means unbounded.
	maxAttempts int
}

// New validates the spec and returns a ready language instance bound to
// the given random source. All pools start empty.
func New(spec core.Spec, rng *rand.Rand) (*Language, error) {
	syllables, err := phonology.NewGenerator(spec, rng)
	if err != nil {
		return nil, err
	}

	n := spec.Pattern.Length()
	minChars, maxChars := n, n*3
	if n < 3 {
		minChars, maxChars = n+1, n*4
	}

	return &Language{
		spec:      spec,
		rng:       rng,
		syllables: syllables,
		upper:     cases.Upper(language.Und),
		morphemes: make(map[string][]string),
		words:     make(map[string][]string),
		names:     make(map[string]map[string]struct{}),
		minChars:  minChars,
		maxChars:  maxChars,
	}, nil
}

// SetMaxAttempts bounds the retry loops for tests. Generation returns
// core.ErrAttemptsExhausted once a loop hits the bound. The default of
// zero retries until success, which is the production behavior.
func (l *Language) SetMaxAttempts(n int) {
	l.maxAttempts = n
	l.syllables.SetMaxAttempts(n)
}

// GenerateSyllable synthesizes one transliterated syllable.
func (l *Language) GenerateSyllable() (string, error) {
	return l.syllables.Generate()
}

// GenerateWord returns a word for the pool. With L words stored and E
// extra slots (named pools E=2, generic E=3) an existing word is reused
// with probability L/(L+E); otherwise a fresh word is composed and
// stored, retrying while it collides with a word in any pool.
func (l *Language) GenerateWord(pool string) (string, error) {
	extras := wordExtrasNamed
	if pool == GenericPool {
		extras = wordExtrasGeneric
	}

	for attempts := 0; ; attempts++ {
		if l.maxAttempts > 0 && attempts >= l.maxAttempts {
			return "", core.ErrAttemptsExhausted
		}

		stored := l.words[pool]
		if n := l.rng.IntN(len(stored) + extras); n < len(stored) {
			return stored[n], nil
		}

		word, err := l.composeWord(pool)
		if err != nil {
			return "", err
		}
		if l.wordExists(word) {
			continue
		}
		l.words[pool] = append(stored, word)
		return word, nil
	}
}

// composeWord concatenates morphemes for the pool. The morpheme count
// is the width of the configured syllable range.
func (l *Language) composeWord(pool string) (string, error) {
	count := l.spec.MaxSyllables - l.spec.MinSyllables + 1
	var b strings.Builder
	for i := 0; i < count; i++ {
		m, err := l.morpheme(pool)
		if err != nil {
			return "", err
		}
		b.WriteString(m)
	}
	return b.String(), nil
}

// morpheme returns a morpheme for the pool under the reuse policy
// (named pools E=1, generic E=10). A fresh syllable that collides with
// a morpheme already stored in any pool is discarded and redrawn.
func (l *Language) morpheme(pool string) (string, error) {
	extras := morphemeExtrasNamed
	if pool == GenericPool {
		extras = morphemeExtrasGeneric
	}

	for attempts := 0; ; attempts++ {
		if l.maxAttempts > 0 && attempts >= l.maxAttempts {
			return "", core.ErrAttemptsExhausted
		}

		stored := l.morphemes[pool]
		if n := l.rng.IntN(len(stored) + extras); n < len(stored) {
			return stored[n], nil
		}

		syll, err := l.syllables.Generate()
		if err != nil {
			return "", err
		}
		if l.morphemeExists(syll) {
			continue
		}
		l.morphemes[pool] = append(stored, syll)
		return syll, nil
	}
}

// GenerateName mints a name for the pool: one or two capitalized words,
// optionally decorated with the genitive marker between two words or
// the definite marker in front. The accepted name is globally unique —
// it is neither a substring of, nor contains, any name previously
// accepted in any pool.
func (l *Language) GenerateName(pool string) (string, error) {
	join := l.spec.Orthography.Join

	for attempts := 0; ; attempts++ {
		if l.maxAttempts > 0 && attempts >= l.maxAttempts {
			return "", core.ErrAttemptsExhausted
		}

		genitive, err := l.morpheme(GenitivePool)
		if err != nil {
			return "", err
		}
		definite, err := l.morpheme(DefinitePool)
		if err != nil {
			return "", err
		}

		var name string
		if l.rng.Float64() < 0.5 {
			word, err := l.GenerateWord(pool)
			if err != nil {
				return "", err
			}
			name = l.capitalize(word)
		} else {
			first, err := l.GenerateWord(l.pickSourcePool(pool))
			if err != nil {
				return "", err
			}
			second, err := l.GenerateWord(l.pickSourcePool(pool))
			if err != nil {
				return "", err
			}
			w1, w2 := l.capitalize(first), l.capitalize(second)
			if w1 == w2 {
				continue
			}
			if l.rng.Float64() < 0.5 {
				name = join(w1, w2)
			} else {
				name = join(w1, genitive, w2)
			}
		}

		if l.rng.Float64() < 0.1 {
			name = join(definite, name)
		}

		if length := utf8.RuneCountInString(name); length < l.minChars || length > l.maxChars*2 {
			continue
		}
		if !l.isUniqueName(name) {
			continue
		}

		if l.names[pool] == nil {
			l.names[pool] = make(map[string]struct{})
		}
		l.names[pool][name] = struct{}{}
		return name, nil
	}
}

// pickSourcePool keeps a two-word name on its semantic pool 60% of the
// time and borrows from the generic pool otherwise.
func (l *Language) pickSourcePool(pool string) string {
	if l.rng.Float64() < 0.6 {
		return pool
	}
	return GenericPool
}

// capitalize upper-cases the first rune of a generated word.
func (l *Language) capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || r == utf8.RuneError {
		return word
	}
	return l.upper.String(word[:size]) + word[size:]
}

func (l *Language) morphemeExists(m string) bool {
	for _, stored := range l.morphemes {
		for _, s := range stored {
			if s == m {
				return true
			}
		}
	}
	return false
}

func (l *Language) wordExists(w string) bool {
	for _, stored := range l.words {
		for _, s := range stored {
			if s == w {
				return true
			}
		}
	}
	return false
}

// isUniqueName applies the literal bidirectional substring rule across
// every pool's accepted names, decoration included.
func (l *Language) isUniqueName(name string) bool {
	for _, pool := range l.names {
		for other := range pool {
			if strings.Contains(other, name) || strings.Contains(name, other) {
				return false
			}
		}
	}
	return true
}

// NameLengthBounds returns the inclusive rune-count range accepted for
// names, derived from the pattern length.
func (l *Language) NameLengthBounds() (min, max int) {
	return l.minChars, l.maxChars * 2
}

// Spec returns a deep copy of the language specification.
func (l *Language) Spec() core.Spec {
	return l.spec.Clone()
}

// Morphemes returns a copy of the morphemes stored for the pool.
func (l *Language) Morphemes(pool string) []string {
	return append([]string(nil), l.morphemes[pool]...)
}

// Words returns a copy of the words stored for the pool.
func (l *Language) Words(pool string) []string {
	return append([]string(nil), l.words[pool]...)
}

// Names returns the names accepted for the pool, sorted.
func (l *Language) Names(pool string) []string {
	out := make([]string, 0, len(l.names[pool]))
	for name := range l.names[pool] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Pools lists every pool identifier that holds any morphemes, words or
// names, sorted with the generic pool first.
func (l *Language) Pools() []string {
	seen := make(map[string]struct{})
	for pool := range l.morphemes {
		seen[pool] = struct{}{}
	}
	for pool := range l.words {
		seen[pool] = struct{}{}
	}
	for pool := range l.names {
		seen[pool] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for pool := range seen {
		out = append(out, pool)
	}
	sort.Strings(out)
	return out
}

var _ core.Flavor = (*Language)(nil)
