package core

import "strings"

// RestrictionSet describes forbidden sound sequences that invalidate a
// candidate syllable before transliteration.
type RestrictionSet struct {
	// Forbidden lists literal substrings of phonetic symbols that must
	// not appear in a raw syllable (e.g. "lr", "sʃ").
	Forbidden []string `yaml:"forbidden"`

	// NoDoubles additionally forbids any adjacent duplicate phone,
	// the generic repeated-character pattern.
	NoDoubles bool `yaml:"no_doubles"`
}

// Violates reports whether the raw phone sequence matches any restriction.
func (r RestrictionSet) Violates(syllable string) bool {
	for _, f := range r.Forbidden {
		if f != "" && strings.Contains(syllable, f) {
			return true
		}
	}
	if r.NoDoubles {
		var prev rune
		for i, c := range syllable {
			if i > 0 && c == prev {
				return true
			}
			prev = c
		}
	}
	return false
}
