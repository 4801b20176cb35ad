package core

import "fmt"

// Spec is a complete language configuration: everything a generator
// needs to synthesize syllables, words and names. Specs are plain data
// and safe to serialize; generation state lives in the generator.
type Spec struct {
	// Pattern is the syllable template, e.g. "CVC" or "S?CVF?".
	Pattern Pattern `yaml:"pattern"`

	// Phonemes maps a role token ("C", "V", "S", "F", "L") to its
	// candidate symbols, ordered by sampling weight.
	Phonemes map[string]PhonemeSet `yaml:"phonemes"`

	// MinSyllables and MaxSyllables bound the word length in syllables.
	MinSyllables int `yaml:"min_syllables"`
	MaxSyllables int `yaml:"max_syllables"`

	// Restrictions invalidate candidate syllables.
	Restrictions RestrictionSet `yaml:"restrictions"`

	// Orthography transliterates phones and joins name parts.
	Orthography Orthography `yaml:"orthography"`
}

// Clone returns a deep copy of the spec. Views that hand a spec to
// callers clone it so internal maps stay private.
func (s Spec) Clone() Spec {
	out := s
	out.Phonemes = make(map[string]PhonemeSet, len(s.Phonemes))
	for role, set := range s.Phonemes {
		out.Phonemes[role] = append(PhonemeSet(nil), set...)
	}
	out.Restrictions.Forbidden = append([]string(nil), s.Restrictions.Forbidden...)
	if s.Orthography.Symbols != nil {
		out.Orthography.Symbols = make(map[string]string, len(s.Orthography.Symbols))
		for k, v := range s.Orthography.Symbols {
			out.Orthography.Symbols[k] = v
		}
	}
	return out
}

// PhonemesFor returns the phoneme set bound to a role.
func (s Spec) PhonemesFor(role Role) PhonemeSet {
	return s.Phonemes[string(role)]
}

// Validate checks the spec for the two construction-time failure kinds:
// an inconsistent configuration (unknown role, max < min) and a pattern
// role bound to an empty phoneme set. Generation must never be attempted
// on a spec that fails validation.
func (s Spec) Validate() error {
	if s.Pattern.Length() == 0 {
		return fmt.Errorf("%w: empty syllable pattern", ErrInvalidSpec)
	}
	for _, t := range s.Pattern.Tokens() {
		if t == Optional {
			continue
		}
		if !IsRole(t) {
			return fmt.Errorf("%w: unknown role token %q in pattern %q", ErrInvalidSpec, string(t), s.Pattern)
		}
		set, ok := s.Phonemes[string(t)]
		if !ok {
			return fmt.Errorf("%w: pattern %q references role %q with no phoneme set", ErrInvalidSpec, s.Pattern, string(t))
		}
		if len(set) == 0 {
			return fmt.Errorf("%w: role %q", ErrEmptyPhonemeSet, string(t))
		}
	}
	if s.MinSyllables < 1 {
		return fmt.Errorf("%w: min_syllables must be >= 1, got %d", ErrInvalidSpec, s.MinSyllables)
	}
	if s.MaxSyllables < s.MinSyllables {
		return fmt.Errorf("%w: max_syllables %d < min_syllables %d", ErrInvalidSpec, s.MaxSyllables, s.MinSyllables)
	}
	return nil
}
