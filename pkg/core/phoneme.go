package core

// PhonemeSet is an ordered sequence of phonetic symbols. Order encodes
// sampling weight: earlier symbols are selected more frequently.
type PhonemeSet []string

// Phones splits a compact inventory string into a PhonemeSet, one symbol
// per rune. Multi-byte IPA symbols such as "ʃ" stay intact.
func Phones(s string) PhonemeSet {
	set := make(PhonemeSet, 0, len(s))
	for _, r := range s {
		set = append(set, string(r))
	}
	return set
}

// Contains reports whether the set includes the given symbol.
func (p PhonemeSet) Contains(symbol string) bool {
	for _, s := range p {
		if s == symbol {
			return true
		}
	}
	return false
}

// String joins the set back into its compact form.
func (p PhonemeSet) String() string {
	out := ""
	for _, s := range p {
		out += s
	}
	return out
}
