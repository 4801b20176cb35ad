package core

import "strings"

// Orthography maps phonetic symbols to their written representation and
// carries the joiner placed between composed name parts. Symbols without
// an explicit mapping are written as themselves.
type Orthography struct {
	// Symbols maps phonetic symbol → display string.
	Symbols map[string]string `yaml:"symbols"`

	// Joiner separates words (and markers) inside a composed name.
	Joiner string `yaml:"joiner"`
}

// Display returns the written form of a single phonetic symbol, falling
// back to the symbol itself when unmapped.
func (o Orthography) Display(symbol string) string {
	if d, ok := o.Symbols[symbol]; ok {
		return d
	}
	return symbol
}

// Transliterate converts a raw phone sequence to its display string,
// symbol by symbol. Because the mapping's domain is phonetic symbols,
// applying Transliterate to its own output is a no-op.
func (o Orthography) Transliterate(syllable string) string {
	var b strings.Builder
	for _, r := range syllable {
		b.WriteString(o.Display(string(r)))
	}
	return b.String()
}

// Join composes name parts with the configured joiner.
func (o Orthography) Join(parts ...string) string {
	return strings.Join(parts, o.Joiner)
}
