// Package namegen mints names from a generated constructed language.
//
// A Language owns all generation state for one language instance: the
// morpheme, word and name pools. Morphemes and words are reused across
// calls according to a per-pool policy, which is what gives generated
// vocabulary its recurring roots; names are globally unique across all
// pools by a bidirectional substring rule.
//
// Builder assembles a language spec either randomly or from explicit
// selections into the phonology inventories.
//
// A Language is not safe for concurrent use. Independent languages own
// independent pools and random sources, so separate instances may be
// driven from separate goroutines without sharing.
package namegen
