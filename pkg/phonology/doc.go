// Package phonology provides the sound layer of the generator: static
// phoneme inventories and orthography variants, a weighted sampler, and
// the syllable synthesizer that builds one transliterated syllable from
// a pattern under phonotactic restrictions.
//
// Randomness is always an explicit *rand.Rand handed in by the caller,
// so a fixed seed reproduces the exact same syllable stream.
package phonology
