package core

// Flavor is the capability set of a naming-language implementation.
// The default implementation lives in pkg/namegen; alternate flavors
// implement the same interface rather than sharing generator state.
//
// The pool argument is a semantic category such as "city" or "land";
// the empty string is the generic pool.
type Flavor interface {
	// GenerateSyllable synthesizes one transliterated syllable.
	GenerateSyllable() (string, error)

	// GenerateWord returns a word for the pool, reusing stored words
	// according to the pool reuse policy.
	GenerateWord(pool string) (string, error)

	// GenerateName mints a name for the pool, globally unique among
	// all names generated by this instance.
	GenerateName(pool string) (string, error)
}
