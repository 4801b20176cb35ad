package phonology

import "github.com/onomast-labs/onomast/pkg/core"

// Candidate phoneme inventories, one compact string per set. Within a
// set, earlier symbols are sampled more often; within a slice, earlier
// sets are picked more often by the weighted builder.
var (
	// ConsonantSets are the candidate "C" inventories.
	ConsonantSets = []string{
		"ptkmnsl",
		"ptkmnh",
		"ptkbdgmnlrsʃzʒʧ",
		"hklmnpwʔ",
		"ptkqvsgrmnŋlj",
		"tksʃdbqɣxmnlrwj",
		"tkdgmnsʃ",
		"ptkbdgmnszʒʧhjw",
	}

	// SibilantSets are the candidate "S" inventories.
	SibilantSets = []string{
		"s",
		"sʃ",
		"sʃf",
	}

	// LiquidSets are the candidate "L" inventories.
	LiquidSets = []string{
		"rl",
		"r",
		"l",
		"wj",
		"lrwj",
	}

	// FinalSets are the candidate "F" (final cluster) inventories.
	FinalSets = []string{
		"mn",
		"sk",
		"mnŋ",
		"sʃzʒ",
	}

	// VowelSets are the candidate "V" inventories. Uppercase symbols are
	// long/marked vowels resolved by the orthography.
	VowelSets = []string{
		"aeiou",
		"aiu",
		"aeiouAEI",
		"aeiouU",
		"aiuAI",
		"eou",
		"aeiouAOU",
	}
)

// SyllablePatterns are the candidate syllable templates. "?" marks the
// preceding token as optional.
var SyllablePatterns = []core.Pattern{
	"CVC",
	"CVV?C",
	"CVVC?", "CVC?", "CV", "VC", "CVF", "C?VC", "CVF?",
	"CL?VC", "CL?VF", "S?CVC", "S?CVF", "S?CVC?",
	"C?VF", "C?VC?", "C?VF?", "C?L?VC", "VC",
	"CVL?C?", "C?VL?C", "C?VLC?",
}

// DefaultRestrictions forbid awkward sibilant/liquid clusters and any
// doubled phone.
var DefaultRestrictions = core.RestrictionSet{
	Forbidden: []string{"ss", "ʃʃ", "ʃs", "sʃ", "fs", "fʃ", "lr", "rl"},
	NoDoubles: true,
}

// DefaultOrthography is the base transliteration table. Style overlays
// override individual entries; unmapped symbols are written as-is.
var DefaultOrthography = map[string]string{
	"ʃ": "sh",
	"ʒ": "zh",
	"ʧ": "ch",
	"ʤ": "j",
	"ŋ": "ng",
	"j": "y",
	"x": "kh",
	"ɣ": "gh",
	"ʔ": "‘",
	"A": "á",
	"E": "é",
	"I": "í",
	"O": "ó",
	"U": "ú",
}

// ConsonantOrthographies are aesthetically coherent consonant overlays.
// Index 0 is the plain default (no overlay).
var ConsonantOrthographies = []map[string]string{
	nil,
	{
		"ʃ": "š",
		"ʒ": "ž",
		"ʧ": "č",
		"ʤ": "ǧ",
		"j": "j",
	},
	{
		"ʃ": "sch",
		"ʒ": "zh",
		"ʧ": "tsch",
		"ʤ": "dz",
		"j": "j",
		"x": "ch",
	},
	{
		"ʃ": "ch",
		"ʒ": "j",
		"ʧ": "tch",
		"ʤ": "dj",
		"x": "kh",
		// "j" maps to itself so re-transliterating "ʒ" output is a no-op.
		"j": "j",
	},
	{
		"ʃ": "x",
		"ʧ": "q",
		"ʤ": "j",
		"j": "j",
		"x": "x",
	},
}

// ConsonantOrthographyNames label ConsonantOrthographies for selection menus.
var ConsonantOrthographyNames = []string{"default", "slavic", "german", "french", "chinese"}

// VowelOrthographies are vowel overlays for the marked vowels A E I O U.
// Index 0 is the plain default (no overlay).
var VowelOrthographies = []map[string]string{
	nil,
	{
		"A": "ä",
		"E": "ë",
		"I": "ï",
		"O": "ö",
		"U": "ü",
	},
	{
		"A": "au",
		"E": "ei",
		"I": "ie",
		"O": "ou",
		"U": "oo",
	},
	{
		"A": "â",
		"E": "ê",
		"I": "y",
		"O": "ô",
		"U": "w",
	},
	{
		"A": "aa",
		"E": "ee",
		"I": "ii",
		"O": "oo",
		"U": "uu",
	},
}

// VowelOrthographyNames label VowelOrthographies for selection menus.
var VowelOrthographyNames = []string{"default", "umlauts", "diphthongs", "welsh", "doubled"}

// Joiners are the candidate name-part separators. Duplicates encode
// selection weight for the uniform random choice.
var Joiners = []string{" ", " ", " ", "-", "-", "´", ":"}

// NewOrthography merges the default table with the given consonant- and
// vowel-style overlays. Nil overlays are skipped.
func NewOrthography(consonantStyle, vowelStyle map[string]string, joiner string) core.Orthography {
	symbols := make(map[string]string, len(DefaultOrthography))
	for k, v := range DefaultOrthography {
		symbols[k] = v
	}
	for k, v := range consonantStyle {
		symbols[k] = v
	}
	for k, v := range vowelStyle {
		symbols[k] = v
	}
	return core.Orthography{Symbols: symbols, Joiner: joiner}
}
