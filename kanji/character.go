// Package kanji maps parsed KANJIDIC2 character elements onto fully
// typed Character records.
//
// Decode assembles one record from one <character> node; DecodeAll
// walks every character element of a parsed document. Both fail fast:
// the first malformed leaf aborts the record and the returned error
// names the failing field group and the position of the bad node.
package kanji

// Character is one fully decoded KANJIDIC character entry. It is built
// once from one source node and never mutated afterwards; two records
// with equal fields are the same entry.
type Character struct {
	// Literal is the character itself.
	Literal rune
	// Codepoints lists alternate encodings of the character.
	Codepoints []Codepoint
	// Radicals lists the radical classifications of the character.
	Radicals []Radical
	// Grade is the school grade the character is learned in, or
	// GradeNone when unlisted.
	Grade Grade
	// StrokeCounts is the accepted stroke count together with commonly
	// miscounted totals.
	StrokeCounts StrokeCount
	// Variants cross-references other forms and indexings of the
	// character.
	Variants []Variant
	// Frequency ranks how often the character appears in newspapers,
	// nil when unranked.
	Frequency *uint16
	// RadicalNames names the character as a radical, non-empty only
	// when the character is itself a named radical.
	RadicalNames []string
	// JLPT is the pre-2010 Japanese Language Proficiency Test level
	// (1 through 4), nil when unlisted.
	JLPT *uint8
	// References indexes the character in dictionaries and study
	// guides.
	References []Reference
	// QueryCodes lists lookup codes for the character.
	QueryCodes []QueryCode
	// Readings lists the ways the character can be read, in source
	// order.
	Readings []Reading
	// Translations groups the character's meanings by language.
	Translations Translations
	// Nanori lists name-only readings.
	Nanori []string
	// Decomposition lists the constituent radicals of the character,
	// empty when the decomposition table has no entry.
	Decomposition []rune
}

// Translations maps a language code such as "en" or "fr" to the
// character's meanings in that language, in source order.
type Translations map[string][]string

// StrokeCount is the accepted stroke count of a character plus any
// totals it has historically been miscounted as.
type StrokeCount struct {
	Accepted  uint8
	Miscounts []uint8
}
