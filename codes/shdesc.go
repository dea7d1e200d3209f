package codes

import (
	"strconv"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// ShDesc is a Spahn-Hadamitzky kanji descriptor such as "0a7.14": the
// radical stroke count, a radical identifying letter, the remaining
// stroke count and a disambiguating sequence number.
type ShDesc struct {
	RadicalStrokes uint8
	Radical        rune
	OtherStrokes   uint8
	Sequence       uint8
}

// ParseShDesc decodes a Spahn-Hadamitzky descriptor.
func ParseShDesc(s string) (ShDesc, error) {
	radicalStrokes, rest := splitDigits(s)
	if radicalStrokes == "" {
		return ShDesc{}, kderr.Malformed("descriptor "+strconv.Quote(s)+" has no radical stroke count", kderr.Pos{})
	}
	if rest == "" || !alphabetic(rest[:1]) {
		return ShDesc{}, kderr.Malformed("descriptor "+strconv.Quote(s)+" has no radical letter", kderr.Pos{})
	}
	radical := rune(rest[0])
	otherStrokes, rest := splitDigits(rest[1:])
	if otherStrokes == "" {
		return ShDesc{}, kderr.Malformed("descriptor "+strconv.Quote(s)+" has no other stroke count", kderr.Pos{})
	}
	if len(rest) < 2 || rest[0] != '.' {
		return ShDesc{}, kderr.Malformed("descriptor "+strconv.Quote(s)+" has no sequence number", kderr.Pos{})
	}
	sequence, rest := splitDigits(rest[1:])
	if sequence == "" || rest != "" {
		return ShDesc{}, kderr.Malformed("descriptor "+strconv.Quote(s)+" has a bad sequence number", kderr.Pos{})
	}
	rs, err := strconv.ParseUint(radicalStrokes, 10, 8)
	if err != nil {
		return ShDesc{}, kderr.NotANumber(radicalStrokes, kderr.Pos{})
	}
	os, err := strconv.ParseUint(otherStrokes, 10, 8)
	if err != nil {
		return ShDesc{}, kderr.NotANumber(otherStrokes, kderr.Pos{})
	}
	seq, err := strconv.ParseUint(sequence, 10, 8)
	if err != nil {
		return ShDesc{}, kderr.NotANumber(sequence, kderr.Pos{})
	}
	return ShDesc{
		RadicalStrokes: uint8(rs),
		Radical:        radical,
		OtherStrokes:   uint8(os),
		Sequence:       uint8(seq),
	}, nil
}

// String renders the descriptor in its source form, e.g. "0a7.14".
func (d ShDesc) String() string {
	return strconv.Itoa(int(d.RadicalStrokes)) + string(d.Radical) +
		strconv.Itoa(int(d.OtherStrokes)) + "." + strconv.Itoa(int(d.Sequence))
}
