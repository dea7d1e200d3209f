package codes

import (
	"strconv"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// OneillSuffix is the suffix on a Japanese Names reference.
type OneillSuffix int

const (
	OneillSuffixNone OneillSuffix = iota
	OneillSuffixA
)

func (s OneillSuffix) String() string {
	if s == OneillSuffixA {
		return "A"
	}
	return ""
}

// Oneill is an index into Japanese Names by P.G. O'Neill.
type Oneill struct {
	Number uint16
	Suffix OneillSuffix
}

// String renders the reference in its source text form.
func (o Oneill) String() string {
	return strconv.Itoa(int(o.Number)) + o.Suffix.String()
}

// ParseOneill decodes a Japanese Names reference: a decimal number
// followed by an optional A suffix.
func ParseOneill(s string) (Oneill, error) {
	digits, rest := splitDigits(s)
	if digits == "" {
		return Oneill{}, kderr.Malformed("oneill reference "+strconv.Quote(s)+" has no leading number", kderr.Pos{})
	}
	v, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return Oneill{}, kderr.NotANumber(digits, kderr.Pos{})
	}
	switch rest {
	case "":
		return Oneill{Number: uint16(v)}, nil
	case "A":
		return Oneill{Number: uint16(v), Suffix: OneillSuffixA}, nil
	default:
		if alphabetic(rest) {
			return Oneill{}, kderr.Unrecognized("oneill reference suffix "+strconv.Quote(rest), kderr.Pos{})
		}
		return Oneill{}, kderr.Malformed("oneill reference "+strconv.Quote(s)+" has trailing garbage", kderr.Pos{})
	}
}
