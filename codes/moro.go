package codes

import (
	"strconv"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// MoroSuffix is the page marker suffix on a Morohashi index.
type MoroSuffix int

const (
	MoroSuffixNone MoroSuffix = iota
	MoroSuffixX
	MoroSuffixP
	MoroSuffixPX
)

func (s MoroSuffix) String() string {
	switch s {
	case MoroSuffixX:
		return "X"
	case MoroSuffixP:
		return "P"
	case MoroSuffixPX:
		return "PX"
	default:
		return ""
	}
}

// Moro is an index into the Daikanwajiten dictionary by Morohashi.
// Volume and page are carried by separate source attributes and may
// each be absent independently of the index.
type Moro struct {
	Volume *uint8
	Page   *uint16
	Index  uint16
	Suffix MoroSuffix
}

// IndexString renders the index and suffix in their source text form.
func (m Moro) IndexString() string {
	return strconv.Itoa(int(m.Index)) + m.Suffix.String()
}

// ParseMoroIndex decodes the text form of a Morohashi index: a decimal
// number followed by an optional X, P or PX suffix. Other letters are
// an unrecognized-suffix error; anything beyond the suffix is
// malformed.
func ParseMoroIndex(s string) (index uint16, suffix MoroSuffix, err error) {
	digits, rest := splitDigits(s)
	if digits == "" {
		return 0, 0, kderr.Malformed("moro index "+strconv.Quote(s)+" has no leading number", kderr.Pos{})
	}
	v, perr := strconv.ParseUint(digits, 10, 16)
	if perr != nil {
		return 0, 0, kderr.NotANumber(digits, kderr.Pos{})
	}
	switch rest {
	case "":
		suffix = MoroSuffixNone
	case "X":
		suffix = MoroSuffixX
	case "P":
		suffix = MoroSuffixP
	case "PX":
		suffix = MoroSuffixPX
	default:
		if alphabetic(rest) {
			return 0, 0, kderr.Unrecognized("moro index suffix "+strconv.Quote(rest), kderr.Pos{})
		}
		return 0, 0, kderr.Malformed("moro index "+strconv.Quote(s)+" has trailing garbage", kderr.Pos{})
	}
	return uint16(v), suffix, nil
}
