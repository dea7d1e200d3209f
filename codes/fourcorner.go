package codes

import (
	"strconv"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// Stroke is a corner stroke shape in the Four Corner system. The
// constant order follows the system's digit assignment.
type Stroke int

const (
	StrokeLid Stroke = iota
	StrokeLineHorizontal
	StrokeLineVertical
	StrokeDot
	StrokeCross
	StrokeSkewer
	StrokeBox
	StrokeAngle
	StrokeHachi
	StrokeChiyokuto
)

// FourCorner classifies a kanji by the stroke shapes at its corners,
// with an optional fifth shape disambiguating generally shaped
// characters.
type FourCorner struct {
	TopLeft     Stroke
	TopRight    Stroke
	BottomLeft  Stroke
	BottomRight Stroke
	FifthCorner *Stroke
}

// ParseFourCorner decodes a Four Corner code such as "1010.6": four
// corner digits, then an optional dot and fifth digit.
func ParseFourCorner(s string) (FourCorner, error) {
	digits, rest := splitDigits(s)
	if len(digits) != 4 {
		return FourCorner{}, kderr.Malformed("four corner code "+strconv.Quote(s)+" does not start with four digits", kderr.Pos{})
	}
	out := FourCorner{
		TopLeft:     Stroke(digits[0] - '0'),
		TopRight:    Stroke(digits[1] - '0'),
		BottomLeft:  Stroke(digits[2] - '0'),
		BottomRight: Stroke(digits[3] - '0'),
	}
	switch {
	case rest == "":
		return out, nil
	case len(rest) == 2 && rest[0] == '.' && rest[1] >= '0' && rest[1] <= '9':
		fifth := Stroke(rest[1] - '0')
		out.FifthCorner = &fifth
		return out, nil
	default:
		return FourCorner{}, kderr.Malformed("four corner code "+strconv.Quote(s)+" has a bad fifth corner", kderr.Pos{})
	}
}

// String renders the code in its source form, e.g. "1010.6".
func (f FourCorner) String() string {
	s := strconv.Itoa(int(f.TopLeft)) + strconv.Itoa(int(f.TopRight)) +
		strconv.Itoa(int(f.BottomLeft)) + strconv.Itoa(int(f.BottomRight))
	if f.FifthCorner != nil {
		s += "." + strconv.Itoa(int(*f.FifthCorner))
	}
	return s
}
