package codes

import (
	"strconv"
	"strings"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// Skip is a SKIP (System of Kanji Indexing by Patterns) code, one of
// the four pattern classes.
type Skip interface {
	skip()
}

// SkipHorizontal is a pattern 1 code: a kanji divisible into left and
// right parts.
type SkipHorizontal struct {
	// LeftStrokes is the stroke count of the left part.
	LeftStrokes uint8
	// RightStrokes is the stroke count of the right part.
	RightStrokes uint8
}

// SkipVertical is a pattern 2 code: a kanji divisible into top and
// bottom parts.
type SkipVertical struct {
	// TopStrokes is the stroke count of the top part.
	TopStrokes uint8
	// BottomStrokes is the stroke count of the bottom part.
	BottomStrokes uint8
}

// SkipEnclosure is a pattern 3 code: a kanji with an enclosing element.
type SkipEnclosure struct {
	// ExteriorStrokes is the stroke count of the enclosure.
	ExteriorStrokes uint8
	// InteriorStrokes is the stroke count of the enclosed part.
	InteriorStrokes uint8
}

// SkipSolid is a pattern 4 code: a kanji that cannot be divided.
type SkipSolid struct {
	// TotalStrokeCount is the stroke count of the whole kanji.
	TotalStrokeCount uint8
	// SolidSubpattern classifies the kanji's general shape.
	SolidSubpattern SolidSubpattern
}

func (SkipHorizontal) skip() {}
func (SkipVertical) skip()   {}
func (SkipEnclosure) skip()  {}
func (SkipSolid) skip()      {}

// SolidSubpattern classifies a pattern 4 kanji by its dominant feature.
type SolidSubpattern int

const (
	// SolidSubpatternTopLine marks a kanji topped by a horizontal line.
	SolidSubpatternTopLine SolidSubpattern = iota + 1
	// SolidSubpatternBottomLine marks a kanji resting on a horizontal line.
	SolidSubpatternBottomLine
	// SolidSubpatternThroughLine marks a kanji crossed by a vertical line.
	SolidSubpatternThroughLine
	// SolidSubpatternOther marks the remaining solid kanji.
	SolidSubpatternOther
)

// ParseSkip decodes a "pattern-a-b" SKIP code such as "4-7-1". The
// meaning of the second and third fields depends on the pattern class.
func ParseSkip(s string) (Skip, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return nil, kderr.Malformed("skip code "+strconv.Quote(s)+" is not a three-field code", kderr.Pos{})
	}
	var fields [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return nil, kderr.NotANumber(part, kderr.Pos{})
		}
		fields[i] = uint8(v)
	}
	switch fields[0] {
	case 1:
		return SkipHorizontal{LeftStrokes: fields[1], RightStrokes: fields[2]}, nil
	case 2:
		return SkipVertical{TopStrokes: fields[1], BottomStrokes: fields[2]}, nil
	case 3:
		return SkipEnclosure{ExteriorStrokes: fields[1], InteriorStrokes: fields[2]}, nil
	case 4:
		if fields[2] < 1 || fields[2] > 4 {
			return nil, kderr.Unrecognized("skip solid subpattern "+strconv.Itoa(int(fields[2])), kderr.Pos{})
		}
		return SkipSolid{TotalStrokeCount: fields[1], SolidSubpattern: SolidSubpattern(fields[2])}, nil
	default:
		return nil, kderr.Unrecognized("skip pattern "+strconv.Itoa(int(fields[0])), kderr.Pos{})
	}
}
