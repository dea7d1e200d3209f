package kanji

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/kderr"
	"github.com/tim-harding/kanjidic-parser/xmlutil"
)

// Grade is the school grade level a kanji is learned in. Values 1
// through 6 are the Kyouiku elementary school grades; the named
// constants cover the remaining levels. The zero value means the grade
// is unlisted.
type Grade uint8

const (
	GradeNone Grade = 0
	// GradeJouyou marks the Jouyou kanji beyond the six Kyouiku
	// grades, learned in junior high school.
	GradeJouyou Grade = 8
	// GradeJinmeiyou marks kanji approved for use in personal names.
	GradeJinmeiyou Grade = 9
	// GradeJinmeiyouJouyouVariant marks Jinmeiyou kanji that are
	// variants of Jouyou kanji.
	GradeJinmeiyouJouyouVariant Grade = 10
)

// Kyouiku returns the elementary school year for grades 1 through 6.
func (g Grade) Kyouiku() (uint8, bool) {
	if g >= 1 && g <= 6 {
		return uint8(g), true
	}
	return 0, false
}

func (g Grade) String() string {
	switch {
	case g >= 1 && g <= 6:
		return "kyouiku-" + strconv.Itoa(int(g))
	case g == GradeJouyou:
		return "jouyou"
	case g == GradeJinmeiyou:
		return "jinmeiyou"
	case g == GradeJinmeiyouJouyouVariant:
		return "jinmeiyou-jouyou-variant"
	case g == GradeNone:
		return "none"
	default:
		return "Grade(" + strconv.Itoa(int(g)) + ")"
	}
}

// decodeGrade maps the source digit onto a grade level. A non-digit is
// a not-a-number error; a digit outside the vocabulary (0, 7, 11 and
// up) is distinct, an unrecognized error.
func decodeGrade(n *xmlquery.Node) (Grade, error) {
	v, err := xmlutil.TextUint[uint8](n)
	if err != nil {
		return GradeNone, err
	}
	switch {
	case v >= 1 && v <= 6:
		return Grade(v), nil
	case v == 8:
		return GradeJouyou, nil
	case v == 9:
		return GradeJinmeiyou, nil
	case v == 10:
		return GradeJinmeiyouJouyouVariant, nil
	default:
		return GradeNone, kderr.Unrecognized("grade "+strconv.Itoa(int(v)), xmlutil.PosOf(n))
	}
}
