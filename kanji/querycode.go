package kanji

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/codes"
	"github.com/tim-harding/kanjidic-parser/kderr"
	"github.com/tim-harding/kanjidic-parser/xmlutil"
)

// QueryCode is a code a reader can use to look a kanji up.
type QueryCode interface {
	queryCode()
}

// QuerySkip is a SKIP pattern code.
type QuerySkip struct {
	Code codes.Skip
}

// QuerySpahnHadamitzky is a Kanji Dictionary descriptor.
type QuerySpahnHadamitzky codes.ShDesc

// QueryFourCorner is a Four Corner code.
type QueryFourCorner codes.FourCorner

// QueryDeRoo is a De Roo code.
type QueryDeRoo codes.DeRoo

// QueryMisclassification records a SKIP code the kanji is commonly,
// but wrongly, classified under.
type QueryMisclassification struct {
	Kind MisclassKind
	Code codes.Skip
}

func (QuerySkip) queryCode()              {}
func (QuerySpahnHadamitzky) queryCode()   {}
func (QueryFourCorner) queryCode()        {}
func (QueryDeRoo) queryCode()             {}
func (QueryMisclassification) queryCode() {}

// MisclassKind explains how a misclassified SKIP code differs from the
// accepted one.
type MisclassKind int

const (
	// MisclassPosition is a mistake in the division of the kanji.
	MisclassPosition MisclassKind = iota
	// MisclassStrokeCount is a mistake in the stroke count.
	MisclassStrokeCount
	// MisclassStrokeAndPosition combines both mistakes.
	MisclassStrokeAndPosition
	// MisclassStrokeDifference reflects ambiguity in the stroke count.
	MisclassStrokeDifference
)

func decodeQueryCodes(node *xmlquery.Node) ([]QueryCode, error) {
	group, err := xmlutil.Child(node, "query_code")
	if err != nil {
		return nil, err
	}
	out, err := xmlutil.MapChildren(group, "q_code", decodeQueryCode)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, kderr.MissingChild("q_code", xmlutil.PosOf(group))
	}
	return out, nil
}

func decodeQueryCode(n *xmlquery.Node) (QueryCode, error) {
	typ, err := xmlutil.RequiredAttr(n, "qc_type")
	if err != nil {
		return nil, err
	}
	text, err := xmlutil.Text(n)
	if err != nil {
		return nil, err
	}
	pos := xmlutil.PosOf(n)
	switch typ {
	case "skip":
		code, err := codes.ParseSkip(text)
		if err != nil {
			return nil, kderr.At(err, pos)
		}
		// A skip code flagged with skip_misclass is a known
		// misclassification, not the accepted code.
		if misclass, ok := xmlutil.Attr(n, "skip_misclass"); ok {
			kind, kerr := parseMisclassKind(misclass)
			if kerr != nil {
				return nil, kderr.At(kerr, pos)
			}
			return QueryMisclassification{Kind: kind, Code: code}, nil
		}
		return QuerySkip{Code: code}, nil
	case "misclass":
		code, err := codes.ParseSkip(text)
		if err != nil {
			return nil, kderr.At(err, pos)
		}
		misclass, err := xmlutil.RequiredAttr(n, "skip_misclass")
		if err != nil {
			return nil, err
		}
		kind, err := parseMisclassKind(misclass)
		if err != nil {
			return nil, kderr.At(err, pos)
		}
		return QueryMisclassification{Kind: kind, Code: code}, nil
	case "sh_desc":
		d, err := codes.ParseShDesc(text)
		if err != nil {
			return nil, kderr.At(err, pos)
		}
		return QuerySpahnHadamitzky(d), nil
	case "four_corner":
		fc, err := codes.ParseFourCorner(text)
		if err != nil {
			return nil, kderr.At(err, pos)
		}
		return QueryFourCorner(fc), nil
	case "deroo":
		d, err := codes.ParseDeRoo(text)
		if err != nil {
			return nil, kderr.At(err, pos)
		}
		return QueryDeRoo(d), nil
	default:
		return nil, kderr.Unrecognized("qc_type "+strconv.Quote(typ), pos)
	}
}

func parseMisclassKind(s string) (MisclassKind, error) {
	switch s {
	case "posn":
		return MisclassPosition, nil
	case "stroke_count":
		return MisclassStrokeCount, nil
	case "stroke_and_posn":
		return MisclassStrokeAndPosition, nil
	case "stroke_diff":
		return MisclassStrokeDifference, nil
	default:
		return 0, kderr.Unrecognized("skip_misclass "+strconv.Quote(s), kderr.Pos{})
	}
}
