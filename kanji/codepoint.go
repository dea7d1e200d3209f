package kanji

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/codes"
	"github.com/tim-harding/kanjidic-parser/kderr"
	"github.com/tim-harding/kanjidic-parser/xmlutil"
)

// Codepoint is one encoding of a character in a character set standard.
type Codepoint interface {
	codepoint()
}

// CodepointUnicode is a Unicode scalar value.
type CodepointUnicode uint32

// CodepointJis208 is a coding in JIS X 0208.
type CodepointJis208 codes.Kuten

// CodepointJis212 is a coding in JIS X 0212.
type CodepointJis212 codes.Kuten

// CodepointJis213 is a coding in JIS X 0213.
type CodepointJis213 codes.Kuten

func (CodepointUnicode) codepoint() {}
func (CodepointJis208) codepoint()  {}
func (CodepointJis212) codepoint()  {}
func (CodepointJis213) codepoint()  {}

func decodeCodepoints(node *xmlquery.Node) ([]Codepoint, error) {
	group, err := xmlutil.Child(node, "codepoint")
	if err != nil {
		return nil, err
	}
	out, err := xmlutil.MapChildren(group, "cp_value", decodeCodepoint)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, kderr.MissingChild("cp_value", xmlutil.PosOf(group))
	}
	return out, nil
}

func decodeCodepoint(n *xmlquery.Node) (Codepoint, error) {
	typ, err := xmlutil.RequiredAttr(n, "cp_type")
	if err != nil {
		return nil, err
	}
	text, err := xmlutil.Text(n)
	if err != nil {
		return nil, err
	}
	switch typ {
	case "ucs":
		v, err := strconv.ParseUint(text, 16, 32)
		if err != nil {
			return nil, kderr.NotANumber(text, xmlutil.PosOf(n))
		}
		return CodepointUnicode(v), nil
	case "jis208":
		k, err := codes.ParseKuten(text)
		if err != nil {
			return nil, kderr.At(err, xmlutil.PosOf(n))
		}
		return CodepointJis208(k), nil
	case "jis212":
		k, err := codes.ParseKuten(text)
		if err != nil {
			return nil, kderr.At(err, xmlutil.PosOf(n))
		}
		return CodepointJis212(k), nil
	case "jis213":
		k, err := codes.ParseKuten(text)
		if err != nil {
			return nil, kderr.At(err, xmlutil.PosOf(n))
		}
		return CodepointJis213(k), nil
	default:
		return nil, kderr.Unrecognized("cp_type "+strconv.Quote(typ), xmlutil.PosOf(n))
	}
}
