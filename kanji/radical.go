package kanji

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/kderr"
	"github.com/tim-harding/kanjidic-parser/xmlutil"
)

// RadicalKind selects the radical classification scheme.
type RadicalKind int

const (
	// RadicalClassical is the classification from the KangXi Zidian.
	RadicalClassical RadicalKind = iota
	// RadicalNelson is the classification from Nelson's Modern Reader's
	// Japanese-English Character Dictionary, listed only where it
	// differs from the classical one.
	RadicalNelson
)

// KangXi is a radical index in the KangXi Zidian, 1 through 214.
type KangXi uint8

// Radical is one radical classification of a character.
type Radical struct {
	Kind   RadicalKind
	KangXi KangXi
}

func decodeRadicals(node *xmlquery.Node) ([]Radical, error) {
	group, err := xmlutil.Child(node, "radical")
	if err != nil {
		return nil, err
	}
	out, err := xmlutil.MapChildren(group, "rad_value", decodeRadical)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, kderr.MissingChild("rad_value", xmlutil.PosOf(group))
	}
	return out, nil
}

func decodeRadical(n *xmlquery.Node) (Radical, error) {
	typ, err := xmlutil.RequiredAttr(n, "rad_type")
	if err != nil {
		return Radical{}, err
	}
	var kind RadicalKind
	switch typ {
	case "classical":
		kind = RadicalClassical
	case "nelson_c":
		kind = RadicalNelson
	default:
		return Radical{}, kderr.Unrecognized("rad_type "+strconv.Quote(typ), xmlutil.PosOf(n))
	}
	v, err := xmlutil.TextUint[uint8](n)
	if err != nil {
		return Radical{}, err
	}
	if v < 1 || v > 214 {
		return Radical{}, kderr.Unrecognized("kangxi radical "+strconv.Itoa(int(v)), xmlutil.PosOf(n))
	}
	return Radical{Kind: kind, KangXi: KangXi(v)}, nil
}
