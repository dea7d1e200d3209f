package kanji

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/codes"
	"github.com/tim-harding/kanjidic-parser/kderr"
	"github.com/tim-harding/kanjidic-parser/xmlutil"
)

// Variant is either a cross-reference to another kanji usually regarded
// as a variant of this one, or an alternative indexing code for it.
type Variant interface {
	variant()
}

// VariantJis208 is a coding in JIS X 0208.
type VariantJis208 codes.Kuten

// VariantJis212 is a coding in JIS X 0212.
type VariantJis212 codes.Kuten

// VariantJis213 is a coding in JIS X 0213.
type VariantJis213 codes.Kuten

// VariantUnicode is a Unicode scalar value.
type VariantUnicode uint32

// VariantDeRoo is an identification in the De Roo system.
type VariantDeRoo codes.DeRoo

// VariantHalpern is an index in the New Japanese-English Character
// Dictionary.
type VariantHalpern uint16

// VariantSpahnHadamitzky is a Kanji Dictionary descriptor.
type VariantSpahnHadamitzky codes.ShDesc

// VariantNelson is an index in the Modern Reader's Japanese-English
// Character Dictionary.
type VariantNelson uint16

// VariantONeill is an index in Japanese Names by P.G. O'Neill.
type VariantONeill codes.Oneill

func (VariantJis208) variant()          {}
func (VariantJis212) variant()          {}
func (VariantJis213) variant()          {}
func (VariantUnicode) variant()         {}
func (VariantDeRoo) variant()           {}
func (VariantHalpern) variant()         {}
func (VariantSpahnHadamitzky) variant() {}
func (VariantNelson) variant()          {}
func (VariantONeill) variant()          {}

func decodeVariant(n *xmlquery.Node) (Variant, error) {
	typ, err := xmlutil.RequiredAttr(n, "var_type")
	if err != nil {
		return nil, err
	}
	text, err := xmlutil.Text(n)
	if err != nil {
		return nil, err
	}
	pos := xmlutil.PosOf(n)
	switch typ {
	case "jis208":
		k, err := codes.ParseKuten(text)
		return VariantJis208(k), kderr.At(err, pos)
	case "jis212":
		k, err := codes.ParseKuten(text)
		return VariantJis212(k), kderr.At(err, pos)
	case "jis213":
		k, err := codes.ParseKuten(text)
		return VariantJis213(k), kderr.At(err, pos)
	case "ucs":
		v, err := strconv.ParseUint(text, 16, 32)
		if err != nil {
			return nil, kderr.NotANumber(text, pos)
		}
		return VariantUnicode(v), nil
	case "deroo":
		d, err := codes.ParseDeRoo(text)
		return VariantDeRoo(d), kderr.At(err, pos)
	case "njecd":
		v, err := xmlutil.TextUint[uint16](n)
		return VariantHalpern(v), err
	case "s_h":
		d, err := codes.ParseShDesc(text)
		return VariantSpahnHadamitzky(d), kderr.At(err, pos)
	case "nelson_c":
		v, err := xmlutil.TextUint[uint16](n)
		return VariantNelson(v), err
	case "oneill":
		o, err := codes.ParseOneill(text)
		return VariantONeill(o), kderr.At(err, pos)
	default:
		return nil, kderr.Unrecognized("var_type "+strconv.Quote(typ), pos)
	}
}
