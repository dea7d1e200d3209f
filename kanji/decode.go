package kanji

import (
	"unicode/utf8"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/tim-harding/kanjidic-parser/kderr"
	"github.com/tim-harding/kanjidic-parser/kradical"
	"github.com/tim-harding/kanjidic-parser/xmlutil"
)

var xpCharacter = xpath.MustCompile("//character")

// Decode maps one <character> element onto a Character record. The
// radicals table supplies the decomposition of the literal; it may be
// nil, in which case every decomposition is empty.
//
// Decoding stops at the first failure. The returned error names the
// failing field group and carries the position of the offending node;
// no partial record is ever returned.
func Decode(node *xmlquery.Node, radicals kradical.Table) (Character, error) {
	c, err := decodeCharacter(node, radicals)
	if err != nil {
		return Character{}, errors.Wrap(err, "character")
	}
	return c, nil
}

// DecodeAll decodes every character element of a parsed KANJIDIC
// document, in document order, stopping at the first record that fails
// to decode.
func DecodeAll(doc *xmlquery.Node, radicals kradical.Table) ([]Character, error) {
	nodes := xmlquery.QuerySelectorAll(doc, xpCharacter)
	out := make([]Character, 0, len(nodes))
	for _, n := range nodes {
		c, err := Decode(n, radicals)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeCharacter(node *xmlquery.Node, radicals kradical.Table) (Character, error) {
	var c Character

	literal, err := decodeLiteral(node)
	if err != nil {
		return c, errors.Wrap(err, "literal")
	}
	c.Literal = literal

	if c.Codepoints, err = decodeCodepoints(node); err != nil {
		return c, errors.Wrap(err, "codepoint")
	}
	if c.Radicals, err = decodeRadicals(node); err != nil {
		return c, errors.Wrap(err, "radical")
	}
	if err = decodeMisc(node, &c); err != nil {
		return c, errors.Wrap(err, "misc")
	}
	if c.References, err = decodeReferences(node); err != nil {
		return c, errors.Wrap(err, "dictionary reference")
	}
	if c.QueryCodes, err = decodeQueryCodes(node); err != nil {
		return c, errors.Wrap(err, "query code")
	}
	if err = decodeReadingMeaning(node, &c); err != nil {
		return c, errors.Wrap(err, "reading meaning")
	}
	c.Decomposition = radicals.Decompose(c.Literal)
	return c, nil
}

func decodeLiteral(node *xmlquery.Node) (rune, error) {
	child, err := xmlutil.Child(node, "literal")
	if err != nil {
		return 0, err
	}
	text, err := xmlutil.Text(child)
	if err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError || size != len(text) {
		return 0, kderr.NotAChar(text, xmlutil.PosOf(child))
	}
	return r, nil
}

// decodeMisc fills the grade, stroke count, variant, frequency,
// radical name and JLPT fields, all nested under the mandatory misc
// group.
func decodeMisc(node *xmlquery.Node, c *Character) error {
	misc, err := xmlutil.Child(node, "misc")
	if err != nil {
		return err
	}

	if grade, err := xmlutil.Child(misc, "grade"); err == nil {
		if c.Grade, err = decodeGrade(grade); err != nil {
			return errors.Wrap(err, "grade")
		}
	}

	counts, err := xmlutil.MapChildren(misc, "stroke_count", xmlutil.TextUint[uint8])
	if err != nil {
		return errors.Wrap(err, "stroke count")
	}
	if len(counts) == 0 {
		return errors.Wrap(kderr.MissingChild("stroke_count", xmlutil.PosOf(misc)), "stroke count")
	}
	c.StrokeCounts = StrokeCount{Accepted: counts[0]}
	if len(counts) > 1 {
		c.StrokeCounts.Miscounts = counts[1:]
	}

	if c.Variants, err = xmlutil.MapChildren(misc, "variant", decodeVariant); err != nil {
		return errors.Wrap(err, "variant")
	}

	if freq, err := xmlutil.Child(misc, "freq"); err == nil {
		v, err := xmlutil.TextUint[uint16](freq)
		if err != nil {
			return errors.Wrap(err, "frequency")
		}
		c.Frequency = &v
	}

	if c.RadicalNames, err = xmlutil.MapChildren(misc, "rad_name", xmlutil.Text); err != nil {
		return errors.Wrap(err, "radical name")
	}

	if jlpt, err := xmlutil.Child(misc, "jlpt"); err == nil {
		v, err := xmlutil.TextUint[uint8](jlpt)
		if err != nil {
			return errors.Wrap(err, "jlpt")
		}
		c.JLPT = &v
	}
	return nil
}

// decodeReadingMeaning fills the readings, translations and nanori
// fields. The whole group is optional: a character without one simply
// has no readings, no translations and no nanori.
func decodeReadingMeaning(node *xmlquery.Node, c *Character) error {
	c.Translations = Translations{}
	rm, err := xmlutil.Child(node, "reading_meaning")
	if err != nil {
		return nil
	}
	rmgroup, err := xmlutil.Child(rm, "rmgroup")
	if err != nil {
		return err
	}
	if c.Readings, err = xmlutil.MapChildren(rmgroup, "reading", decodeReading); err != nil {
		return errors.Wrap(err, "reading")
	}
	if c.Translations, err = decodeTranslations(rmgroup); err != nil {
		return errors.Wrap(err, "translation")
	}
	if c.Nanori, err = xmlutil.MapChildren(rm, "nanori", xmlutil.Text); err != nil {
		return errors.Wrap(err, "nanori")
	}
	return nil
}
