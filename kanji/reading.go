package kanji

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/kderr"
	"github.com/tim-harding/kanjidic-parser/xmlutil"
)

// Reading is one way a character can be read.
type Reading interface {
	reading()
}

// PinYin is a Mandarin reading in the Pinyin romanization.
type PinYin struct {
	Romanization string
	Tone         Tone
}

// KoreanRomanized is a romanized Korean reading.
type KoreanRomanized string

// KoreanHangul is a Korean reading in hangul.
type KoreanHangul string

// Vietnam is a Vietnamese reading.
type Vietnam string

// Onyomi is a Japanese on reading, in katakana.
type Onyomi string

// Kunyomi is a Japanese kun reading with its okurigana.
type Kunyomi struct {
	Kind KunyomiKind
	// Okurigana holds the reading split at the okurigana boundaries.
	Okurigana []string
}

func (PinYin) reading()          {}
func (KoreanRomanized) reading() {}
func (KoreanHangul) reading()    {}
func (Vietnam) reading()         {}
func (Onyomi) reading()          {}
func (Kunyomi) reading()         {}

// Tone is a Mandarin tone, numbered as in the source.
type Tone int

const (
	// ToneHigh is the high, level first tone.
	ToneHigh Tone = iota + 1
	// ToneRising is the rising second tone.
	ToneRising
	// ToneLow is the low or dipping third tone.
	ToneLow
	// ToneFalling is the falling fourth tone.
	ToneFalling
	// ToneNeutral is the toneless fifth "tone".
	ToneNeutral
)

// KunyomiKind marks how a kun reading attaches to other words.
type KunyomiKind int

const (
	KunyomiNormal KunyomiKind = iota
	KunyomiPrefix
	KunyomiSuffix
)

func decodeReading(n *xmlquery.Node) (Reading, error) {
	typ, err := xmlutil.RequiredAttr(n, "r_type")
	if err != nil {
		return nil, err
	}
	text, err := xmlutil.Text(n)
	if err != nil {
		return nil, err
	}
	pos := xmlutil.PosOf(n)
	switch typ {
	case "pinyin":
		return parsePinYin(text, pos)
	case "korean_r":
		return KoreanRomanized(text), nil
	case "korean_h":
		return KoreanHangul(text), nil
	case "vietnam":
		return Vietnam(text), nil
	case "ja_on":
		return Onyomi(text), nil
	case "ja_kun":
		return parseKunyomi(text, pos)
	default:
		return nil, kderr.Unrecognized("r_type "+strconv.Quote(typ), pos)
	}
}

// parsePinYin splits a reading such as "ya4" into its romanization and
// trailing tone digit.
func parsePinYin(s string, pos kderr.Pos) (PinYin, error) {
	if len(s) < 2 {
		return PinYin{}, kderr.Malformed("pinyin reading "+strconv.Quote(s)+" is too short", pos)
	}
	tone := s[len(s)-1]
	if tone < '0' || tone > '9' {
		return PinYin{}, kderr.Malformed("pinyin reading "+strconv.Quote(s)+" has no tone digit", pos)
	}
	if tone < '1' || tone > '5' {
		return PinYin{}, kderr.Unrecognized("pinyin tone "+string(tone), pos)
	}
	return PinYin{Romanization: s[:len(s)-1], Tone: Tone(tone - '0')}, nil
}

// parseKunyomi splits a reading such as "つ.ぐ" at its okurigana
// boundaries. A leading dash marks a prefix reading, a trailing dash a
// suffix reading.
func parseKunyomi(s string, pos kderr.Pos) (Kunyomi, error) {
	kind := KunyomiNormal
	body := s
	if strings.HasPrefix(body, "-") {
		kind = KunyomiPrefix
		body = body[1:]
	}
	if strings.HasSuffix(body, "-") {
		if kind == KunyomiNormal {
			kind = KunyomiSuffix
		}
		body = body[:len(body)-1]
	}
	if body == "" {
		return Kunyomi{}, kderr.Malformed("kunyomi reading "+strconv.Quote(s)+" is empty", pos)
	}
	okurigana := strings.Split(body, ".")
	for _, segment := range okurigana {
		if segment == "" {
			return Kunyomi{}, kderr.Malformed("kunyomi reading "+strconv.Quote(s)+" has an empty segment", pos)
		}
	}
	return Kunyomi{Kind: kind, Okurigana: okurigana}, nil
}
