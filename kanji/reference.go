package kanji

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/codes"
	"github.com/tim-harding/kanjidic-parser/kderr"
	"github.com/tim-harding/kanjidic-parser/xmlutil"
)

// Book identifies the dictionary or study guide a reference indexes
// into.
type Book int

const (
	// BookNelsonClassic is the Modern Reader's Japanese-English
	// Character Dictionary by Andrew Nelson.
	BookNelsonClassic Book = iota
	// BookNelsonNew is The New Nelson Japanese-English Character
	// Dictionary by John Haig.
	BookNelsonNew
	// BookNjecd is the New Japanese-English Character Dictionary by
	// Jack Halpern.
	BookNjecd
	// BookKkd is Kodansha's Kanji Dictionary by Jack Halpern.
	BookKkd
	// BookKkld is the Kanji Learners Dictionary by Jack Halpern.
	BookKkld
	// BookKkld2ed is the Kanji Learners Dictionary, second edition.
	BookKkld2ed
	// BookHeisig is Remembering the Kanji by James Heisig.
	BookHeisig
	// BookHeisig6 is Remembering the Kanji, sixth edition.
	BookHeisig6
	// BookGakken is A New Dictionary of Kanji Usage.
	BookGakken
	// BookOneillNames is Japanese Names by P.G. O'Neill.
	BookOneillNames
	// BookOneillKk is Essential Kanji by P.G. O'Neill.
	BookOneillKk
	// BookMoro is the Daikanwajiten by Morohashi.
	BookMoro
	// BookHenshall is A Guide to Remembering Japanese Characters by
	// Kenneth Henshall.
	BookHenshall
	// BookShKk is Kanji and Kana by Spahn and Hadamitzky.
	BookShKk
	// BookShKk2 is Kanji and Kana, 2011 edition.
	BookShKk2
	// BookSakade is A Guide to Reading and Writing Japanese by
	// Florence Sakade.
	BookSakade
	// BookJfcards is Japanese Kanji Flashcards by Tomoko Okazaki.
	BookJfcards
	// BookHenshall3 is A Guide to Reading and Writing Japanese,
	// third edition, by Henshall.
	BookHenshall3
	// BookTuttleCards is the Tuttle Kanji Cards by Alexander Kask.
	BookTuttleCards
	// BookCrowley is The Kanji Way to Japanese Language Power by
	// Dale Crowley.
	BookCrowley
	// BookKanjiInContext is Kanji in Context by Nishiguchi and Kono.
	BookKanjiInContext
	// BookBusyPeople is the Japanese for Busy People textbook series.
	BookBusyPeople
	// BookKodanshaCompact is the Kodansha Compact Kanji Guide.
	BookKodanshaCompact
	// BookManiette is Les Kanjis dans la tete by Yves Maniette.
	BookManiette
)

var bookNames = map[string]Book{
	"nelson_c":         BookNelsonClassic,
	"nelson_n":         BookNelsonNew,
	"halpern_njecd":    BookNjecd,
	"halpern_kkd":      BookKkd,
	"halpern_kkld":     BookKkld,
	"halpern_kkld_2ed": BookKkld2ed,
	"heisig":           BookHeisig,
	"heisig6":          BookHeisig6,
	"gakken":           BookGakken,
	"oneill_names":     BookOneillNames,
	"oneill_kk":        BookOneillKk,
	"moro":             BookMoro,
	"henshall":         BookHenshall,
	"sh_kk":            BookShKk,
	"sh_kk2":           BookShKk2,
	"sakade":           BookSakade,
	"jf_cards":         BookJfcards,
	"henshall3":        BookHenshall3,
	"tutt_cards":       BookTuttleCards,
	"crowley":          BookCrowley,
	"kanji_in_context": BookKanjiInContext,
	"busy_people":      BookBusyPeople,
	"kodansha_compact": BookKodanshaCompact,
	"maniette":         BookManiette,
}

func (b Book) String() string {
	for name, book := range bookNames {
		if book == b {
			return name
		}
	}
	return "Book(" + strconv.Itoa(int(b)) + ")"
}

// Reference is an index into a dictionary or study guide. Most books
// index by a plain number; Moro, O'Neill Names and Busy People carry
// structured payloads instead.
type Reference struct {
	Book Book
	// Index is the plain numeric index, for the books that use one.
	Index uint16
	// Moro is set when Book is BookMoro.
	Moro *codes.Moro
	// Oneill is set when Book is BookOneillNames.
	Oneill *codes.Oneill
	// BusyPeople is set when Book is BookBusyPeople.
	BusyPeople *codes.BusyPeople
}

// decodeReferences tolerates a missing dic_number group as an empty
// list. Most other groups are hard requirements; the source schema is
// simply inconsistent here and the asymmetry is kept as-is.
func decodeReferences(node *xmlquery.Node) ([]Reference, error) {
	group, err := xmlutil.Child(node, "dic_number")
	if err != nil {
		if kderr.IsKind(err, kderr.KindMissingChild) {
			return nil, nil
		}
		return nil, err
	}
	return xmlutil.MapChildren(group, "dic_ref", decodeReference)
}

func decodeReference(n *xmlquery.Node) (Reference, error) {
	typ, err := xmlutil.RequiredAttr(n, "dr_type")
	if err != nil {
		return Reference{}, err
	}
	book, ok := bookNames[typ]
	if !ok {
		return Reference{}, kderr.Unrecognized("dr_type "+strconv.Quote(typ), xmlutil.PosOf(n))
	}
	switch book {
	case BookMoro:
		return decodeMoro(n)
	case BookOneillNames:
		text, err := xmlutil.Text(n)
		if err != nil {
			return Reference{}, err
		}
		o, err := codes.ParseOneill(text)
		if err != nil {
			return Reference{}, kderr.At(err, xmlutil.PosOf(n))
		}
		return Reference{Book: book, Oneill: &o}, nil
	case BookBusyPeople:
		text, err := xmlutil.Text(n)
		if err != nil {
			return Reference{}, err
		}
		bp, err := codes.ParseBusyPeople(text)
		if err != nil {
			return Reference{}, kderr.At(err, xmlutil.PosOf(n))
		}
		return Reference{Book: book, BusyPeople: &bp}, nil
	default:
		v, err := xmlutil.TextUint[uint16](n)
		if err != nil {
			return Reference{}, err
		}
		return Reference{Book: book, Index: v}, nil
	}
}

// decodeMoro combines the index text grammar with the independently
// optional m_vol and m_page attributes.
func decodeMoro(n *xmlquery.Node) (Reference, error) {
	text, err := xmlutil.Text(n)
	if err != nil {
		return Reference{}, err
	}
	index, suffix, err := codes.ParseMoroIndex(text)
	if err != nil {
		return Reference{}, kderr.At(err, xmlutil.PosOf(n))
	}
	volume, err := xmlutil.AttrUint[uint8](n, "m_vol")
	if err != nil {
		return Reference{}, err
	}
	page, err := xmlutil.AttrUint[uint16](n, "m_page")
	if err != nil {
		return Reference{}, err
	}
	return Reference{
		Book: BookMoro,
		Moro: &codes.Moro{Volume: volume, Page: page, Index: index, Suffix: suffix},
	}, nil
}
