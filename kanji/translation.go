package kanji

import (
	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/xmlutil"
)

// defaultLanguage keys meaning elements that carry no m_lang attribute.
const defaultLanguage = "en"

func decodeTranslations(rmgroup *xmlquery.Node) (Translations, error) {
	out := Translations{}
	for _, m := range xmlutil.Children(rmgroup, "meaning") {
		text, err := xmlutil.Text(m)
		if err != nil {
			return nil, err
		}
		lang, ok := xmlutil.Attr(m, "m_lang")
		if !ok {
			lang = defaultLanguage
		}
		out[lang] = append(out[lang], text)
	}
	return out, nil
}
