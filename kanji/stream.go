package kanji

import (
	"io"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/tim-harding/kanjidic-parser/kradical"
)

// A Streamer decodes characters one at a time from a KANJIDIC document
// without holding the whole parsed tree in memory. The full dictionary
// runs to tens of thousands of records; DecodeAll is convenient for
// excerpts, a Streamer for the real thing.
type Streamer struct {
	parser   *xmlquery.StreamParser
	radicals kradical.Table
}

// NewStreamer prepares a streaming decode of the KANJIDIC document read
// from r. The radicals table may be nil.
func NewStreamer(r io.Reader, radicals kradical.Table) (*Streamer, error) {
	parser, err := xmlquery.CreateStreamParser(r, "/kanjidic2/character")
	if err != nil {
		return nil, errors.Wrap(err, "stream")
	}
	return &Streamer{parser: parser, radicals: radicals}, nil
}

// Next decodes the next character record, returning io.EOF once the
// document is exhausted. A malformed record or malformed XML stops the
// stream with the error.
func (s *Streamer) Next() (Character, error) {
	node, err := s.parser.Read()
	if err == io.EOF {
		return Character{}, io.EOF
	}
	if err != nil {
		return Character{}, errors.Wrap(err, "stream")
	}
	return Decode(node, s.radicals)
}
