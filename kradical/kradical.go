// Package kradical provides the radical decomposition table consulted
// when character records are assembled.
//
// The table is an immutable value built once, before decoding begins,
// and queried by exact character equality. It can be materialized from
// the standard KRADFILE line format, either in UTF-8 or in the file's
// original EUC-JP encoding.
package kradical

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/japanese"
)

// Table maps a kanji to its constituent radicals in display order.
type Table map[rune][]rune

// Decompose returns the constituent radicals of literal, or an empty
// list when the table has no entry for it. The returned slice is a
// copy; callers may keep it.
func (t Table) Decompose(literal rune) []rune {
	radicals, ok := t[literal]
	if !ok {
		return nil
	}
	out := make([]rune, len(radicals))
	copy(out, radicals)
	return out
}

// Parse reads a UTF-8 KRADFILE document: one "kanji : radical ..." line
// per character, with # starting a comment line.
func Parse(r io.Reader) (Table, error) {
	t := Table{}
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		kanji, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.Errorf("kradical: line %d: no \":\" separator", lineno)
		}
		k := []rune(strings.TrimSpace(kanji))
		if len(k) != 1 {
			return nil, errors.Errorf("kradical: line %d: %q is not a single kanji", lineno, strings.TrimSpace(kanji))
		}
		var radicals []rune
		for _, field := range strings.Fields(rest) {
			rs := []rune(field)
			if len(rs) != 1 {
				return nil, errors.Errorf("kradical: line %d: %q is not a single radical", lineno, field)
			}
			radicals = append(radicals, rs[0])
		}
		if len(radicals) == 0 {
			return nil, errors.Errorf("kradical: line %d: no radicals", lineno)
		}
		t[k[0]] = radicals
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "kradical")
	}
	return t, nil
}

// ParseEUCJP reads a KRADFILE document in its original EUC-JP encoding.
func ParseEUCJP(r io.Reader) (Table, error) {
	return Parse(japanese.EUCJP.NewDecoder().Reader(r))
}
