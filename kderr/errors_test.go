package kderr

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindText(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		text string
	}{
		{KindMissingChild, "missing-child"},
		{KindMissingAttribute, "missing-attribute"},
		{KindMissingText, "missing-text"},
		{KindNotANumber, "not-a-number"},
		{KindNotAChar, "not-a-char"},
		{KindUnrecognized, "unrecognized"},
		{KindMalformed, "malformed"},
	} {
		t.Run(tc.text, func(t *testing.T) {
			a := assert.New(t)
			a.Equal(tc.text, tc.kind.String())

			b, err := tc.kind.MarshalText()
			a.NoError(err)
			a.Equal(tc.text, string(b))

			var k Kind
			a.NoError(k.UnmarshalText([]byte(tc.text)))
			a.Equal(tc.kind, k)
		})
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("bogus")))
}

func TestErrorMessage(t *testing.T) {
	pos := Pos{Tag: "grade", Path: "kanjidic2[1]/character[1]/misc[1]/grade[1]"}
	err := NotANumber("x", pos)
	assert.Equal(t, `not-a-number: "x" at kanjidic2[1]/character[1]/misc[1]/grade[1]`, err.Error())

	assert.Equal(t, "missing-text", MissingText(Pos{}).Error())
	assert.Equal(t, `missing-child: no <codepoint> element at character[1]`,
		MissingChild("codepoint", Pos{Tag: "character", Path: "character[1]"}).Error())
}

func TestWrappedChain(t *testing.T) {
	a := assert.New(t)
	pos := Pos{Tag: "q_code", Path: "character[1]/query_code[1]/q_code[1]"}
	leaf := Malformed("skip code \"4-7\" is not a three-field code", pos)
	err := pkgerrors.Wrap(pkgerrors.Wrap(pkgerrors.Wrap(leaf, "skip"), "query code"), "character")

	a.Equal(
		`character: query code: skip: malformed: skip code "4-7" is not a three-field code at character[1]/query_code[1]/q_code[1]`,
		err.Error())

	kind, ok := KindOf(err)
	a.True(ok)
	a.Equal(KindMalformed, kind)

	got, ok := PosOf(err)
	a.True(ok)
	a.Equal(pos, got)

	a.True(IsKind(err, KindMalformed))
	a.False(IsKind(err, KindMissingChild))
	a.False(IsKind(pkgerrors.New("plain"), KindMalformed))
}

func TestAt(t *testing.T) {
	a := assert.New(t)
	pos := Pos{Tag: "dic_ref", Path: "character[1]/dic_number[1]/dic_ref[1]"}

	// a positionless error picks up the position
	err := At(Unrecognized("moro index suffix \"Q\"", Pos{}), pos)
	got, ok := PosOf(err)
	a.True(ok)
	a.Equal(pos, got)

	// an already positioned error keeps its own
	other := Pos{Tag: "freq", Path: "character[1]/misc[1]/freq[1]"}
	err = At(NotANumber("x", other), pos)
	got, ok = PosOf(err)
	a.True(ok)
	a.Equal(other, got)

	// nil and foreign errors pass through untouched
	a.NoError(At(nil, pos))
	foreign := pkgerrors.New("not a decode error")
	a.Equal(foreign, At(foreign, pos))
}
