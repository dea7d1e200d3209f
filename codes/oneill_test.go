package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

func TestParseOneill(t *testing.T) {
	for _, tc := range []struct {
		input    string
		want     Oneill
		wantKind kderr.Kind
		wantErr  bool
	}{
		{input: "525", want: Oneill{Number: 525}},
		{input: "2456A", want: Oneill{Number: 2456, Suffix: OneillSuffixA}},
		{input: "", wantErr: true, wantKind: kderr.KindMalformed},
		{input: "A", wantErr: true, wantKind: kderr.KindMalformed},
		{input: "525B", wantErr: true, wantKind: kderr.KindUnrecognized},
		{input: "525AA", wantErr: true, wantKind: kderr.KindUnrecognized},
		{input: "525A.", wantErr: true, wantKind: kderr.KindMalformed},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			got, err := ParseOneill(tc.input)
			if tc.wantErr {
				a.True(kderr.IsKind(err, tc.wantKind), "got %v", err)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, got)
			a.Equal(tc.input, got.String())
		})
	}
}
