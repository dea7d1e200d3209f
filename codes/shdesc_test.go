package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

func TestParseShDesc(t *testing.T) {
	for _, tc := range []struct {
		input   string
		want    ShDesc
		wantErr bool
	}{
		{input: "0a7.14", want: ShDesc{RadicalStrokes: 0, Radical: 'a', OtherStrokes: 7, Sequence: 14}},
		{input: "3k11.1", want: ShDesc{RadicalStrokes: 3, Radical: 'k', OtherStrokes: 11, Sequence: 1}},
		{input: "a7.14", wantErr: true},
		{input: "07.14", wantErr: true},
		{input: "0a.14", wantErr: true},
		{input: "0a7", wantErr: true},
		{input: "0a7.", wantErr: true},
		{input: "0a7.14x", wantErr: true},
		{input: "", wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			got, err := ParseShDesc(tc.input)
			if tc.wantErr {
				a.True(kderr.IsKind(err, kderr.KindMalformed), "got %v", err)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, got)
			a.Equal(tc.input, got.String())
		})
	}
}
