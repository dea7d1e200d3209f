package kanji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

func TestDecodeGrade(t *testing.T) {
	for _, tc := range []struct {
		name     string
		xml      string
		want     Grade
		wantKind kderr.Kind
		wantErr  bool
	}{
		{name: "kyouiku", xml: `<grade>3</grade>`, want: Grade(3)},
		{name: "jouyou", xml: `<grade>8</grade>`, want: GradeJouyou},
		{name: "jinmeiyou", xml: `<grade>9</grade>`, want: GradeJinmeiyou},
		{name: "jinmeiyou jouyou variant", xml: `<grade>10</grade>`, want: GradeJinmeiyouJouyouVariant},
		{name: "zero", xml: `<grade>0</grade>`, wantErr: true, wantKind: kderr.KindUnrecognized},
		{name: "seven", xml: `<grade>7</grade>`, wantErr: true, wantKind: kderr.KindUnrecognized},
		{name: "eleven", xml: `<grade>11</grade>`, wantErr: true, wantKind: kderr.KindUnrecognized},
		{name: "not a number", xml: `<grade>three</grade>`, wantErr: true, wantKind: kderr.KindNotANumber},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := parseString(t, tc.xml)
			got, err := decodeGrade(findOne(t, doc, "//grade"))
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, kderr.IsKind(err, tc.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGradeKyouiku(t *testing.T) {
	a := assert.New(t)

	year, ok := Grade(4).Kyouiku()
	a.True(ok)
	a.Equal(uint8(4), year)

	_, ok = GradeJouyou.Kyouiku()
	a.False(ok)
	_, ok = GradeNone.Kyouiku()
	a.False(ok)
}

func TestGradeString(t *testing.T) {
	a := assert.New(t)
	a.Equal("kyouiku-2", Grade(2).String())
	a.Equal("jouyou", GradeJouyou.String())
	a.Equal("jinmeiyou", GradeJinmeiyou.String())
	a.Equal("jinmeiyou-jouyou-variant", GradeJinmeiyouJouyouVariant.String())
	a.Equal("none", GradeNone.String())
}
