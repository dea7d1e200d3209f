package kanji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tim-harding/kanjidic-parser/codes"
	"github.com/tim-harding/kanjidic-parser/kderr"
)

func TestDecodeCodepoint(t *testing.T) {
	for _, tc := range []struct {
		name     string
		xml      string
		want     Codepoint
		wantKind kderr.Kind
		wantErr  bool
	}{
		{
			name: "ucs",
			xml:  `<cp_value cp_type="ucs">4e9c</cp_value>`,
			want: CodepointUnicode(0x4e9c),
		},
		{
			name: "jis208",
			xml:  `<cp_value cp_type="jis208">1-16-1</cp_value>`,
			want: CodepointJis208(codes.Kuten{Plane: 1, Ku: 16, Ten: 1}),
		},
		{
			name: "jis212",
			xml:  `<cp_value cp_type="jis212">1-16-17</cp_value>`,
			want: CodepointJis212(codes.Kuten{Plane: 1, Ku: 16, Ten: 17}),
		},
		{
			name: "jis213",
			xml:  `<cp_value cp_type="jis213">1-14-2</cp_value>`,
			want: CodepointJis213(codes.Kuten{Plane: 1, Ku: 14, Ten: 2}),
		},
		{
			name:     "unknown type",
			xml:      `<cp_value cp_type="big5">A05B</cp_value>`,
			wantErr:  true,
			wantKind: kderr.KindUnrecognized,
		},
		{
			name:     "bad hex",
			xml:      `<cp_value cp_type="ucs">xyzzy</cp_value>`,
			wantErr:  true,
			wantKind: kderr.KindNotANumber,
		},
		{
			name:     "bad kuten",
			xml:      `<cp_value cp_type="jis208">1-16</cp_value>`,
			wantErr:  true,
			wantKind: kderr.KindMalformed,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := parseString(t, tc.xml)
			got, err := decodeCodepoint(findOne(t, doc, "//cp_value"))
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
