package kanji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

func TestDecodeRadical(t *testing.T) {
	for _, tc := range []struct {
		name     string
		xml      string
		want     Radical
		wantKind kderr.Kind
		wantErr  bool
	}{
		{
			name: "classical",
			xml:  `<rad_value rad_type="classical">2</rad_value>`,
			want: Radical{Kind: RadicalClassical, KangXi: 2},
		},
		{
			name: "nelson",
			xml:  `<rad_value rad_type="nelson_c">1</rad_value>`,
			want: Radical{Kind: RadicalNelson, KangXi: 1},
		},
		{
			name: "last radical",
			xml:  `<rad_value rad_type="classical">214</rad_value>`,
			want: Radical{Kind: RadicalClassical, KangXi: 214},
		},
		{
			name:     "zero",
			xml:      `<rad_value rad_type="classical">0</rad_value>`,
			wantErr:  true,
			wantKind: kderr.KindUnrecognized,
		},
		{
			name:     "out of range",
			xml:      `<rad_value rad_type="classical">215</rad_value>`,
			wantErr:  true,
			wantKind: kderr.KindUnrecognized,
		},
		{
			name:     "unknown type",
			xml:      `<rad_value rad_type="kangxi">2</rad_value>`,
			wantErr:  true,
			wantKind: kderr.KindUnrecognized,
		},
		{
			name:     "not a number",
			xml:      `<rad_value rad_type="classical">two</rad_value>`,
			wantErr:  true,
			wantKind: kderr.KindNotANumber,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := parseString(t, tc.xml)
			got, err := decodeRadical(findOne(t, doc, "//rad_value"))
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
