package xmlutil

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

const accessorDoc = `<?xml version="1.0" encoding="UTF-8"?>
<root>
  <entry id="first">
    <count>7</count>
    <count>11</count>
    <count>x</count>
    <empty></empty>
    <big>70000</big>
  </entry>
  <entry id="second" page="0525" bad="12b"></entry>
</root>`

func parseDoc(t *testing.T) *xmlquery.Node {
	t.Helper()
	doc, err := xmlquery.Parse(strings.NewReader(accessorDoc))
	require.NoError(t, err)
	return doc
}

func TestChild(t *testing.T) {
	a := assert.New(t)
	root := xmlquery.FindOne(parseDoc(t), "/root")
	require.NotNil(t, root)

	entry, err := Child(root, "entry")
	a.NoError(err)
	v, _ := Attr(entry, "id")
	a.Equal("first", v)

	_, err = Child(root, "missing")
	a.True(kderr.IsKind(err, kderr.KindMissingChild))
	pos, ok := kderr.PosOf(err)
	a.True(ok)
	a.Equal("root", pos.Tag)
}

func TestChildrenOrder(t *testing.T) {
	a := assert.New(t)
	entry := xmlquery.FindOne(parseDoc(t), "/root/entry")
	require.NotNil(t, entry)

	counts := Children(entry, "count")
	a.Len(counts, 3)
	a.Equal("7", counts[0].InnerText())
	a.Equal("11", counts[1].InnerText())
	a.Equal("x", counts[2].InnerText())

	a.Empty(Children(entry, "missing"))
}

func TestMapChildrenFailFast(t *testing.T) {
	a := assert.New(t)
	entry := xmlquery.FindOne(parseDoc(t), "/root/entry")
	require.NotNil(t, entry)

	// the third <count> is not numeric; the first two never surface
	out, err := MapChildren(entry, "count", TextUint[uint8])
	a.Nil(out)
	a.True(kderr.IsKind(err, kderr.KindNotANumber))
	pos, ok := kderr.PosOf(err)
	a.True(ok)
	a.Equal("root[1]/entry[1]/count[3]", pos.Path)
}

func TestText(t *testing.T) {
	a := assert.New(t)
	doc := parseDoc(t)

	count := xmlquery.FindOne(doc, "/root/entry/count")
	s, err := Text(count)
	a.NoError(err)
	a.Equal("7", s)

	empty := xmlquery.FindOne(doc, "/root/entry/empty")
	_, err = Text(empty)
	a.True(kderr.IsKind(err, kderr.KindMissingText))
}

func TestTextUint(t *testing.T) {
	a := assert.New(t)
	doc := parseDoc(t)

	count := xmlquery.FindOne(doc, "/root/entry/count")
	v, err := TextUint[uint8](count)
	a.NoError(err)
	a.Equal(uint8(7), v)

	// 70000 fits a uint32 but not a uint16
	big := xmlquery.FindOne(doc, "/root/entry/big")
	v32, err := TextUint[uint32](big)
	a.NoError(err)
	a.Equal(uint32(70000), v32)
	_, err = TextUint[uint16](big)
	a.True(kderr.IsKind(err, kderr.KindNotANumber))
}

func TestAttr(t *testing.T) {
	a := assert.New(t)
	second := xmlquery.FindOne(parseDoc(t), `/root/entry[@id="second"]`)
	require.NotNil(t, second)

	v, err := RequiredAttr(second, "id")
	a.NoError(err)
	a.Equal("second", v)

	_, err = RequiredAttr(second, "missing")
	a.True(kderr.IsKind(err, kderr.KindMissingAttribute))

	page, err := AttrUint[uint16](second, "page")
	a.NoError(err)
	if a.NotNil(page) {
		a.Equal(uint16(525), *page)
	}

	// a missing attribute is nil, not an error
	none, err := AttrUint[uint16](second, "missing")
	a.NoError(err)
	a.Nil(none)

	// a malformed attribute is an error, not nil
	_, err = AttrUint[uint16](second, "bad")
	a.True(kderr.IsKind(err, kderr.KindNotANumber))
}

func TestPosOf(t *testing.T) {
	a := assert.New(t)
	doc := parseDoc(t)

	second := xmlquery.FindOne(doc, "/root/entry[2]")
	require.NotNil(t, second)
	pos := PosOf(second)
	a.Equal("entry", pos.Tag)
	a.Equal("root[1]/entry[2]", pos.Path)

	count := xmlquery.FindOne(doc, "/root/entry/count[2]")
	require.NotNil(t, count)
	a.Equal("root[1]/entry[1]/count[2]", PosOf(count).Path)

	a.Equal(kderr.Pos{}, PosOf(nil))
}
