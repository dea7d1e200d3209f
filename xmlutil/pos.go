package xmlutil

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// PosOf describes where n sits in its document as a tag name plus an
// ordinal path. Ordinals count same-tag siblings only, from 1, so a
// path like "kanjidic2[1]/character[1]/misc[1]/stroke_count[2]" remains
// stable when unrelated siblings are added or reordered.
func PosOf(n *xmlquery.Node) kderr.Pos {
	if n == nil {
		return kderr.Pos{}
	}
	var steps []string
	for it := n; it != nil && it.Type == xmlquery.ElementNode; it = it.Parent {
		i := 1
		for sib := it.PrevSibling; sib != nil; sib = sib.PrevSibling {
			if sib.Type == xmlquery.ElementNode && sib.Data == it.Data {
				i++
			}
		}
		steps = append(steps, it.Data+"["+strconv.Itoa(i)+"]")
	}
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}
	return kderr.Pos{Tag: n.Data, Path: strings.Join(steps, "/")}
}
