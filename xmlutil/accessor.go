// Package xmlutil provides the node accessors used to walk a parsed
// KANJIDIC document.
//
// All lookups operate on the generic node type of
// github.com/antchfx/xmlquery and report failures as positioned kderr
// values, so a caller can tell exactly which source fragment was bad.
// Lookups are by exact tag or attribute name. Order among same-tag
// siblings is preserved; order among different tags is irrelevant.
package xmlutil

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// Unsigned covers the unsigned integer widths KANJIDIC fields use.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Child returns the first child element of n named tag, or a
// missing-child error positioned at n.
func Child(n *xmlquery.Node, tag string) (*xmlquery.Node, error) {
	for it := n.FirstChild; it != nil; it = it.NextSibling {
		if it.Type == xmlquery.ElementNode && it.Data == tag {
			return it, nil
		}
	}
	return nil, kderr.MissingChild(tag, PosOf(n))
}

// Children returns every child element of n named tag, in document order.
func Children(n *xmlquery.Node, tag string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for it := n.FirstChild; it != nil; it = it.NextSibling {
		if it.Type == xmlquery.ElementNode && it.Data == tag {
			out = append(out, it)
		}
	}
	return out
}

// MapChildren decodes every child element of n named tag, in document
// order. The first child decode fails on wins; later children are not
// examined and no partial results are returned.
func MapChildren[T any](n *xmlquery.Node, tag string, decode func(*xmlquery.Node) (T, error)) ([]T, error) {
	var out []T
	for _, child := range Children(n, tag) {
		v, err := decode(child)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Text returns the character data inside n, or a missing-text error
// positioned at n when there is none.
func Text(n *xmlquery.Node) (string, error) {
	if s := n.InnerText(); s != "" {
		return s, nil
	}
	return "", kderr.MissingText(PosOf(n))
}

// TextUint parses the text of n as an unsigned decimal of type T.
func TextUint[T Unsigned](n *xmlquery.Node) (T, error) {
	s, err := Text(n)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return 0, kderr.NotANumber(s, PosOf(n))
	}
	return T(v), nil
}

// Attr returns the value of the named attribute of n and whether it was
// present.
func Attr(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// RequiredAttr returns the value of the named attribute of n, or a
// missing-attribute error positioned at n.
func RequiredAttr(n *xmlquery.Node, name string) (string, error) {
	if v, ok := Attr(n, name); ok {
		return v, nil
	}
	return "", kderr.MissingAttribute(name, PosOf(n))
}

// AttrUint parses the named attribute of n as an unsigned decimal of
// type T. A missing attribute yields nil; a malformed one is an error.
func AttrUint[T Unsigned](n *xmlquery.Node, name string) (*T, error) {
	s, ok := Attr(n, name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return nil, kderr.NotANumber(s, PosOf(n))
	}
	t := T(v)
	return &t, nil
}
