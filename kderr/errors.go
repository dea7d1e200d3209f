// Package kderr defines the typed, positioned errors reported by every
// layer of the KANJIDIC decoding code.
//
// A decode failure originates at exactly one node of the source tree.
// The leaf error records the failure Kind and the node's Pos; outer
// layers add their component name with errors.Wrap so that a message
// reads top-down, e.g.
//
//	character: query code: skip: not-a-number: "x" at kanjidic2[1]/character[1]/query_code[1]/q_code[1]
//
// The wrapping never replaces the leaf: KindOf and PosOf recover the
// structured cause from an arbitrarily wrapped chain.
package kderr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind classifies a decode failure by its originating layer.
type Kind int

const (
	// KindMissingChild reports a mandatory child element that was absent.
	KindMissingChild Kind = iota
	// KindMissingAttribute reports a mandatory attribute that was absent.
	KindMissingAttribute
	// KindMissingText reports an element that carried no character data.
	KindMissingText
	// KindNotANumber reports text that failed to parse as the expected number.
	KindNotANumber
	// KindNotAChar reports text that was not exactly one character.
	KindNotAChar
	// KindUnrecognized reports a well-formed value outside its closed
	// vocabulary, such as an unknown reading type or grade digit.
	KindUnrecognized
	// KindMalformed reports compact code text that failed its grammar.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindMissingChild:
		return "missing-child"
	case KindMissingAttribute:
		return "missing-attribute"
	case KindMissingText:
		return "missing-text"
	case KindNotANumber:
		return "not-a-number"
	case KindNotAChar:
		return "not-a-char"
	case KindUnrecognized:
		return "unrecognized"
	case KindMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "missing-child":
		*k = KindMissingChild
	case "missing-attribute":
		*k = KindMissingAttribute
	case "missing-text":
		*k = KindMissingText
	case "not-a-number":
		*k = KindNotANumber
	case "not-a-char":
		*k = KindNotAChar
	case "unrecognized":
		*k = KindUnrecognized
	case "malformed":
		*k = KindMalformed
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Pos locates a node within its source document.
type Pos struct {
	// Tag is the element name of the node.
	Tag string
	// Path is the ordinal path from the document root, counting
	// same-tag siblings from 1, e.g. "kanjidic2[1]/character[1]/misc[1]".
	Path string
}

func (p Pos) String() string {
	if p.Path != "" {
		return p.Path
	}
	return p.Tag
}

// Error is a positioned decode error.
type Error struct {
	Kind   Kind
	Pos    Pos
	Detail string
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	if p := e.Pos.String(); p != "" {
		s += " at " + p
	}
	return s
}

// MissingChild reports that node pos lacks a mandatory child element tag.
func MissingChild(tag string, pos Pos) *Error {
	return &Error{Kind: KindMissingChild, Pos: pos, Detail: fmt.Sprintf("no <%s> element", tag)}
}

// MissingAttribute reports that node pos lacks a mandatory attribute name.
func MissingAttribute(name string, pos Pos) *Error {
	return &Error{Kind: KindMissingAttribute, Pos: pos, Detail: fmt.Sprintf("no %q attribute", name)}
}

// MissingText reports that node pos carries no character data.
func MissingText(pos Pos) *Error {
	return &Error{Kind: KindMissingText, Pos: pos}
}

// NotANumber reports that text failed to parse as the expected number.
func NotANumber(text string, pos Pos) *Error {
	return &Error{Kind: KindNotANumber, Pos: pos, Detail: fmt.Sprintf("%q", text)}
}

// NotAChar reports text that was not exactly one character.
func NotAChar(text string, pos Pos) *Error {
	return &Error{Kind: KindNotAChar, Pos: pos, Detail: fmt.Sprintf("%q", text)}
}

// Unrecognized reports a value outside its closed vocabulary.
func Unrecognized(detail string, pos Pos) *Error {
	return &Error{Kind: KindUnrecognized, Pos: pos, Detail: detail}
}

// Malformed reports compact code text that failed its grammar.
func Malformed(detail string, pos Pos) *Error {
	return &Error{Kind: KindMalformed, Pos: pos, Detail: detail}
}

// At attaches pos to a decode error produced away from the tree, such
// as by the pure text decoders in package codes. An error that already
// carries a position is returned unchanged, as is any foreign error.
func At(err error, pos Pos) error {
	var e *Error
	if errors.As(err, &e) && e.Pos == (Pos{}) {
		positioned := *e
		positioned.Pos = pos
		return &positioned
	}
	return err
}

// KindOf returns the Kind of the leaf decode error inside err.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// PosOf returns the position of the leaf decode error inside err.
func PosOf(err error) (Pos, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Pos, true
	}
	return Pos{}, false
}

// IsKind reports whether the leaf decode error inside err has kind k.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
