// Package htmlnode provides an immutable HTML node tree and its serialization.
//
// A tree is made of two node variants: *Leaf (raw text or a single element
// with text content) and *Parent (an element with ordered children). Trees
// are built bottom-up and rendered with Serialize.
package htmlnode

import (
	"errors"
	"slices"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrMalformedLeaf is returned when a leaf has neither tag nor text, or when
	// its text presence does not fit the tag.
	ErrMalformedLeaf = errors.New("malformed leaf node")
	// ErrMissingTag is returned when serializing a parent without a tag.
	ErrMissingTag = errors.New("parent node has no tag")
	// ErrMissingChildren is returned when serializing a parent whose children
	// were never set.
	ErrMissingChildren = errors.New("parent node has no children")
	// ErrNilNode is returned when a nil node is found in a tree.
	ErrNilNode = errors.New("nil node")
)

// Node is a renderable HTML node. It is implemented only by *Leaf and *Parent.
type Node interface {
	isNode()
}

// Attr is a single key="value" attribute. Attributes keep insertion order.
type Attr = html.Attribute

// A is shorthand for building an attribute.
func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

// IsSelfClosing reports whether tag is rendered as <tag ... /> without text.
func IsSelfClosing(tag string) bool {
	switch atom.Lookup([]byte(tag)) {
	case atom.Br, atom.Img:
		return true
	}
	return false
}

// Leaf is a node without children: raw text when Tag is empty, otherwise a
// single element.
type Leaf struct {
	tag     string
	text    string
	hasText bool
	attrs   []Attr
}

func (*Leaf) isNode() {}

// NewLeaf creates a leaf node. A nil text means "no text": it is required for
// self-closing tags and rejected everywhere else.
func NewLeaf(tag string, text *string, attrs ...Attr) (*Leaf, error) {
	switch {
	case tag == "" && text == nil:
		return nil, ErrMalformedLeaf
	case tag != "" && IsSelfClosing(tag) && text != nil:
		return nil, ErrMalformedLeaf
	case tag != "" && !IsSelfClosing(tag) && text == nil:
		return nil, ErrMalformedLeaf
	}

	l := &Leaf{tag: tag, attrs: slices.Clone(attrs)}
	if text != nil {
		l.text = *text
		l.hasText = true
	}
	return l, nil
}

// RawText creates an untagged leaf that renders text verbatim.
func RawText(text string) *Leaf {
	return &Leaf{text: text, hasText: true}
}

// Element creates a tagged leaf with text content. It cannot be used for
// self-closing tags.
func Element(tag, text string, attrs ...Attr) (*Leaf, error) {
	return NewLeaf(tag, &text, attrs...)
}

// Void creates a self-closing leaf such as br or img.
func Void(tag string, attrs ...Attr) (*Leaf, error) {
	return NewLeaf(tag, nil, attrs...)
}

// Tag returns the element name, empty for raw text.
func (l *Leaf) Tag() string { return l.tag }

// Text returns the leaf text and whether it is present.
func (l *Leaf) Text() (string, bool) { return l.text, l.hasText }

// Attrs returns a copy of the attributes in insertion order.
func (l *Leaf) Attrs() []Attr { return slices.Clone(l.attrs) }

// Parent is an element with an ordered list of children.
type Parent struct {
	tag      string
	children []Node
	attrs    []Attr
}

func (*Parent) isNode() {}

// NewParent creates a parent node. Structural problems (empty tag, nil
// children) are reported by Serialize, not here.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	return &Parent{
		tag:      tag,
		children: slices.Clone(children),
		attrs:    slices.Clone(attrs),
	}
}

// Tag returns the element name.
func (p *Parent) Tag() string { return p.tag }

// Children returns a copy of the child list.
func (p *Parent) Children() []Node { return slices.Clone(p.children) }

// Attrs returns a copy of the attributes in insertion order.
func (p *Parent) Attrs() []Attr { return slices.Clone(p.attrs) }
