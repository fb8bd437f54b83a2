package htmlnode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func str(s string) *string { return &s }

func TestNewLeaf(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		text    *string
		wantErr bool
	}{
		{"raw text", "", str("hello"), false},
		{"empty raw text", "", str(""), false},
		{"no tag no text", "", nil, true},
		{"element", "b", str("bold"), false},
		{"element without text", "b", nil, true},
		{"image", "img", nil, false},
		{"line break", "br", nil, false},
		{"image with text", "img", str("alt"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := NewLeaf(tc.tag, tc.text)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrMalformedLeaf)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.tag, l.Tag())
		})
	}
}

func TestSerializeLeaf(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*Leaf, error)
		expected string
	}{
		{
			name:     "raw text is verbatim",
			build:    func() (*Leaf, error) { return RawText("a < b & c"), nil },
			expected: "a < b & c",
		},
		{
			name:     "plain element",
			build:    func() (*Leaf, error) { return Element("p", "Hello") },
			expected: "<p>Hello</p>",
		},
		{
			name: "link",
			build: func() (*Leaf, error) {
				return Element("a", "Click", A("href", "https://www.google.com"))
			},
			expected: `<a href="https://www.google.com">Click</a>`,
		},
		{
			name:     "line break",
			build:    func() (*Leaf, error) { return Void("br") },
			expected: "<br />",
		},
		{
			name: "image keeps attribute order",
			build: func() (*Leaf, error) {
				return Void("img", A("src", "http://x/y.png"), A("alt", "pic"))
			},
			expected: `<img src="http://x/y.png" alt="pic" />`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := tc.build()
			require.NoError(t, err)
			got, err := Serialize(l)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSerializeParent(t *testing.T) {
	b, err := Element("b", "Bold text")
	require.NoError(t, err)
	i, err := Element("i", "italic text")
	require.NoError(t, err)

	p := NewParent("p", []Node{b, RawText("Normal text"), i, RawText("Normal text")})
	got, err := Serialize(p)
	require.NoError(t, err)
	assert.Equal(t, "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>", got)

	// serialization is repeatable
	again, err := Serialize(p)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSerializeNestedParents(t *testing.T) {
	grandchild, err := Element("b", "grandchild")
	require.NoError(t, err)
	child := NewParent("span", []Node{grandchild})
	parent := NewParent("div", []Node{child}, A("class", "outer"), A("id", "root"))

	got, err := Serialize(parent)
	require.NoError(t, err)
	assert.Equal(t, `<div class="outer" id="root"><span><b>grandchild</b></span></div>`, got)

	doc, err := html.Parse(strings.NewReader(got))
	require.NoError(t, err)
	assert.NotNil(t, doc)
}

func TestSerializeParentErrors(t *testing.T) {
	_, err := Serialize(NewParent("", []Node{RawText("x")}))
	assert.ErrorIs(t, err, ErrMissingTag)

	_, err = Serialize(NewParent("div", nil))
	assert.ErrorIs(t, err, ErrMissingChildren)

	got, err := Serialize(NewParent("div", []Node{}))
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", got)

	// errors from nested parents propagate to the root
	_, err = Serialize(NewParent("div", []Node{NewParent("ul", nil)}))
	assert.True(t, errors.Is(err, ErrMissingChildren))
}

func TestSerializeNilNodes(t *testing.T) {
	tests := []struct {
		name string
		root Node
	}{
		{"nil root", nil},
		{"typed nil leaf root", (*Leaf)(nil)},
		{"typed nil leaf child", NewParent("p", []Node{(*Leaf)(nil)})},
		{"typed nil parent child", NewParent("div", []Node{RawText("x"), (*Parent)(nil)})},
		{"nil interface child", NewParent("div", []Node{nil})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Serialize(tc.root)
			assert.ErrorIs(t, err, ErrNilNode)
			assert.Empty(t, got)
		})
	}

	assert.Equal(t, "x", TextContent(NewParent("p", []Node{RawText("x"), (*Leaf)(nil), (*Parent)(nil)})))
}

func TestNodesAreImmutable(t *testing.T) {
	attrs := []Attr{A("href", "/a")}
	children := []Node{RawText("x")}

	l, err := Element("a", "x", attrs...)
	require.NoError(t, err)
	p := NewParent("p", children, attrs...)

	attrs[0].Val = "/changed"
	children[0] = RawText("y")

	assert.Equal(t, "/a", l.Attrs()[0].Val)
	got, err := Serialize(p)
	require.NoError(t, err)
	assert.Equal(t, `<p href="/a">x</p>`, got)
}

func TestTextContent(t *testing.T) {
	b, err := Element("b", "bold")
	require.NoError(t, err)
	br, err := Void("br")
	require.NoError(t, err)
	p := NewParent("p", []Node{RawText("Some "), b, br, RawText(" text.")})

	assert.Equal(t, "Some bold text.", TextContent(p))
}
