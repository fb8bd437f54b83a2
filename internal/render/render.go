// Package render converts parsed Markdown blocks into an HTML node tree.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/roboco-io/mdsite/internal/htmlnode"
	"github.com/roboco-io/mdsite/internal/ir"
	"github.com/roboco-io/mdsite/internal/parser"
)

// ContainerTag is the element wrapping every block of a document.
var ContainerTag = atom.Div.String()

var headingTags = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// SpanNode converts a single inline span into a leaf node.
func SpanNode(s ir.Span) (*htmlnode.Leaf, error) {
	switch s.Kind {
	case ir.SpanPlain:
		return htmlnode.RawText(s.Content), nil
	case ir.SpanBold:
		return htmlnode.Element(atom.B.String(), s.Content)
	case ir.SpanItalic:
		return htmlnode.Element(atom.I.String(), s.Content)
	case ir.SpanCode:
		return htmlnode.Element(atom.Code.String(), s.Content)
	case ir.SpanLink:
		return htmlnode.Element(atom.A.String(), s.Content, htmlnode.A("href", s.Target))
	case ir.SpanImage:
		return htmlnode.Void(atom.Img.String(), htmlnode.A("src", s.Target), htmlnode.A("alt", s.Content))
	default:
		return nil, fmt.Errorf("unknown span kind: %d", s.Kind)
	}
}

// inlineNodes splits text into spans and converts each span to a node.
func inlineNodes(text string) ([]htmlnode.Node, error) {
	spans, err := parser.SplitInline(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := SpanNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Block converts one classified block into an HTML node.
func Block(b ir.Block) (htmlnode.Node, error) {
	switch b.Kind {
	case ir.BlockHeading1, ir.BlockHeading2, ir.BlockHeading3,
		ir.BlockHeading4, ir.BlockHeading5, ir.BlockHeading6:
		return heading(b)
	case ir.BlockCodeFence:
		return codeFence(b)
	case ir.BlockQuote:
		return quote(b)
	case ir.BlockUnorderedList:
		return list(b, false)
	case ir.BlockOrderedList:
		return list(b, true)
	case ir.BlockParagraph:
		return paragraph(b)
	default:
		return nil, fmt.Errorf("unknown block kind: %d", b.Kind)
	}
}

func heading(b ir.Block) (htmlnode.Node, error) {
	tag := headingTags[b.Kind.HeadingLevel()-1].String()
	children, err := inlineNodes(parser.StripHeading(b.Text))
	if err != nil {
		return nil, err
	}

	// a heading without inline markup is a single element
	if len(children) == 1 {
		if l, ok := children[0].(*htmlnode.Leaf); ok && l.Tag() == "" {
			text, _ := l.Text()
			return htmlnode.Element(tag, text)
		}
	}
	return htmlnode.NewParent(tag, children), nil
}

func codeFence(b ir.Block) (htmlnode.Node, error) {
	code, err := htmlnode.Element(atom.Code.String(), parser.FenceContent(b.Text))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(atom.Pre.String(), []htmlnode.Node{code}), nil
}

func quote(b ir.Block) (htmlnode.Node, error) {
	text := strings.Join(parser.StripQuote(b.Text), "\n")
	children, err := inlineNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(atom.Blockquote.String(), children), nil
}

func list(b ir.Block, ordered bool) (htmlnode.Node, error) {
	tag := atom.Ul.String()
	if ordered {
		tag = atom.Ol.String()
	}

	items := parser.ListItems(b.Text, ordered)
	children := make([]htmlnode.Node, 0, len(items))
	for _, item := range items {
		nodes, err := inlineNodes(item)
		if err != nil {
			return nil, err
		}
		children = append(children, htmlnode.NewParent(atom.Li.String(), nodes))
	}
	return htmlnode.NewParent(tag, children), nil
}

// paragraph splits the whole block inline, then turns the newlines left in
// plain text into line breaks. No break follows the last line.
func paragraph(b ir.Block) (htmlnode.Node, error) {
	spans, err := parser.SplitInline(b.Text)
	if err != nil {
		return nil, err
	}

	children := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		if s.Kind != ir.SpanPlain || !strings.Contains(s.Content, "\n") {
			n, err := SpanNode(s)
			if err != nil {
				return nil, err
			}
			children = append(children, n)
			continue
		}

		for i, line := range strings.Split(s.Content, "\n") {
			if i > 0 {
				br, err := htmlnode.Void(atom.Br.String())
				if err != nil {
					return nil, err
				}
				children = append(children, br)
			}
			if line != "" {
				children = append(children, htmlnode.RawText(line))
			}
		}
	}
	return htmlnode.NewParent(atom.P.String(), children), nil
}
