package htmlnode

import (
	"fmt"
	"strings"
)

// Serialize renders the tree rooted at n to an HTML string. Text is written
// verbatim without escaping.
func Serialize(n Node) (string, error) {
	var sb strings.Builder
	if err := write(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func write(sb *strings.Builder, n Node) error {
	switch n := n.(type) {
	case nil:
		return ErrNilNode
	case *Leaf:
		if n == nil {
			return ErrNilNode
		}
		writeLeaf(sb, n)
		return nil
	case *Parent:
		if n == nil {
			return ErrNilNode
		}
		return writeParent(sb, n)
	default:
		return fmt.Errorf("unsupported node type %T", n)
	}
}

func writeLeaf(sb *strings.Builder, l *Leaf) {
	switch {
	case l.tag == "":
		sb.WriteString(l.text)
	case IsSelfClosing(l.tag):
		sb.WriteString("<" + l.tag)
		writeAttrs(sb, l.attrs)
		sb.WriteString(" />")
	default:
		sb.WriteString("<" + l.tag)
		writeAttrs(sb, l.attrs)
		sb.WriteString(">" + l.text + "</" + l.tag + ">")
	}
}

func writeParent(sb *strings.Builder, p *Parent) error {
	if p.tag == "" {
		return ErrMissingTag
	}
	if p.children == nil {
		return fmt.Errorf("%w: <%s>", ErrMissingChildren, p.tag)
	}

	sb.WriteString("<" + p.tag)
	writeAttrs(sb, p.attrs)
	sb.WriteString(">")
	for _, child := range p.children {
		if err := write(sb, child); err != nil {
			return err
		}
	}
	sb.WriteString("</" + p.tag + ">")
	return nil
}

func writeAttrs(sb *strings.Builder, attrs []Attr) {
	for _, a := range attrs {
		sb.WriteString(" " + a.Key + `="` + a.Val + `"`)
	}
}

// TextContent returns the concatenated text of every leaf under n, ignoring
// markup.
func TextContent(n Node) string {
	var sb strings.Builder
	collectText(&sb, n)
	return sb.String()
}

func collectText(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Leaf:
		if n != nil {
			sb.WriteString(n.text)
		}
	case *Parent:
		if n == nil {
			return
		}
		for _, child := range n.children {
			collectText(sb, child)
		}
	}
}
