package render

import (
	"fmt"

	"github.com/roboco-io/mdsite/internal/htmlnode"
	"github.com/roboco-io/mdsite/internal/ir"
	"github.com/roboco-io/mdsite/internal/parser"
)

// Document renders every block of doc in order under one container element.
// The first failing block aborts the conversion.
func Document(doc *ir.Document) (*htmlnode.Parent, error) {
	children := make([]htmlnode.Node, 0, len(doc.Content))
	for i, b := range doc.Content {
		n, err := Block(b)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, b.Kind, err)
		}
		children = append(children, n)
	}
	return htmlnode.NewParent(ContainerTag, children), nil
}

// BuildDocument parses markdown and renders it into a node tree.
func BuildDocument(markdown string) (*htmlnode.Parent, error) {
	return Document(parser.Parse(markdown))
}

// ToHTML converts markdown into an HTML fragment.
func ToHTML(markdown string) (string, error) {
	root, err := BuildDocument(markdown)
	if err != nil {
		return "", err
	}
	return htmlnode.Serialize(root)
}
