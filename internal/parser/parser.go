// Package parser turns Markdown source into the intermediate representation.
//
// Parsing happens in two stages: the document is segmented into blocks and
// each block is classified, then inline text is split into typed spans on
// demand by the renderer.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roboco-io/mdsite/internal/ir"
)

// Format represents a source document format.
type Format int

const (
	FormatUnknown Format = iota
	FormatMarkdown
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// DetectFormat detects the document format from the file path.
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatUnknown
	}
}

// Parse segments and classifies a Markdown document. It never fails: every
// block gets a kind, defaulting to paragraph.
func Parse(markdown string) *ir.Document {
	doc := ir.NewDocument()
	for _, text := range Segment(markdown) {
		doc.AddBlock(ir.NewBlock(Classify(text), text))
	}
	if b, ok := doc.FirstHeading(); ok {
		doc.Metadata.Title = strings.TrimSpace(StripHeading(b.Text))
	}
	return doc
}

// ParseFile reads and parses a Markdown file.
func ParseFile(path string) (*ir.Document, error) {
	if DetectFormat(path) != FormatMarkdown {
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc := Parse(string(data))
	doc.Metadata.Source = path
	return doc, nil
}
