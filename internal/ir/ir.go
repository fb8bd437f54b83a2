// Package ir defines the Intermediate Representation for Markdown documents.
// IR is the output of the parser and input for the HTML renderer.
package ir

// Document represents the intermediate representation of a Markdown document.
type Document struct {
	Version  string   `json:"version"`
	Metadata Metadata `json:"metadata"`
	Content  []Block  `json:"content"`
}

// Metadata contains document metadata.
type Metadata struct {
	Title  string `json:"title,omitempty"`
	Source string `json:"source,omitempty"` // originating file, if any
}

// NewDocument creates a new IR document with the current version.
func NewDocument() *Document {
	return &Document{
		Version: "1.0",
		Content: make([]Block, 0),
	}
}

// AddBlock appends a block to the document.
func (d *Document) AddBlock(b Block) {
	d.Content = append(d.Content, b)
}

// FirstHeading returns the first heading block in document order.
func (d *Document) FirstHeading() (Block, bool) {
	for _, b := range d.Content {
		if b.Kind.IsHeading() {
			return b, true
		}
	}
	return Block{}, false
}
