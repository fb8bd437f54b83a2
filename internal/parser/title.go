package parser

import (
	"errors"

	"github.com/roboco-io/mdsite/internal/ir"
)

// ErrMissingTitle is returned when a document has no heading to use as title.
var ErrMissingTitle = errors.New("document has no heading")

// Title returns the page title of a parsed document: its first heading
// with the '#' markers stripped.
func Title(doc *ir.Document) (string, error) {
	if _, ok := doc.FirstHeading(); !ok {
		return "", ErrMissingTitle
	}
	return doc.Metadata.Title, nil
}
