package ir

import "fmt"

// SpanKind represents the inline type of a text span.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

// String returns the string representation of the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	case SpanLink:
		return "link"
	case SpanImage:
		return "image"
	default:
		return "unknown"
	}
}

// MarshalText lets span kinds appear by name in JSON output.
func (k SpanKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a span kind name produced by MarshalText.
func (k *SpanKind) UnmarshalText(text []byte) error {
	for c := SpanPlain; c <= SpanImage; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown span kind: %s", text)
}

// HasTarget reports whether spans of this kind carry a URL.
func (k SpanKind) HasTarget() bool {
	return k == SpanLink || k == SpanImage
}

// Span is a typed fragment of inline content. Target is set only for
// links and images.
type Span struct {
	Content string   `json:"content"`
	Kind    SpanKind `json:"kind"`
	Target  string   `json:"target,omitempty"`
}

// NewSpan creates a span without a target.
func NewSpan(kind SpanKind, content string) Span {
	return Span{Content: content, Kind: kind}
}

// Plain creates a plain text span.
func Plain(content string) Span {
	return NewSpan(SpanPlain, content)
}

// NewLink creates a link span.
func NewLink(text, url string) Span {
	return Span{Content: text, Kind: SpanLink, Target: url}
}

// NewImage creates an image span; alt is the span content.
func NewImage(alt, url string) Span {
	return Span{Content: alt, Kind: SpanImage, Target: url}
}
