package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/roboco-io/mdsite/internal/ir"
)

// ErrUnterminatedDelimiter is returned when an inline delimiter has no
// closing partner.
var ErrUnterminatedDelimiter = errors.New("unterminated delimiter")

// DelimiterError names the delimiter that was left open.
type DelimiterError struct {
	Delimiter string
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("%s: %q is not closed", ErrUnterminatedDelimiter, e.Delimiter)
}

func (e *DelimiterError) Unwrap() error {
	return ErrUnterminatedDelimiter
}

var (
	imagePattern = regexp.MustCompile(`!\[(.+?)\]\((.+?)\)`)
	linkPattern  = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
)

// delimiters are applied in this order; "**" must precede "*".
var delimiters = []struct {
	delim string
	kind  ir.SpanKind
}{
	{"**", ir.SpanBold},
	{"*", ir.SpanItalic},
	{"_", ir.SpanItalic},
	{"`", ir.SpanCode},
}

// SplitInline converts a run of text into typed spans. Images and links are
// extracted first so their text and URLs are not read as emphasis.
func SplitInline(text string) ([]ir.Span, error) {
	if text == "" {
		return []ir.Span{}, nil
	}

	spans := []ir.Span{ir.Plain(text)}
	spans = extract(spans, imagePattern, ir.NewImage)
	spans = extract(spans, linkPattern, ir.NewLink)

	var err error
	for _, d := range delimiters {
		if spans, err = splitDelimiter(spans, d.delim, d.kind); err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// extract replaces every match of pattern inside plain spans with a span
// built from the two captured groups.
func extract(spans []ir.Span, pattern *regexp.Regexp, build func(text, url string) ir.Span) []ir.Span {
	out := make([]ir.Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != ir.SpanPlain {
			out = append(out, s)
			continue
		}

		last := 0
		for _, m := range pattern.FindAllStringSubmatchIndex(s.Content, -1) {
			if before := s.Content[last:m[0]]; before != "" {
				out = append(out, ir.Plain(before))
			}
			out = append(out, build(s.Content[m[2]:m[3]], s.Content[m[4]:m[5]]))
			last = m[1]
		}
		if rest := s.Content[last:]; rest != "" {
			out = append(out, ir.Plain(rest))
		}
	}
	return out
}

// splitDelimiter splits plain spans on delim. Fragments alternate between
// outside and inside, so a well-formed text has an odd fragment count.
func splitDelimiter(spans []ir.Span, delim string, kind ir.SpanKind) ([]ir.Span, error) {
	out := make([]ir.Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != ir.SpanPlain {
			out = append(out, s)
			continue
		}

		parts := strings.Split(s.Content, delim)
		if len(parts)%2 == 0 {
			return nil, &DelimiterError{Delimiter: delim}
		}
		for i, part := range parts {
			if i%2 == 1 {
				out = append(out, ir.NewSpan(kind, part))
			} else if part != "" {
				out = append(out, ir.Plain(part))
			}
		}
	}
	return out, nil
}
