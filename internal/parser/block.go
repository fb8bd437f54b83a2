package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/roboco-io/mdsite/internal/ir"
)

const (
	blockSeparator = "\n\n"
	fence          = "```"
)

var headingPattern = regexp.MustCompile(`^(#{1,6}) `)

// Segment splits a document into trimmed, non-empty blocks in document order.
// Any run of blank lines separates two blocks.
func Segment(markdown string) []string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")

	blocks := make([]string, 0)
	for _, part := range strings.Split(markdown, blockSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		blocks = append(blocks, part)
	}
	return blocks
}

// Classify returns the structural kind of a trimmed block. Rules are tried in
// order and the first match wins.
func Classify(block string) ir.BlockKind {
	if m := headingPattern.FindStringSubmatch(block); m != nil {
		return ir.HeadingKind(len(m[1]))
	}
	if strings.HasPrefix(block, fence) && strings.HasSuffix(block, fence) {
		return ir.BlockCodeFence
	}

	lines := strings.Split(block, "\n")
	switch {
	case everyLine(lines, func(_ int, l string) bool { return strings.HasPrefix(l, ">") }):
		return ir.BlockQuote
	case everyLine(lines, func(_ int, l string) bool { return strings.HasPrefix(l, "- ") }):
		return ir.BlockUnorderedList
	case everyLine(lines, func(i int, l string) bool { return strings.HasPrefix(l, orderedMarker(i)) }):
		return ir.BlockOrderedList
	}
	return ir.BlockParagraph
}

func everyLine(lines []string, pred func(i int, line string) bool) bool {
	for i, l := range lines {
		if !pred(i, l) {
			return false
		}
	}
	return true
}

// orderedMarker returns the marker expected on the zero-based line i.
func orderedMarker(i int) string {
	return strconv.Itoa(i+1) + ". "
}

// StripHeading removes the leading '#' run and a single following space.
func StripHeading(block string) string {
	rest := strings.TrimLeft(block, "#")
	return strings.TrimPrefix(rest, " ")
}

// StripQuote removes the '>' marker and one following space from every line.
func StripQuote(block string) []string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		l = strings.TrimPrefix(l, ">")
		lines[i] = strings.TrimPrefix(l, " ")
	}
	return lines
}

// ListItems returns the item texts of a list block with markers removed.
func ListItems(block string, ordered bool) []string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		if ordered {
			lines[i] = strings.TrimPrefix(l, orderedMarker(i))
		} else {
			lines[i] = strings.TrimPrefix(l, "- ")
		}
	}
	return lines
}

// FenceContent returns the lines between the opening fence line and the
// line holding the closing fence; both fence lines are dropped whole. A fence
// written on a single line yields its inner text.
func FenceContent(block string) string {
	if len(block) < 2*len(fence) {
		return ""
	}
	inner := block[len(fence) : len(block)-len(fence)]

	nl := strings.IndexByte(inner, '\n')
	if nl < 0 {
		return inner
	}
	// the rest of the opening line is an info string, not content
	inner = inner[nl+1:]

	last := strings.LastIndexByte(inner, '\n')
	if last < 0 {
		return ""
	}
	return inner[:last]
}
