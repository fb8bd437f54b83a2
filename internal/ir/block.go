package ir

import "fmt"

// BlockKind represents the structural type of a block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading1
	BlockHeading2
	BlockHeading3
	BlockHeading4
	BlockHeading5
	BlockHeading6
	BlockCodeFence
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

// String returns the string representation of the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading1, BlockHeading2, BlockHeading3, BlockHeading4, BlockHeading5, BlockHeading6:
		return fmt.Sprintf("heading%d", k.HeadingLevel())
	case BlockCodeFence:
		return "code"
	case BlockQuote:
		return "quote"
	case BlockUnorderedList:
		return "unordered_list"
	case BlockOrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

// MarshalText lets block kinds appear by name in JSON output.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a block kind name produced by MarshalText.
func (k *BlockKind) UnmarshalText(text []byte) error {
	for c := BlockParagraph; c <= BlockOrderedList; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown block kind: %s", text)
}

// IsHeading reports whether the kind is one of the six heading levels.
func (k BlockKind) IsHeading() bool {
	return k >= BlockHeading1 && k <= BlockHeading6
}

// HeadingLevel returns 1-6 for heading kinds and 0 otherwise.
func (k BlockKind) HeadingLevel() int {
	if !k.IsHeading() {
		return 0
	}
	return int(k-BlockHeading1) + 1
}

// HeadingKind returns the heading kind for a level; levels outside 1-6 are clamped.
func HeadingKind(level int) BlockKind {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return BlockHeading1 + BlockKind(level-1)
}

// Block is a trimmed run of lines separated from its neighbours by blank lines.
type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

// NewBlock creates a block of the given kind.
func NewBlock(kind BlockKind, text string) Block {
	return Block{Kind: kind, Text: text}
}
