package ir

import (
	"encoding/json"
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	if doc.Version != "1.0" {
		t.Errorf("expected version 1.0, got %s", doc.Version)
	}
	if len(doc.Content) != 0 {
		t.Errorf("expected empty content, got %d blocks", len(doc.Content))
	}
}

func TestDocument_AddBlock(t *testing.T) {
	doc := NewDocument()
	doc.AddBlock(NewBlock(BlockParagraph, "Hello, World!"))

	if len(doc.Content) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Content))
	}
	if doc.Content[0].Kind != BlockParagraph {
		t.Errorf("expected paragraph kind, got %s", doc.Content[0].Kind)
	}
	if doc.Content[0].Text != "Hello, World!" {
		t.Errorf("expected 'Hello, World!', got %s", doc.Content[0].Text)
	}
}

func TestDocument_FirstHeading(t *testing.T) {
	doc := NewDocument()
	doc.AddBlock(NewBlock(BlockParagraph, "intro"))
	doc.AddBlock(NewBlock(BlockHeading2, "## Second"))
	doc.AddBlock(NewBlock(BlockHeading1, "# First"))

	b, ok := doc.FirstHeading()
	if !ok {
		t.Fatal("expected a heading block")
	}
	if b.Text != "## Second" {
		t.Errorf("expected first heading in document order, got %q", b.Text)
	}

	if _, ok := NewDocument().FirstHeading(); ok {
		t.Error("expected no heading in empty document")
	}
}

func TestHeadingKind(t *testing.T) {
	tests := []struct {
		level    int
		expected BlockKind
	}{
		{-1, BlockHeading1},
		{1, BlockHeading1},
		{3, BlockHeading3},
		{6, BlockHeading6},
		{9, BlockHeading6},
	}

	for _, tc := range tests {
		got := HeadingKind(tc.level)
		if got != tc.expected {
			t.Errorf("HeadingKind(%d) = %s, want %s", tc.level, got, tc.expected)
		}
		if got.HeadingLevel() < 1 || got.HeadingLevel() > 6 {
			t.Errorf("HeadingKind(%d) has level %d", tc.level, got.HeadingLevel())
		}
	}

	if BlockQuote.HeadingLevel() != 0 {
		t.Error("expected non-heading kind to report level 0")
	}
}

func TestSpanKind_HasTarget(t *testing.T) {
	for _, k := range []SpanKind{SpanPlain, SpanBold, SpanItalic, SpanCode} {
		if k.HasTarget() {
			t.Errorf("expected %s to carry no target", k)
		}
	}
	for _, k := range []SpanKind{SpanLink, SpanImage} {
		if !k.HasTarget() {
			t.Errorf("expected %s to carry a target", k)
		}
	}
}

func TestDocument_JSONSerialization(t *testing.T) {
	doc := NewDocument()
	doc.Metadata.Title = "Test Document"
	doc.AddBlock(NewBlock(BlockHeading1, "# Test Document"))
	doc.AddBlock(NewBlock(BlockOrderedList, "1. a\n2. b"))

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var restored Document
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if restored.Metadata.Title != doc.Metadata.Title {
		t.Errorf("title mismatch: expected %s, got %s", doc.Metadata.Title, restored.Metadata.Title)
	}
	if len(restored.Content) != 2 {
		t.Fatalf("content length mismatch: expected 2, got %d", len(restored.Content))
	}
	if restored.Content[1].Kind != BlockOrderedList {
		t.Errorf("kind mismatch: expected ordered_list, got %s", restored.Content[1].Kind)
	}
}
