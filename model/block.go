package model

import "strings"

// TextBlock represents one visually contiguous line of text, rebuilt from
// glyphs with aggregate font and position attributes. Blocks are created by
// the layout package and never mutated after creation.
type TextBlock struct {
	// Text is the normalized text content of the line
	Text string

	// FontSize is the arithmetic mean of the line's glyph font sizes
	FontSize float64

	// Bold reports whether any glyph in the line appears bold
	Bold bool

	// Y is the line's reference vertical position
	Y float64

	// Page is the 1-indexed page number the block came from
	Page int

	// Position is the block's index within its page in source order
	Position int
}

// WordCount returns the number of whitespace-separated words in the block.
func (b TextBlock) WordCount() int {
	return len(strings.Fields(b.Text))
}

// IsEmpty reports whether the block has no text content.
func (b TextBlock) IsEmpty() bool {
	return strings.TrimSpace(b.Text) == ""
}

// PageRecord represents one content-bearing page: its ordered text blocks
// plus the raw concatenated text used for page-level junk detection. Pages
// with materially empty text are dropped before a PageRecord is built.
type PageRecord struct {
	// Number is the 1-indexed page number
	Number int

	// Blocks are the page's text blocks in top-to-bottom source order
	Blocks []TextBlock

	// RawText is the page's plain-text rendering, used only for
	// TOC/junk-page detection
	RawText string
}

// WordCount returns the number of whitespace-separated words in the page's
// raw text.
func (p PageRecord) WordCount() int {
	return len(strings.Fields(p.RawText))
}
