package source

import "github.com/tsawler/contour/model"

// Page is the raw material for one document page as supplied by a
// PageSource: the plain-text rendering plus, when the source can provide
// them, the page's positioned glyphs.
type Page struct {
	// Number is the 1-indexed page number
	Number int

	// Text is the page's plain-text rendering
	Text string

	// Glyphs are the page's positioned characters. Nil when the source
	// cannot provide glyph fidelity (plain-text fallback path).
	Glyphs []model.Glyph
}

// PageSource yields a document's pages in order. Implementations own any
// I/O involved; the layout pipeline itself performs none.
type PageSource interface {
	ReadPages() ([]Page, error)
}
