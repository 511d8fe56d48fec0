package model

// Glyph represents a single rendered character with position and font
// metadata, as reported by the PDF-parsing collaborator. Glyphs are supplied
// externally and never mutated by the pipeline.
type Glyph struct {
	// Text is the character (or character cluster) content
	Text string

	// X is the left edge of the glyph in page units
	X float64

	// Y is the baseline (or top) position of the glyph in page units.
	// Larger Y means higher on the page in PDF coordinates.
	Y float64

	// FontSize is the glyph's font size in points (0 when unknown)
	FontSize float64

	// FontName is the name of the glyph's font, including style markers
	// such as "Bold" or "Semibold" when present
	FontName string

	// FontWeight is the numeric font weight when the parser reports one
	// (0 when unknown; 400 is normal weight)
	FontWeight int
}

// DefaultFontSize is assumed for glyphs and blocks that report no font size.
const DefaultFontSize = 12.0

// EffectiveFontSize returns the glyph's font size, or DefaultFontSize when
// the parser reported none.
func (g Glyph) EffectiveFontSize() float64 {
	if g.FontSize <= 0 {
		return DefaultFontSize
	}
	return g.FontSize
}
