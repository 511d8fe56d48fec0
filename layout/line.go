package layout

import (
	"sort"

	"github.com/tsawler/contour/model"
)

// AssembledLine is one reconstructed line of glyphs, ordered left to right.
type AssembledLine struct {
	// Glyphs are the line's glyphs sorted by X position
	Glyphs []model.Glyph

	// Y is the line's reference vertical position (the Y of the glyph
	// that opened the line)
	Y float64
}

// AssemblerConfig holds configuration for line assembly
type AssemblerConfig struct {
	// YTolerance is the maximum vertical distance from the line's
	// reference position for a glyph to join the line. Too small merges
	// diacritics and sub/superscripts into separate lines; too large
	// merges adjacent baseline-stacked lines.
	// Default: 3.0 position units
	YTolerance float64

	// ColumnBandWidth is the minimum horizontal gap between glyphs at the
	// same vertical band for them to be treated as separate columns.
	// Default: 100 position units
	ColumnBandWidth float64
}

// DefaultAssemblerConfig returns sensible default configuration
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		YTolerance:      3.0,
		ColumnBandWidth: 100.0,
	}
}

// LineAssembler groups a page's raw glyphs into ordered lines
type LineAssembler struct {
	config AssemblerConfig
}

// NewLineAssembler creates a line assembler with default configuration
func NewLineAssembler() *LineAssembler {
	return &LineAssembler{
		config: DefaultAssemblerConfig(),
	}
}

// NewLineAssemblerWithConfig creates a line assembler with custom configuration
func NewLineAssemblerWithConfig(config AssemblerConfig) *LineAssembler {
	if config.YTolerance <= 0 {
		config.YTolerance = DefaultAssemblerConfig().YTolerance
	}
	if config.ColumnBandWidth <= 0 {
		config.ColumnBandWidth = DefaultAssemblerConfig().ColumnBandWidth
	}
	return &LineAssembler{
		config: config,
	}
}

// Assemble groups an unordered set of glyphs into lines ordered top to
// bottom, with glyphs within each line ordered left to right. An empty
// glyph set yields no lines.
func (a *LineAssembler) Assemble(glyphs []model.Glyph) []AssembledLine {
	if len(glyphs) == 0 {
		return nil
	}

	// Sort by Y descending (top of page first in PDF coordinates),
	// then X ascending.
	sorted := make([]model.Glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	// Walk the sorted glyphs maintaining a current vertical band. A glyph
	// within YTolerance of the band's reference position joins the band;
	// otherwise the band closes and a new one opens.
	var bands []AssembledLine
	current := AssembledLine{Y: sorted[0].Y, Glyphs: []model.Glyph{sorted[0]}}

	for _, g := range sorted[1:] {
		if absFloat64(g.Y-current.Y) <= a.config.YTolerance {
			current.Glyphs = append(current.Glyphs, g)
		} else {
			bands = append(bands, current)
			current = AssembledLine{Y: g.Y, Glyphs: []model.Glyph{g}}
		}
	}
	bands = append(bands, current)

	// Split each vertical band into column runs so side-by-side columns
	// at the same height do not merge into one line.
	var lines []AssembledLine
	for _, band := range bands {
		lines = append(lines, a.splitColumns(band)...)
	}

	return lines
}

// splitColumns breaks a vertical band into separate lines wherever the
// horizontal gap between adjacent glyphs exceeds the column band width.
func (a *LineAssembler) splitColumns(band AssembledLine) []AssembledLine {
	sort.SliceStable(band.Glyphs, func(i, j int) bool {
		return band.Glyphs[i].X < band.Glyphs[j].X
	})

	var lines []AssembledLine
	current := AssembledLine{Y: band.Y, Glyphs: []model.Glyph{band.Glyphs[0]}}

	for _, g := range band.Glyphs[1:] {
		prev := current.Glyphs[len(current.Glyphs)-1]
		if g.X-prev.X > a.config.ColumnBandWidth {
			lines = append(lines, current)
			current = AssembledLine{Y: band.Y, Glyphs: []model.Glyph{g}}
			continue
		}
		current.Glyphs = append(current.Glyphs, g)
	}
	lines = append(lines, current)

	return lines
}

// absFloat64 returns the absolute value of a float64
func absFloat64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
