package layout

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/contour/model"
)

// BlockConfig holds configuration for text block building
type BlockConfig struct {
	// BoldWeightThreshold is the numeric font weight above which a glyph
	// counts as bold when the font name carries no bold marker.
	// Default: 400 (normal weight)
	BoldWeightThreshold int
}

// DefaultBlockConfig returns sensible default configuration
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		BoldWeightThreshold: 400,
	}
}

// BlockBuilder merges a line's glyphs into a normalized TextBlock
type BlockBuilder struct {
	config BlockConfig
}

// NewBlockBuilder creates a block builder with default configuration
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{
		config: DefaultBlockConfig(),
	}
}

// NewBlockBuilderWithConfig creates a block builder with custom configuration
func NewBlockBuilderWithConfig(config BlockConfig) *BlockBuilder {
	if config.BoldWeightThreshold <= 0 {
		config.BoldWeightThreshold = DefaultBlockConfig().BoldWeightThreshold
	}
	return &BlockBuilder{
		config: config,
	}
}

// Build merges one assembled line into a TextBlock. The second return value
// is false when the line's cleaned text is empty and no block is emitted.
func (b *BlockBuilder) Build(line AssembledLine, page, position int) (model.TextBlock, bool) {
	if len(line.Glyphs) == 0 {
		return model.TextBlock{}, false
	}

	var sb strings.Builder
	for _, g := range line.Glyphs {
		sb.WriteString(g.Text)
	}

	text := NormalizeText(sb.String())
	if text == "" {
		return model.TextBlock{}, false
	}

	totalSize := 0.0
	for _, g := range line.Glyphs {
		totalSize += g.EffectiveFontSize()
	}

	return model.TextBlock{
		Text:     text,
		FontSize: totalSize / float64(len(line.Glyphs)),
		Bold:     b.detectBold(line.Glyphs),
		Y:        line.Y,
		Page:     page,
		Position: position,
	}, true
}

// detectBold reports whether any glyph in the line appears bold, either by a
// style marker in the font name or by its numeric weight.
func (b *BlockBuilder) detectBold(glyphs []model.Glyph) bool {
	for _, g := range glyphs {
		if g.FontWeight > b.config.BoldWeightThreshold {
			return true
		}
		fontLower := strings.ToLower(g.FontName)
		if strings.Contains(fontLower, "bold") ||
			strings.Contains(fontLower, "black") ||
			strings.Contains(fontLower, "heavy") ||
			strings.Contains(fontLower, "semibold") ||
			strings.Contains(fontLower, "demibold") {
			return true
		}
	}
	return false
}

// allowedPunct is the set of punctuation and symbols preserved by
// NormalizeText; everything else outside letters, digits, underscores and
// whitespace is dropped.
const allowedPunct = `-.,;:()!?"'’`

// NormalizeText cleans a reconstructed line: NFKC-normalizes it so ligature
// and width variants from PDF text layers compare consistently, drops
// characters outside the allowed set, collapses whitespace runs to a single
// space, and trims the ends. Normalizing an already-normalized string is a
// no-op.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)

	var sb strings.Builder
	sb.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !lastSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				lastSpace = true
			}
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_',
			strings.ContainsRune(allowedPunct, r):
			sb.WriteRune(r)
			lastSpace = false
		}
	}

	return strings.TrimRight(sb.String(), " ")
}
