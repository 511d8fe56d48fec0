package layout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/contour/model"
)

// headerFooterIndicators mark first-page text as page furniture rather than
// a title candidate.
var headerFooterIndicators = []string{
	"page",
	"confidential",
	"copyright",
	"©",
	"proprietary",
	"draft",
	"version",
	"date:",
}

// formContentIndicators mark first-page text as form content rather than a
// title candidate.
var formContentIndicators = []string{
	"rsvp:",
	"signature",
	"form",
	"application",
	"required",
}

// titleFormFieldLabel matches leading numbered form-field labels on the
// first page ("1. Name of event").
var titleFormFieldLabel = regexp.MustCompile(`^\d+\.?\s*(name|date|designation|whether|amount|address)`)

// UntitledDocument is returned when a document yields no title candidate at
// all, not even a raw-text line.
const UntitledDocument = "Untitled Document"

// TitleConfig holds configuration for title selection
type TitleConfig struct {
	// MaxCandidateBlocks is how many of the first page's leading blocks
	// are considered as title candidates.
	// Default: 8
	MaxCandidateBlocks int

	// FontSizePercentile is the percentile of candidate font sizes used
	// as the minimum qualifying size (0-100).
	// Default: 75
	FontSizePercentile int

	// MinTitleChars is the minimum text length for a candidate.
	// Default: 5
	MinTitleChars int
}

// DefaultTitleConfig returns sensible default configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxCandidateBlocks: 8,
		FontSizePercentile: 75,
		MinTitleChars:      5,
	}
}

// TitleSelector picks the most title-like text from a document's first page.
type TitleSelector struct {
	config TitleConfig
}

// NewTitleSelector creates a title selector with default configuration
func NewTitleSelector() *TitleSelector {
	return &TitleSelector{
		config: DefaultTitleConfig(),
	}
}

// NewTitleSelectorWithConfig creates a title selector with custom configuration
func NewTitleSelectorWithConfig(config TitleConfig) *TitleSelector {
	def := DefaultTitleConfig()
	if config.MaxCandidateBlocks <= 0 {
		config.MaxCandidateBlocks = def.MaxCandidateBlocks
	}
	if config.FontSizePercentile <= 0 || config.FontSizePercentile > 100 {
		config.FontSizePercentile = def.FontSizePercentile
	}
	if config.MinTitleChars <= 0 {
		config.MinTitleChars = def.MinTitleChars
	}
	return &TitleSelector{
		config: config,
	}
}

// Select inspects the first page's leading blocks and returns the best
// title candidate. When no block qualifies it falls back to the first
// non-empty line of the page's raw text, and finally to UntitledDocument.
// Title selection runs on the first page regardless of junk-page status.
func (s *TitleSelector) Select(page model.PageRecord) string {
	leading := page.Blocks
	if len(leading) > s.config.MaxCandidateBlocks {
		leading = leading[:s.config.MaxCandidateBlocks]
	}

	var candidates []model.TextBlock
	for _, block := range leading {
		text := strings.TrimSpace(block.Text)
		if len(text) <= s.config.MinTitleChars {
			continue
		}
		if looksLikeHeaderFooter(text) || looksLikeFormContent(text) {
			continue
		}
		candidates = append(candidates, block)
	}

	if len(candidates) > 0 {
		minSize := fontSizePercentile(candidates, s.config.FontSizePercentile)

		qualified := candidates[:0:0]
		for _, c := range candidates {
			if c.FontSize >= minSize {
				qualified = append(qualified, c)
			}
		}
		if len(qualified) == 0 {
			qualified = candidates
		}

		sort.SliceStable(qualified, func(i, j int) bool {
			if qualified[i].FontSize != qualified[j].FontSize {
				return qualified[i].FontSize > qualified[j].FontSize
			}
			if qualified[i].Bold != qualified[j].Bold {
				return qualified[i].Bold
			}
			return len(qualified[i].Text) > len(qualified[j].Text)
		})

		return strings.TrimSpace(qualified[0].Text)
	}

	for _, line := range strings.Split(page.RawText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}

	return UntitledDocument
}

// looksLikeHeaderFooter reports whether the text carries a header/footer
// indicator.
func looksLikeHeaderFooter(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range headerFooterIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// looksLikeFormContent reports whether the text looks like form content.
func looksLikeFormContent(text string) bool {
	lower := strings.ToLower(text)
	if titleFormFieldLabel.MatchString(lower) {
		return true
	}
	for _, indicator := range formContentIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// fontSizePercentile returns the given percentile of the candidates' font
// sizes, used as the minimum qualifying title size.
func fontSizePercentile(blocks []model.TextBlock, percentile int) float64 {
	sizes := make([]float64, 0, len(blocks))
	for _, b := range blocks {
		sizes = append(sizes, b.FontSize)
	}
	sort.Float64s(sizes)

	idx := len(sizes) * percentile / 100
	if idx >= len(sizes) {
		idx = len(sizes) - 1
	}
	return sizes[idx]
}
