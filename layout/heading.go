package layout

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/contour/model"
)

// lexicalRule binds a strict heading pattern to the level it implies. Rules
// are evaluated in order; the first match wins.
type lexicalRule struct {
	pattern *regexp.Regexp
	level   model.HeadingLevel
}

// lexicalRules are the strict pattern templates, highest-confidence detector
// in the classifier. Order matters: deeper numbering forms are checked after
// their parents would fail (patterns are anchored, so order only breaks ties
// for the identical text).
var lexicalRules = []lexicalRule{
	{regexp.MustCompile(`^\d+\.\s+[A-Z][a-zA-Z0-9_ ]+$`), model.HeadingLevel1},
	{regexp.MustCompile(`^\d+\.\d+\s+[A-Z][a-zA-Z0-9_ ]+$`), model.HeadingLevel2},
	{regexp.MustCompile(`^\d+\.\d+\.\d+\s+[A-Z][a-zA-Z0-9_ ]+$`), model.HeadingLevel3},
	{regexp.MustCompile(`^(Chapter|Section|Part)\s+\d+[:.]?\s+[A-Z][a-zA-Z ]+$`), model.HeadingLevel1},
	{regexp.MustCompile(`^(Appendix|Annex)\s+[A-Z]?\d*[:.]?\s+[A-Z][a-zA-Z ]+$`), model.HeadingLevel1},
	{regexp.MustCompile(`^(Table of Contents|References|Bibliography|Index)$`), model.HeadingLevel1},
}

// structuralKeywords are section names that mark a heading even without a
// numbering prefix or font signal, matched case-insensitively as substrings.
var structuralKeywords = []string{
	"introduction",
	"background",
	"methodology",
	"results",
	"discussion",
	"conclusion",
	"recommendations",
	"abstract",
	"executive summary",
	"literature review",
	"findings",
	"limitations",
	"future work",
}

// nonHeadingIndicators are words whose presence marks a block as body text,
// form content, or page furniture rather than a heading.
var nonHeadingIndicators = []string{
	"form",
	"application",
	"date",
	"name",
	"address",
	"phone",
	"email",
	"signature",
	"declaration",
	"particulars",
	"required",
	"closed",
	"parents",
	"guardians",
	"waiver",
	"page",
	"continued",
	"note:",
}

var (
	// formFieldLabel matches numbered form-field rows ("3. Name of applicant").
	formFieldLabel = regexp.MustCompile(`^\d+\.?\s*(name|date|designation|whether|amount|address)`)

	// pageReference matches leading "page 12" / "pp. 12" markers.
	pageReference = regexp.MustCompile(`^(page|pp?\.?)\s*\d+`)

	// tocEntryPatterns match text shaped like a table-of-contents row.
	tocEntryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\.{3,}\s*\d+$`),
		regexp.MustCompile(`^\d+\s+[A-Z]`),
		regexp.MustCompile(`^[A-Z]\s+\d+$`),
	}

	// Heading text cleanup: trailing leader dots with a page number, bare
	// trailing page numbers, and leading bare numbering.
	trailingLeaderDots  = regexp.MustCompile(`\s*\.{3,}\s*\d+$`)
	trailingPageNumber  = regexp.MustCompile(`\s+\d+$`)
	leadingBareNumber   = regexp.MustCompile(`^\d+[\s.)]*`)
	preservedNumberForm = regexp.MustCompile(`^\d+\.\d`)
)

// HeadingConfig holds configuration for heading classification
type HeadingConfig struct {
	// MinHeadingChars is the minimum cleaned text length for a block to
	// be considered at all.
	// Default: 4
	MinHeadingChars int

	// MaxHeadingChars is the maximum cleaned text length for a block to
	// be considered at all.
	// Default: 120
	MaxHeadingChars int

	// FontSizeMultiplier is the minimum ratio of block font size to page
	// mean font size for the font/format detector to fire.
	// Default: 1.5
	FontSizeMultiplier float64

	// MaxFontRatio is the ratio of block font size to page maximum font
	// size at or above which the font/format detector assigns H1.
	// Default: 0.9
	MaxFontRatio float64

	// KeywordFontRatio is the minimum ratio of block font size to page
	// mean font size for the keyword detector to fire.
	// Default: 1.2
	KeywordFontRatio float64

	// AllCapsMaxChars is the maximum length for a fully upper-case block
	// to still look like a proper heading.
	// Default: 30
	AllCapsMaxChars int
}

// DefaultHeadingConfig returns sensible default configuration
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MinHeadingChars:    4,
		MaxHeadingChars:    120,
		FontSizeMultiplier: 1.5,
		MaxFontRatio:       0.9,
		KeywordFontRatio:   1.2,
		AllCapsMaxChars:    30,
	}
}

// PageFontStats holds a page's aggregate font statistics, computed once per
// page over the blocks that report a font size.
type PageFontStats struct {
	Mean float64
	Max  float64
}

// ComputeFontStats calculates the aggregate font statistics for a page's
// blocks. The second return value is false when no block reports a size.
func ComputeFontStats(blocks []model.TextBlock) (PageFontStats, bool) {
	total := 0.0
	max := 0.0
	count := 0
	for _, b := range blocks {
		if b.FontSize <= 0 {
			continue
		}
		total += b.FontSize
		if b.FontSize > max {
			max = b.FontSize
		}
		count++
	}
	if count == 0 {
		return PageFontStats{}, false
	}
	return PageFontStats{Mean: total / float64(count), Max: max}, true
}

// HeadingDetector classifies text blocks as headings. Three detectors run in
// strict priority order per block: lexical patterns, then the font/format
// signal, then structural keywords. The first that fires wins, so no block
// ever produces more than one heading.
type HeadingDetector struct {
	config HeadingConfig
}

// NewHeadingDetector creates a heading detector with default configuration
func NewHeadingDetector() *HeadingDetector {
	return &HeadingDetector{
		config: DefaultHeadingConfig(),
	}
}

// NewHeadingDetectorWithConfig creates a heading detector with custom configuration
func NewHeadingDetectorWithConfig(config HeadingConfig) *HeadingDetector {
	def := DefaultHeadingConfig()
	if config.MinHeadingChars <= 0 {
		config.MinHeadingChars = def.MinHeadingChars
	}
	if config.MaxHeadingChars <= 0 {
		config.MaxHeadingChars = def.MaxHeadingChars
	}
	if config.FontSizeMultiplier <= 0 {
		config.FontSizeMultiplier = def.FontSizeMultiplier
	}
	if config.MaxFontRatio <= 0 {
		config.MaxFontRatio = def.MaxFontRatio
	}
	if config.KeywordFontRatio <= 0 {
		config.KeywordFontRatio = def.KeywordFontRatio
	}
	if config.AllCapsMaxChars <= 0 {
		config.AllCapsMaxChars = def.AllCapsMaxChars
	}
	return &HeadingDetector{
		config: config,
	}
}

// DetectPage classifies every block on a page and returns the heading
// candidates in block order. It returns nil when the page has no blocks or
// none of them report a font size.
func (d *HeadingDetector) DetectPage(page model.PageRecord) []model.Heading {
	if len(page.Blocks) == 0 {
		return nil
	}

	stats, ok := ComputeFontStats(page.Blocks)
	if !ok {
		return nil
	}

	var headings []model.Heading
	for _, block := range page.Blocks {
		if heading, isHeading := d.Classify(block, stats); isHeading {
			headings = append(headings, heading)
		}
	}

	return headings
}

// Classify runs the rejection gate and the detector chain over one block.
// The second return value is false when the block is not a heading.
func (d *HeadingDetector) Classify(block model.TextBlock, stats PageFontStats) (model.Heading, bool) {
	text := strings.TrimSpace(block.Text)
	if len(text) < d.config.MinHeadingChars || len(text) > d.config.MaxHeadingChars {
		return model.Heading{}, false
	}
	if containsNonHeadingIndicator(text) {
		return model.Heading{}, false
	}

	fontSize := block.FontSize
	if fontSize <= 0 {
		fontSize = stats.Mean
	}

	level, ok := d.detect(text, fontSize, block.Bold, stats)
	if !ok {
		return model.Heading{}, false
	}

	return model.Heading{
		Level:    level,
		Text:     CleanHeadingText(text),
		Page:     block.Page,
		Position: block.Position,
	}, true
}

// detect runs the three detectors in priority order.
func (d *HeadingDetector) detect(text string, fontSize float64, bold bool, stats PageFontStats) (model.HeadingLevel, bool) {
	// Detector 1: strict lexical patterns.
	for _, rule := range lexicalRules {
		if rule.pattern.MatchString(text) {
			return rule.level, true
		}
	}

	// Detector 2: font size and formatting.
	if fontSize >= stats.Mean*d.config.FontSizeMultiplier && bold && d.looksLikeProperHeading(text) {
		if fontSize >= stats.Max*d.config.MaxFontRatio {
			return model.HeadingLevel1, true
		}
		return model.HeadingLevel2, true
	}

	// Detector 3: structural keywords, the most permissive signal.
	if containsStructuralKeyword(text) && !isTOCEntry(text) && fontSize > stats.Mean*d.config.KeywordFontRatio {
		return model.HeadingLevel2, true
	}

	return model.HeadingLevelUnknown, false
}

// looksLikeProperHeading applies the shape checks for the font/format
// detector: title-cased or short all-caps text, no mid-sentence punctuation,
// and no trailing punctuation.
func (d *HeadingDetector) looksLikeProperHeading(text string) bool {
	if !isTitleCase(text) && !(isAllUpper(text) && len(text) < d.config.AllCapsMaxChars) {
		return false
	}
	if strings.ContainsAny(text, ";,") {
		return false
	}
	switch {
	case strings.HasSuffix(text, "."),
		strings.HasSuffix(text, ":"),
		strings.HasSuffix(text, "-"),
		strings.HasSuffix(text, "_"):
		return false
	}
	return true
}

// containsNonHeadingIndicator reports whether the block text matches any
// rejection rule: form-field labels, the non-heading vocabulary, email/URL
// substrings, or leading page references.
func containsNonHeadingIndicator(text string) bool {
	lower := strings.ToLower(text)

	if formFieldLabel.MatchString(lower) {
		return true
	}
	for _, indicator := range nonHeadingIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	if strings.Contains(text, "@") || strings.Contains(lower, "www.") || strings.Contains(lower, ".com") {
		return true
	}
	return pageReference.MatchString(lower)
}

// containsStructuralKeyword reports whether the text carries one of the
// structural section names, case-insensitively.
func containsStructuralKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range structuralKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// isTOCEntry reports whether the text is shaped like a table-of-contents
// row (leader dots or plain-numbered forms).
func isTOCEntry(text string) bool {
	for _, p := range tocEntryPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// isTitleCase reports whether every cased run in the text starts with an
// upper-case letter and continues in lower case. Digits and punctuation are
// ignored, so "1.2 Background Research" is title-cased.
func isTitleCase(text string) bool {
	cased := false
	inRun := false
	for _, r := range text {
		isUpper := unicode.IsUpper(r) || unicode.IsTitle(r)
		isLower := unicode.IsLower(r)
		if !isUpper && !isLower {
			inRun = false
			continue
		}
		cased = true
		if inRun {
			if isUpper {
				return false
			}
		} else {
			if isLower {
				return false
			}
			inRun = true
		}
	}
	return cased
}

// isAllUpper reports whether the text contains cased letters and none of
// them are lower case.
func isAllUpper(text string) bool {
	cased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// CleanHeadingText normalizes a heading's text for the outline artifact:
// whitespace runs collapse to single spaces, trailing leader-dot page
// references and bare page numbers are stripped, and a leading bare number
// is removed unless it is the start of an N.N numbering form, which is
// preserved. Cleaning already-clean text is a no-op.
func CleanHeadingText(text string) string {
	text = strings.Join(strings.Fields(text), " ")

	text = trailingLeaderDots.ReplaceAllString(text, "")
	text = trailingPageNumber.ReplaceAllString(text, "")

	if !preservedNumberForm.MatchString(text) {
		text = leadingBareNumber.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(text)
}
