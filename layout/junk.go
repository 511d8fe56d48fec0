package layout

import (
	"regexp"
	"strings"
)

// leaderDotEntry matches a table-of-contents leader row: a run of dots
// connecting an entry to a trailing page number ("Intro.......3").
var leaderDotEntry = regexp.MustCompile(`\.{3,}\s*\d+`)

// tocTitlePhrases are the contents-title phrases that mark a TOC page.
var tocTitlePhrases = []string{
	"table of contents",
	"contents",
}

// junkIndicators is the vocabulary of non-body page markers. A page matching
// at least JunkIndicatorThreshold of these is excluded from heading search.
var junkIndicators = []string{
	"table of contents",
	"contents",
	"references",
	"bibliography",
	"index",
	"acknowledgements",
	"revision history",
}

// PageFilterConfig holds configuration for page-level junk detection
type PageFilterConfig struct {
	// LeaderDotThreshold is the number of leader-dot TOC rows a page must
	// exceed to be flagged as a TOC page.
	// Default: 3
	LeaderDotThreshold int

	// JunkIndicatorThreshold is the minimum number of junk-vocabulary
	// matches for a page to be flagged as non-content.
	// Default: 2
	JunkIndicatorThreshold int

	// MinPageWords is the minimum raw-text word count for a page to be
	// treated as content-bearing at all. Pages below it are dropped
	// before a PageRecord is built.
	// Default: 20
	MinPageWords int
}

// DefaultPageFilterConfig returns sensible default configuration
func DefaultPageFilterConfig() PageFilterConfig {
	return PageFilterConfig{
		LeaderDotThreshold:     3,
		JunkIndicatorThreshold: 2,
		MinPageWords:           20,
	}
}

// PageFilter flags whole pages as non-content so they are excluded from
// heading extraction. The two checks are independent; a page failing either
// one is skipped.
type PageFilter struct {
	config PageFilterConfig
}

// NewPageFilter creates a page filter with default configuration
func NewPageFilter() *PageFilter {
	return &PageFilter{
		config: DefaultPageFilterConfig(),
	}
}

// NewPageFilterWithConfig creates a page filter with custom configuration
func NewPageFilterWithConfig(config PageFilterConfig) *PageFilter {
	def := DefaultPageFilterConfig()
	if config.LeaderDotThreshold <= 0 {
		config.LeaderDotThreshold = def.LeaderDotThreshold
	}
	if config.JunkIndicatorThreshold <= 0 {
		config.JunkIndicatorThreshold = def.JunkIndicatorThreshold
	}
	if config.MinPageWords <= 0 {
		config.MinPageWords = def.MinPageWords
	}
	return &PageFilter{
		config: config,
	}
}

// IsTOCPage reports whether the page's raw text looks like a table of
// contents: either it carries a contents-title phrase, or it contains more
// leader-dot entries than the configured threshold.
func (f *PageFilter) IsTOCPage(rawText string) bool {
	if rawText == "" {
		return false
	}

	lower := strings.ToLower(rawText)
	for _, phrase := range tocTitlePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	return len(leaderDotEntry.FindAllStringIndex(lower, -1)) > f.config.LeaderDotThreshold
}

// IsJunkPage reports whether the page is references, bibliography, index or
// similar non-body content, judged by indicator-vocabulary matches.
func (f *PageFilter) IsJunkPage(rawText string) bool {
	if rawText == "" {
		return true
	}

	lower := strings.ToLower(rawText)
	matches := 0
	for _, indicator := range junkIndicators {
		if strings.Contains(lower, indicator) {
			matches++
		}
	}

	return matches >= f.config.JunkIndicatorThreshold
}

// ShouldSkip reports whether a page should be excluded from heading
// extraction entirely.
func (f *PageFilter) ShouldSkip(rawText string) bool {
	return f.IsTOCPage(rawText) || f.IsJunkPage(rawText)
}

// HasEnoughContent reports whether the page's raw text clears the minimum
// word count to be treated as a content-bearing page.
func (f *PageFilter) HasEnoughContent(rawText string) bool {
	return len(strings.Fields(rawText)) >= f.config.MinPageWords
}
