package layout

import (
	"sort"
	"strings"
	"unicode"

	"github.com/tsawler/contour/model"
)

// genericTitles are headings too generic to carry on their own; a heading
// whose full text equals one of these (case-insensitively) is dropped.
var genericTitles = map[string]bool{
	"overview":     true,
	"introduction": true,
	"conclusion":   true,
}

// OutlineConfig holds configuration for outline assembly
type OutlineConfig struct {
	// MinWords is the minimum word count for a heading to survive.
	// Default: 2
	MinWords int

	// MinChars is the minimum text length for a heading to survive.
	// Default: 5
	MinChars int
}

// DefaultOutlineConfig returns sensible default configuration
func DefaultOutlineConfig() OutlineConfig {
	return OutlineConfig{
		MinWords: 2,
		MinChars: 5,
	}
}

// OutlineAssembler turns heading candidates from all pages into the final
// ordered outline: it deduplicates, drops weak or generic headings, and
// repairs the level hierarchy so no H2/H3 appears without an open H1.
type OutlineAssembler struct {
	config OutlineConfig
}

// NewOutlineAssembler creates an outline assembler with default configuration
func NewOutlineAssembler() *OutlineAssembler {
	return &OutlineAssembler{
		config: DefaultOutlineConfig(),
	}
}

// NewOutlineAssemblerWithConfig creates an outline assembler with custom configuration
func NewOutlineAssemblerWithConfig(config OutlineConfig) *OutlineAssembler {
	def := DefaultOutlineConfig()
	if config.MinWords <= 0 {
		config.MinWords = def.MinWords
	}
	if config.MinChars <= 0 {
		config.MinChars = def.MinChars
	}
	return &OutlineAssembler{
		config: config,
	}
}

// dedupKey identifies a heading for deduplication: its normalized text plus
// the page it appears on. The same text on two different pages yields two
// outline entries; twice on the same page, one.
type dedupKey struct {
	text string
	page int
}

// Assemble produces the final outline from the collected heading candidates.
// The result is never nil and is non-decreasing in (page, position) order.
func (a *OutlineAssembler) Assemble(headings []model.Heading) []model.Heading {
	ordered := make([]model.Heading, len(headings))
	copy(ordered, headings)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Page != ordered[j].Page {
			return ordered[i].Page < ordered[j].Page
		}
		return ordered[i].Position < ordered[j].Position
	})

	// Deduplicate, first occurrence wins.
	seen := make(map[dedupKey]bool)
	unique := ordered[:0:0]
	for _, h := range ordered {
		key := dedupKey{text: NormalizeKey(h.Text), page: h.Page}
		if key.text == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, h)
	}

	// Drop weak and generic headings.
	filtered := unique[:0:0]
	for _, h := range unique {
		if len(strings.Fields(h.Text)) < a.config.MinWords {
			continue
		}
		if len(h.Text) < a.config.MinChars {
			continue
		}
		if genericTitles[strings.ToLower(h.Text)] {
			continue
		}
		filtered = append(filtered, h)
	}

	// Enforce the open-H1 invariant: an H2/H3 with no preceding H1 is
	// discarded, never promoted.
	outline := make([]model.Heading, 0, len(filtered))
	haveH1 := false
	for _, h := range filtered {
		if h.Level == model.HeadingLevel1 {
			haveH1 = true
			outline = append(outline, h)
			continue
		}
		if haveH1 {
			outline = append(outline, h)
		}
	}

	return outline
}

// NormalizeKey reduces heading text to its deduplication form: lower-cased
// with every non-alphanumeric character removed. Normalizing an already
// normalized key is a no-op.
func NormalizeKey(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
