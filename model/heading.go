package model

// HeadingLevel represents the hierarchical level of a heading (H1-H3)
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - Main section or chapter
	HeadingLevel2                    // H2 - Subsection
	HeadingLevel3                    // H3 - Sub-subsection
)

// String returns the artifact representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// "H1"/"H2"/"H3" in JSON artifacts.
func (l HeadingLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Heading represents a classified heading in a document
type Heading struct {
	// Level is the heading level (H1-H3)
	Level HeadingLevel `json:"level"`

	// Text is the cleaned heading text
	Text string `json:"text"`

	// Page is the 1-indexed page number where the heading appears
	Page int `json:"page"`

	// Position is the originating block's index within its page. It is
	// used for stable ordering only and is not part of the artifact.
	Position int `json:"-"`
}

// IsTopLevel returns true if this is an H1 heading
func (h Heading) IsTopLevel() bool {
	return h.Level == HeadingLevel1
}

// DocumentResult is the terminal output artifact for one document: a
// best-guess title and the ordered, hierarchy-consistent outline.
type DocumentResult struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// EmptyResult returns a well-formed result with the given title and an
// empty (non-nil) outline, so the artifact serializes with "outline": [].
func EmptyResult(title string) DocumentResult {
	return DocumentResult{
		Title:   title,
		Outline: []Heading{},
	}
}
