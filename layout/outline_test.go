package layout

import (
	"testing"

	"github.com/tsawler/contour/model"
)

// h creates a heading for outline assembly tests
func h(level model.HeadingLevel, text string, page, position int) model.Heading {
	return model.Heading{
		Level:    level,
		Text:     text,
		Page:     page,
		Position: position,
	}
}

func TestAssembleOutline_OrderedByPageThenPosition(t *testing.T) {
	headings := []model.Heading{
		h(model.HeadingLevel1, "Closing Remarks Summary", 4, 0),
		h(model.HeadingLevel1, "Opening Remarks Summary", 1, 2),
		h(model.HeadingLevel1, "Mid Report Findings", 1, 7),
	}

	outline := NewOutlineAssembler().Assemble(headings)

	if len(outline) != 3 {
		t.Fatalf("Expected 3 headings, got %d", len(outline))
	}

	for i := 1; i < len(outline); i++ {
		prev, cur := outline[i-1], outline[i]
		if cur.Page < prev.Page || (cur.Page == prev.Page && cur.Position < prev.Position) {
			t.Errorf("Outline not ordered at index %d: %+v before %+v", i, prev, cur)
		}
	}
	if outline[0].Text != "Opening Remarks Summary" {
		t.Errorf("Expected page 1 heading first, got %q", outline[0].Text)
	}
}

func TestAssembleOutline_DedupSamePage(t *testing.T) {
	headings := []model.Heading{
		h(model.HeadingLevel1, "Project Scope", 1, 0),
		h(model.HeadingLevel1, "Project Scope", 1, 5),
	}

	outline := NewOutlineAssembler().Assemble(headings)

	if len(outline) != 1 {
		t.Fatalf("Expected same text on one page to dedup, got %d entries", len(outline))
	}
	if outline[0].Position != 0 {
		t.Error("Expected first occurrence to win")
	}
}

func TestAssembleOutline_SameTextDifferentPagesKept(t *testing.T) {
	headings := []model.Heading{
		h(model.HeadingLevel1, "Project Scope", 1, 0),
		h(model.HeadingLevel1, "Project Scope", 3, 0),
	}

	outline := NewOutlineAssembler().Assemble(headings)

	if len(outline) != 2 {
		t.Fatalf("Expected same text on two pages to yield two entries, got %d", len(outline))
	}
}

func TestAssembleOutline_DedupIgnoresCaseAndPunctuation(t *testing.T) {
	headings := []model.Heading{
		h(model.HeadingLevel1, "Project Scope", 1, 0),
		h(model.HeadingLevel2, "PROJECT - SCOPE!", 1, 4),
	}

	outline := NewOutlineAssembler().Assemble(headings)

	if len(outline) != 1 {
		t.Fatalf("Expected normalized dedup to collapse variants, got %d entries", len(outline))
	}
}

func TestAssembleOutline_DropsWeakHeadings(t *testing.T) {
	headings := []model.Heading{
		h(model.HeadingLevel1, "Valid Section Heading", 1, 0),
		h(model.HeadingLevel2, "Solo", 1, 1),        // one word, under five chars
		h(model.HeadingLevel2, "Appendices", 1, 2),  // one word
		h(model.HeadingLevel2, "Overview", 1, 3),    // generic
		h(model.HeadingLevel2, "Conclusion", 2, 0),  // generic
		h(model.HeadingLevel2, "Final Thoughts", 2, 1),
	}

	outline := NewOutlineAssembler().Assemble(headings)

	if len(outline) != 2 {
		t.Fatalf("Expected 2 surviving headings, got %d: %+v", len(outline), outline)
	}
	if outline[0].Text != "Valid Section Heading" || outline[1].Text != "Final Thoughts" {
		t.Errorf("Unexpected survivors: %+v", outline)
	}
}

func TestAssembleOutline_OpenH1Invariant(t *testing.T) {
	headings := []model.Heading{
		h(model.HeadingLevel2, "Orphan Subsection Entry", 1, 0),
		h(model.HeadingLevel3, "Orphan Detail Entry", 1, 1),
		h(model.HeadingLevel1, "First Main Section", 1, 2),
		h(model.HeadingLevel2, "Attached Subsection Entry", 2, 0),
		h(model.HeadingLevel3, "Attached Detail Entry", 2, 1),
	}

	outline := NewOutlineAssembler().Assemble(headings)

	if len(outline) != 3 {
		t.Fatalf("Expected orphans dropped, got %d entries: %+v", len(outline), outline)
	}
	if outline[0].Text != "First Main Section" {
		t.Errorf("Expected outline to open with the H1, got %q", outline[0].Text)
	}
	if outline[1].Text != "Attached Subsection Entry" || outline[2].Text != "Attached Detail Entry" {
		t.Errorf("Expected post-H1 entries retained, got %+v", outline[1:])
	}
}

func TestAssembleOutline_NoH1DropsEverything(t *testing.T) {
	headings := []model.Heading{
		h(model.HeadingLevel2, "Lonely Subsection One", 1, 0),
		h(model.HeadingLevel3, "Lonely Detail Two", 2, 0),
	}

	outline := NewOutlineAssembler().Assemble(headings)

	if len(outline) != 0 {
		t.Errorf("Expected no entries without an open H1, got %d", len(outline))
	}
	if outline == nil {
		t.Error("Expected a non-nil outline")
	}
}

func TestAssembleOutline_EmptyInput(t *testing.T) {
	outline := NewOutlineAssembler().Assemble(nil)

	if outline == nil {
		t.Fatal("Expected non-nil outline for empty input")
	}
	if len(outline) != 0 {
		t.Errorf("Expected empty outline, got %d entries", len(outline))
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Project Scope", "projectscope"},
		{"PROJECT - SCOPE!", "projectscope"},
		{"1.2 Background", "12background"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.input); got != tt.expected {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeKey_Idempotent(t *testing.T) {
	once := NormalizeKey("1.2 Background Research")
	if twice := NormalizeKey(once); twice != once {
		t.Errorf("NormalizeKey not idempotent: %q -> %q", once, twice)
	}
}
