package layout

import (
	"testing"

	"github.com/tsawler/contour/model"
)

// makeTitleBlock creates a first-page block for title tests
func makeTitleBlock(text string, size float64, bold bool) model.TextBlock {
	return model.TextBlock{
		Text:     text,
		FontSize: size,
		Bold:     bold,
		Page:     1,
	}
}

func TestSelect_LargestCandidateWins(t *testing.T) {
	page := model.PageRecord{
		Number: 1,
		Blocks: []model.TextBlock{
			makeTitleBlock("Annual Research Report", 24, true),
			makeTitleBlock("Prepared by the analysis team", 12, false),
			makeTitleBlock("Internal circulation only", 12, false),
		},
	}

	title := NewTitleSelector().Select(page)
	if title != "Annual Research Report" {
		t.Errorf("Expected largest block as title, got %q", title)
	}
}

func TestSelect_BoldBreaksSizeTies(t *testing.T) {
	page := model.PageRecord{
		Number: 1,
		Blocks: []model.TextBlock{
			makeTitleBlock("Quarterly Planning Notes", 18, false),
			makeTitleBlock("Strategic Growth Initiative", 18, true),
		},
	}

	title := NewTitleSelector().Select(page)
	if title != "Strategic Growth Initiative" {
		t.Errorf("Expected bold block to win the tie, got %q", title)
	}
}

func TestSelect_LengthBreaksRemainingTies(t *testing.T) {
	page := model.PageRecord{
		Number: 1,
		Blocks: []model.TextBlock{
			makeTitleBlock("Budget Summary", 18, false),
			makeTitleBlock("Budget Summary and Forecast", 18, false),
		},
	}

	title := NewTitleSelector().Select(page)
	if title != "Budget Summary and Forecast" {
		t.Errorf("Expected longer block to win the tie, got %q", title)
	}
}

func TestSelect_RejectsHeaderFooterAndFormContent(t *testing.T) {
	page := model.PageRecord{
		Number: 1,
		Blocks: []model.TextBlock{
			makeTitleBlock("Confidential Draft", 30, true),
			makeTitleBlock("Copyright 2024 Acme Corp", 28, true),
			makeTitleBlock("Signature of applicant", 26, true),
			makeTitleBlock("1. Name of event", 26, true),
			makeTitleBlock("Community Garden Proposal", 20, true),
		},
	}

	title := NewTitleSelector().Select(page)
	if title != "Community Garden Proposal" {
		t.Errorf("Expected furniture and form content rejected, got %q", title)
	}
}

func TestSelect_OnlyLeadingBlocksConsidered(t *testing.T) {
	blocks := make([]model.TextBlock, 0, 12)
	for i := 0; i < 10; i++ {
		blocks = append(blocks, makeTitleBlock("Ordinary body paragraph text", 12, false))
	}
	// A huge block past the leading window must not be picked.
	blocks = append(blocks, makeTitleBlock("Late Enormous Banner", 48, true))

	title := NewTitleSelector().Select(model.PageRecord{Number: 1, Blocks: blocks})
	if title == "Late Enormous Banner" {
		t.Error("Expected blocks past the candidate window to be ignored")
	}
}

func TestSelect_ShortCandidatesSkipped(t *testing.T) {
	page := model.PageRecord{
		Number: 1,
		Blocks: []model.TextBlock{
			makeTitleBlock("Brief", 30, true), // exactly at the minimum, excluded
			makeTitleBlock("Observability Field Guide", 18, false),
		},
	}

	title := NewTitleSelector().Select(page)
	if title != "Observability Field Guide" {
		t.Errorf("Expected short candidate skipped, got %q", title)
	}
}

func TestSelect_RawTextFallback(t *testing.T) {
	page := model.PageRecord{
		Number:  1,
		Blocks:  nil,
		RawText: "\n   \nMigration Runbook\nStep one follows.",
	}

	title := NewTitleSelector().Select(page)
	if title != "Migration Runbook" {
		t.Errorf("Expected first non-empty raw line, got %q", title)
	}
}

func TestSelect_UntitledWhenNothingQualifies(t *testing.T) {
	title := NewTitleSelector().Select(model.PageRecord{Number: 1})
	if title != UntitledDocument {
		t.Errorf("Expected %q, got %q", UntitledDocument, title)
	}
}

func TestFontSizePercentile(t *testing.T) {
	blocks := []model.TextBlock{
		{FontSize: 10},
		{FontSize: 12},
		{FontSize: 12},
		{FontSize: 24},
	}

	if got := fontSizePercentile(blocks, 75); got != 24 {
		t.Errorf("Expected 75th percentile 24, got %f", got)
	}
	if got := fontSizePercentile(blocks, 100); got != 24 {
		t.Errorf("Expected 100th percentile clamped to max, got %f", got)
	}
}
