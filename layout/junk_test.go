package layout

import (
	"strings"
	"testing"
)

func TestIsTOCPage_TitlePhrase(t *testing.T) {
	filter := NewPageFilter()

	raw := "Table of Contents\n1. Introduction .... 3\n2. Methods .... 7"
	if !filter.IsTOCPage(raw) {
		t.Error("Expected page with contents title to be flagged as TOC")
	}
}

func TestIsTOCPage_LeaderDotRows(t *testing.T) {
	filter := NewPageFilter()

	// Six leader-dot rows, no contents title.
	rows := []string{
		"Intro.......3",
		"Scope.......5",
		"Design.......9",
		"Build.......12",
		"Test.......18",
		"Ship.......25",
	}
	raw := strings.Join(rows, "\n")

	if !filter.IsTOCPage(raw) {
		t.Error("Expected page with six leader-dot rows to be flagged as TOC")
	}
}

func TestIsTOCPage_FewLeaderRowsNotFlagged(t *testing.T) {
	filter := NewPageFilter()

	raw := "Intro.......3\nScope.......5\nBody text continues here."
	if filter.IsTOCPage(raw) {
		t.Error("Expected two leader-dot rows to stay under the threshold")
	}
}

func TestIsTOCPage_Empty(t *testing.T) {
	if NewPageFilter().IsTOCPage("") {
		t.Error("Expected empty text not to be flagged as TOC")
	}
}

func TestIsJunkPage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected bool
	}{
		{"empty page", "", true},
		{"body text", "This chapter describes the system design in detail.", false},
		{"single indicator", "References are listed at the end.", false},
		{"two indicators", "References\nSmith 2019.\nBibliography\nJones 2020.", true},
		{"three indicators", "Index\nAcknowledgements\nRevision History", true},
	}

	filter := NewPageFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsJunkPage(tt.raw); got != tt.expected {
				t.Errorf("IsJunkPage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestShouldSkip(t *testing.T) {
	filter := NewPageFilter()

	if !filter.ShouldSkip("Table of Contents\nIntro.......3") {
		t.Error("Expected TOC page to be skipped")
	}
	if !filter.ShouldSkip("References\nBibliography\nIndex") {
		t.Error("Expected junk page to be skipped")
	}
	if filter.ShouldSkip("Ordinary body text describing the design of the system.") {
		t.Error("Expected body page not to be skipped")
	}
}

func TestHasEnoughContent(t *testing.T) {
	filter := NewPageFilter()

	if filter.HasEnoughContent("just a few words here") {
		t.Error("Expected sparse page to fail the word count gate")
	}

	if !filter.HasEnoughContent(strings.Repeat("word ", 25)) {
		t.Error("Expected 25-word page to pass the word count gate")
	}
}

func TestNewPageFilterWithConfig_ZeroValuesUseDefaults(t *testing.T) {
	filter := NewPageFilterWithConfig(PageFilterConfig{})

	if filter.config.LeaderDotThreshold != 3 {
		t.Errorf("Expected default LeaderDotThreshold=3, got %d", filter.config.LeaderDotThreshold)
	}
	if filter.config.JunkIndicatorThreshold != 2 {
		t.Errorf("Expected default JunkIndicatorThreshold=2, got %d", filter.config.JunkIndicatorThreshold)
	}
	if filter.config.MinPageWords != 20 {
		t.Errorf("Expected default MinPageWords=20, got %d", filter.config.MinPageWords)
	}
}
