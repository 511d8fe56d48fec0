// Package contour extracts a structured outline - a document title plus
// hierarchical H1/H2/H3 headings with page numbers - from a PDF's raw page
// content.
//
// Basic usage:
//
//	result, err := contour.Open("document.pdf").Outline()
//	if err != nil {
//	    // the result is still well-formed (empty title, empty outline)
//	}
//	fmt.Println(result.Title)
//	for _, h := range result.Outline {
//	    fmt.Printf("%s %s (p.%d)\n", h.Level, h.Text, h.Page)
//	}
//
// With options:
//
//	result, _ := contour.Open("report.pdf").
//	    YTolerance(4).
//	    FallbackOnly().
//	    Outline()
//
// For synthetic input or custom acquisition, supply your own page source:
//
//	result, err := contour.FromSource(src).Outline()
//
// The heuristic core lives in the layout package; page acquisition in the
// source package.
package contour

import (
	"github.com/tsawler/contour/source"
)

// Open prepares outline extraction for a PDF file and returns an Extractor
// for fluent configuration. No I/O happens until a terminal operation such
// as Outline() is called.
//
// Example:
//
//	result, err := contour.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over an already-constructed page source.
// This is the injection point for tests and embedders that materialize
// pages themselves; no fallback source is attempted when it fails.
//
// Example:
//
//	result, err := contour.FromSource(mySource).Outline()
func FromSource(src source.PageSource) *Extractor {
	return &Extractor{
		src:     src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or
// tests where error handling would be cumbersome.
//
// Example:
//
//	result := contour.Must(contour.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
