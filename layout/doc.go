// Package layout provides the heuristic document-layout analysis that turns
// raw glyph data into a structured outline.
//
// The pipeline runs leaves-first over one page at a time:
//
//   - [LineAssembler] - groups raw glyphs into lines and approximate columns
//   - [BlockBuilder] - merges a line's glyphs into a normalized TextBlock
//   - [PageFilter] - flags whole pages as TOC/reference/junk content
//   - [HeadingDetector] - classifies blocks as H1/H2/H3 headings
//   - [TitleSelector] - picks the most title-like text from the first page
//   - [OutlineAssembler] - deduplicates, filters, and repairs the hierarchy
//
// # Configuration
//
// Each component takes its tunables as an explicit configuration value with
// documented defaults:
//
//	assembler := layout.NewLineAssemblerWithConfig(layout.AssemblerConfig{
//	    YTolerance:      4.0,
//	    ColumnBandWidth: 120,
//	})
//
// # Concurrency
//
// All components are stateless after construction and safe for concurrent
// use across documents. Within one document, pages must be processed in
// natural page order because deduplication and hierarchy repair depend on it.
package layout
