// Package source provides page acquisition for the outline pipeline.
//
// The [PageSource] interface is the capability contract with the external
// PDF parser: given a document, yield an ordered sequence of pages, each
// with a plain-text rendering and (when available) positioned glyphs.
//
// Two implementations exist over github.com/ledongthuc/pdf:
//
//   - [PDFSource] - full fidelity: per-glyph text, position, and font data
//   - [PlainTextSource] - lower fidelity fallback: plain text only, used
//     when the primary extraction fails
//
// The rest of the pipeline is agnostic to which implementation supplied a
// page; pages without glyphs are handled through the plain-text block path.
package source
