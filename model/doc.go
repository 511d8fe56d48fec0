// Package model provides the intermediate representation (IR) for extracted
// document outlines.
//
// This package defines the data structures that flow through the extraction
// pipeline. All acquisition and classification operations ultimately produce
// these types, making them the primary API for consuming extracted outlines.
//
// # Pipeline Types
//
// Input side:
//
//   - [Glyph] - a single positioned character as reported by the PDF parser
//   - [TextBlock] - one reconstructed line of text with aggregate attributes
//   - [PageRecord] - a content-bearing page with its blocks and raw text
//
// Output side:
//
//   - [Heading] - a classified heading with level, text, and page number
//   - [DocumentResult] - the terminal artifact: a title and an ordered outline
//
// Types are value types created once by their producing stage and never
// mutated afterwards, so they are safe to share across goroutines.
package model
