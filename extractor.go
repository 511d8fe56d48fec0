package contour

import (
	"fmt"
	"strings"

	"github.com/tsawler/contour/layout"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/source"
)

// Extractor provides a fluent interface for extracting a document outline.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	src      source.PageSource

	// Configuration
	options ExtractOptions
}

// clone creates a copy of the Extractor with a copy of its options. This
// ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		src:      e.src,
		options:  e.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// YTolerance sets the vertical distance within which glyphs group into one
// line. Useful range is roughly 2-4 position units.
func (e *Extractor) YTolerance(tolerance float64) *Extractor {
	newExt := e.clone()
	newExt.options.assembler.YTolerance = tolerance
	return newExt
}

// FontSizePercentile sets the percentile of first-page font sizes used as
// the minimum qualifying title size (default 75).
func (e *Extractor) FontSizePercentile(percentile int) *Extractor {
	newExt := e.clone()
	newExt.options.title.FontSizePercentile = percentile
	return newExt
}

// FallbackOnly skips glyph-fidelity extraction and uses the plain-text path
// directly. Every block then carries the default font size and no boldness,
// so only the lexical and keyword detectors can fire.
func (e *Extractor) FallbackOnly() *Extractor {
	newExt := e.clone()
	newExt.options.fallbackOnly = true
	return newExt
}

// WithHeadingConfig replaces the heading classifier configuration.
func (e *Extractor) WithHeadingConfig(config layout.HeadingConfig) *Extractor {
	newExt := e.clone()
	newExt.options.heading = config
	return newExt
}

// WithPageFilterConfig replaces the page filter configuration.
func (e *Extractor) WithPageFilterConfig(config layout.PageFilterConfig) *Extractor {
	newExt := e.clone()
	newExt.options.pageFilter = config
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Outline runs the full pipeline and returns the document's outline. The
// result is always well-formed: on any unrecovered failure it degrades to
// an empty title and empty outline, with the error describing why.
func (e *Extractor) Outline() (result model.DocumentResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = model.EmptyResult("")
			err = fmt.Errorf("outline extraction panicked: %v", r)
		}
	}()

	pages, err := e.readPages()
	if err != nil {
		return model.EmptyResult(""), err
	}

	records := e.buildRecords(pages)
	if len(records) == 0 {
		return model.EmptyResult(""), nil
	}

	title := layout.NewTitleSelectorWithConfig(e.options.title).Select(records[0])

	filter := layout.NewPageFilterWithConfig(e.options.pageFilter)
	detector := layout.NewHeadingDetectorWithConfig(e.options.heading)

	var candidates []model.Heading
	for _, record := range records {
		if filter.ShouldSkip(record.RawText) {
			continue
		}
		candidates = append(candidates, detector.DetectPage(record)...)
	}

	outline := layout.NewOutlineAssemblerWithConfig(e.options.outline).Assemble(candidates)

	return model.DocumentResult{
		Title:   title,
		Outline: outline,
	}, nil
}

// readPages acquires pages from the configured source. For file-based
// extraction the glyph-fidelity source is tried first and the plain-text
// source takes over when it fails; an injected source gets no fallback.
func (e *Extractor) readPages() ([]source.Page, error) {
	if e.src != nil {
		return e.src.ReadPages()
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	if !e.options.fallbackOnly {
		pages, err := source.NewPDFSource(e.filename).ReadPages()
		if err == nil {
			return pages, nil
		}
	}

	pages, err := source.NewPlainTextSource(e.filename).ReadPages()
	if err != nil {
		return nil, fmt.Errorf("extract pages: %w", err)
	}
	return pages, nil
}

// buildRecords turns source pages into PageRecords, skipping pages with too
// little text to be content-bearing. Pages with glyphs go through line
// assembly; pages without go through the plain-text block path.
func (e *Extractor) buildRecords(pages []source.Page) []model.PageRecord {
	filter := layout.NewPageFilterWithConfig(e.options.pageFilter)
	assembler := layout.NewLineAssemblerWithConfig(e.options.assembler)
	builder := layout.NewBlockBuilderWithConfig(e.options.block)

	var records []model.PageRecord
	for _, page := range pages {
		if !filter.HasEnoughContent(page.Text) {
			continue
		}

		var blocks []model.TextBlock
		if len(page.Glyphs) > 0 {
			for i, line := range assembler.Assemble(page.Glyphs) {
				if block, ok := builder.Build(line, page.Number, i); ok {
					blocks = append(blocks, block)
				}
			}
		} else {
			blocks = plainTextBlocks(page)
		}

		if len(blocks) == 0 {
			continue
		}

		records = append(records, model.PageRecord{
			Number:  page.Number,
			Blocks:  blocks,
			RawText: page.Text,
		})
	}

	return records
}

// plainTextBlocks synthesizes blocks from a page's plain-text lines for the
// no-glyph path: default font size, no boldness, and the line's sequential
// index as its vertical position.
func plainTextBlocks(page source.Page) []model.TextBlock {
	var blocks []model.TextBlock
	for _, line := range strings.Split(page.Text, "\n") {
		text := layout.NormalizeText(line)
		if text == "" {
			continue
		}
		blocks = append(blocks, model.TextBlock{
			Text:     text,
			FontSize: model.DefaultFontSize,
			Y:        float64(len(blocks)),
			Page:     page.Number,
			Position: len(blocks),
		})
	}
	return blocks
}
