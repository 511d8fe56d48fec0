package source

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/contour/model"
)

// PDFSource is the primary, full-fidelity page source. It reads per-glyph
// text, position, and font data from the document's content streams.
type PDFSource struct {
	path string
}

// NewPDFSource creates a glyph-fidelity source for the given file.
func NewPDFSource(path string) *PDFSource {
	return &PDFSource{path: path}
}

// ReadPages extracts every page's plain text and glyphs. Pages with no
// extractable content are skipped silently; a parser failure is returned as
// an error so the caller can switch to the plain-text fallback.
func (s *PDFSource) ReadPages() (pages []Page, err error) {
	// The underlying parser panics on some malformed documents; convert
	// that into an error so the fallback path can take over.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf glyph extraction panicked: %v", r)
		}
	}()

	f, reader, err := pdf.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	fonts := make(map[string]*pdf.Font)

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, terr := p.GetPlainText(fonts)
		if terr != nil {
			text = ""
		}

		glyphs := glyphsFromContent(p.Content().Text)
		if len(glyphs) == 0 && text == "" {
			continue
		}

		pages = append(pages, Page{
			Number: i,
			Text:   text,
			Glyphs: glyphs,
		})
	}

	return pages, nil
}

// glyphsFromContent maps the parser's text runs onto the pipeline's glyph
// model. The parser reports no numeric weight, so boldness rides on the
// font name alone.
func glyphsFromContent(texts []pdf.Text) []model.Glyph {
	if len(texts) == 0 {
		return nil
	}

	glyphs := make([]model.Glyph, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		glyphs = append(glyphs, model.Glyph{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			FontSize: t.FontSize,
			FontName: t.Font,
		})
	}
	return glyphs
}
