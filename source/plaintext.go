package source

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PlainTextSource is the lower-fidelity fallback page source. It extracts a
// plain-text rendering per page and no glyph data, for documents where the
// full-fidelity path fails.
type PlainTextSource struct {
	path string
}

// NewPlainTextSource creates a plain-text fallback source for the given file.
func NewPlainTextSource(path string) *PlainTextSource {
	return &PlainTextSource{path: path}
}

// ReadPages extracts each page's plain text. Pages that fail individually
// are skipped rather than failing the document.
func (s *PlainTextSource) ReadPages() (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf text extraction panicked: %v", r)
		}
	}()

	f, reader, err := pdf.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}

		text, terr := p.GetPlainText(nil)
		if terr != nil || text == "" {
			continue
		}

		pages = append(pages, Page{
			Number: i,
			Text:   text,
		})
	}

	return pages, nil
}
