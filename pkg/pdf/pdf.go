package pdf

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// Document gives page-level access to the text of a loaded PDF.
type Document struct {
	reader *pdf.Reader
}

// Load opens the PDF at path.
func Load(path string) (*Document, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	return &Document{reader: reader}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// PageText extracts the text of one page (1-based). Text is rebuilt row by
// row so the line structure of the statement survives extraction.
func (d *Document) PageText(page int) (text string, err error) {
	// The pdf library panics on malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to extract text from page %d: %v", page, r)
		}
	}()

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d not found", page)
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", page, err)
	}

	var b strings.Builder
	for _, row := range rows {
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
