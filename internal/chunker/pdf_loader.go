package chunker

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFLoader extracts per-page plain text from a PDF file.
type PDFLoader struct{}

// NewPDFLoader creates a PDFLoader.
func NewPDFLoader() PDFLoader {
	return PDFLoader{}
}

// Load reads every page of the PDF in order. Pages that carry no text
// content are returned with an empty Text so page numbering stays aligned
// with the document; the pipeline skips them.
func (PDFLoader) Load(path string) ([]Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		pages = append(pages, Page{Number: i, Text: text})
	}
	return pages, nil
}

var _ PageLoader = PDFLoader{}
