package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// LayerTextBackend reads the embedded per-page text layer of a PDF.
// Near-free on born-digital documents, useless on scans.
type LayerTextBackend struct{}

func NewLayerTextBackend() *LayerTextBackend {
	return &LayerTextBackend{}
}

func (b *LayerTextBackend) Pages(data []byte) ([]string, error) {
	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, reader.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	numPages := pdfReader.NumPage()
	pages := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get text from page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}

func checkLayerText() error {
	return safeCall(func() error {
		_, err := NewLayerTextBackend().Pages([]byte(probePDF))
		return err
	})
}
