package extract

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// LayoutBackend extracts page text through MuPDF, which reasons about
// page geometry and recovers multi-column and tabular layouts the plain
// text layer reader misorders.
type LayoutBackend struct{}

func NewLayoutBackend() *LayoutBackend {
	return &LayoutBackend{}
}

func (b *LayoutBackend) Pages(data []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)

	for i := 0; i < numPages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("failed to get text from page %d: %w", i+1, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}

func checkLayout() error {
	return safeCall(func() error {
		_, err := NewLayoutBackend().Pages([]byte(probePDF))
		return err
	})
}
