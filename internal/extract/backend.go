package extract

import (
	"fmt"
	"image"
)

// PDFTextBackend extracts per-page plain text from a PDF byte stream.
// Individual pages may come back empty.
type PDFTextBackend interface {
	Pages(data []byte) ([]string, error)
}

// Rasterizer renders each PDF page to a raster image at the given DPI.
type Rasterizer interface {
	RenderPages(data []byte, dpi float64) ([]image.Image, error)
}

// OCREngine recognizes text in a raster image.
type OCREngine interface {
	Recognize(img image.Image) (string, error)
}

// DocxReader returns ordered paragraph text from a DOCX byte stream.
type DocxReader interface {
	Paragraphs(data []byte) ([]string, error)
}

// safeCall runs fn and converts a panic into an error so a misbehaving
// native backend degrades the chain instead of taking the process down.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panic: %v", r)
		}
	}()
	return fn()
}
