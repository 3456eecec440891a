package extract

import (
	"context"
	"image"
	"strings"

	"github.com/specwise/spec-analyzer/internal/models"
	"github.com/specwise/spec-analyzer/pkg/logger"
)

// DefaultDPI is the rasterization resolution for the OCR fallback.
const DefaultDPI = 200.0

// Options overrides the production backends, mainly for tests.
type Options struct {
	Layer  PDFTextBackend
	Layout PDFTextBackend
	Raster Rasterizer
	OCR    OCREngine
	Docx   DocxReader
	DPI    float64
}

// Extractor produces the best available plain-text rendering of a
// document. For PDFs it walks a fixed-priority chain: text layer, then
// layout-aware extraction, then OCR on rasterized pages. Cost and
// fidelity both rise down the chain, so it stops at the first backend
// that yields usable text.
//
// Extraction never fails with an error: every backend problem is
// absorbed here and the worst case is an empty result.
type Extractor struct {
	caps   models.CapabilitySet
	layer  PDFTextBackend
	layout PDFTextBackend
	raster Rasterizer
	ocr    OCREngine
	docx   DocxReader
	dpi    float64
	logger logger.Logger
}

// New creates an Extractor wired to the production backends. Pass opts
// to substitute individual backends.
func New(caps models.CapabilitySet, log logger.Logger, opts *Options) *Extractor {
	if opts == nil {
		opts = &Options{}
	}

	e := &Extractor{
		caps:   caps,
		layer:  opts.Layer,
		layout: opts.Layout,
		raster: opts.Raster,
		ocr:    opts.OCR,
		docx:   opts.Docx,
		dpi:    opts.DPI,
		logger: log,
	}

	if e.layer == nil {
		e.layer = NewLayerTextBackend()
	}
	if e.layout == nil {
		e.layout = NewLayoutBackend()
	}
	if e.raster == nil {
		e.raster = NewFitzRasterizer()
	}
	if e.ocr == nil {
		e.ocr = NewTesseractEngine("eng")
	}
	if e.docx == nil {
		e.docx = NewWordDocxReader()
	}
	if e.dpi <= 0 {
		e.dpi = DefaultDPI
	}

	return e
}

// Extract returns best-effort plain text for the document. An empty
// Text with BackendNone means every stage was unavailable or failed;
// callers must treat that as "no text", not as an error.
func (e *Extractor) Extract(ctx context.Context, data []byte, kind models.DocumentKind) models.ExtractionResult {
	switch kind {
	case models.KindPDF:
		return e.extractPDF(ctx, data)
	case models.KindDOCX:
		return e.extractDocx(data)
	default:
		e.logger.Warn("unsupported document kind",
			logger.String("kind", string(kind)),
		)
		return models.ExtractionResult{}
	}
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) models.ExtractionResult {
	// 1) Embedded text layer.
	if e.caps.Has(models.CapLayerText) {
		if text, ok := e.tryTextBackend(e.layer, models.BackendLayerText, data); ok {
			return models.ExtractionResult{Text: text, Backend: models.BackendLayerText}
		}
	}

	// 2) Layout-aware extraction.
	if e.caps.Has(models.CapLayout) {
		if text, ok := e.tryTextBackend(e.layout, models.BackendLayout, data); ok {
			return models.ExtractionResult{Text: text, Backend: models.BackendLayout}
		}
	}

	// 3) OCR, the last resort. Needs both the rasterizer and the engine;
	// whatever it returns is final, even an empty string.
	if e.caps.Has(models.CapRasterizer) && e.caps.Has(models.CapOCR) {
		text, err := e.ocrPages(ctx, data)
		if err != nil {
			e.logger.Warn("ocr fallback failed", logger.Error(err))
			return models.ExtractionResult{}
		}
		return models.ExtractionResult{Text: strings.TrimSpace(text), Backend: models.BackendOCR}
	}

	e.logger.Warn("no extraction backend produced text; ocr unavailable")
	return models.ExtractionResult{}
}

// tryTextBackend runs one PDF text backend and reports whether its
// output is usable. Errors and all-whitespace output both mean "move on
// to the next backend".
func (e *Extractor) tryTextBackend(b PDFTextBackend, name models.Backend, data []byte) (string, bool) {
	var pages []string
	err := safeCall(func() error {
		var innerErr error
		pages, innerErr = b.Pages(data)
		return innerErr
	})
	if err != nil {
		e.logger.Warn("pdf backend failed",
			logger.String("backend", string(name)),
			logger.Error(err),
		)
		return "", false
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	if text == "" {
		e.logger.Debug("pdf backend produced no text",
			logger.String("backend", string(name)),
		)
		return "", false
	}

	return text, true
}

func (e *Extractor) ocrPages(ctx context.Context, data []byte) (string, error) {
	var images []image.Image
	err := safeCall(func() error {
		var innerErr error
		images, innerErr = e.raster.RenderPages(data, e.dpi)
		return innerErr
	})
	if err != nil {
		return "", err
	}

	// Pages are recognized independently and joined in page order.
	texts := make([]string, len(images))
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		pageImg := img
		var text string
		recErr := safeCall(func() error {
			var innerErr error
			text, innerErr = e.ocr.Recognize(pageImg)
			return innerErr
		})
		if recErr != nil {
			return "", recErr
		}
		texts[i] = text
	}

	return strings.Join(texts, "\n"), nil
}

func (e *Extractor) extractDocx(data []byte) models.ExtractionResult {
	if !e.caps.Has(models.CapDocx) {
		e.logger.Warn("docx reader unavailable")
		return models.ExtractionResult{}
	}

	var paragraphs []string
	err := safeCall(func() error {
		var innerErr error
		paragraphs, innerErr = e.docx.Paragraphs(data)
		return innerErr
	})
	if err != nil {
		e.logger.Warn("docx extraction failed", logger.Error(err))
		return models.ExtractionResult{}
	}

	text := strings.Join(paragraphs, "\n")
	if strings.TrimSpace(text) == "" {
		return models.ExtractionResult{}
	}

	return models.ExtractionResult{Text: text, Backend: models.BackendDocx}
}
