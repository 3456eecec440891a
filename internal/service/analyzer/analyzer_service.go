package analyzer

import (
	"context"
	"errors"

	"github.com/specwise/spec-analyzer/internal/models"
)

// ErrValidation means the upload was rejected before extraction.
var ErrValidation = errors.New("upload validation failed")

// ErrNoText means the extraction chain was exhausted without producing
// text. It is an expected outcome for image-only documents when OCR is
// unavailable, not a server fault.
var ErrNoText = errors.New("no text could be extracted")

// SpecAnalyzer is the orchestration surface the API layer consumes.
type SpecAnalyzer interface {
	// Analyze runs the full pipeline: validate, extract, then every view.
	Analyze(ctx context.Context, filename string, data []byte) (*models.AnalysisResult, error)

	// ExtractText runs only the extraction chain.
	ExtractText(ctx context.Context, filename string, data []byte) (models.DocumentInfo, models.ExtractionResult, error)

	// Summarize, ComplianceFlags, SubmittalLog and BidNotes run a single
	// view over already-extracted text.
	Summarize(ctx context.Context, text string) string
	ComplianceFlags(text string, terms []string) []models.TermHit
	SubmittalLog(ctx context.Context, text string) []models.SubmittalEntry
	BidNotes(ctx context.Context, text string) string

	// Capabilities reports the probed backend availability.
	Capabilities() models.CapabilitySet

	// CompletionConfigured reports whether the completion service has
	// credentials.
	CompletionConfigured() bool
}
