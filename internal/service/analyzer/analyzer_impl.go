package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/specwise/spec-analyzer/config"
	"github.com/specwise/spec-analyzer/internal/analysis"
	"github.com/specwise/spec-analyzer/internal/extract"
	"github.com/specwise/spec-analyzer/internal/llm"
	"github.com/specwise/spec-analyzer/internal/models"
	"github.com/specwise/spec-analyzer/internal/utils/validator"
	"github.com/specwise/spec-analyzer/pkg/logger"
)

type Service struct {
	extractor  *extract.Extractor
	completer  llm.Completer
	configured bool
	validator  *validator.DocumentValidator
	caps       models.CapabilitySet
	logger     logger.Logger
}

// New wires a service from explicit collaborators.
func New(
	ex *extract.Extractor,
	completer llm.Completer,
	configured bool,
	val *validator.DocumentValidator,
	caps models.CapabilitySet,
	log logger.Logger,
) SpecAnalyzer {
	return &Service{
		extractor:  ex,
		completer:  completer,
		configured: configured,
		validator:  val,
		caps:       caps,
		logger:     log,
	}
}

// GetService builds the production service: probes capabilities once,
// wires the extraction chain and resolves completion credentials.
func GetService(log logger.Logger, cfg *config.ServerConfig) (SpecAnalyzer, error) {
	if cfg == nil {
		cfg = config.DefaultServerConfig()
	}

	caps := extract.Probe(log)
	ex := extract.New(caps, log, &extract.Options{
		OCR: extract.NewTesseractEngine(cfg.OCRLanguage),
		DPI: cfg.RasterDPI,
	})

	llmCfg := config.GetLLMConfig()
	client := llm.NewClient(llm.Settings{
		APIKey:      llmCfg.APIKey,
		Model:       llmCfg.Model,
		Temperature: llmCfg.Temperature,
		MaxTokens:   llmCfg.MaxTokens,
	}, log)

	val := validator.New(log, &validator.Config{MaxFileSize: cfg.MaxUploadSize})

	return New(ex, client, client.Configured(), val, caps, log), nil
}

func (s *Service) Analyze(ctx context.Context, filename string, data []byte) (*models.AnalysisResult, error) {
	info, extracted, err := s.ExtractText(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	result := &models.AnalysisResult{
		Document:  info,
		Backend:   extracted.Backend,
		Summary:   analysis.Summarize(ctx, s.completer, extracted.Text),
		TermHits:  analysis.FindTerms(extracted.Text, analysis.DefaultTerms()),
		Submittal: analysis.BuildSubmittalLog(ctx, s.completer, extracted.Text),
		BidNotes:  analysis.BidNotes(ctx, s.completer, extracted.Text),
	}

	s.logger.Info("analysis complete",
		logger.String("document", info.ID),
		logger.String("backend", string(extracted.Backend)),
		logger.Int("termHits", len(result.TermHits)),
		logger.Int("submittalRows", len(result.Submittal)),
		logger.Duration("viewsTook", time.Since(started)),
	)

	return result, nil
}

func (s *Service) ExtractText(ctx context.Context, filename string, data []byte) (models.DocumentInfo, models.ExtractionResult, error) {
	res := s.validator.Validate(filename, data)
	if !res.IsValid {
		return models.DocumentInfo{}, models.ExtractionResult{},
			fmt.Errorf("%w: %s", ErrValidation, res.Errors[0].Message)
	}

	info := models.DocumentInfo{
		ID:         uuid.New().String(),
		Filename:   filename,
		Kind:       res.Info.Kind,
		Size:       res.Info.Size,
		Hash:       res.Info.Hash,
		UploadedAt: time.Now(),
	}

	s.logger.Info("extracting document",
		logger.String("document", info.ID),
		logger.String("filename", filename),
		logger.String("kind", string(info.Kind)),
		logger.Int64("size", info.Size),
	)

	extracted := s.extractor.Extract(ctx, data, info.Kind)
	if extracted.Empty() {
		// First-class outcome: the caller decides the user-facing story.
		return info, extracted, ErrNoText
	}

	return info, extracted, nil
}

func (s *Service) Summarize(ctx context.Context, text string) string {
	return analysis.Summarize(ctx, s.completer, text)
}

func (s *Service) ComplianceFlags(text string, terms []string) []models.TermHit {
	if len(terms) == 0 {
		terms = analysis.DefaultTerms()
	}
	return analysis.FindTerms(text, terms)
}

func (s *Service) SubmittalLog(ctx context.Context, text string) []models.SubmittalEntry {
	return analysis.BuildSubmittalLog(ctx, s.completer, text)
}

func (s *Service) BidNotes(ctx context.Context, text string) string {
	return analysis.BidNotes(ctx, s.completer, text)
}

func (s *Service) Capabilities() models.CapabilitySet {
	return s.caps
}

func (s *Service) CompletionConfigured() bool {
	return s.configured
}
