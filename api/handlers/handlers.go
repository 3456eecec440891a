package handlers

import (
	"github.com/specwise/spec-analyzer/internal/service/analyzer"
	"github.com/specwise/spec-analyzer/pkg/logger"
)

type Handlers struct {
	Analysis *AnalysisHandler
}

func NewHandlers(
	service analyzer.SpecAnalyzer,
	logger logger.Logger,
) *Handlers {
	return &Handlers{
		Analysis: NewAnalysisHandler(service, logger),
	}
}
