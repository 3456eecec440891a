package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/specwise/spec-analyzer/internal/models"
	"github.com/specwise/spec-analyzer/internal/service/analyzer"
	"github.com/specwise/spec-analyzer/pkg/converters"
	"github.com/specwise/spec-analyzer/pkg/logger"
)

type AnalysisHandler struct {
	service analyzer.SpecAnalyzer
	logger  logger.Logger
}

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ExtractResponse carries the extraction outcome
type ExtractResponse struct {
	Document models.DocumentInfo `json:"document"`
	Backend  models.Backend      `json:"backend"`
	Text     string              `json:"text"`
}

func NewAnalysisHandler(service analyzer.SpecAnalyzer, logger logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		logger:  logger,
	}
}

// AnalyzeDocument runs the full pipeline over one uploaded document.
func (h *AnalysisHandler) AnalyzeDocument(c *gin.Context) {
	data, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), filename, data)
	if err != nil {
		h.handlePipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExtractDocument runs only the extraction chain.
func (h *AnalysisHandler) ExtractDocument(c *gin.Context) {
	data, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	info, extracted, err := h.service.ExtractText(c.Request.Context(), filename, data)
	if err != nil {
		h.handlePipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExtractResponse{
		Document: info,
		Backend:  extracted.Backend,
		Text:     extracted.Text,
	})
}

// viewRequest is the body of the per-view endpoints.
type viewRequest struct {
	Text  string   `json:"text" binding:"required"`
	Terms []string `json:"terms"`
}

// Summary derives a bullet summary from supplied text.
func (h *AnalysisHandler) Summary(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": h.service.Summarize(c.Request.Context(), req.Text),
	})
}

// ComplianceFlags searches supplied text for compliance terms.
func (h *AnalysisHandler) ComplianceFlags(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	hits := h.service.ComplianceFlags(req.Text, req.Terms)
	c.JSON(http.StatusOK, gin.H{
		"count": len(hits),
		"hits":  hits,
	})
}

// SubmittalLog drafts a submittal log from supplied text.
func (h *AnalysisHandler) SubmittalLog(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": h.service.SubmittalLog(c.Request.Context(), req.Text),
	})
}

// BidNotes derives bid cost/risk notes from supplied text.
func (h *AnalysisHandler) BidNotes(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bidNotes": h.service.BidNotes(c.Request.Context(), req.Text),
	})
}

// exportRequest carries already-drafted submittal rows for download.
type exportRequest struct {
	Entries []models.SubmittalEntry `json:"entries"`
	Format  string                  `json:"format"`
}

// ExportSubmittalLog streams the log as a CSV or XLSX attachment.
func (h *AnalysisHandler) ExportSubmittalLog(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	stamp := time.Now().Format("20060102")
	switch req.Format {
	case "", "csv":
		out, err := converters.SubmittalCSV(req.Entries)
		if err != nil {
			h.handleError(c, http.StatusInternalServerError, "Failed to build CSV", err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=submittal_log_%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", out)
	case "xlsx":
		out, err := converters.SubmittalXLSX(req.Entries)
		if err != nil {
			h.handleError(c, http.StatusInternalServerError, "Failed to build XLSX", err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=submittal_log_%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
	default:
		h.handleError(c, http.StatusBadRequest,
			fmt.Sprintf("Unsupported export format: %s", req.Format), nil)
	}
}

// Capabilities reports probed backend availability and completion
// credential presence, mirroring a diagnostics panel.
func (h *AnalysisHandler) Capabilities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"capabilities":         h.service.Capabilities(),
		"completionConfigured": h.service.CompletionConfigured(),
	})
}

func (h *AnalysisHandler) readUpload(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid file upload", err)
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.handleError(c, http.StatusBadRequest, "Failed to read upload", err)
		return nil, "", false
	}

	return data, header.Filename, true
}

func (h *AnalysisHandler) handlePipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analyzer.ErrValidation):
		h.handleError(c, http.StatusBadRequest, "Upload rejected", err)
	case errors.Is(err, analyzer.ErrNoText):
		// Not a server fault: likely a scanned document with OCR missing.
		h.handleError(c, http.StatusUnprocessableEntity,
			"Couldn't extract text. If the document is scanned, install OCR support or upload a DOCX.", err)
	default:
		h.handleError(c, http.StatusInternalServerError, "Failed to analyze document", err)
	}
}

func (h *AnalysisHandler) handleError(c *gin.Context, status int, message string, err error) {
	h.logger.Error(message,
		logger.String("path", c.Request.URL.Path),
		logger.Error(err),
	)

	response := ErrorResponse{
		Message: message,
	}
	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(status, response)
}
