package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specwise/spec-analyzer/internal/models"
	"github.com/specwise/spec-analyzer/internal/service/analyzer"
	"github.com/specwise/spec-analyzer/pkg/logger"
)

type stubService struct {
	analyzeResult *models.AnalysisResult
	analyzeErr    error
	caps          models.CapabilitySet
}

func (s *stubService) Analyze(ctx context.Context, filename string, data []byte) (*models.AnalysisResult, error) {
	return s.analyzeResult, s.analyzeErr
}

func (s *stubService) ExtractText(ctx context.Context, filename string, data []byte) (models.DocumentInfo, models.ExtractionResult, error) {
	if s.analyzeErr != nil {
		return models.DocumentInfo{}, models.ExtractionResult{}, s.analyzeErr
	}
	return models.DocumentInfo{ID: "doc-1", Filename: filename},
		models.ExtractionResult{Text: "extracted", Backend: models.BackendLayerText}, nil
}

func (s *stubService) Summarize(ctx context.Context, text string) string { return "summary of " + text }

func (s *stubService) ComplianceFlags(text string, terms []string) []models.TermHit {
	return []models.TermHit{{Term: "shall", Context: text}}
}

func (s *stubService) SubmittalLog(ctx context.Context, text string) []models.SubmittalEntry {
	return []models.SubmittalEntry{}
}

func (s *stubService) BidNotes(ctx context.Context, text string) string { return "notes" }

func (s *stubService) Capabilities() models.CapabilitySet { return s.caps }

func (s *stubService) CompletionConfigured() bool { return false }

func newTestRouter(svc analyzer.SpecAnalyzer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalysisHandler(svc, logger.NewTestLogger())
	r.POST("/analyze", h.AnalyzeDocument)
	r.POST("/extract", h.ExtractDocument)
	r.POST("/flags", h.ComplianceFlags)
	r.POST("/export", h.ExportSubmittalLog)
	r.GET("/capabilities", h.Capabilities)
	return r
}

func uploadRequest(t *testing.T, url, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestAnalyzeDocument(t *testing.T) {
	svc := &stubService{
		analyzeResult: &models.AnalysisResult{
			Document: models.DocumentInfo{ID: "doc-1"},
			Backend:  models.BackendLayerText,
			Summary:  "- bullets",
		},
	}
	r := newTestRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "/analyze", "spec.pdf", "%PDF-1.4"))

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "doc-1", result.Document.ID)
	assert.Equal(t, "- bullets", result.Summary)
}

func TestAnalyzeDocumentMissingFile(t *testing.T) {
	r := newTestRouter(&stubService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeDocumentNoText(t *testing.T) {
	r := newTestRouter(&stubService{analyzeErr: analyzer.ErrNoText})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "/analyze", "scan.pdf", "%PDF-1.4"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "scanned")
}

func TestExtractDocument(t *testing.T) {
	r := newTestRouter(&stubService{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "/extract", "spec.pdf", "%PDF-1.4"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "extracted", resp.Text)
	assert.Equal(t, models.BackendLayerText, resp.Backend)
}

func TestComplianceFlagsEndpoint(t *testing.T) {
	r := newTestRouter(&stubService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/flags",
		strings.NewReader(`{"text":"the contractor shall comply"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestComplianceFlagsRejectsMissingText(t *testing.T) {
	r := newTestRouter(&stubService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/flags", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportSubmittalLogCSV(t *testing.T) {
	r := newTestRouter(&stubService{})

	body := `{"entries":[{"Section":"01 33 00","Item":"Register"}],"format":"csv"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "01 33 00")
}

func TestExportSubmittalLogBadFormat(t *testing.T) {
	r := newTestRouter(&stubService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export",
		strings.NewReader(`{"entries":[],"format":"pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCapabilitiesEndpoint(t *testing.T) {
	svc := &stubService{caps: models.CapabilitySet{
		models.CapLayerText: true,
		models.CapOCR:       false,
	}}
	r := newTestRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/capabilities", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"layer-text":true`)
	assert.Contains(t, rec.Body.String(), `"completionConfigured":false`)
}
