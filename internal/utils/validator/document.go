package validator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/specwise/spec-analyzer/internal/models"
	"github.com/specwise/spec-analyzer/pkg/logger"
)

// DocumentValidator screens uploads before extraction.
type DocumentValidator struct {
	logger logger.Logger
	config *Config
}

// Config bounds what the analyzer accepts.
type Config struct {
	MaxFileSize  int64
	AllowedTypes map[string][]string // extension -> acceptable sniffed MIME types
}

// Result is the outcome of validating one upload.
type Result struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors,omitempty"`
	Info    FileInfo          `json:"fileInfo"`
}

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// FileInfo describes the validated upload.
type FileInfo struct {
	Filename  string              `json:"filename"`
	Size      int64               `json:"size"`
	MimeType  string              `json:"mimeType"`
	Extension string              `json:"extension"`
	Kind      models.DocumentKind `json:"kind"`
	Hash      string              `json:"hash"`
}

// New creates a validator. Unset config fields get the defaults.
func New(log logger.Logger, config *Config) *DocumentValidator {
	if config == nil {
		config = &Config{}
	}
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = 50 * 1024 * 1024 // 50MB
	}
	if config.AllowedTypes == nil {
		config.AllowedTypes = map[string][]string{
			".pdf": {"application/pdf"},
			// DOCX is a zip container; content sniffing sees the archive.
			".docx": {
				"application/zip",
				"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				"application/octet-stream",
			},
		}
	}

	return &DocumentValidator{
		logger: log,
		config: config,
	}
}

// Validate screens one upload by extension, size and sniffed MIME type,
// and records its SHA-256 hash.
func (v *DocumentValidator) Validate(filename string, data []byte) *Result {
	hash := sha256.Sum256(data)

	result := &Result{
		IsValid: true,
		Errors:  make([]ValidationError, 0),
		Info: FileInfo{
			Filename:  filename,
			Size:      int64(len(data)),
			Extension: strings.ToLower(filepath.Ext(filename)),
			Hash:      hex.EncodeToString(hash[:]),
		},
	}

	if result.Info.Size == 0 {
		result.fail("EMPTY_FILE", "File is empty", "size")
		return result
	}
	if result.Info.Size > v.config.MaxFileSize {
		result.fail("FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum limit of %d bytes", v.config.MaxFileSize), "size")
	}

	allowedMimes, ok := v.config.AllowedTypes[result.Info.Extension]
	if !ok {
		result.fail("INVALID_FILE_TYPE",
			fmt.Sprintf("File type %s is not allowed", result.Info.Extension), "extension")
		return result
	}

	switch result.Info.Extension {
	case ".pdf":
		result.Info.Kind = models.KindPDF
	case ".docx":
		result.Info.Kind = models.KindDOCX
	}

	result.Info.MimeType = detectMimeType(data)
	mimeValid := false
	for _, mime := range allowedMimes {
		if mime == result.Info.MimeType {
			mimeValid = true
			break
		}
	}
	if !mimeValid {
		result.fail("INVALID_MIME_TYPE",
			fmt.Sprintf("Invalid MIME type %s for extension %s", result.Info.MimeType, result.Info.Extension),
			"mimeType")
	}

	if !result.IsValid {
		v.logger.Warn("upload rejected",
			logger.String("filename", filename),
			logger.Any("errors", result.Errors),
		)
	}

	return result
}

func (r *Result) fail(code, message, field string) {
	r.IsValid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message, Field: field})
}

func detectMimeType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	mime := http.DetectContentType(head)

	// DetectContentType appends a charset suffix for text types.
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}
	return mime
}
