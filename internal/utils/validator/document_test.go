package validator

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specwise/spec-analyzer/internal/models"
	"github.com/specwise/spec-analyzer/pkg/logger"
)

func docxBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:document/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestValidatePDF(t *testing.T) {
	v := New(logger.NewTestLogger(), nil)

	res := v.Validate("section-03.pdf", []byte("%PDF-1.4\nsome content"))
	assert.True(t, res.IsValid)
	assert.Equal(t, models.KindPDF, res.Info.Kind)
	assert.Equal(t, "application/pdf", res.Info.MimeType)
	assert.Len(t, res.Info.Hash, 64)
}

func TestValidateDocx(t *testing.T) {
	v := New(logger.NewTestLogger(), nil)

	res := v.Validate("Spec Section.docx", docxBytes(t))
	assert.True(t, res.IsValid)
	assert.Equal(t, models.KindDOCX, res.Info.Kind)
	assert.Equal(t, ".docx", res.Info.Extension)
}

func TestValidateRejectsUnknownExtension(t *testing.T) {
	v := New(logger.NewTestLogger(), nil)

	res := v.Validate("notes.txt", []byte("plain text"))
	require.False(t, res.IsValid)
	assert.Equal(t, "INVALID_FILE_TYPE", res.Errors[0].Code)
}

func TestValidateRejectsMimeMismatch(t *testing.T) {
	v := New(logger.NewTestLogger(), nil)

	// A renamed text file must not pass as a PDF.
	res := v.Validate("fake.pdf", []byte("just words, no pdf header"))
	require.False(t, res.IsValid)
	assert.Equal(t, "INVALID_MIME_TYPE", res.Errors[0].Code)
}

func TestValidateRejectsOversize(t *testing.T) {
	v := New(logger.NewTestLogger(), &Config{
		MaxFileSize:  10,
		AllowedTypes: map[string][]string{".pdf": {"application/pdf"}},
	})

	res := v.Validate("big.pdf", []byte("%PDF-1.4 "+strings.Repeat("x", 100)))
	require.False(t, res.IsValid)
	assert.Equal(t, "FILE_TOO_LARGE", res.Errors[0].Code)
}

func TestValidateRejectsEmptyFile(t *testing.T) {
	v := New(logger.NewTestLogger(), nil)

	res := v.Validate("empty.pdf", nil)
	require.False(t, res.IsValid)
	assert.Equal(t, "EMPTY_FILE", res.Errors[0].Code)
}
