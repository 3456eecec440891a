package models

import (
	"time"
)

// DocumentKind is the declared kind of an uploaded document
type DocumentKind string

const (
	KindPDF  DocumentKind = "pdf"
	KindDOCX DocumentKind = "docx"
)

// Backend identifies one text-extraction backend
type Backend string

const (
	BackendNone      Backend = ""
	BackendLayerText Backend = "layer-text"
	BackendLayout    Backend = "layout"
	BackendOCR       Backend = "ocr"
	BackendDocx      Backend = "docx"
)

// Capability names one optional extraction capability
type Capability string

const (
	CapLayerText  Capability = "layer-text"
	CapLayout     Capability = "layout"
	CapRasterizer Capability = "rasterizer"
	CapOCR        Capability = "ocr"
	CapDocx       Capability = "docx"
)

// CapabilitySet maps each optional backend to its availability.
// Built once at process start and read-only afterwards.
type CapabilitySet map[Capability]bool

// Has reports whether the named capability is available.
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

// ExtractionResult is the outcome of running the extraction chain.
// Empty Text with BackendNone means the chain was exhausted; callers
// must treat that as "extraction failed", not as an error.
type ExtractionResult struct {
	Text    string  `json:"text"`
	Backend Backend `json:"backend,omitempty"`
}

// Empty reports whether the chain produced no usable text.
func (r ExtractionResult) Empty() bool {
	return r.Text == ""
}

// DocumentInfo describes an uploaded document
type DocumentInfo struct {
	ID         string       `json:"id"`
	Filename   string       `json:"filename"`
	Kind       DocumentKind `json:"kind"`
	Size       int64        `json:"size"`
	Hash       string       `json:"hash"`
	UploadedAt time.Time    `json:"uploadedAt"`
}
