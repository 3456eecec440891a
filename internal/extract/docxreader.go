package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// WordDocxReader extracts paragraph text from a DOCX byte stream.
type WordDocxReader struct{}

func NewWordDocxReader() *WordDocxReader {
	return &WordDocxReader{}
}

var docxTagStrip = regexp.MustCompile(`<[^>]*>`)

var docxEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

func (r *WordDocxReader) Paragraphs(data []byte) ([]string, error) {
	reader := bytes.NewReader(data)

	doc, err := docx.ReadDocxFromMemory(reader, reader.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// The editable content is raw WordprocessingML; paragraph boundaries
	// are </w:p> closings and the run text sits inside <w:t> elements.
	var paragraphs []string
	for _, block := range strings.Split(content, "</w:p>") {
		text := docxTagStrip.ReplaceAllString(block, "")
		text = docxEntities.Replace(text)
		text = strings.TrimSpace(text)
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	return paragraphs, nil
}

func checkDocx() error {
	return safeCall(func() error {
		_, err := NewWordDocxReader().Paragraphs(probeDocx())
		return err
	})
}
