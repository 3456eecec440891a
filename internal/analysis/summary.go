package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/specwise/spec-analyzer/internal/chunker"
	"github.com/specwise/spec-analyzer/internal/llm"
)

// maxSummaryChunks caps how many windows get their own completion call.
const maxSummaryChunks = 5

const summarySystem = "Be concise and accurate."

const summaryPrompt = `You are an assistant for federal construction specs.
Summarize into <=8 bullets focusing on: submittal requirements, QA/QC, tests, certifications, unusual constraints.
Text:
%s
`

// Summarize chunks the text and asks for a bullet summary of each of
// the first windows, joining the answers with blank lines. A failed
// chunk contributes its sentinel string without aborting its siblings.
func Summarize(ctx context.Context, completer llm.Completer, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	chunks := chunker.ChunkDefault(text)
	if len(chunks) > maxSummaryChunks {
		chunks = chunks[:maxSummaryChunks]
	}

	outs := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		outs = append(outs, completer.Complete(ctx, summarySystem, fmt.Sprintf(summaryPrompt, ch)))
	}

	return strings.Join(outs, "\n\n")
}
