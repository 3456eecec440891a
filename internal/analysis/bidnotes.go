package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/specwise/spec-analyzer/internal/llm"
)

// bidNotesTextLimit bounds the prompt input for the risk review.
const bidNotesTextLimit = 15000

const bidNotesSystem = "Be practical and contractor-focused."

var bidNoteTopics = []string{
	"unusual materials",
	"special testing",
	"access / phasing",
	"schedule constraints",
	"permits",
	"warranty length",
	"submittal frequency",
	"inspection requirements",
}

const bidNotesPrompt = `Analyze this spec and list items that could impact bid cost or risk, organized by:
%s. Short, actionable bullets. Cite section numbers if present.
Text:
%s
`

// BidNotes asks for cost and risk items organized by the stock topics.
func BidNotes(ctx context.Context, completer llm.Completer, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	prompt := fmt.Sprintf(bidNotesPrompt,
		strings.Join(bidNoteTopics, ", "),
		truncate(text, bidNotesTextLimit),
	)
	return completer.Complete(ctx, bidNotesSystem, prompt)
}
