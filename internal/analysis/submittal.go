package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/specwise/spec-analyzer/internal/llm"
	"github.com/specwise/spec-analyzer/internal/models"
)

// submittalTextLimit bounds how much of the document goes into the
// single extraction prompt.
const submittalTextLimit = 20000

const submittalSystem = "Return JSON only unless instructed."

const submittalPrompt = `Return JSON only. From the specification text, extract a submittal log as an array of objects with keys:
Section, Item, Type, Due By, Notes, Source Ref. Only include explicit or strongly implied submittals.
Text (may be partial):
%s
`

// BuildSubmittalLog asks the model for a JSON submittal log and coerces
// the answer into rows. A sentinel answer or unparseable JSON yields an
// empty log, never an error.
func BuildSubmittalLog(ctx context.Context, completer llm.Completer, text string) []models.SubmittalEntry {
	if strings.TrimSpace(text) == "" {
		return []models.SubmittalEntry{}
	}

	out := completer.Complete(ctx, submittalSystem, fmt.Sprintf(submittalPrompt, truncate(text, submittalTextLimit)))
	if llm.IsSentinel(out) {
		return []models.SubmittalEntry{}
	}

	rows, err := parseSubmittalJSON(out)
	if err != nil {
		return []models.SubmittalEntry{}
	}
	return rows
}

// parseSubmittalJSON accepts a bare JSON array, with or without a
// markdown code fence around it. Missing keys come back as empty strings.
func parseSubmittalJSON(out string) ([]models.SubmittalEntry, error) {
	out = stripCodeFence(out)

	var rows []models.SubmittalEntry
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.SubmittalEntry{}
	}
	return rows, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
