package analysis

import (
	"strings"

	"github.com/specwise/spec-analyzer/internal/models"
)

// contextRadius is how many characters of surrounding text each hit keeps.
const contextRadius = 60

// DefaultTerms is the stock compliance-term list for federal
// construction specifications.
func DefaultTerms() []string {
	return []string{
		"shall", "must", "submit", "warranty", "inspection",
		"test report", "certificate", "QA/QC", "submittal register",
		"closeout", "within",
	}
}

// FindTerms scans text for each term, case-insensitively, and returns
// every occurrence with a context window around it. Purely local, no
// completion calls.
func FindTerms(text string, terms []string) []models.TermHit {
	hits := make([]models.TermHit, 0)
	low := strings.ToLower(text)

	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}

		start := 0
		for {
			idx := strings.Index(low[start:], t)
			if idx < 0 {
				break
			}
			idx += start

			s := idx - contextRadius
			if s < 0 {
				s = 0
			}
			e := idx + len(t) + contextRadius
			if e > len(text) {
				e = len(text)
			}

			hits = append(hits, models.TermHit{
				Term:    term,
				Context: strings.ReplaceAll(text[s:e], "\n", " "),
			})
			start = idx + len(t)
		}
	}

	return hits
}

// ParseTerms splits a comma-separated user term list, dropping blanks.
func ParseTerms(s string) []string {
	var terms []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
