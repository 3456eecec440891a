// Package chunker splits extracted text into bounded, overlapping
// word windows so each prompt stays inside the completion model's
// input limit.
package chunker

import (
	"strings"
)

const (
	// DefaultSize is the nominal window size in whitespace-delimited tokens.
	DefaultSize = 2500
	// DefaultOverlap is how many tokens consecutive windows share.
	DefaultOverlap = 200
)

// Chunk splits text into successive windows of size tokens, each
// advancing by size-overlap tokens. Windows cover the token sequence in
// document order; the final window may be shorter. A stride that would
// not advance ends the loop, so any size > overlap >= 0 terminates.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	stride := size - overlap
	if stride <= 0 {
		// The start index would never advance; emit the first window
		// and stop rather than loop forever.
		end := size
		if end > len(tokens) {
			end = len(tokens)
		}
		return []string{strings.Join(tokens[:end], " ")}
	}

	var windows []string
	for start := 0; start < len(tokens); start += stride {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		windows = append(windows, strings.Join(tokens[start:end], " "))
		if end == len(tokens) {
			break
		}
	}

	return windows
}

// ChunkDefault applies the default window size and overlap.
func ChunkDefault(text string) []string {
	return Chunk(text, DefaultSize, DefaultOverlap)
}
