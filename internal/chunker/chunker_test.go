package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkExactBoundaries(t *testing.T) {
	got := Chunk("a b c d e", 3, 1)
	assert.Equal(t, []string{"a b c", "c d e"}, got)
}

func TestChunkEmptyText(t *testing.T) {
	assert.Nil(t, Chunk("", 3, 1))
	assert.Nil(t, Chunk("   \n\t  ", 3, 1))
}

func TestChunkSingleWindow(t *testing.T) {
	got := Chunk("one two three", 10, 2)
	assert.Equal(t, []string{"one two three"}, got)
}

func TestChunkCoverageAndOverlap(t *testing.T) {
	tokens := make([]string, 100)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("w%d", i)
	}
	text := strings.Join(tokens, " ")

	size, overlap := 30, 7
	windows := Chunk(text, size, overlap)
	require.NotEmpty(t, windows)

	// Windows must reassemble the token sequence in order.
	var rebuilt []string
	for i, w := range windows {
		fields := strings.Fields(w)
		assert.NotEmpty(t, fields, "window %d is empty", i)
		if i == 0 {
			rebuilt = append(rebuilt, fields...)
			continue
		}

		// Consecutive windows share exactly overlap tokens.
		prev := strings.Fields(windows[i-1])
		shared := prev[len(prev)-overlap:]
		require.GreaterOrEqual(t, len(fields), overlap, "window %d shorter than overlap", i)
		assert.Equal(t, shared, fields[:overlap], "window %d overlap mismatch", i)

		rebuilt = append(rebuilt, fields[overlap:]...)
	}
	assert.Equal(t, tokens, rebuilt)
}

func TestChunkNonPositiveStrideTerminates(t *testing.T) {
	got := Chunk("a b c d e", 3, 3)
	assert.Equal(t, []string{"a b c"}, got)

	got = Chunk("a b c d e", 2, 5)
	assert.Equal(t, []string{"a b"}, got)
}

func TestChunkDefaults(t *testing.T) {
	tokens := make([]string, DefaultSize+100)
	for i := range tokens {
		tokens[i] = "x"
	}

	windows := ChunkDefault(strings.Join(tokens, " "))
	require.Len(t, windows, 2)
	assert.Len(t, strings.Fields(windows[0]), DefaultSize)
	assert.Len(t, strings.Fields(windows[1]), 100+DefaultOverlap)
}
