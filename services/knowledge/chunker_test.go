package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunksShortTextSingleChunk(t *testing.T) {
	chunks := splitChunks("hello world", 1000, 200)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world", chunks[0])
}

func TestSplitChunksEmptyText(t *testing.T) {
	assert.Nil(t, splitChunks("", 1000, 200))
	assert.Nil(t, splitChunks("   \n\t  ", 1000, 200))
}

func TestSplitChunksRespectsSizeAndOverlap(t *testing.T) {
	text := strings.Repeat("word ", 600) // 3000 chars
	chunks := splitChunks(text, 1000, 200)

	require.Greater(t, len(chunks), 2)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 1000)
		assert.NotEmpty(t, chunk)
	}

	// Consecutive chunks share text because of the overlap.
	tail := chunks[0][len(chunks[0])-50:]
	assert.Contains(t, chunks[1], strings.TrimSpace(tail))
}

func TestSplitChunksBreaksAtWordBoundaries(t *testing.T) {
	text := strings.Repeat("alpha beta gamma ", 200)
	for _, chunk := range splitChunks(text, 100, 20) {
		fields := strings.Fields(chunk)
		last := fields[len(fields)-1]
		assert.Contains(t, []string{"alpha", "beta", "gamma"}, last,
			"chunk should not end mid-word")
	}
}

func TestSplitChunksCoversAllText(t *testing.T) {
	text := strings.Repeat("sentence number fortytwo ", 100)
	chunks := splitChunks(text, 300, 50)

	joined := strings.Join(chunks, " ")
	assert.Contains(t, joined, "sentence number fortytwo")
	// The final characters of the source must appear in the last chunk.
	assert.True(t, strings.HasSuffix(chunks[len(chunks)-1], "fortytwo"))
}

func TestSplitChunksDefensiveParams(t *testing.T) {
	// Zero size falls back to the default instead of looping forever.
	chunks := splitChunks("some text here", 0, 0)
	require.Len(t, chunks, 1)

	// Overlap >= size is ignored rather than stalling progress.
	text := strings.Repeat("x y z ", 100)
	chunks = splitChunks(text, 50, 50)
	assert.NotEmpty(t, chunks)
}
