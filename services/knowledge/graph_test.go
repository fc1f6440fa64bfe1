package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTermsCapitalizedLongerThanThree(t *testing.T) {
	terms := extractTerms("The Grand Hotel offers Spa and gym access, ask for Ana.")

	assert.Contains(t, terms, "Grand")
	assert.Contains(t, terms, "Hotel")
	// "The" and "Spa" are too short, "Ana" too; "gym" is lowercase.
	assert.NotContains(t, terms, "The")
	assert.NotContains(t, terms, "Spa")
	assert.NotContains(t, terms, "Ana")
	assert.NotContains(t, terms, "gym")
}

func TestExtractTermsStripsPunctuation(t *testing.T) {
	terms := extractTerms("Visit Paris, London; (Berlin)!")
	assert.Contains(t, terms, "Paris")
	assert.Contains(t, terms, "London")
	assert.Contains(t, terms, "Berlin")
}

func TestAddChunkLinksChunkToItsTerms(t *testing.T) {
	g := newTermGraph()
	g.AddChunk(0, "Welcome to Grand Hotel")
	g.AddChunk(1, "Grand ballroom available")

	// Shared term has degree > 1.
	neighbors := g.Neighbors("Grand")
	assert.ElementsMatch(t, []int{0, 1}, neighbors)

	// Chunk nodes never connect to each other directly.
	assert.Empty(t, g.Neighbors(chunkNodeID(0)))
}

func TestGraphCountsAndReset(t *testing.T) {
	g := newTermGraph()
	g.AddChunk(0, "Grand Hotel")
	require.Equal(t, 3, g.NodeCount()) // chunk_0, Grand, Hotel
	require.Equal(t, 2, g.EdgeCount())

	g.Reset()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraphGrowsMonotonically(t *testing.T) {
	g := newTermGraph()
	g.AddChunk(0, "Grand Hotel")
	before := g.NodeCount()

	g.AddChunk(1, "Grand Hotel") // same text, new chunk node
	assert.Equal(t, before+1, g.NodeCount())
}
