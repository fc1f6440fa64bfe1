package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// Mismatched or zero vectors score zero instead of erroring.
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
}

func TestVectorIndexSearchRanksBySimilarity(t *testing.T) {
	idx := newVectorIndex()
	idx.Add(0, []float32{1, 0, 0})
	idx.Add(1, []float32{0, 1, 0})
	idx.Add(2, []float32{0.9, 0.1, 0})

	results := idx.Search([]float32{1, 0, 0}, 2)
	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0])
	assert.Equal(t, 2, results[1])
}

func TestVectorIndexSearchCapsAtK(t *testing.T) {
	idx := newVectorIndex()
	for i := 0; i < 10; i++ {
		idx.Add(i, []float32{float32(i), 1})
	}
	assert.Len(t, idx.Search([]float32{1, 1}, 3), 3)

	// k larger than the index returns everything.
	assert.Len(t, idx.Search([]float32{1, 1}, 100), 10)
}

func TestVectorIndexEmptySearch(t *testing.T) {
	idx := newVectorIndex()
	assert.Empty(t, idx.Search([]float32{1, 0}, 3))
}

func TestVectorIndexReset(t *testing.T) {
	idx := newVectorIndex()
	idx.Add(0, []float32{1, 0})
	require.Equal(t, 1, idx.Len())

	idx.Reset()
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Search([]float32{1, 0}, 3))
}
