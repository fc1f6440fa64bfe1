package knowledge

import (
	"math"
	"sort"
	"sync"
)

// vectorIndex is an in-memory nearest-neighbor index over chunk embeddings.
// Insertion is incremental and chunks are never removed individually; the
// whole index is dropped on Reset.
type vectorIndex struct {
	mu      sync.RWMutex
	vectors [][]float32 // parallel to chunk list positions
	ids     []int
}

func newVectorIndex() *vectorIndex {
	return &vectorIndex{}
}

// Add inserts an embedding for the chunk at the given position.
func (idx *vectorIndex) Add(chunkPos int, embedding []float32) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.vectors = append(idx.vectors, embedding)
	idx.ids = append(idx.ids, chunkPos)
}

// Search returns the positions of the top-k chunks by cosine similarity.
func (idx *vectorIndex) Search(query []float32, k int) []int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	type scored struct {
		id    int
		score float64
	}
	results := make([]scored, 0, len(idx.vectors))
	for i, vec := range idx.vectors {
		results = append(results, scored{id: idx.ids[i], score: cosineSimilarity(query, vec)})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if len(results) > k {
		results = results[:k]
	}

	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.id
	}
	return ids
}

func (idx *vectorIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.vectors)
}

func (idx *vectorIndex) Reset() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.vectors = nil
	idx.ids = nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
