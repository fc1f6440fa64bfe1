package knowledge

import (
	"context"

	"neobook/models"
)

// Embedder produces the embedding vectors used for both ingestion and search.
// The same embedder must serve both so query and chunk vectors are comparable.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// KnowledgeService ingests documents and serves semantic retrieval over them.
type KnowledgeService interface {
	// Ingest extracts text, chunks it, indexes embeddings and grows the
	// term graph. Returns the number of chunks added.
	Ingest(ctx context.Context, data []byte, filename string) (int, error)

	// Search returns up to k chunks nearest to the query. An empty
	// knowledge base yields an empty slice, not an error.
	Search(ctx context.Context, query string, k int) ([]models.DocumentChunk, error)

	// Reset clears chunk list, vector index and graph together. Partial
	// clears would leave the three stores inconsistent.
	Reset()

	Stats() models.KnowledgeStats
}
