package knowledge

import (
	"context"
	"fmt"
	"sync"

	"neobook/models"
	"neobook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultKnowledgeService owns the chunk list, the vector index and the term
// graph. Mutation (ingest, reset) is serialized; searches take read locks and
// see a consistent snapshot.
type DefaultKnowledgeService struct {
	Embedder     Embedder
	ChunkSize    int
	ChunkOverlap int

	mu     sync.RWMutex
	chunks []models.DocumentChunk
	index  *vectorIndex
	graph  *termGraph
}

func NewDefaultKnowledgeService(embedder Embedder, chunkSize, chunkOverlap int) *DefaultKnowledgeService {
	return &DefaultKnowledgeService{
		Embedder:     embedder,
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
		index:        newVectorIndex(),
		graph:        newTermGraph(),
	}
}

func (s *DefaultKnowledgeService) Ingest(ctx context.Context, data []byte, filename string) (int, error) {
	text, err := extractText(data, filename)
	if err != nil {
		return 0, err
	}

	parts := splitChunks(text, s.ChunkSize, s.ChunkOverlap)
	if len(parts) == 0 {
		return 0, fmt.Errorf("document %q produced no chunks", filename)
	}

	// Embed outside the lock; the gateway call dominates latency.
	embeddings := make([][]float32, len(parts))
	for i, part := range parts {
		embedding, err := s.Embedder.Embed(ctx, part)
		if err != nil {
			return 0, fmt.Errorf("embed chunk %d of %q: %w", i, filename, err)
		}
		embeddings[i] = embedding
	}

	docID := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, part := range parts {
		pos := len(s.chunks)
		s.chunks = append(s.chunks, models.DocumentChunk{
			DocumentID: docID,
			Index:      i,
			Text:       part,
		})
		s.index.Add(pos, embeddings[i])
		s.graph.AddChunk(pos, part)
	}

	utils.GetLogger().Info("document ingested",
		zap.String("file", filename),
		zap.String("document_id", docID),
		zap.Int("chunks", len(parts)))
	return len(parts), nil
}

func (s *DefaultKnowledgeService) Search(ctx context.Context, query string, k int) ([]models.DocumentChunk, error) {
	s.mu.RLock()
	empty := len(s.chunks) == 0
	s.mu.RUnlock()
	if empty {
		return nil, nil
	}

	queryEmbedding, err := s.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	positions := s.index.Search(queryEmbedding, k)
	results := make([]models.DocumentChunk, 0, len(positions))
	for _, pos := range positions {
		if pos >= 0 && pos < len(s.chunks) {
			results = append(results, s.chunks[pos])
		}
	}
	return results, nil
}

// Reset drops chunks, index and graph under one lock. The three stores reset
// together or not at all.
func (s *DefaultKnowledgeService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = nil
	s.index.Reset()
	s.graph.Reset()
	utils.GetLogger().Info("knowledge base reset")
}

func (s *DefaultKnowledgeService) Stats() models.KnowledgeStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.KnowledgeStats{
		Chunks:     len(s.chunks),
		GraphNodes: s.graph.NodeCount(),
		GraphEdges: s.graph.EdgeCount(),
	}
}
