package knowledge

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// termGraph is an undirected co-occurrence graph linking chunk nodes to the
// capitalized terms they contain. Chunk nodes never connect to each other;
// a term shared across chunks gets degree > 1. It is a retrieval aid, not a
// reasoning engine.
type termGraph struct {
	mu    sync.RWMutex
	edges map[string]map[string]struct{} // node -> neighbor set
}

func newTermGraph() *termGraph {
	return &termGraph{edges: make(map[string]map[string]struct{})}
}

func chunkNodeID(pos int) string {
	return fmt.Sprintf("chunk_%d", pos)
}

// AddChunk inserts a node for the chunk plus one node per distinct extracted
// term, with an edge between the chunk and each of its terms.
func (g *termGraph) AddChunk(chunkPos int, text string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	chunkNode := chunkNodeID(chunkPos)
	if g.edges[chunkNode] == nil {
		g.edges[chunkNode] = make(map[string]struct{})
	}
	for term := range extractTerms(text) {
		if g.edges[term] == nil {
			g.edges[term] = make(map[string]struct{})
		}
		g.edges[chunkNode][term] = struct{}{}
		g.edges[term][chunkNode] = struct{}{}
	}
}

// Neighbors returns the chunk positions adjacent to a term node.
func (g *termGraph) Neighbors(term string) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var positions []int
	for neighbor := range g.edges[term] {
		var pos int
		if _, err := fmt.Sscanf(neighbor, "chunk_%d", &pos); err == nil {
			positions = append(positions, pos)
		}
	}
	return positions
}

func (g *termGraph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

func (g *termGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	total := 0
	for _, neighbors := range g.edges {
		total += len(neighbors)
	}
	return total / 2 // undirected, each edge stored twice
}

func (g *termGraph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.edges = make(map[string]map[string]struct{})
}

// extractTerms pulls distinct capitalized tokens longer than 3 characters.
// A naive heuristic standing in for real entity extraction.
func extractTerms(text string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,;:!?()[]{}\"'")
		if len(word) <= 3 {
			continue
		}
		runes := []rune(word)
		if unicode.IsUpper(runes[0]) {
			terms[word] = struct{}{}
		}
	}
	return terms
}
