package models

// DocumentChunk is the unit of retrieval: a bounded, possibly overlapping
// segment of an ingested document. Chunks are immutable and never deduplicated
// across repeat ingestions.
type DocumentChunk struct {
	DocumentID string `json:"document_id"`
	Index      int    `json:"index"`
	Text       string `json:"text"`
}

// KnowledgeStats reports the size of the knowledge base.
type KnowledgeStats struct {
	Chunks     int `json:"chunks"`
	GraphNodes int `json:"graph_nodes"`
	GraphEdges int `json:"graph_edges"`
}
