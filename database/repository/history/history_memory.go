package historyRepo

import (
	"context"
	"sync"
	"time"

	"neobook/models"

	"github.com/google/uuid"
)

// InMemoryHistoryRepo is a HistoryRepository for tests and single-process use.
type InMemoryHistoryRepo struct {
	mu       sync.Mutex
	sessions map[string][]models.ConversationTurn
	maxTurns int
	clock    int64
}

// NewInMemoryHistoryRepo creates an in-memory history store with the given
// per-session retention limit.
func NewInMemoryHistoryRepo(maxTurns int) *InMemoryHistoryRepo {
	return &InMemoryHistoryRepo{
		sessions: make(map[string][]models.ConversationTurn),
		maxTurns: maxTurns,
	}
}

func (r *InMemoryHistoryRepo) Append(ctx context.Context, sessionID, role, content string, metadata map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Monotonic tick keeps ordering stable when appends land within the
	// same wall-clock instant.
	r.clock++
	turn := models.ConversationTurn{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now().Add(time.Duration(r.clock) * time.Nanosecond),
		Metadata:  metadata,
	}

	turns := append(r.sessions[sessionID], turn)
	if len(turns) > r.maxTurns {
		turns = turns[len(turns)-r.maxTurns:]
	}
	r.sessions[sessionID] = turns
	return nil
}

func (r *InMemoryHistoryRepo) Recent(ctx context.Context, sessionID string, limit int) ([]models.ConversationTurn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > r.maxTurns {
		limit = r.maxTurns
	}
	turns := r.sessions[sessionID]
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	out := make([]models.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}

func (r *InMemoryHistoryRepo) Clear(ctx context.Context, sessionID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := int64(len(r.sessions[sessionID]))
	delete(r.sessions, sessionID)
	return count, nil
}
