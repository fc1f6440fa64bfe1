package historyRepo

import (
	"context"

	"neobook/models"
)

// HistoryRepository stores bounded per-session conversation history. Retention
// is enforced on write: each session keeps only its most recent turns.
type HistoryRepository interface {
	// Append records a turn and prunes the session past the retention limit.
	Append(ctx context.Context, sessionID, role, content string, metadata map[string]string) error

	// Recent returns up to limit turns in chronological order. limit <= 0
	// means the configured retention limit.
	Recent(ctx context.Context, sessionID string, limit int) ([]models.ConversationTurn, error)

	// Clear removes all turns for the session, returning the removed count.
	Clear(ctx context.Context, sessionID string) (int64, error)
}
