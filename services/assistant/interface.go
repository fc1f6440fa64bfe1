package assistant

import "context"

// AssistantService is the conversational entry point: one call per user turn.
type AssistantService interface {
	// ProcessMessage runs a single turn for the session and returns the
	// assistant's reply. The caller owns recording of user/assistant turns
	// in history via the service (it appends both itself).
	ProcessMessage(ctx context.Context, sessionID, input string) (string, error)

	// ResetSession clears slot state and history for the session,
	// returning the number of turns removed.
	ResetSession(ctx context.Context, sessionID string) (int64, error)
}
