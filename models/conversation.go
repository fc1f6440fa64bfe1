package models

import "time"

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MetaBookingConfirmed marks the assistant turn that closed a booking. The
// dialogue engine treats it as a hard boundary: turns before the most recent
// marker are never shown to the extraction model.
const MetaBookingConfirmed = "booking_confirmed"

// ConversationTurn is one message in a session's history. Turns are append-only
// and ordered strictly by timestamp.
type ConversationTurn struct {
	ID        string            `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID string            `bson:"session_id" json:"session_id"`
	Role      string            `bson:"role" json:"role"`
	Content   string            `bson:"content" json:"content"`
	Timestamp time.Time         `bson:"timestamp" json:"timestamp"`
	Metadata  map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
}
