package notification

import "context"

// NotificationService delivers booking emails. Implementations never fail on
// missing configuration; without credentials they degrade to log-only mode.
type NotificationService interface {
	// Send delivers (or logs) an email and returns a status message.
	Send(ctx context.Context, to, subject, body string) string
}
