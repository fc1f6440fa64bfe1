package notification

import (
	"context"
	"encoding/json"

	"neobook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeEmailSend is the asynq task type for outbound booking emails.
const TypeEmailSend = "email:send"

// EmailPayload is the task payload for TypeEmailSend.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// QueuedNotificationService enqueues emails onto the asynq queue so the
// commit path never waits on SMTP. Enqueue failures fall back to the direct
// sender, so a dead queue only costs latency, not delivery.
type QueuedNotificationService struct {
	Client   *asynq.Client
	Fallback NotificationService
}

func NewQueuedNotificationService(client *asynq.Client, fallback NotificationService) *QueuedNotificationService {
	return &QueuedNotificationService{Client: client, Fallback: fallback}
}

func (s *QueuedNotificationService) Send(ctx context.Context, to, subject, body string) string {
	payload, err := json.Marshal(EmailPayload{To: to, Subject: subject, Body: body})
	if err != nil {
		return s.Fallback.Send(ctx, to, subject, body)
	}

	task := asynq.NewTask(TypeEmailSend, payload)
	if _, err := s.Client.EnqueueContext(ctx, task); err != nil {
		utils.GetLogger().Warn("email enqueue failed, sending directly",
			zap.String("to", to), zap.Error(err))
		return s.Fallback.Send(ctx, to, subject, body)
	}
	return "Email queued for delivery."
}
