package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendWithoutCredentialsDegradesToMock(t *testing.T) {
	svc := NewSMTPNotificationService(EmailConfig{
		Server: "smtp.example.com",
		Port:   587,
	})

	status := svc.Send(context.Background(), "guest@example.com", "Booking Confirmation", "body")
	assert.Contains(t, status, "Mocked")
}

func TestSendWithPartialCredentialsStillMocks(t *testing.T) {
	svc := NewSMTPNotificationService(EmailConfig{
		Sender: "bot@example.com",
		Server: "smtp.example.com",
		Port:   587,
	})

	status := svc.Send(context.Background(), "guest@example.com", "subject", "body")
	assert.Contains(t, status, "Mocked")
}
