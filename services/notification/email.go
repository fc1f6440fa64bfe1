package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"neobook/utils"

	"go.uber.org/zap"
)

// EmailConfig holds SMTP settings. An empty Sender or Password switches the
// service to log-only mode.
type EmailConfig struct {
	Sender   string
	Password string
	Server   string
	Port     int
}

// SMTPNotificationService sends plain-text mail over SMTP with STARTTLS.
type SMTPNotificationService struct {
	Config EmailConfig
}

func NewSMTPNotificationService(cfg EmailConfig) *SMTPNotificationService {
	return &SMTPNotificationService{Config: cfg}
}

func (s *SMTPNotificationService) Send(ctx context.Context, to, subject, body string) string {
	logger := utils.GetLogger()

	if s.Config.Sender == "" || s.Config.Password == "" {
		logger.Info("email mocked (missing credentials)",
			zap.String("to", to),
			zap.String("subject", subject))
		return "Email sent successfully (Mocked - Set EMAIL_SENDER/PASSWORD to send real emails)."
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.Config.Sender, to, subject, body)
	addr := fmt.Sprintf("%s:%d", s.Config.Server, s.Config.Port)
	auth := smtp.PlainAuth("", s.Config.Sender, s.Config.Password, s.Config.Server)

	if err := smtp.SendMail(addr, auth, s.Config.Sender, []string{to}, []byte(msg)); err != nil {
		logger.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return fmt.Sprintf("Failed to send email: %v", err)
	}
	return "Email sent successfully."
}
