package email

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/config"
	"gopkg.in/gomail.v2"
)

const maxRetries = 3

// Mailer sends already-rendered HTML mail. Template lookup and rendering
// happen in the notification service; this layer only talks SMTP.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type mailerImpl struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func NewMailer(cfg config.SMTPConfig) Mailer {
	return &mailerImpl{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *mailerImpl) Send(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if m.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := m.dialer.DialAndSend(msg)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s, 4s
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
