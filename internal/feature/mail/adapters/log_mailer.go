package adapters

import (
	"context"
	"log/slog"

	"survey_backend/internal/feature/mail/usecase"
)

// logMailer logs the message instead of delivering it. It is wired when no
// e-mail API key is configured, so the service keeps running in a degraded
// mode instead of failing requests.
type logMailer struct{}

var _ usecase.Mailer = (*logMailer)(nil)

// NewLogMailer creates the log-only mailer.
func NewLogMailer() *logMailer {
	return &logMailer{}
}

// Send records the message in the log and reports success.
func (m *logMailer) Send(ctx context.Context, toEmail, subject, plainText, htmlContent string) error {
	slog.Info("email delivery skipped (no provider configured)",
		"to", toEmail,
		"subject", subject,
		"bytes", len(plainText),
	)
	return nil
}
