// Package adapters provides the mailer implementations for the mail feature.
package adapters

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"survey_backend/internal/feature/mail/usecase"
)

// sendGridMailer delivers e-mail through the SendGrid v3 API.
type sendGridMailer struct {
	client     *sendgrid.Client
	senderName string
	senderMail string
}

// Compile-time check that sendGridMailer implements Mailer.
var _ usecase.Mailer = (*sendGridMailer)(nil)

// NewSendGridMailer creates a mailer that sends through SendGrid with the
// given API key and sender address.
func NewSendGridMailer(apiKey, senderName, senderMail string) *sendGridMailer {
	return &sendGridMailer{
		client:     sendgrid.NewSendClient(apiKey),
		senderName: senderName,
		senderMail: senderMail,
	}
}

// Send delivers a single e-mail. Non-2xx provider responses are reported
// as errors so the transport layer can normalize them into the envelope.
func (m *sendGridMailer) Send(ctx context.Context, toEmail, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(m.senderName, m.senderMail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return nil
}
