// Package usecase implements the business logic for the mail feature.
package usecase

import (
	"context"
	"fmt"
	"strings"
)

// Mailer abstracts the outbound e-mail provider. Following Go convention,
// the interface is defined by the consumer (usecase) rather than the
// provider (adapters).
type Mailer interface {
	// Send delivers a single e-mail with plain-text and HTML bodies.
	Send(ctx context.Context, toEmail, subject, plainText, htmlContent string) error
}

// SurveyAnswers carries the answered survey included in the e-mail body.
type SurveyAnswers struct {
	Date      string
	Question1 string
	Question2 string
	Question3 string
	Question4 string
}

// mailUsecase composes and sends the survey-result e-mail.
type mailUsecase struct {
	mailer Mailer
}

// NewMailUsecase creates a new instance of mailUsecase.
func NewMailUsecase(mailer Mailer) *mailUsecase {
	return &mailUsecase{mailer: mailer}
}

// SendSurveyEmail appends the formatted answers to the caller's body and
// hands the message to the configured mailer.
func (u *mailUsecase) SendSurveyEmail(ctx context.Context, to, subject, body string, answers SurveyAnswers) error {
	plain := body + "\n\n" + formatAnswersPlain(answers)
	html := htmlEscapeParagraph(body) + formatAnswersHTML(answers)

	if err := u.mailer.Send(ctx, to, subject, plain, html); err != nil {
		return fmt.Errorf("failed to send survey email: %w", err)
	}
	return nil
}

// formatAnswersPlain renders the answers as labelled plain-text lines.
func formatAnswersPlain(a SurveyAnswers) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", a.Date)
	fmt.Fprintf(&b, "Question 1: %s\n", a.Question1)
	fmt.Fprintf(&b, "Question 2: %s\n", a.Question2)
	fmt.Fprintf(&b, "Question 3: %s\n", a.Question3)
	fmt.Fprintf(&b, "Question 4: %s\n", a.Question4)
	return b.String()
}

// formatAnswersHTML renders the answers as an HTML list.
func formatAnswersHTML(a SurveyAnswers) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, row := range []struct{ label, value string }{
		{"Date", a.Date},
		{"Question 1", a.Question1},
		{"Question 2", a.Question2},
		{"Question 3", a.Question3},
		{"Question 4", a.Question4},
	} {
		fmt.Fprintf(&b, "<li><strong>%s:</strong> %s</li>", row.label, escape(row.value))
	}
	b.WriteString("</ul>")
	return b.String()
}

func htmlEscapeParagraph(s string) string {
	return "<p>" + escape(s) + "</p>"
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
