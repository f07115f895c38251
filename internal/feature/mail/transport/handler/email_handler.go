// Package handler provides the HTTP handlers for the mail feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"survey_backend/internal/api"
	"survey_backend/internal/feature/mail/transport/http/dto"
	"survey_backend/internal/feature/mail/usecase"
)

// MailUsecase defines the mail operations consumed by this handler.
type MailUsecase interface {
	// SendSurveyEmail delivers the survey-result e-mail.
	SendSurveyEmail(ctx context.Context, to, subject, body string, answers usecase.SurveyAnswers) error
}

// EmailHandler processes HTTP requests for outbound e-mail.
type EmailHandler struct {
	mail MailUsecase
}

// NewEmailHandler creates a new instance of EmailHandler.
func NewEmailHandler(mail MailUsecase) *EmailHandler {
	return &EmailHandler{mail: mail}
}

// SendSurvey handles the survey e-mail endpoint. It runs behind
// AuthRequired. Provider failures are normalized into the envelope with a
// generic error; the client never sees an unhandled fault.
func (h *EmailHandler) SendSurvey(c *gin.Context) {
	var req dto.SendSurveyEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("send-survey validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}

	answers := usecase.SurveyAnswers{
		Date:      req.SurveyData.Date,
		Question1: req.SurveyData.Question1,
		Question2: req.SurveyData.Question2,
		Question3: req.SurveyData.Question3,
		Question4: req.SurveyData.Question4,
	}
	if err := h.mail.SendSurveyEmail(c.Request.Context(), req.To, req.Subject, req.Body, answers); err != nil {
		slog.Error("survey email failed", "error", err, "to", req.To)
		c.JSON(http.StatusInternalServerError, api.Fail(api.CodeInternalError, "email delivery failed"))
		return
	}

	slog.Info("survey email sent", "to", req.To)
	c.JSON(http.StatusOK, api.OK(dto.SendSurveyEmailResp{Sent: true}, "email sent successfully"))
}
