// Package handler provides the HTTP handlers for the survey feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"survey_backend/internal/api"
	"survey_backend/internal/feature/survey/domain/entity"
	"survey_backend/internal/feature/survey/transport/http/dto"
	"survey_backend/internal/feature/survey/usecase"
	jwtmw "survey_backend/internal/platform/jwt"
)

// SurveyUsecase defines the survey operations consumed by this handler.
type SurveyUsecase interface {
	// Submit records the user's answers and returns the stored submission.
	Submit(ctx context.Context, userID uint, answers entity.Answers) (*entity.Submission, error)
	// HasSubmitted reports whether the user already answered the survey.
	HasSubmitted(ctx context.Context, userID uint) (bool, error)
}

// SurveyHandler processes HTTP requests for survey operations.
type SurveyHandler struct {
	survey SurveyUsecase
}

// NewSurveyHandler creates a new instance of SurveyHandler.
func NewSurveyHandler(survey SurveyUsecase) *SurveyHandler {
	return &SurveyHandler{survey: survey}
}

// Submit handles the survey submission endpoint. It runs behind
// AuthRequired, so a resolvable user ID is present in the context.
// - binds the request JSON to SubmitSurveyReq, 400 on validation failure
// - 409 with ALREADY_SUBMITTED on a repeat submission
// - 201 with the stored submission on success
func (h *SurveyHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail(api.CodeNotAuthenticated, "login required to answer the survey"))
		return
	}

	var req dto.SubmitSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("survey submit validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}

	answers := entity.Answers{
		Date:      req.Date,
		Question1: req.Question1,
		Question2: req.Question2,
		Question3: req.Question3,
		Question4: req.Question4,
	}
	submission, err := h.survey.Submit(c.Request.Context(), userID, answers)
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadySubmitted) {
			c.JSON(http.StatusConflict, api.Fail(api.CodeAlreadySubmitted, "you have already answered this survey"))
			return
		}
		slog.Error("survey submit failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.Fail(api.CodeInternalError, "survey submission failed"))
		return
	}

	slog.Info("survey submitted", "user_id", userID, "submission_id", submission.ID)
	c.JSON(http.StatusCreated, api.OK(submission, "survey saved successfully"))
}

// Check handles the has-answered query. It runs behind AuthOptional: an
// unauthenticated caller is not an error and simply has not answered.
func (h *SurveyHandler) Check(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, api.OK(dto.CheckSurveyResp{HasAnswered: false}, ""))
		return
	}

	answered, err := h.survey.HasSubmitted(c.Request.Context(), userID)
	if err != nil {
		slog.Error("survey check failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.Fail(api.CodeInternalError, "survey check failed"))
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.CheckSurveyResp{HasAnswered: answered}, ""))
}

// currentUserID extracts the authenticated user's ID set by the JWT
// middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
