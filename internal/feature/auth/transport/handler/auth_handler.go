// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"survey_backend/internal/api"
	"survey_backend/internal/feature/auth/domain/entity"
	"survey_backend/internal/feature/auth/transport/http/dto"
	"survey_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns the stored record.
	Register(ctx context.Context, email, username, phone, password string) (*entity.User, error)
	// Authenticate verifies credentials and returns a bearer token plus the user.
	Authenticate(ctx context.Context, identifier, password string) (string, *entity.User, error)
	// VerifyEmail reports whether a user is registered under the email.
	VerifyEmail(ctx context.Context, email string) (bool, error)
	// ChangePassword replaces the stored credential for the email.
	ChangePassword(ctx context.Context, email, newPassword string) error
}

// AuthHandler processes HTTP requests for authentication operations.
// It is the sole translator from usecase errors to the envelope's error
// codes: every domain failure leaves this layer as success=false plus a
// code, never as an unhandled fault.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
// - binds the request JSON to RegisterReq, 400 on validation failure
// - 409 with EMAIL_TAKEN / USERNAME_TAKEN on a uniqueness conflict
// - 201 with the new user on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Username, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, api.Fail(api.CodeEmailTaken, "email is already registered"))
		case errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusConflict, api.Fail(api.CodeUsernameTaken, "username is already in use"))
		default:
			slog.Error("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.Fail(api.CodeInternalError, "registration failed"))
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.OK(user, "user registered successfully"))
}

// Login handles the user login endpoint.
// - binds the request JSON to LoginReq, 400 on validation failure
// - 404 with USER_NOT_FOUND when no account matches the identifier
// - 401 with INCORRECT_PASSWORD on a credential mismatch
// - 200 with {token, user} on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}

	token, user, err := h.auth.Authenticate(c.Request.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login failed", "reason", "user not found", "identifier", req.EmailOrUsername, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, api.Fail(api.CodeUserNotFound, "no account matches that email or username"))
		case errors.Is(err, usecase.ErrIncorrectPassword):
			slog.Warn("login failed", "reason", "incorrect password", "identifier", req.EmailOrUsername, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.Fail(api.CodeIncorrectPass, "the password is incorrect"))
		default:
			slog.Error("login failed", "error", err, "identifier", req.EmailOrUsername, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.Fail(api.CodeInternalError, "login failed"))
		}
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.OK(dto.LoginResp{Token: token, User: user}, "login successful"))
}

// VerifyEmail handles the email existence check that starts the
// password-reset flow. Absence is not an error: the envelope is always
// success=true with an exists flag.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify-email validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}

	exists, err := h.auth.VerifyEmail(c.Request.Context(), req.Email)
	if err != nil {
		slog.Error("verify-email failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Fail(api.CodeInternalError, "email verification failed"))
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.VerifyEmailResp{Exists: exists}, ""))
}

// ChangePassword handles the second step of the password-reset flow.
// - 404 with EMAIL_NOT_FOUND when the email has no registered user
// - 200 with a confirmation message on success
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("change-password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrEmailNotFound) {
			c.JSON(http.StatusNotFound, api.Fail(api.CodeEmailNotFound, "email not found"))
			return
		}
		slog.Error("change-password failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Fail(api.CodeInternalError, "password change failed"))
		return
	}

	slog.Info("password changed", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.OK(dto.ChangePasswordResp{Message: "password updated successfully"}, ""))
}
