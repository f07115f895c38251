package dto

import "survey_backend/internal/feature/auth/domain/entity"

// LoginResp is the success payload of the /auth/login endpoint.
type LoginResp struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// VerifyEmailResp is the success payload of the /auth/verify-email endpoint.
type VerifyEmailResp struct {
	Exists bool `json:"exists"`
}

// ChangePasswordResp is the success payload of the /auth/change-password endpoint.
type ChangePasswordResp struct {
	Message string `json:"message"`
}
