package dto

// ChangePasswordReq represents the request body for the
// /auth/change-password endpoint, the second step of the password-reset
// flow.
type ChangePasswordReq struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
