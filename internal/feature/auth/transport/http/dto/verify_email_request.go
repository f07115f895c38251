package dto

// VerifyEmailReq represents the request body for the /auth/verify-email
// endpoint, the first step of the password-reset flow.
type VerifyEmailReq struct {
	Email string `json:"email" binding:"required,email"`
}
