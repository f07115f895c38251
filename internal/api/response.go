// Package api defines the uniform response envelope returned by every
// endpoint of the service.
package api

// Error codes returned in the envelope's Error field. The vocabulary is
// fixed; handlers translate usecase errors into exactly one of these.
const (
	CodeEmailTaken       = "EMAIL_TAKEN"
	CodeUsernameTaken    = "USERNAME_TAKEN"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeIncorrectPass    = "INCORRECT_PASSWORD"
	CodeAlreadySubmitted = "ALREADY_SUBMITTED"
	CodeEmailNotFound    = "EMAIL_NOT_FOUND"
	CodeNotAuthenticated = "NOT_AUTHENTICATED"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Response is the envelope wrapping every success and failure payload.
// Domain failures are reported via Success=false plus an error code;
// nothing below the transport layer ever reaches a client unwrapped.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK builds a success envelope with the given payload and optional message.
func OK(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// Fail builds a failure envelope with an error code from the fixed
// vocabulary and a human-readable message.
func Fail(code, message string) Response {
	return Response{Success: false, Error: code, Message: message}
}
