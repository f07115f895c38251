// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that is
	// already present in the directory.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken is returned when registering with a username that is
	// already present in the directory.
	ErrUsernameTaken = errors.New("username already in use")

	// ErrUserNotFound is returned when no user matches the given email or
	// username.
	ErrUserNotFound = errors.New("user not found")

	// ErrIncorrectPassword is returned when the password does not match the
	// stored credential.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrEmailNotFound is returned by password-change operations when the
	// email has no registered user.
	ErrEmailNotFound = errors.New("email not found")

	// ErrResetCompleted is returned when driving a password-reset flow that
	// has already reached its terminal state.
	ErrResetCompleted = errors.New("password reset already completed")

	// ErrResetOutOfOrder is returned when a password-reset step is invoked
	// before the step that precedes it.
	ErrResetOutOfOrder = errors.New("password reset step out of order")
)
