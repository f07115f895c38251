// Package usecase implements the business logic for the survey feature.
package usecase

import "errors"

var (
	// ErrAlreadySubmitted is returned when a user who has already answered
	// the survey attempts a second submission.
	ErrAlreadySubmitted = errors.New("survey already submitted")
)
