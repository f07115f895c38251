package usecase

import (
	"context"
	"fmt"

	"survey_backend/internal/feature/survey/domain/entity"
)

// SubmissionRepository abstracts the persistence layer for survey
// submissions. Following Go convention, the interface is defined by the
// consumer (usecase) rather than the provider (adapters).
type SubmissionRepository interface {
	// Create persists a new submission. It returns ErrAlreadySubmitted when
	// a submission for the same user already exists; the check and the
	// insert must be atomic.
	Create(ctx context.Context, s *entity.Submission) error

	// HasSubmitted reports whether the user already has a stored submission.
	HasSubmitted(ctx context.Context, userID uint) (bool, error)
}

// surveyUsecase records and queries survey submissions. It enforces only
// the one-submission-per-user invariant; answer content is validated at
// the transport boundary and is stored as passed.
type surveyUsecase struct {
	submissions SubmissionRepository
}

// NewSurveyUsecase creates a new instance of surveyUsecase.
func NewSurveyUsecase(submissions SubmissionRepository) *surveyUsecase {
	return &surveyUsecase{submissions: submissions}
}

// Submit stores the user's answers and returns the new record. A second
// submission for the same user fails with ErrAlreadySubmitted and leaves
// the first record untouched.
func (u *surveyUsecase) Submit(ctx context.Context, userID uint, answers entity.Answers) (*entity.Submission, error) {
	s := &entity.Submission{
		UserID:  userID,
		Answers: answers,
	}
	if err := u.submissions.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// HasSubmitted reports whether the user already answered the survey.
func (u *surveyUsecase) HasSubmitted(ctx context.Context, userID uint) (bool, error) {
	answered, err := u.submissions.HasSubmitted(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check submission: %w", err)
	}
	return answered, nil
}
