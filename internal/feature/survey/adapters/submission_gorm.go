// Package adapters provides the repository implementations for the survey feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"survey_backend/internal/feature/survey/domain/entity"
	"survey_backend/internal/feature/survey/usecase"
)

// submissionGorm is the GORM implementation of the SubmissionRepository
// interface. The unique index on user_id makes check-and-insert a single
// atomic operation at the database, so the one-submission-per-user
// invariant holds under concurrent requests without an application lock.
type submissionGorm struct {
	db *gorm.DB
}

// Compile-time check that submissionGorm implements SubmissionRepository.
var _ usecase.SubmissionRepository = (*submissionGorm)(nil)

// NewSubmissionGorm creates a new submissionGorm backed by the given
// gorm.DB connection.
func NewSubmissionGorm(db *gorm.DB) *submissionGorm {
	return &submissionGorm{db: db}
}

// Create inserts a submission. A duplicate user_id is reported as
// usecase.ErrAlreadySubmitted; the stored record is never overwritten.
func (r *submissionGorm) Create(ctx context.Context, s *entity.Submission) error {
	if s == nil {
		return errors.New("submission must not be nil")
	}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadySubmitted
		}
		return err
	}
	return nil
}

// HasSubmitted reports whether a submission exists for the user.
func (r *submissionGorm) HasSubmitted(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Submission{}).
		Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
