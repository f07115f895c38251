package usecase

import (
	"context"
	"errors"
	"testing"

	"survey_backend/internal/feature/survey/domain/entity"
)

// mockSubmissionRepository is a mock implementation of the
// SubmissionRepository interface.
type mockSubmissionRepository struct {
	CreateFunc       func(ctx context.Context, s *entity.Submission) error
	HasSubmittedFunc func(ctx context.Context, userID uint) (bool, error)
}

func (m *mockSubmissionRepository) Create(ctx context.Context, s *entity.Submission) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubmissionRepository) HasSubmitted(ctx context.Context, userID uint) (bool, error) {
	if m.HasSubmittedFunc != nil {
		return m.HasSubmittedFunc(ctx, userID)
	}
	return false, nil
}

func testAnswers() entity.Answers {
	return entity.Answers{
		Date:      "2025-06-01",
		Question1: "one",
		Question2: "two",
		Question3: "three",
		Question4: "four",
	}
}

func TestSurveyUsecase_Submit(t *testing.T) {
	t.Run("successful submission returns the stored record", func(t *testing.T) {
		repo := &mockSubmissionRepository{
			CreateFunc: func(ctx context.Context, s *entity.Submission) error {
				if s.UserID != 7 {
					t.Errorf("expected userID 7, got %d", s.UserID)
				}
				s.ID = 1
				return nil
			},
		}

		uc := NewSurveyUsecase(repo)
		sub, err := uc.Submit(context.Background(), 7, testAnswers())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.ID != 1 {
			t.Errorf("expected id 1, got %d", sub.ID)
		}
		if sub.Answers != testAnswers() {
			t.Errorf("answers were not stored as passed: %+v", sub.Answers)
		}
	})

	t.Run("second submission fails with ErrAlreadySubmitted", func(t *testing.T) {
		repo := &mockSubmissionRepository{
			CreateFunc: func(ctx context.Context, s *entity.Submission) error {
				return ErrAlreadySubmitted
			},
		}

		uc := NewSurveyUsecase(repo)
		_, err := uc.Submit(context.Background(), 7, testAnswers())

		if !errors.Is(err, ErrAlreadySubmitted) {
			t.Errorf("expected ErrAlreadySubmitted, got: %v", err)
		}
	})
}

func TestSurveyUsecase_HasSubmitted(t *testing.T) {
	t.Run("passes the repository answer through", func(t *testing.T) {
		repo := &mockSubmissionRepository{
			HasSubmittedFunc: func(ctx context.Context, userID uint) (bool, error) {
				return userID == 7, nil
			},
		}

		uc := NewSurveyUsecase(repo)

		answered, err := uc.HasSubmitted(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !answered {
			t.Error("expected answered=true")
		}

		answered, err = uc.HasSubmitted(context.Background(), 8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answered {
			t.Error("expected answered=false")
		}
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		repo := &mockSubmissionRepository{
			HasSubmittedFunc: func(ctx context.Context, userID uint) (bool, error) {
				return false, errors.New("database gone")
			},
		}

		uc := NewSurveyUsecase(repo)
		_, err := uc.HasSubmitted(context.Background(), 7)

		if err == nil {
			t.Fatal("expected error but got nil")
		}
	})
}
