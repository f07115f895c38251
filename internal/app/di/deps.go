// Package di assembles optional infrastructure behind the usecase
// interfaces.
package di

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	mailadapters "survey_backend/internal/feature/mail/adapters"
	mailusecase "survey_backend/internal/feature/mail/usecase"
	surveyadapters "survey_backend/internal/feature/survey/adapters"
	surveyusecase "survey_backend/internal/feature/survey/usecase"
	"survey_backend/internal/platform/cache"
)

// NewSubmissionRepository creates a SubmissionRepository implementation.
// If Redis is available, the GORM repository is wrapped with the caching
// decorator. Otherwise the plain repository is returned.
func NewSubmissionRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) surveyusecase.SubmissionRepository {
	repo := surveyadapters.NewSubmissionGorm(db)
	if rdb != nil {
		return cache.NewCachingSubmissionRepository(rdb, ttl, repo, "survey")
	}
	return repo
}

// NewMailer creates a Mailer implementation. With EMAIL_API_KEY set it
// delivers through SendGrid; otherwise messages are logged and dropped.
func NewMailer() mailusecase.Mailer {
	apiKey := os.Getenv("EMAIL_API_KEY")
	if apiKey == "" {
		return mailadapters.NewLogMailer()
	}
	sender := os.Getenv("EMAIL_SENDER")
	senderName := os.Getenv("EMAIL_SENDER_NAME")
	if senderName == "" {
		senderName = "Survey Team"
	}
	return mailadapters.NewSendGridMailer(apiKey, senderName, sender)
}
