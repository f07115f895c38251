// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"survey_backend/internal/feature/survey/domain/entity"
	"survey_backend/internal/feature/survey/usecase"
)

// CachingSubmissionRepository decorates a SubmissionRepository with Redis
// caching of the has-submitted flag, which the UI polls on every page load.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingSubmissionRepository struct {
	inner     usecase.SubmissionRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator satisfies the same interface.
var _ usecase.SubmissionRepository = (*CachingSubmissionRepository)(nil)

// NewCachingSubmissionRepository decorates a SubmissionRepository with
// Redis caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "survey".
func NewCachingSubmissionRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SubmissionRepository, namespace string) *CachingSubmissionRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "survey"
	}
	return &CachingSubmissionRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts the submission and refreshes the cached flag on success.
func (c *CachingSubmissionRepository) Create(ctx context.Context, s *entity.Submission) error {
	// First write to the underlying repository; the database owns the
	// one-submission-per-user invariant.
	if err := c.inner.Create(ctx, s); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	// Best effort: a failed cache write only costs a database hit later.
	_ = c.rdb.Set(ctx, c.answeredKey(s.UserID), "1", c.ttl).Err()
	return nil
}

// HasSubmitted checks the cache first and falls back to the database.
func (c *CachingSubmissionRepository) HasSubmitted(ctx context.Context, userID uint) (bool, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.HasSubmitted(ctx, userID)
	}

	key := c.answeredKey(userID)

	// 1) Check cache
	if v, err := c.rdb.Get(ctx, key).Result(); err == nil {
		switch v {
		case "1":
			return true, nil
		case "0":
			return false, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	answered, err := c.inner.HasSubmitted(ctx, userID)
	if err != nil {
		return false, err
	}

	// 3) Store in cache (best effort)
	v := "0"
	if answered {
		v = "1"
	}
	_ = c.rdb.Set(ctx, key, v, c.ttl).Err()

	return answered, nil
}

// answeredKey generates the cache key for a user's has-submitted flag.
func (c *CachingSubmissionRepository) answeredKey(userID uint) string {
	return fmt.Sprintf("%s:answered:%d", c.namespace, userID)
}
