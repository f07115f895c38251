// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"survey_backend/internal/feature/auth/domain/entity"
	"survey_backend/internal/feature/auth/usecase"
)

// userGorm is the GORM implementation of the UserRepository interface.
// The same code runs against SQLite (default, including in-memory for
// tests) and Postgres; duplicate detection relies on gorm.ErrDuplicatedKey,
// which requires the connection to be opened with TranslateError enabled.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm backed by the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create adds a user to the directory. Email collisions are reported before
// username collisions. The unique indexes remain the backstop when two
// registrations race past the pre-checks.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user must not be nil")
	}
	if err := r.checkTaken(ctx, u.Email, u.Username); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race after the pre-checks passed; re-check to report
			// the right field.
			if takenErr := r.checkTaken(ctx, u.Email, u.Username); takenErr != nil {
				return takenErr
			}
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// checkTaken returns ErrEmailTaken or ErrUsernameTaken when either field is
// already present, email first.
func (r *userGorm) checkTaken(ctx context.Context, email, username string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return usecase.ErrEmailTaken
	}
	if err := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return usecase.ErrUsernameTaken
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// It returns usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByIdentifier retrieves a user whose email or username matches the
// identifier. Emails are stored lowercase, so the email leg of the match is
// case-insensitive while the username leg stays exact.
func (r *userGorm) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", strings.ToLower(identifier), identifier).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdatePasswordHash replaces the stored hash for the user registered under
// email. It returns usecase.ErrEmailNotFound when the email has no user.
func (r *userGorm) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrEmailNotFound
	}
	return nil
}
