package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"survey_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailTaken or
	// ErrUsernameTaken when the corresponding field is already present.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by lowercase email address.
	// It returns ErrUserNotFound if no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIdentifier retrieves a user whose email or username exactly
	// matches the identifier. It returns ErrUserNotFound if no user matches.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// UpdatePasswordHash replaces the stored password hash for the user
	// registered under email. It returns ErrEmailNotFound if the email has
	// no user.
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}

// TokenIssuer mints a bearer token for an authenticated user.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (platform/jwt).
type TokenIssuer interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase implements registration, authentication and password
// management against the user directory.
type authUsecase struct {
	users  UserRepository
	issuer TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, issuer TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		issuer: issuer,
	}
}

// validatePassword checks that the password meets the strength floor.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password and returns the stored
// record. Email is normalized to lowercase before storage; uniqueness of
// email is checked before uniqueness of username.
func (u *authUsecase) Register(ctx context.Context, email, username, phone, password string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:        strings.ToLower(email),
		Username:     username,
		Phone:        phone,
		PasswordHash: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the identifier/password pair and returns a signed
// token plus the owning user. The identifier may be an email address or a
// username. A bcrypt comparison runs even when the user does not exist, to
// keep response timing independent of user existence.
func (u *authUsecase) Authenticate(ctx context.Context, identifier, password string) (string, *entity.User, error) {
	user, err := u.users.FindByIdentifier(ctx, identifier)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path even when
	// the lookup failed.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}
	if compareErr != nil {
		return "", nil, ErrIncorrectPassword
	}

	token, tokenErr := u.issuer.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}

// VerifyEmail reports whether a user is registered under the given email.
// Absence is not an error.
func (u *authUsecase) VerifyEmail(ctx context.Context, email string) (bool, error) {
	_, err := u.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ChangePassword replaces the stored credential for the given email.
// It returns ErrEmailNotFound when no user is registered under the email.
func (u *authUsecase) ChangePassword(ctx context.Context, email, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return u.users.UpdatePasswordHash(ctx, strings.ToLower(email), string(hashed))
}
