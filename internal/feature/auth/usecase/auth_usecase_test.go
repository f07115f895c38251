package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"survey_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository
// interface. It simulates directory operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// FindByIdentifierFunc is called when the FindByIdentifier method is invoked.
	FindByIdentifierFunc func(ctx context.Context, identifier string) (*entity.User, error)
	// UpdatePasswordHashFunc is called when the UpdatePasswordHash method is invoked.
	UpdatePasswordHashFunc func(ctx context.Context, email, passwordHash string) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	if m.FindByIdentifierFunc != nil {
		return m.FindByIdentifierFunc(ctx, identifier)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	if m.UpdatePasswordHashFunc != nil {
		return m.UpdatePasswordHashFunc(ctx, email, passwordHash)
	}
	return nil
}

// mockTokenIssuer is a mock implementation of the TokenIssuer interface.
type mockTokenIssuer struct {
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

func (m *mockTokenIssuer) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	return "mock-token", nil
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration hashes the password and lowercases the email", func(t *testing.T) {
		var stored *entity.User
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				stored = user
				user.ID = 1
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		user, err := uc.Register(context.Background(), "Alice@X.com", "alice", "3001234567", "Secret1!")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 {
			t.Errorf("expected id 1, got %d", user.ID)
		}
		if stored.Email != "alice@x.com" {
			t.Errorf("expected lowercased email, got %q", stored.Email)
		}
		if stored.PasswordHash == "Secret1!" || stored.PasswordHash == "" {
			t.Error("password is not hashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret1!")); err != nil {
			t.Errorf("invalid bcrypt hash: %v", err)
		}
	})

	t.Run("short password is rejected before the repository is called", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("repository should not be called")
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(context.Background(), "a@x.com", "alice", "300", "short")

		if err == nil {
			t.Fatal("expected error but got nil")
		}
	})

	t.Run("email conflict is passed through", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailTaken
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(context.Background(), "a@x.com", "alice", "300", "Secret1!")

		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got: %v", err)
		}
	})

	t.Run("username conflict is passed through", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrUsernameTaken
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(context.Background(), "a@x.com", "alice", "300", "Secret1!")

		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got: %v", err)
		}
	})
}

func TestAuthUsecase_Authenticate(t *testing.T) {
	password := "Secret1!"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:           1,
		Email:        "a@x.com",
		Username:     "alice",
		PasswordHash: string(hashed),
	}

	t.Run("successful login returns a token for the matched user", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIdentifierFunc: func(ctx context.Context, identifier string) (*entity.User, error) {
				if identifier == "alice" || identifier == "a@x.com" {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}
		issuer := &mockTokenIssuer{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				if userID != testUser.ID || email != testUser.Email {
					t.Errorf("unexpected userID or email: got userID=%d, email=%s", userID, email)
				}
				return "signed-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, issuer)
		token, user, err := uc.Authenticate(context.Background(), "alice", password)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed-token" {
			t.Errorf("expected token 'signed-token', got %q", token)
		}
		if user.ID != testUser.ID {
			t.Errorf("expected user id %d, got %d", testUser.ID, user.ID)
		}
	})

	t.Run("unknown identifier fails with ErrUserNotFound", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})
		_, _, err := uc.Authenticate(context.Background(), "nobody", password)

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})

	t.Run("wrong password fails with ErrIncorrectPassword and issues no token", func(t *testing.T) {
		issuerCalled := false
		mockRepo := &mockUserRepository{
			FindByIdentifierFunc: func(ctx context.Context, identifier string) (*entity.User, error) {
				return testUser, nil
			},
		}
		issuer := &mockTokenIssuer{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				issuerCalled = true
				return "signed-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, issuer)
		token, _, err := uc.Authenticate(context.Background(), "alice", "wrong")

		if !errors.Is(err, ErrIncorrectPassword) {
			t.Errorf("expected ErrIncorrectPassword, got: %v", err)
		}
		if token != "" {
			t.Errorf("expected empty token, got %q", token)
		}
		if issuerCalled {
			t.Error("token issuer should not be called on a failed login")
		}
	})

	t.Run("token generation failure is wrapped", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIdentifierFunc: func(ctx context.Context, identifier string) (*entity.User, error) {
				return testUser, nil
			},
		}
		issuer := &mockTokenIssuer{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				return "", errors.New("failed to sign token")
			},
		}

		uc := NewAuthUsecase(mockRepo, issuer)
		_, _, err := uc.Authenticate(context.Background(), "alice", password)

		if err == nil {
			t.Fatal("expected error but got nil")
		}
		expected := "failed to generate token: failed to sign token"
		if err.Error() != expected {
			t.Errorf("expected error message %q, got %q", expected, err.Error())
		}
	})
}

func TestAuthUsecase_VerifyEmail(t *testing.T) {
	t.Run("registered email reports true", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email != "a@x.com" {
					t.Errorf("expected lowercased lookup, got %q", email)
				}
				return &entity.User{ID: 1, Email: email}, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		exists, err := uc.VerifyEmail(context.Background(), "A@X.com")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected exists=true")
		}
	})

	t.Run("unknown email reports false without error", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})
		exists, err := uc.VerifyEmail(context.Background(), "nobody@x.com")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected exists=false")
		}
	})
}

func TestAuthUsecase_ChangePassword(t *testing.T) {
	t.Run("stores a fresh hash of the new password", func(t *testing.T) {
		var storedHash string
		mockRepo := &mockUserRepository{
			UpdatePasswordHashFunc: func(ctx context.Context, email, passwordHash string) error {
				if email != "a@x.com" {
					t.Errorf("expected lowercased email, got %q", email)
				}
				storedHash = passwordHash
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		err := uc.ChangePassword(context.Background(), "A@X.com", "NewSecret1!")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("NewSecret1!")); err != nil {
			t.Errorf("invalid bcrypt hash: %v", err)
		}
	})

	t.Run("unknown email fails with ErrEmailNotFound", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			UpdatePasswordHashFunc: func(ctx context.Context, email, passwordHash string) error {
				return ErrEmailNotFound
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		err := uc.ChangePassword(context.Background(), "nobody@x.com", "NewSecret1!")

		if !errors.Is(err, ErrEmailNotFound) {
			t.Errorf("expected ErrEmailNotFound, got: %v", err)
		}
	})

	t.Run("weak password is rejected before the repository is called", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			UpdatePasswordHashFunc: func(ctx context.Context, email, passwordHash string) error {
				t.Error("repository should not be called")
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		if err := uc.ChangePassword(context.Background(), "a@x.com", "short"); err == nil {
			t.Fatal("expected error but got nil")
		}
	})
}
