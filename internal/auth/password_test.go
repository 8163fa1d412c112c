package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/goodtricount/backend/internal/models"
)

// memoryUserStorage is a map-backed UserStorage for tests.
type memoryUserStorage struct {
	users map[string]*models.User
}

func newMemoryUserStorage() *memoryUserStorage {
	return &memoryUserStorage{users: make(map[string]*models.User)}
}

func (m *memoryUserStorage) CreateUser(_ context.Context, user *models.User) error {
	m.users[user.Username] = user
	return nil
}

func (m *memoryUserStorage) GetUser(_ context.Context, username string) (*models.User, error) {
	return m.users[username], nil
}

func (m *memoryUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("register and authenticate", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newMemoryUserStorage())

		user, err := authenticator.Register(ctx, "alice", "alice@example.com", "Alice", "password123")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.PasswordHash == "password123" {
			t.Error("password must not be stored in plaintext")
		}

		got, err := authenticator.Authenticate(ctx, "alice", "password123")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.Username != "alice" {
			t.Errorf("username = %s, want alice", got.Username)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newMemoryUserStorage())

		_, err := authenticator.Register(ctx, "alice", "alice@example.com", "Alice", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("distinguishes username and email conflicts", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newMemoryUserStorage())
		if _, err := authenticator.Register(ctx, "alice", "alice@example.com", "Alice", "password123"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		_, err := authenticator.Register(ctx, "alice", "other@example.com", "Alice", "password123")
		if !errors.Is(err, ErrUsernameExists) {
			t.Errorf("expected ErrUsernameExists, got %v", err)
		}

		_, err = authenticator.Register(ctx, "alice2", "alice@example.com", "Alice", "password123")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("rejects wrong password and unknown user", func(t *testing.T) {
		authenticator := NewPasswordAuthenticator(newMemoryUserStorage())
		if _, err := authenticator.Register(ctx, "alice", "alice@example.com", "Alice", "password123"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if _, err := authenticator.Authenticate(ctx, "alice", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := authenticator.Authenticate(ctx, "nobody", "password123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
