package service

import (
	"context"
	"log/slog"

	"github.com/goodtricount/backend/internal/auth"
	"github.com/goodtricount/backend/internal/models"
)

// AuthService wraps registration and login, pairing the authenticator
// with session token generation.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// Register creates a new user account and returns it with a session
// token.
func (s *AuthService) Register(ctx context.Context, username, email, name, password string) (*models.User, string, error) {
	user, err := s.authenticator.Register(ctx, username, email, name, password)
	if err != nil {
		slog.Warn("Registration failed", "username", username, "error", err)
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "username", user.Username, "error", err)
		return nil, "", err
	}

	slog.Info("User registered", "username", user.Username)
	return user, token, nil
}

// Login authenticates a user and returns the user with a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		slog.Warn("Login failed", "username", username)
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "username", user.Username, "error", err)
		return nil, "", err
	}

	slog.Info("User logged in", "username", user.Username)
	return user, token, nil
}
