package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edutech/exam-backend/internal/config"
	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any authentication failure. It is
// deliberately silent about which part of the credentials was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles password hashing and login session management.
type AuthService struct {
	cfg      *config.Config
	sessions session.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, sessions session.Store) *AuthService {
	return &AuthService{cfg: cfg, sessions: sessions}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// CreateSession establishes a session for an authenticated user and
// returns the opaque session ID for the cookie.
func (s *AuthService) CreateSession(ctx context.Context, user *model.User) (string, error) {
	id, err := s.sessions.Create(ctx, session.Data{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

// GetSession resolves a session ID to its identity, sliding the inactivity
// window forward. Unknown or expired IDs return session.ErrNotFound.
func (s *AuthService) GetSession(ctx context.Context, id string) (*session.Data, error) {
	return s.sessions.Get(ctx, id)
}

// DestroySession invalidates a session regardless of its prior state.
func (s *AuthService) DestroySession(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
