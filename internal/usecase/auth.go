package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-api/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// UserStore persists admin accounts.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	UpdateLastLogin(ctx context.Context, username string, at time.Time) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateAccessToken(username, role string) (string, error)
}

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
	now    func() time.Time
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: time.Now}
}

// Login checks the password against the stored bcrypt hash and returns a
// signed token plus the account. Unknown usernames and wrong passwords both
// come back as domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	// best-effort: a failed timestamp update should not block the login
	if err := s.users.UpdateLastLogin(ctx, u.Username, s.now().UTC()); err != nil {
		log.Warn().Err(err).Str("username", u.Username).Msg("failed to update last login")
	}

	token, err := s.tokens.GenerateAccessToken(u.Username, u.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, u, nil
}

// Bootstrap creates the admin account when it does not exist yet. Safe to
// call on every startup.
func (s *AuthService) Bootstrap(ctx context.Context, username, email, password string) error {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	log.Info().Str("username", username).Msg("default admin user created, change the password in production")
	return nil
}
