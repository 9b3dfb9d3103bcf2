// Package accounts implements registration, login, and bearer-token
// sessions.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"streamvault/internal/database"
	"streamvault/models"
	"streamvault/utils"
)

var (
	// ErrMissingFields indicates a required registration field was empty.
	ErrMissingFields = errors.New("accounts: username, email and password are required")
	// ErrDuplicateUser indicates the username or email is already taken.
	ErrDuplicateUser = errors.New("accounts: username or email already registered")
	// ErrUserNotFound indicates no user exists with the given username.
	ErrUserNotFound = errors.New("accounts: user not found")
	// ErrInvalidCredentials indicates the password did not match.
	ErrInvalidCredentials = errors.New("accounts: invalid credentials")
	// ErrInvalidSession indicates the bearer token is unknown or expired.
	ErrInvalidSession = errors.New("accounts: invalid or expired session")
)

// DefaultSessionTTL is how long an issued session token stays valid.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Service provides account registration, login, and session resolution.
type Service struct {
	users      *database.UserRepository
	sessions   *database.SessionRepository
	sessionTTL time.Duration
}

// NewService creates an accounts service over the given repositories.
func NewService(users *database.UserRepository, sessions *database.SessionRepository, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new account, storing a salted argon2id hash of the
// password, and returns the new user ID.
func (s *Service) Register(ctx context.Context, username, email, password string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return 0, ErrMissingFields
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, username, email, hash)
	if errors.Is(err, database.ErrConflict) {
		return 0, ErrDuplicateUser
	}
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// LoginResult carries the outcome of a successful login.
type LoginResult struct {
	UserID int64
	Token  string
}

// Login verifies the password and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := verifyPassword(user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	if err := s.sessions.Create(ctx, token, user.ID, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &LoginResult{UserID: user.ID, Token: token}, nil
}

// Authenticate resolves a bearer token to the owning user.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	session, err := s.sessions.Get(ctx, token)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if session.Expired(time.Now()) {
		return nil, ErrInvalidSession
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session user: %w", err)
	}
	return user, nil
}

// Logout invalidates the presented session token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
