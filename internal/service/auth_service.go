package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type authUserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type authSessionRepository interface {
	Create(ctx context.Context, session *models.AuthSession) error
	FindByToken(ctx context.Context, token string) (*models.AuthSession, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) error
}

// Account describes a credential known to the credential store.
type Account struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.UserRole
}

// CredentialStore resolves an email to a known account. The demo
// implementation carries two fixed accounts; a real store can replace
// it without touching gates or handlers.
type CredentialStore interface {
	Lookup(email string) (*Account, bool)
}

type staticCredentialStore struct {
	accounts map[string]Account
}

// NewStaticCredentialStore builds a credential store over a fixed set
// of accounts.
func NewStaticCredentialStore(accounts []Account) CredentialStore {
	byEmail := make(map[string]Account, len(accounts))
	for _, account := range accounts {
		byEmail[strings.ToLower(account.Email)] = account
	}
	return &staticCredentialStore{accounts: byEmail}
}

func (s *staticCredentialStore) Lookup(email string) (*Account, bool) {
	account, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return nil, false
	}
	return &account, true
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	SessionTTL time.Duration
	JWTSecret  string
}

// AuthService provides login, logout and identity resolution.
type AuthService struct {
	users     authUserRepository
	sessions  authSessionRepository
	creds     CredentialStore
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users authUserRepository, sessions authSessionRepository, creds CredentialStore, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.SessionTTL <= 0 {
		config.SessionTTL = 7 * 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, creds: creds, validator: validate, logger: logger, config: config}
}

// Login verifies credentials, lazily creates the user row on first
// login, and persists a durable session before returning. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, *models.AuthSession, error) {
	if req.Email == "" || req.Password == "" {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "Email and password are required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Email and password are required")
	}

	account, ok := s.creds.Lookup(req.Email)
	if !ok || account.Password != req.Password {
		return nil, nil, appErrors.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(account.Email))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Login failed")
		}
		user, err = s.createAccountUser(ctx, account)
		if err != nil {
			return nil, nil, err
		}
	}

	token, err := generateSessionToken()
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to save session")
	}

	session := &models.AuthSession{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(s.config.SessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to save session")
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, session, nil
}

func (s *AuthService) createAccountUser(ctx context.Context, account *Account) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Login failed")
	}

	email := strings.ToLower(account.Email)
	passwordHash := string(hash)
	user := &models.User{
		Email:        &email,
		PasswordHash: &passwordHash,
		FirstName:    &account.FirstName,
		LastName:     &account.LastName,
		Role:         account.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Login failed")
	}
	return user, nil
}

// Logout destroys the session behind the given token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Logout failed")
	}
	return nil
}

// ResolveSession maps a cookie token to a user ID. A missing or expired
// session yields no identity, not an error.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("session lookup failed", zap.Error(err))
		}
		return "", false
	}
	if session.Expired(time.Now().UTC()) {
		return "", false
	}
	return session.UserID, true
}

// PurgeExpired removes sessions past their expiry. Expired sessions are
// already invisible to ResolveSession; this just reclaims the rows.
func (s *AuthService) PurgeExpired(ctx context.Context) {
	if err := s.sessions.DeleteExpired(ctx, time.Now().UTC()); err != nil {
		s.logger.Warn("session purge failed", zap.Error(err))
	}
}

// ValidateToken parses a bearer token asserted by the external identity
// provider and returns its claims.
func (s *AuthService) ValidateToken(raw string) (*models.IdentityClaims, error) {
	claims := &models.IdentityClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Unauthorized")
	}
	if claims.Subject == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Unauthorized")
	}
	return claims, nil
}

// UserByID loads the user behind a resolved identity. A missing row
// yields (nil, nil) so callers can surface null instead of an error.
func (s *AuthService) UserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch user")
	}
	return user, nil
}

func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
