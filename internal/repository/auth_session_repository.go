package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tutorhub/tutorhub-api/internal/models"
)

// AuthSessionRepository persists cookie-backed auth sessions. Login
// waits for the insert to complete before the response is sent, so a
// successful login always has a durable session behind it.
type AuthSessionRepository struct {
	db *sqlx.DB
}

// NewAuthSessionRepository constructs an AuthSessionRepository.
func NewAuthSessionRepository(db *sqlx.DB) *AuthSessionRepository {
	return &AuthSessionRepository{db: db}
}

// Create inserts a session row.
func (r *AuthSessionRepository) Create(ctx context.Context, session *models.AuthSession) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO auth_sessions (token, user_id, expires_at, created_at)
        VALUES (:token, :user_id, :expires_at, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("create auth session: %w", err)
	}
	return nil
}

// FindByToken fetches a session by its opaque token.
func (r *AuthSessionRepository) FindByToken(ctx context.Context, token string) (*models.AuthSession, error) {
	const query = `SELECT token, user_id, expires_at, created_at FROM auth_sessions WHERE token = $1`
	var session models.AuthSession
	if err := r.db.GetContext(ctx, &session, query, token); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session row, ending the login.
func (r *AuthSessionRepository) Delete(ctx context.Context, token string) error {
	const query = `DELETE FROM auth_sessions WHERE token = $1`
	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("delete auth session: %w", err)
	}
	return nil
}

// DeleteExpired clears sessions past their expiry.
func (r *AuthSessionRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	const query = `DELETE FROM auth_sessions WHERE expires_at < $1`
	if _, err := r.db.ExecContext(ctx, query, now); err != nil {
		return fmt.Errorf("delete expired auth sessions: %w", err)
	}
	return nil
}
