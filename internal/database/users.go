package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"streamvault/models"
)

// UserRepository persists user accounts.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a user repository backed by db.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and returns its assigned ID. Returns ErrConflict
// when the username or email is already taken.
func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (int64, error) {
	var id int64
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		var existing int64
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM users WHERE username = ? OR email = ?`,
			username, email,
		).Scan(&existing)
		if err != nil {
			return fmt.Errorf("check existing user: %w", err)
		}
		if existing > 0 {
			return ErrConflict
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
			username, email, passwordHash, formatTime(time.Now()),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("insert user: %w", err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByUsername fetches a user by username. Returns ErrNotFound when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.get(ctx, `SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?`, username)
}

// GetByID fetches a user by ID. Returns ErrNotFound when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.get(ctx, `SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		user      models.User
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	user.CreatedAt = parseTime(createdAt)
	return &user, nil
}
