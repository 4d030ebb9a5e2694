package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given (already normalized) email,
// or nil when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password, name, role, balance, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with a zero balance and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash, name, role string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, password, name, role, balance, created_at)
		VALUES ($1, $2, $3, $4, 0, NOW())
		RETURNING id, email, password, name, role, balance, created_at
	`
	args := []any{email, passwordHash, name, role}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, name, role},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdatePassword overwrites the stored hash for the given email and
// returns the number of rows matched.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	const query = `
		UPDATE users
		SET password = $1
		WHERE email = $2
	`

	res, err := r.db.ExecContext(ctx, query, passwordHash, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
