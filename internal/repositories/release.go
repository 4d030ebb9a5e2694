package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

const releaseColumns = `
	id, user_id, title, upc, genre, cover_url,
	old_release_date, new_release_date, status,
	rejection_reason, trash_status, created_at, updated_at
`

// ReleaseReadRepository handles release read operations
type ReleaseReadRepository struct {
	db *sqlx.DB
}

func NewReleaseReadRepository(db *sqlx.DB) *ReleaseReadRepository {
	return &ReleaseReadRepository{db: db}
}

// ListByUser returns a user's releases. Active releases come newest
// first; trashed releases are ordered by the time they were trashed.
func (r *ReleaseReadRepository) ListByUser(ctx context.Context, userID int64, trashed bool) ([]models.ReleaseDB, error) {
	query := `
		SELECT ` + releaseColumns + `
		FROM releases
		WHERE user_id = $1 AND trash_status IS NULL
		ORDER BY created_at DESC
	`
	if trashed {
		query = `
			SELECT ` + releaseColumns + `
			FROM releases
			WHERE user_id = $1 AND trash_status IS NOT NULL
			ORDER BY trash_status DESC
		`
	}

	var releases []models.ReleaseDB
	err := r.db.SelectContext(ctx, &releases, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, trashed},
		"rows", len(releases),
		"error", err,
	)

	return releases, err
}

// ListByStatus returns all non-trashed releases with the given status,
// across users, newest first.
func (r *ReleaseReadRepository) ListByStatus(ctx context.Context, status string) ([]models.ReleaseDB, error) {
	const query = `
		SELECT ` + releaseColumns + `
		FROM releases
		WHERE status = $1 AND trash_status IS NULL
		ORDER BY created_at DESC
	`

	var releases []models.ReleaseDB
	err := r.db.SelectContext(ctx, &releases, query, status)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status},
		"rows", len(releases),
		"error", err,
	)

	return releases, err
}

// ReleaseWriteRepository handles release write operations.
// Writes run on the request transaction when one is present in the context.
type ReleaseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReleaseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReleaseWriteRepository {
	return &ReleaseWriteRepository{db: db, txGetter: txGetter}
}

func (r *ReleaseWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a release for the user and returns the new id.
func (r *ReleaseWriteRepository) Save(ctx context.Context, userID int64, in models.ReleaseInput) (int64, error) {
	const query = `
		INSERT INTO releases
			(user_id, title, upc, genre, cover_url, old_release_date, new_release_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query,
		userID, in.Title, in.UPC, in.Genre, in.CoverURL,
		in.OldReleaseDate, in.NewReleaseDate, in.Status)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, in.Title, in.Status},
		"result", id,
		"error", err,
	)

	return id, err
}

// Update overwrites the mutable release fields scoped to the owner and
// returns the number of rows matched.
func (r *ReleaseWriteRepository) Update(ctx context.Context, id, userID int64, in models.ReleaseInput) (int64, error) {
	const query = `
		UPDATE releases
		SET title = $1, upc = $2, genre = $3, cover_url = $4,
		    old_release_date = $5, new_release_date = $6, status = $7,
		    rejection_reason = $8, updated_at = NOW()
		WHERE id = $9 AND user_id = $10
	`

	res, err := r.executor(ctx).ExecContext(ctx, query,
		in.Title, in.UPC, in.Genre, in.CoverURL,
		in.OldReleaseDate, in.NewReleaseDate, in.Status,
		in.RejectionReason, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID, in.Title, in.Status},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// SetTrash soft-deletes a release by stamping trash_status.
func (r *ReleaseWriteRepository) SetTrash(ctx context.Context, id, userID int64) (int64, error) {
	const query = `
		UPDATE releases
		SET trash_status = NOW(), updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	return r.execScoped(ctx, query, id, userID)
}

// ClearTrash restores a trashed release.
func (r *ReleaseWriteRepository) ClearTrash(ctx context.Context, id, userID int64) (int64, error) {
	const query = `
		UPDATE releases
		SET trash_status = NULL, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	return r.execScoped(ctx, query, id, userID)
}

// Delete removes a release row permanently.
func (r *ReleaseWriteRepository) Delete(ctx context.Context, id, userID int64) (int64, error) {
	const query = `
		DELETE FROM releases
		WHERE id = $1 AND user_id = $2
	`
	return r.execScoped(ctx, query, id, userID)
}

// SetStatus records a moderation decision. Trashed releases are never
// moderated, so they are excluded from the match.
func (r *ReleaseWriteRepository) SetStatus(ctx context.Context, id int64, status string, rejectionReason *string) (int64, error) {
	const query = `
		UPDATE releases
		SET status = $1, rejection_reason = $2, updated_at = NOW()
		WHERE id = $3 AND trash_status IS NULL
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, status, rejectionReason, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, status},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

func (r *ReleaseWriteRepository) execScoped(ctx context.Context, query string, id, userID int64) (int64, error) {
	res, err := r.executor(ctx).ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
