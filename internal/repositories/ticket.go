package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

// TicketReadRepository handles ticket read operations
type TicketReadRepository struct {
	db *sqlx.DB
}

func NewTicketReadRepository(db *sqlx.DB) *TicketReadRepository {
	return &TicketReadRepository{db: db}
}

// ListByUser returns the user's tickets, newest first.
func (r *TicketReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.TicketDB, error) {
	const query = `
		SELECT id, user_id, subject, message, status, admin_response, created_at, updated_at
		FROM tickets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var tickets []models.TicketDB
	err := r.db.SelectContext(ctx, &tickets, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(tickets),
		"error", err,
	)

	return tickets, err
}

// TicketWriteRepository handles ticket write operations
type TicketWriteRepository struct {
	db *sqlx.DB
}

func NewTicketWriteRepository(db *sqlx.DB) *TicketWriteRepository {
	return &TicketWriteRepository{db: db}
}

// Save inserts a ticket and returns the new id.
func (r *TicketWriteRepository) Save(ctx context.Context, userID int64, subject, message, status string) (int64, error) {
	const query = `
		INSERT INTO tickets (user_id, subject, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, userID, subject, message, status)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, subject, status},
		"result", id,
		"error", err,
	)

	return id, err
}

// Update sets the status and support answer on a ticket and returns the
// number of rows matched.
func (r *TicketWriteRepository) Update(ctx context.Context, id int64, status string, adminResponse *string) (int64, error) {
	const query = `
		UPDATE tickets
		SET status = $1, admin_response = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := r.db.ExecContext(ctx, query, status, adminResponse, id)
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
