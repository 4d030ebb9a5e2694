package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

// TrackReadRepository handles track read operations
type TrackReadRepository struct {
	db *sqlx.DB
}

func NewTrackReadRepository(db *sqlx.DB) *TrackReadRepository {
	return &TrackReadRepository{db: db}
}

// ListByReleaseIDs returns the tracks of the given releases ordered by
// release and 1-based track order.
func (r *TrackReadRepository) ListByReleaseIDs(ctx context.Context, releaseIDs []int64) ([]models.TrackDB, error) {
	if len(releaseIDs) == 0 {
		return nil, nil
	}

	const query = `
		SELECT id, release_id, title, audio_url, tiktok_moment, music_author,
		       lyrics_author, has_explicit, performers, producers, isrc,
		       language, track_order, lyrics, is_instrumental, created_at
		FROM tracks
		WHERE release_id = ANY($1)
		ORDER BY release_id, track_order
	`

	var tracks []models.TrackDB
	err := r.db.SelectContext(ctx, &tracks, query, releaseIDs)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{releaseIDs},
		"rows", len(tracks),
		"error", err,
	)

	return tracks, err
}

// TrackWriteRepository handles track write operations.
// Writes run on the request transaction when one is present in the context.
type TrackWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTrackWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TrackWriteRepository {
	return &TrackWriteRepository{db: db, txGetter: txGetter}
}

func (r *TrackWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveBatch inserts the submitted tracks for a release; track_order
// follows submission order, starting at 1.
func (r *TrackWriteRepository) SaveBatch(ctx context.Context, releaseID int64, tracks []models.TrackInput) error {
	const query = `
		INSERT INTO tracks
			(release_id, title, audio_url, tiktok_moment, music_author, lyrics_author,
			 has_explicit, performers, producers, isrc, language, track_order, lyrics,
			 is_instrumental, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
	`

	executor := r.executor(ctx)
	for idx, track := range tracks {
		_, err := executor.ExecContext(ctx, query,
			releaseID, track.Title, track.AudioURL, track.TiktokMoment,
			track.MusicAuthor, track.LyricsAuthor, track.HasExplicit,
			track.Performers, track.Producers, track.ISRC, track.Language,
			idx+1, track.Lyrics, track.IsInstrumental)

		logger.Log.Infow("query executed",
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{releaseID, track.Title, idx + 1},
			"error", err,
		)

		if err != nil {
			return err
		}
	}

	return nil
}

// DeleteByReleaseID removes all tracks of a release.
func (r *TrackWriteRepository) DeleteByReleaseID(ctx context.Context, releaseID int64) error {
	const query = `
		DELETE FROM tracks
		WHERE release_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, releaseID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{releaseID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
