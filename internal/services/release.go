package services

import (
	"context"
	"errors"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

// ErrReleaseNotFound is returned when no release matched the id scoped to the caller.
var ErrReleaseNotFound = errors.New("release not found")

// ReleaseReader defines read operations for releases.
type ReleaseReader interface {
	ListByUser(ctx context.Context, userID int64, trashed bool) ([]models.ReleaseDB, error)
}

// TrackReader defines read operations for tracks.
type TrackReader interface {
	ListByReleaseIDs(ctx context.Context, releaseIDs []int64) ([]models.TrackDB, error)
}

// ReleaseWriter defines write operations for releases.
type ReleaseWriter interface {
	Save(ctx context.Context, userID int64, in models.ReleaseInput) (int64, error)
	Update(ctx context.Context, id, userID int64, in models.ReleaseInput) (int64, error)
	SetTrash(ctx context.Context, id, userID int64) (int64, error)
	ClearTrash(ctx context.Context, id, userID int64) (int64, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

// TrackWriter defines write operations for tracks.
type TrackWriter interface {
	SaveBatch(ctx context.Context, releaseID int64, tracks []models.TrackInput) error
	DeleteByReleaseID(ctx context.Context, releaseID int64) error
}

// ReleaseService handles a user's releases and their nested tracks.
type ReleaseService struct {
	releaseReader ReleaseReader
	trackReader   TrackReader
	releaseWriter ReleaseWriter
	trackWriter   TrackWriter
}

// NewReleaseService creates a new ReleaseService.
func NewReleaseService(
	releaseReader ReleaseReader,
	trackReader TrackReader,
	releaseWriter ReleaseWriter,
	trackWriter TrackWriter,
) *ReleaseService {
	return &ReleaseService{
		releaseReader: releaseReader,
		trackReader:   trackReader,
		releaseWriter: releaseWriter,
		trackWriter:   trackWriter,
	}
}

// assembleReleases nests ordered tracks under their releases, keeping
// the release order of the rows.
func assembleReleases(releases []models.ReleaseDB, tracks []models.TrackDB) []models.Release {
	tracksByRelease := make(map[int64][]models.Track, len(releases))
	for _, t := range tracks {
		tracksByRelease[t.ReleaseID] = append(tracksByRelease[t.ReleaseID], t.Serialized())
	}

	result := make([]models.Release, 0, len(releases))
	for _, r := range releases {
		result = append(result, r.WithTracks(tracksByRelease[r.ID]))
	}
	return result
}

// List returns the caller's active or trashed releases with nested tracks.
func (svc *ReleaseService) List(ctx context.Context, userID int64, trashed bool) ([]models.Release, error) {
	releases, err := svc.releaseReader.ListByUser(ctx, userID, trashed)
	if err != nil {
		logger.Log.Errorw("failed to list releases", "userID", userID, "trashed", trashed, "error", err)
		return nil, err
	}

	ids := make([]int64, 0, len(releases))
	for _, r := range releases {
		ids = append(ids, r.ID)
	}

	tracks, err := svc.trackReader.ListByReleaseIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list tracks", "userID", userID, "error", err)
		return nil, err
	}

	return assembleReleases(releases, tracks), nil
}

// Create inserts a release with its tracks and returns the new release id.
// Status defaults to draft when unspecified.
func (svc *ReleaseService) Create(ctx context.Context, userID int64, in models.ReleaseInput) (int64, error) {
	if in.Status == "" {
		in.Status = models.StatusDraft
	}

	releaseID, err := svc.releaseWriter.Save(ctx, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to save release", "userID", userID, "error", err)
		return 0, err
	}

	if err := svc.trackWriter.SaveBatch(ctx, releaseID, in.Tracks); err != nil {
		logger.Log.Errorw("failed to save tracks", "releaseID", releaseID, "error", err)
		return 0, err
	}

	return releaseID, nil
}

// Update overwrites the release fields and fully replaces its track list.
func (svc *ReleaseService) Update(ctx context.Context, id, userID int64, in models.ReleaseInput) error {
	rows, err := svc.releaseWriter.Update(ctx, id, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to update release", "releaseID", id, "userID", userID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrReleaseNotFound
	}

	if err := svc.trackWriter.DeleteByReleaseID(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete tracks", "releaseID", id, "error", err)
		return err
	}
	if err := svc.trackWriter.SaveBatch(ctx, id, in.Tracks); err != nil {
		logger.Log.Errorw("failed to save tracks", "releaseID", id, "error", err)
		return err
	}

	return nil
}

// Trash soft-deletes a release.
func (svc *ReleaseService) Trash(ctx context.Context, id, userID int64) error {
	rows, err := svc.releaseWriter.SetTrash(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to trash release", "releaseID", id, "userID", userID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrReleaseNotFound
	}
	return nil
}

// Restore brings a trashed release back, tracks untouched.
func (svc *ReleaseService) Restore(ctx context.Context, id, userID int64) error {
	rows, err := svc.releaseWriter.ClearTrash(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to restore release", "releaseID", id, "userID", userID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrReleaseNotFound
	}
	return nil
}

// DeletePermanent removes a release and its tracks irreversibly.
func (svc *ReleaseService) DeletePermanent(ctx context.Context, id, userID int64) error {
	if err := svc.trackWriter.DeleteByReleaseID(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete tracks", "releaseID", id, "error", err)
		return err
	}

	rows, err := svc.releaseWriter.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete release", "releaseID", id, "userID", userID, "error", err)
		return err
	}
	if rows == 0 {
		// The ownership check failed; the surrounding transaction
		// rolls back the track deletion.
		return ErrReleaseNotFound
	}
	return nil
}
