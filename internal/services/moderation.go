package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrRejectionReasonRequired is returned when a rejection carries no reason.
var ErrRejectionReasonRequired = errors.New("rejection reason is required")

// StatusLister defines cross-user release reads for the moderation queue.
type StatusLister interface {
	ListByStatus(ctx context.Context, status string) ([]models.ReleaseDB, error)
}

// StatusWriter records moderation decisions.
type StatusWriter interface {
	SetStatus(ctx context.Context, id int64, status string, rejectionReason *string) (int64, error)
}

// ModerationCache caches assembled moderation queues per status.
type ModerationCache interface {
	Get(ctx context.Context, status string) ([]models.Release, error)
	Set(ctx context.Context, status string, releases []models.Release) error
	Invalidate(ctx context.Context, statuses ...string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ModerationService handles the moderation queue and decisions,
// publishing each decision for downstream delivery pipelines.
type ModerationService struct {
	releaseReader StatusLister
	trackReader   TrackReader
	releaseWriter StatusWriter
	cache         ModerationCache
	kafkaWriter   KafkaWriter
}

// NewModerationService creates a new ModerationService.
func NewModerationService(
	releaseReader StatusLister,
	trackReader TrackReader,
	releaseWriter StatusWriter,
	cache ModerationCache,
	kafkaWriter KafkaWriter,
) *ModerationService {
	return &ModerationService{
		releaseReader: releaseReader,
		trackReader:   trackReader,
		releaseWriter: releaseWriter,
		cache:         cache,
		kafkaWriter:   kafkaWriter,
	}
}

// publishDecision publishes a moderation decision to Kafka.
func (svc *ModerationService) publishDecision(ctx context.Context, event models.ReleaseEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal moderation event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish moderation event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Moderation event published to Kafka", "event_id", event.EventID, "release_id", event.ReleaseID, "status", event.Status)
	}
}

// cacheableStatus reports whether a queue for the given status is
// cached. Only the known lifecycle statuses are; invalidateQueues
// drops exactly these keys, so a free-text status query must always
// hit the database or it would be served stale until TTL.
func cacheableStatus(status string) bool {
	switch status {
	case models.StatusDraft, models.StatusPending, models.StatusApproved, models.StatusRejected:
		return true
	}
	return false
}

// invalidateQueues drops every cached queue a decision may have touched.
func (svc *ModerationService) invalidateQueues(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	statuses := []string{models.StatusDraft, models.StatusPending, models.StatusApproved, models.StatusRejected}
	if err := svc.cache.Invalidate(ctx, statuses...); err != nil {
		logger.Log.Errorw("failed to invalidate moderation cache", "error", err)
	}
}

// List returns all non-trashed releases with the given status, tracks
// nested, reading through the cache.
func (svc *ModerationService) List(ctx context.Context, status string) ([]models.Release, error) {
	if svc.cache != nil && cacheableStatus(status) {
		if cached, err := svc.cache.Get(ctx, status); err == nil {
			return cached, nil
		}
	}

	releases, err := svc.releaseReader.ListByStatus(ctx, status)
	if err != nil {
		logger.Log.Errorw("failed to list releases by status", "status", status, "error", err)
		return nil, err
	}

	ids := make([]int64, 0, len(releases))
	for _, r := range releases {
		ids = append(ids, r.ID)
	}

	tracks, err := svc.trackReader.ListByReleaseIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list tracks", "status", status, "error", err)
		return nil, err
	}

	assembled := assembleReleases(releases, tracks)

	if svc.cache != nil && cacheableStatus(status) {
		if err := svc.cache.Set(ctx, status, assembled); err != nil {
			logger.Log.Errorw("failed to cache moderation queue", "status", status, "error", err)
		}
	}

	return assembled, nil
}

// Approve marks a release approved and clears any rejection reason.
func (svc *ModerationService) Approve(ctx context.Context, releaseID int64) error {
	rows, err := svc.releaseWriter.SetStatus(ctx, releaseID, models.StatusApproved, nil)
	if err != nil {
		logger.Log.Errorw("failed to approve release", "releaseID", releaseID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrReleaseNotFound
	}

	svc.invalidateQueues(ctx)
	svc.publishDecision(ctx, models.ReleaseEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		ReleaseID: releaseID,
		Status:    models.StatusApproved,
	})

	return nil
}

// Reject marks a release rejected with the given reason.
func (svc *ModerationService) Reject(ctx context.Context, releaseID int64, reason string) error {
	if reason == "" {
		return ErrRejectionReasonRequired
	}

	rows, err := svc.releaseWriter.SetStatus(ctx, releaseID, models.StatusRejected, &reason)
	if err != nil {
		logger.Log.Errorw("failed to reject release", "releaseID", releaseID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrReleaseNotFound
	}

	svc.invalidateQueues(ctx)
	svc.publishDecision(ctx, models.ReleaseEvent{
		EventID:         uuid.NewString(),
		Timestamp:       time.Now().Unix(),
		ReleaseID:       releaseID,
		Status:          models.StatusRejected,
		RejectionReason: reason,
	})

	return nil
}
