package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func newModerationService(ctrl *gomock.Controller) (
	*services.ModerationService,
	*services.MockStatusLister,
	*services.MockTrackReader,
	*services.MockStatusWriter,
	*services.MockModerationCache,
	*services.MockKafkaWriter,
) {
	releaseReader := services.NewMockStatusLister(ctrl)
	trackReader := services.NewMockTrackReader(ctrl)
	releaseWriter := services.NewMockStatusWriter(ctrl)
	cache := services.NewMockModerationCache(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	svc := services.NewModerationService(releaseReader, trackReader, releaseWriter, cache, kafkaWriter)
	return svc, releaseReader, trackReader, releaseWriter, cache, kafkaWriter
}

func TestModerationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("cache hit", func(t *testing.T) {
		svc, _, _, _, cache, _ := newModerationService(ctrl)

		cached := []models.Release{{ID: 1, Title: "Cached EP", Status: models.StatusPending, Tracks: []models.Track{}}}
		cache.EXPECT().
			Get(gomock.Any(), models.StatusPending).
			Return(cached, nil)

		releases, err := svc.List(context.Background(), models.StatusPending)
		assert.NoError(t, err)
		assert.Equal(t, cached, releases)
	})

	t.Run("cache miss assembles and caches", func(t *testing.T) {
		svc, releaseReader, trackReader, _, cache, _ := newModerationService(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), models.StatusPending).
			Return(nil, errors.New("moderation queue not cached"))
		releaseReader.EXPECT().
			ListByStatus(gomock.Any(), models.StatusPending).
			Return([]models.ReleaseDB{{ID: 1, UserID: 7, Title: "Pending EP", Status: models.StatusPending}}, nil)
		trackReader.EXPECT().
			ListByReleaseIDs(gomock.Any(), []int64{1}).
			Return([]models.TrackDB{{ID: 10, ReleaseID: 1, Title: "Intro", TrackOrder: 1}}, nil)
		cache.EXPECT().
			Set(gomock.Any(), models.StatusPending, gomock.Any()).
			Return(nil)

		releases, err := svc.List(context.Background(), models.StatusPending)
		assert.NoError(t, err)
		assert.Len(t, releases, 1)
		assert.Len(t, releases[0].Tracks, 1)
	})

	t.Run("free-text status bypasses cache", func(t *testing.T) {
		// No cache.Get/Set expectations: an unknown status is never
		// cached, since decisions only invalidate the known queues
		svc, releaseReader, trackReader, _, _, _ := newModerationService(ctrl)

		releaseReader.EXPECT().
			ListByStatus(gomock.Any(), "in_review").
			Return([]models.ReleaseDB{{ID: 3, UserID: 7, Title: "Odd status", Status: "in_review"}}, nil)
		trackReader.EXPECT().
			ListByReleaseIDs(gomock.Any(), []int64{3}).
			Return(nil, nil)

		releases, err := svc.List(context.Background(), "in_review")
		assert.NoError(t, err)
		assert.Len(t, releases, 1)
	})

	t.Run("reader error", func(t *testing.T) {
		svc, releaseReader, _, _, cache, _ := newModerationService(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), models.StatusPending).
			Return(nil, errors.New("moderation queue not cached"))
		releaseReader.EXPECT().
			ListByStatus(gomock.Any(), models.StatusPending).
			Return(nil, errors.New("db error"))

		releases, err := svc.List(context.Background(), models.StatusPending)
		assert.Error(t, err)
		assert.Nil(t, releases)
	})
}

func TestModerationService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success publishes decision", func(t *testing.T) {
		svc, _, _, releaseWriter, cache, kafkaWriter := newModerationService(ctrl)

		releaseWriter.EXPECT().
			SetStatus(gomock.Any(), int64(17), models.StatusApproved, (*string)(nil)).
			Return(int64(1), nil)
		cache.EXPECT().
			Invalidate(gomock.Any(), models.StatusDraft, models.StatusPending, models.StatusApproved, models.StatusRejected).
			Return(nil)
		kafkaWriter.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				var event models.ReleaseEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, int64(17), event.ReleaseID)
				assert.Equal(t, models.StatusApproved, event.Status)
				assert.NotEmpty(t, event.EventID)
				return nil
			})

		assert.NoError(t, svc.Approve(context.Background(), 17))
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, _, releaseWriter, _, _ := newModerationService(ctrl)

		releaseWriter.EXPECT().
			SetStatus(gomock.Any(), int64(99), models.StatusApproved, (*string)(nil)).
			Return(int64(0), nil)

		assert.ErrorIs(t, svc.Approve(context.Background(), 99), services.ErrReleaseNotFound)
	})

	t.Run("kafka failure does not fail the decision", func(t *testing.T) {
		svc, _, _, releaseWriter, cache, kafkaWriter := newModerationService(ctrl)

		releaseWriter.EXPECT().
			SetStatus(gomock.Any(), int64(17), models.StatusApproved, (*string)(nil)).
			Return(int64(1), nil)
		cache.EXPECT().
			Invalidate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		kafkaWriter.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker unavailable"))

		assert.NoError(t, svc.Approve(context.Background(), 17))
	})
}

func TestModerationService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success stores reason and publishes", func(t *testing.T) {
		svc, _, _, releaseWriter, cache, kafkaWriter := newModerationService(ctrl)

		reason := "Bad cover art"
		releaseWriter.EXPECT().
			SetStatus(gomock.Any(), int64(17), models.StatusRejected, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ string, got *string) (int64, error) {
				assert.NotNil(t, got)
				assert.Equal(t, reason, *got)
				return int64(1), nil
			})
		cache.EXPECT().
			Invalidate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		kafkaWriter.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				var event models.ReleaseEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.StatusRejected, event.Status)
				assert.Equal(t, reason, event.RejectionReason)
				return nil
			})

		assert.NoError(t, svc.Reject(context.Background(), 17, reason))
	})

	t.Run("empty reason", func(t *testing.T) {
		svc, _, _, _, _, _ := newModerationService(ctrl)

		assert.ErrorIs(t, svc.Reject(context.Background(), 17, ""), services.ErrRejectionReasonRequired)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, _, releaseWriter, _, _ := newModerationService(ctrl)

		releaseWriter.EXPECT().
			SetStatus(gomock.Any(), int64(99), models.StatusRejected, gomock.Any()).
			Return(int64(0), nil)

		assert.ErrorIs(t, svc.Reject(context.Background(), 99, "reason"), services.ErrReleaseNotFound)
	})
}
