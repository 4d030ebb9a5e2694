package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

// ModerationLister defines the interface that the service must implement.
type ModerationLister interface {
	List(ctx context.Context, status string) ([]models.Release, error)
}

// ModerationListResponse represents the moderation queue for a status
// swagger:model ModerationListResponse
type ModerationListResponse struct {
	// Releases with tracks ordered by track_order
	Releases []models.Release `json:"releases"`
}

// ModerationListErrorResponse represents an error response for the moderation queue
// swagger:model ModerationListErrorResponse
type ModerationListErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewModerationListHandler returns an HTTP handler listing the moderation queue.
// @Summary List the moderation queue
// @Description Returns all non-trashed releases with the given status across users, default pending
// @Tags moderation
// @Produce json
// @Param status query string false "Release status filter" default(pending)
// @Success 200 {object} handlers.ModerationListResponse "Releases with nested tracks"
// @Failure 401 {object} handlers.ModerationListErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ModerationListErrorResponse "Forbidden"
// @Router /moderation/releases [get]
// @Security BearerAuth
func NewModerationListHandler(svc ModerationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		status := r.URL.Query().Get("status")
		if status == "" {
			status = models.StatusPending
		}

		releases, err := svc.List(r.Context(), status)
		if err != nil {
			logger.Log.Errorw("failed to list moderation queue", "status", status, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ModerationListErrorResponse{Error: "Internal server error"})
			return
		}

		if releases == nil {
			releases = []models.Release{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ModerationListResponse{Releases: releases})
	}
}
