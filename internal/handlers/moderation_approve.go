package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"
)

// ReleaseApprover defines the interface that the service must implement.
type ReleaseApprover interface {
	Approve(ctx context.Context, releaseID int64) error
}

// ModerationApproveResponse represents a successful approval response
// swagger:model ModerationApproveResponse
type ModerationApproveResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`

	// Success message
	// example: Release approved
	Message string `json:"message"`
}

// ModerationApproveErrorResponse represents an error response for approval
// swagger:model ModerationApproveErrorResponse
type ModerationApproveErrorResponse struct {
	// Error message
	// example: Release not found
	Error string `json:"error"`
}

// NewModerationApproveHandler returns an HTTP handler approving a release.
// @Summary Approve a release
// @Description Sets the release status to approved and clears any rejection reason
// @Tags moderation
// @Produce json
// @Param id path int true "Release ID"
// @Success 200 {object} handlers.ModerationApproveResponse "Release approved"
// @Failure 401 {object} handlers.ModerationApproveErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ModerationApproveErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ModerationApproveErrorResponse "Release not found"
// @Router /moderation/releases/{id}/approve [post]
// @Security BearerAuth
func NewModerationApproveHandler(svc ReleaseApprover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ModerationApproveErrorResponse{Error: "Invalid release id"})
			return
		}

		if err := svc.Approve(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrReleaseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ModerationApproveErrorResponse{Error: "Release not found"})
			default:
				logger.Log.Errorw("failed to approve release", "releaseID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ModerationApproveErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ModerationApproveResponse{
			Success: true,
			Message: "Release approved",
		})
	}
}
