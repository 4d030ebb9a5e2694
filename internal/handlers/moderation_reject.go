package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"
)

// ReleaseRejecter defines the interface that the service must implement.
type ReleaseRejecter interface {
	Reject(ctx context.Context, releaseID int64, reason string) error
}

// ModerationRejectRequest represents the JSON body for a rejection
// swagger:model ModerationRejectRequest
type ModerationRejectRequest struct {
	// Reason shown to the release owner
	// required: true
	// example: Cover art does not meet the guidelines
	RejectionReason string `json:"rejection_reason"`
}

// ModerationRejectResponse represents a successful rejection response
// swagger:model ModerationRejectResponse
type ModerationRejectResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`

	// Success message
	// example: Release rejected
	Message string `json:"message"`
}

// ModerationRejectErrorResponse represents an error response for rejection
// swagger:model ModerationRejectErrorResponse
type ModerationRejectErrorResponse struct {
	// Error message
	// example: Rejection reason is required
	Error string `json:"error"`
}

// NewModerationRejectHandler returns an HTTP handler rejecting a release.
// @Summary Reject a release
// @Description Sets the release status to rejected with a mandatory reason
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path int true "Release ID"
// @Param rejectRequest body handlers.ModerationRejectRequest true "Rejection reason"
// @Success 200 {object} handlers.ModerationRejectResponse "Release rejected"
// @Failure 400 {object} handlers.ModerationRejectErrorResponse "Missing rejection reason"
// @Failure 401 {object} handlers.ModerationRejectErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ModerationRejectErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ModerationRejectErrorResponse "Release not found"
// @Router /moderation/releases/{id}/reject [post]
// @Security BearerAuth
func NewModerationRejectHandler(svc ReleaseRejecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ModerationRejectErrorResponse{Error: "Invalid release id"})
			return
		}

		var req ModerationRejectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ModerationRejectErrorResponse{Error: "Invalid request body"})
			return
		}

		reason := strings.TrimSpace(req.RejectionReason)
		if reason == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ModerationRejectErrorResponse{Error: "Rejection reason is required"})
			return
		}

		if err := svc.Reject(r.Context(), id, reason); err != nil {
			switch {
			case errors.Is(err, services.ErrRejectionReasonRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ModerationRejectErrorResponse{Error: "Rejection reason is required"})
			case errors.Is(err, services.ErrReleaseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ModerationRejectErrorResponse{Error: "Release not found"})
			default:
				logger.Log.Errorw("failed to reject release", "releaseID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ModerationRejectErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ModerationRejectResponse{
			Success: true,
			Message: "Release rejected",
		})
	}
}
