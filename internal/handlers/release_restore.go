package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/middlewares"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"
)

// ReleaseRestorer defines the interface that the service must implement.
type ReleaseRestorer interface {
	Restore(ctx context.Context, id, userID int64) error
}

// ReleaseRestoreResponse represents a successful release restore response
// swagger:model ReleaseRestoreResponse
type ReleaseRestoreResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`

	// Success message
	// example: Release restored
	Message string `json:"message"`
}

// ReleaseRestoreErrorResponse represents an error response for release restore
// swagger:model ReleaseRestoreErrorResponse
type ReleaseRestoreErrorResponse struct {
	// Error message
	// example: Release not found
	Error string `json:"error"`
}

// NewReleaseRestoreHandler returns an HTTP handler restoring a trashed release.
// @Summary Restore a release
// @Description Clears the trash marker on a release owned by the caller
// @Tags releases
// @Produce json
// @Param id path int true "Release ID"
// @Success 200 {object} handlers.ReleaseRestoreResponse "Release restored"
// @Failure 401 {object} handlers.ReleaseRestoreErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ReleaseRestoreErrorResponse "Release not found"
// @Router /releases/{id}/restore [post]
// @Security BearerAuth
func NewReleaseRestoreHandler(svc ReleaseRestorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReleaseRestoreErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReleaseRestoreErrorResponse{Error: "Invalid release id"})
			return
		}

		if err := svc.Restore(r.Context(), id, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrReleaseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReleaseRestoreErrorResponse{Error: "Release not found"})
			default:
				logger.Log.Errorw("failed to restore release", "releaseID", id, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReleaseRestoreErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReleaseRestoreResponse{
			Success: true,
			Message: "Release restored",
		})
	}
}
