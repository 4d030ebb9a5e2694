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

// ReleaseDeleter defines the interface that the service must implement.
type ReleaseDeleter interface {
	Trash(ctx context.Context, id, userID int64) error
	DeletePermanent(ctx context.Context, id, userID int64) error
}

// ReleaseDeleteResponse represents a successful release deletion response
// swagger:model ReleaseDeleteResponse
type ReleaseDeleteResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`
}

// ReleaseDeleteErrorResponse represents an error response for release deletion
// swagger:model ReleaseDeleteErrorResponse
type ReleaseDeleteErrorResponse struct {
	// Error message
	// example: Release not found
	Error string `json:"error"`
}

// NewReleaseDeleteHandler returns an HTTP handler trashing or permanently
// deleting a release.
// @Summary Delete a release
// @Description Moves a release to the trash, or deletes it with its tracks when permanent=true
// @Tags releases
// @Produce json
// @Param id path int true "Release ID"
// @Param permanent query bool false "Hard-delete instead of trashing"
// @Success 200 {object} handlers.ReleaseDeleteResponse "Release deleted"
// @Failure 401 {object} handlers.ReleaseDeleteErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ReleaseDeleteErrorResponse "Release not found"
// @Router /releases/{id} [delete]
// @Security BearerAuth
func NewReleaseDeleteHandler(svc ReleaseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReleaseDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReleaseDeleteErrorResponse{Error: "Invalid release id"})
			return
		}

		permanent := r.URL.Query().Get("permanent") == "true"

		if permanent {
			err = svc.DeletePermanent(r.Context(), id, claims.UserID)
		} else {
			err = svc.Trash(r.Context(), id, claims.UserID)
		}
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReleaseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReleaseDeleteErrorResponse{Error: "Release not found"})
			default:
				logger.Log.Errorw("failed to delete release", "releaseID", id, "userID", claims.UserID, "permanent", permanent, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReleaseDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReleaseDeleteResponse{Success: true})
	}
}
