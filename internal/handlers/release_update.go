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
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"
)

// ReleaseUpdater defines the interface that the service must implement.
type ReleaseUpdater interface {
	Update(ctx context.Context, id, userID int64, in models.ReleaseInput) error
}

// ReleaseUpdateResponse represents a successful release update response
// swagger:model ReleaseUpdateResponse
type ReleaseUpdateResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`
}

// ReleaseUpdateErrorResponse represents an error response for release update
// swagger:model ReleaseUpdateErrorResponse
type ReleaseUpdateErrorResponse struct {
	// Error message
	// example: Release not found
	Error string `json:"error"`
}

// NewReleaseUpdateHandler returns an HTTP handler overwriting a release and
// fully replacing its track list.
// @Summary Update a release
// @Description Overwrites the release fields and replaces all tracks with the submitted list
// @Tags releases
// @Accept json
// @Produce json
// @Param id path int true "Release ID"
// @Param release body models.ReleaseInput true "Release with track list"
// @Success 200 {object} handlers.ReleaseUpdateResponse "Release updated"
// @Failure 400 {object} handlers.ReleaseUpdateErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ReleaseUpdateErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ReleaseUpdateErrorResponse "Release not found"
// @Router /releases/{id} [put]
// @Security BearerAuth
func NewReleaseUpdateHandler(svc ReleaseUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReleaseUpdateErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReleaseUpdateErrorResponse{Error: "Invalid release id"})
			return
		}

		var in models.ReleaseInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReleaseUpdateErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.Update(r.Context(), id, claims.UserID, in); err != nil {
			switch {
			case errors.Is(err, services.ErrReleaseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReleaseUpdateErrorResponse{Error: "Release not found"})
			default:
				logger.Log.Errorw("failed to update release", "releaseID", id, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReleaseUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReleaseUpdateResponse{Success: true})
	}
}
