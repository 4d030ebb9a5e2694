package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/middlewares"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

// ReleaseCreator defines the interface that the service must implement.
type ReleaseCreator interface {
	Create(ctx context.Context, userID int64, in models.ReleaseInput) (int64, error)
}

// ReleaseCreateResponse represents a successful release creation response
// swagger:model ReleaseCreateResponse
type ReleaseCreateResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`

	// Identifier of the created release
	// example: 17
	ReleaseID int64 `json:"release_id"`
}

// ReleaseCreateErrorResponse represents an error response for release creation
// swagger:model ReleaseCreateErrorResponse
type ReleaseCreateErrorResponse struct {
	// Error message
	// example: Title is required
	Error string `json:"error"`
}

// NewReleaseCreateHandler returns an HTTP handler creating a release with its tracks.
// @Summary Create a release
// @Description Inserts a release (status defaults to draft) and its tracks in submission order
// @Tags releases
// @Accept json
// @Produce json
// @Param release body models.ReleaseInput true "Release with track list"
// @Success 201 {object} handlers.ReleaseCreateResponse "Release created"
// @Failure 400 {object} handlers.ReleaseCreateErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ReleaseCreateErrorResponse "Unauthorized"
// @Router /releases [post]
// @Security BearerAuth
func NewReleaseCreateHandler(svc ReleaseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReleaseCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		var in models.ReleaseInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReleaseCreateErrorResponse{Error: "Invalid request body"})
			return
		}

		if in.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReleaseCreateErrorResponse{Error: "Title is required"})
			return
		}

		releaseID, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			logger.Log.Errorw("failed to create release", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReleaseCreateErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ReleaseCreateResponse{
			Success:   true,
			ReleaseID: releaseID,
		})
	}
}
