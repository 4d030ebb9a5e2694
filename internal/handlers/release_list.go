package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/middlewares"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

// ReleaseLister defines the interface that the service must implement.
type ReleaseLister interface {
	List(ctx context.Context, userID int64, trashed bool) ([]models.Release, error)
}

// ReleaseListResponse represents the caller's releases with nested tracks
// swagger:model ReleaseListResponse
type ReleaseListResponse struct {
	// Releases with tracks ordered by track_order
	Releases []models.Release `json:"releases"`
}

// ReleaseListErrorResponse represents an error response for release listing
// swagger:model ReleaseListErrorResponse
type ReleaseListErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewReleaseListHandler returns an HTTP handler listing the caller's releases.
// @Summary List releases
// @Description Returns the caller's active releases, or trashed ones when trash=true
// @Tags releases
// @Produce json
// @Param trash query bool false "List the trash instead of active releases"
// @Success 200 {object} handlers.ReleaseListResponse "Releases with nested tracks"
// @Failure 401 {object} handlers.ReleaseListErrorResponse "Unauthorized"
// @Router /releases [get]
// @Security BearerAuth
func NewReleaseListHandler(svc ReleaseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReleaseListErrorResponse{Error: "Unauthorized"})
			return
		}

		trashed := r.URL.Query().Get("trash") == "true"

		releases, err := svc.List(r.Context(), claims.UserID, trashed)
		if err != nil {
			logger.Log.Errorw("failed to list releases", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReleaseListErrorResponse{Error: "Internal server error"})
			return
		}

		if releases == nil {
			releases = []models.Release{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReleaseListResponse{Releases: releases})
	}
}
