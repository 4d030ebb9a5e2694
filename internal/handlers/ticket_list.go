package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/middlewares"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

// TicketLister defines the interface that the service must implement.
type TicketLister interface {
	List(ctx context.Context, userID int64) ([]models.TicketDB, error)
}

// TicketListResponse represents the caller's tickets, newest first
// swagger:model TicketListResponse
type TicketListResponse struct {
	// Tickets
	Tickets []models.TicketDB `json:"tickets"`
}

// TicketListErrorResponse represents an error response for ticket listing
// swagger:model TicketListErrorResponse
type TicketListErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewTicketListHandler returns an HTTP handler listing the caller's tickets.
// @Summary List tickets
// @Description Returns the caller's support tickets, newest first
// @Tags tickets
// @Produce json
// @Success 200 {object} handlers.TicketListResponse "Tickets"
// @Failure 401 {object} handlers.TicketListErrorResponse "Unauthorized"
// @Router /tickets [get]
// @Security BearerAuth
func NewTicketListHandler(svc TicketLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TicketListErrorResponse{Error: "Unauthorized"})
			return
		}

		tickets, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list tickets", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TicketListErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TicketListResponse{Tickets: tickets})
	}
}
