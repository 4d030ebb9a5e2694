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

// TicketUpdater defines the interface that the service must implement.
type TicketUpdater interface {
	Update(ctx context.Context, id int64, status string, adminResponse *string) error
}

// TicketUpdateRequest represents the JSON body for answering a ticket
// swagger:model TicketUpdateRequest
type TicketUpdateRequest struct {
	// New ticket status
	// required: true
	// example: closed
	Status string `json:"status"`

	// Support answer shown to the ticket owner
	// example: The payout was re-issued today.
	AdminResponse *string `json:"admin_response"`
}

// TicketUpdateResponse represents a successful ticket update response
// swagger:model TicketUpdateResponse
type TicketUpdateResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`
}

// TicketUpdateErrorResponse represents an error response for ticket update
// swagger:model TicketUpdateErrorResponse
type TicketUpdateErrorResponse struct {
	// Error message
	// example: Ticket not found
	Error string `json:"error"`
}

// NewTicketUpdateHandler returns an HTTP handler answering a support ticket.
// @Summary Update a ticket
// @Description Sets the status and support answer on a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param ticketUpdateRequest body handlers.TicketUpdateRequest true "Status and answer"
// @Success 200 {object} handlers.TicketUpdateResponse "Ticket updated"
// @Failure 400 {object} handlers.TicketUpdateErrorResponse "Invalid request"
// @Failure 401 {object} handlers.TicketUpdateErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TicketUpdateErrorResponse "Forbidden"
// @Failure 404 {object} handlers.TicketUpdateErrorResponse "Ticket not found"
// @Router /tickets/{id} [put]
// @Security BearerAuth
func NewTicketUpdateHandler(svc TicketUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TicketUpdateErrorResponse{Error: "Invalid ticket id"})
			return
		}

		var req TicketUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TicketUpdateErrorResponse{Error: "Invalid request body"})
			return
		}

		if strings.TrimSpace(req.Status) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TicketUpdateErrorResponse{Error: "Status is required"})
			return
		}

		if err := svc.Update(r.Context(), id, req.Status, req.AdminResponse); err != nil {
			switch {
			case errors.Is(err, services.ErrTicketNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TicketUpdateErrorResponse{Error: "Ticket not found"})
			default:
				logger.Log.Errorw("failed to update ticket", "ticketID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TicketUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TicketUpdateResponse{Success: true})
	}
}
