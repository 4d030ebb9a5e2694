package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/middlewares"
)

// TicketCreator defines the interface that the service must implement.
type TicketCreator interface {
	Create(ctx context.Context, userID int64, subject, message string) (int64, error)
}

// TicketCreateRequest represents the JSON body for opening a ticket
// swagger:model TicketCreateRequest
type TicketCreateRequest struct {
	// Short subject line
	// required: true
	// example: Payout delay
	Subject string `json:"subject"`

	// Ticket body
	// required: true
	// example: My March payout has not arrived yet.
	Message string `json:"message"`
}

// TicketCreateResponse represents a successful ticket creation response
// swagger:model TicketCreateResponse
type TicketCreateResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`

	// Identifier of the created ticket
	// example: 42
	TicketID int64 `json:"ticket_id"`
}

// TicketCreateErrorResponse represents an error response for ticket creation
// swagger:model TicketCreateErrorResponse
type TicketCreateErrorResponse struct {
	// Error message
	// example: Subject and message are required
	Error string `json:"error"`
}

// NewTicketCreateHandler returns an HTTP handler opening a support ticket.
// @Summary Create a ticket
// @Description Opens a support ticket with status open, owned by the caller
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticketRequest body handlers.TicketCreateRequest true "Ticket subject and message"
// @Success 201 {object} handlers.TicketCreateResponse "Ticket created"
// @Failure 400 {object} handlers.TicketCreateErrorResponse "Missing fields"
// @Failure 401 {object} handlers.TicketCreateErrorResponse "Unauthorized"
// @Router /tickets [post]
// @Security BearerAuth
func NewTicketCreateHandler(svc TicketCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TicketCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		var req TicketCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TicketCreateErrorResponse{Error: "Invalid request body"})
			return
		}

		if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TicketCreateErrorResponse{Error: "Subject and message are required"})
			return
		}

		ticketID, err := svc.Create(r.Context(), claims.UserID, req.Subject, req.Message)
		if err != nil {
			logger.Log.Errorw("failed to create ticket", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TicketCreateErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TicketCreateResponse{
			Success:  true,
			TicketID: ticketID,
		})
	}
}
