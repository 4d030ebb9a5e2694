package models

import (
	"time"
)

// Ticket statuses
const (
	TicketOpen   = "open"
	TicketClosed = "closed"
)

// TicketDB represents a support ticket row in the database
type TicketDB struct {
	ID            int64     `json:"id" db:"id"`                         // Primary key
	UserID        int64     `json:"user_id" db:"user_id"`               // Ticket owner
	Subject       string    `json:"subject" db:"subject"`               // Short subject line
	Message       string    `json:"message" db:"message"`               // Ticket body
	Status        string    `json:"status" db:"status"`                 // Ticket status, e.g. "open"
	AdminResponse *string   `json:"admin_response" db:"admin_response"` // Support answer, null until responded
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Timestamp when the ticket was created
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`         // Timestamp of the last update
}
