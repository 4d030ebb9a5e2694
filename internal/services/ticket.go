package services

import (
	"context"
	"errors"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

// ErrTicketNotFound is returned when no ticket matched the given id.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketReader defines read operations for tickets.
type TicketReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.TicketDB, error)
}

// TicketWriter defines write operations for tickets.
type TicketWriter interface {
	Save(ctx context.Context, userID int64, subject, message, status string) (int64, error)
	Update(ctx context.Context, id int64, status string, adminResponse *string) (int64, error)
}

// TicketService handles support tickets.
type TicketService struct {
	reader TicketReader
	writer TicketWriter
}

// NewTicketService creates a new TicketService.
func NewTicketService(reader TicketReader, writer TicketWriter) *TicketService {
	return &TicketService{
		reader: reader,
		writer: writer,
	}
}

// List returns the caller's tickets, newest first.
func (svc *TicketService) List(ctx context.Context, userID int64) ([]models.TicketDB, error) {
	tickets, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list tickets", "userID", userID, "error", err)
		return nil, err
	}
	if tickets == nil {
		tickets = []models.TicketDB{}
	}
	return tickets, nil
}

// Create opens a new ticket and returns its id.
func (svc *TicketService) Create(ctx context.Context, userID int64, subject, message string) (int64, error) {
	id, err := svc.writer.Save(ctx, userID, subject, message, models.TicketOpen)
	if err != nil {
		logger.Log.Errorw("failed to save ticket", "userID", userID, "error", err)
		return 0, err
	}
	return id, nil
}

// Update sets the status and support answer on a ticket.
func (svc *TicketService) Update(ctx context.Context, id int64, status string, adminResponse *string) error {
	rows, err := svc.writer.Update(ctx, id, status, adminResponse)
	if err != nil {
		logger.Log.Errorw("failed to update ticket", "ticketID", id, "error", err)
		return err
	}
	if rows == 0 {
		return ErrTicketNotFound
	}
	return nil
}
