package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/codewithtanvir/railsheba-premium/models"
)

// BookingHistory is the persisted list of issued tickets, newest first.
type BookingHistory struct {
	mu      sync.Mutex
	tickets []models.Ticket
	state   *StateStore
	logger  *slog.Logger
}

func NewBookingHistory(ctx context.Context, state *StateStore, logger *slog.Logger) *BookingHistory {
	return &BookingHistory{
		tickets: state.History(ctx),
		state:   state,
		logger:  logger,
	}
}

// List returns a copy of every ticket, newest first.
func (h *BookingHistory) List() []models.Ticket {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.Ticket{}, h.tickets...)
}

// Latest returns the most recently issued ticket, if any.
func (h *BookingHistory) Latest() (models.Ticket, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.tickets) == 0 {
		return models.Ticket{}, false
	}
	return h.tickets[0], true
}

// Get retrieves a ticket by id. With duplicate ids the newest wins.
func (h *BookingHistory) Get(id string) (models.Ticket, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range h.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, fmt.Errorf("%w: %s", models.ErrTicketNotFound, id)
}

// Add prepends ticket and persists the list.
func (h *BookingHistory) Add(ctx context.Context, ticket models.Ticket) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, t := range h.tickets {
		if t.ID == ticket.ID {
			h.logger.Warn("ticket id already present in history", "ticket_id", ticket.ID)
			break
		}
	}

	h.tickets = append([]models.Ticket{ticket}, h.tickets...)
	h.persistLocked(ctx)
	h.logger.Info("ticket issued",
		"ticket_id", ticket.ID,
		"train", ticket.TrainName,
		"seats", len(ticket.Seats),
		"total", ticket.TotalAmount,
	)
}

// Cancel moves a confirmed ticket to cancelled. This is the only
// mutation a ticket sees after it is issued.
func (h *BookingHistory) Cancel(ctx context.Context, id string) (models.Ticket, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.tickets {
		if h.tickets[i].ID != id {
			continue
		}
		if h.tickets[i].Status == models.TicketStatusCancelled {
			return models.Ticket{}, fmt.Errorf("%w: %s", models.ErrTicketAlreadyCancelled, id)
		}
		h.tickets[i].Status = models.TicketStatusCancelled
		h.persistLocked(ctx)
		h.logger.Info("ticket cancelled", "ticket_id", id)
		return h.tickets[i], nil
	}
	return models.Ticket{}, fmt.Errorf("%w: %s", models.ErrTicketNotFound, id)
}

func (h *BookingHistory) persistLocked(ctx context.Context) {
	if err := h.state.SaveHistory(ctx, h.tickets); err != nil {
		h.logger.Error("failed to save ticket history", "count", len(h.tickets), "error", err)
	}
}
