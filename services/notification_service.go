package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/codewithtanvir/railsheba-premium/models"
)

// NotificationService owns the notification list. Every mutation is
// written through to the StateStore before it returns.
type NotificationService struct {
	mu        sync.Mutex
	list      []models.Notification
	language  Language
	state     *StateStore
	localizer *Localizer
	logger    *slog.Logger
}

// NewNotificationService loads the persisted list (or the welcome seed).
func NewNotificationService(ctx context.Context, state *StateStore, localizer *Localizer, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		list:      state.Notifications(ctx),
		language:  state.Language(ctx),
		state:     state,
		localizer: localizer,
		logger:    logger,
	}
}

// SetLanguage selects the locale of notifications created afterwards.
func (s *NotificationService) SetLanguage(lang Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

// List returns a copy of the notifications, newest first.
func (s *NotificationService) List() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification{}, s.list...)
}

// HasUnread drives the badge on the home screen bell.
func (s *NotificationService) HasUnread() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.list {
		if !n.Read {
			return true
		}
	}
	return false
}

// OnTicketCreated prepends the success notification for ticket.
func (s *NotificationService) OnTicketCreated(ctx context.Context, ticket models.Ticket) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	title, message := s.localizer.BookingConfirmed(s.language, ticket.TrainName)
	notification := models.Notification{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
		Time:    s.localizer.JustNow(s.language),
		Type:    models.NotificationSuccess,
		Read:    false,
	}

	s.list = append([]models.Notification{notification}, s.list...)
	s.persistLocked(ctx)
	return notification
}

// MarkAllRead flags every notification as read. Called when the list
// is viewed; calling it again changes nothing.
func (s *NotificationService) MarkAllRead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.list {
		if !s.list[i].Read {
			s.list[i].Read = true
			changed = true
		}
	}
	if changed {
		s.persistLocked(ctx)
	}
}

// ClearAll empties the list.
func (s *NotificationService) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list = []models.Notification{}
	s.persistLocked(ctx)
}

func (s *NotificationService) persistLocked(ctx context.Context) {
	if err := s.state.SaveNotifications(ctx, s.list); err != nil {
		s.logger.Error("failed to save notifications", "count", len(s.list), "error", err)
	}
}
