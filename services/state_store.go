package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/codewithtanvir/railsheba-premium/database"
	"github.com/codewithtanvir/railsheba-premium/models"
)

// Persisted record keys.
const (
	KeyLanguage      = "rs_lang"
	KeyAuth          = "rs_auth"
	KeyGuest         = "rs_guest"
	KeyHistory       = "rs_history"
	KeyNotifications = "rs_notifications"
)

// WelcomeNotification seeds the notification list on first run.
func WelcomeNotification() models.Notification {
	return models.Notification{
		ID:      "1",
		Title:   "Welcome to Premium",
		Message: "Experience the new way of train travel in Bangladesh.",
		Time:    "Just now",
		Type:    models.NotificationInfo,
		Read:    false,
	}
}

// StateStore maps the four logical records onto a key/value Store.
// Reads never fail: absent or corrupt values yield the documented
// defaults. Write errors are returned for the caller to log.
type StateStore struct {
	store  database.Store
	logger *slog.Logger
}

func NewStateStore(store database.Store, logger *slog.Logger) *StateStore {
	return &StateStore{store: store, logger: logger}
}

func (s *StateStore) read(ctx context.Context, key string) (string, bool) {
	value, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("persisted read failed, using default", "key", key, "error", err)
		return "", false
	}
	return value, ok
}

func (s *StateStore) readJSON(ctx context.Context, key string, v any) bool {
	raw, ok := s.read(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.logger.Warn("corrupt persisted value, using default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *StateStore) writeJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, string(data))
}

func (s *StateStore) readBool(ctx context.Context, key string) bool {
	raw, ok := s.read(ctx, key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		s.logger.Warn("corrupt persisted flag, using default", "key", key, "value", raw)
		return false
	}
	return b
}

// Language returns the saved language, "en" by default.
func (s *StateStore) Language(ctx context.Context) Language {
	raw, ok := s.read(ctx, KeyLanguage)
	if !ok {
		return LanguageEnglish
	}
	return ParseLanguage(raw)
}

func (s *StateStore) SaveLanguage(ctx context.Context, lang Language) error {
	return s.store.Set(ctx, KeyLanguage, string(lang))
}

// Auth returns the authenticated and guest flags, both false by default.
func (s *StateStore) Auth(ctx context.Context) (authenticated, guest bool) {
	return s.readBool(ctx, KeyAuth), s.readBool(ctx, KeyGuest)
}

// SaveAuth writes both flags; the first failure is returned.
func (s *StateStore) SaveAuth(ctx context.Context, authenticated, guest bool) error {
	if err := s.store.Set(ctx, KeyAuth, strconv.FormatBool(authenticated)); err != nil {
		return err
	}
	return s.store.Set(ctx, KeyGuest, strconv.FormatBool(guest))
}

// History returns the saved tickets, newest first. Empty by default.
func (s *StateStore) History(ctx context.Context) []models.Ticket {
	var tickets []models.Ticket
	if !s.readJSON(ctx, KeyHistory, &tickets) || tickets == nil {
		return []models.Ticket{}
	}
	return tickets
}

func (s *StateStore) SaveHistory(ctx context.Context, tickets []models.Ticket) error {
	return s.writeJSON(ctx, KeyHistory, tickets)
}

// Notifications returns the saved list. On first run (key absent, or
// unreadable) the list holds the single welcome notification; a saved
// empty list stays empty.
func (s *StateStore) Notifications(ctx context.Context) []models.Notification {
	var list []models.Notification
	if !s.readJSON(ctx, KeyNotifications, &list) {
		return []models.Notification{WelcomeNotification()}
	}
	if list == nil {
		list = []models.Notification{}
	}
	return list
}

func (s *StateStore) SaveNotifications(ctx context.Context, list []models.Notification) error {
	return s.writeJSON(ctx, KeyNotifications, list)
}
