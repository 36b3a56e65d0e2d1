package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithtanvir/railsheba-premium/database"
	"github.com/codewithtanvir/railsheba-premium/models"
)

// failingStore errors on every call.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk on fire")
}

func (failingStore) Close() error { return nil }

func TestStateStore_Defaults(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(database.NewMemoryStore(), testLogger())

	assert.Equal(t, LanguageEnglish, s.Language(ctx))

	authenticated, guest := s.Auth(ctx)
	assert.False(t, authenticated)
	assert.False(t, guest)

	assert.Empty(t, s.History(ctx))
	assert.NotNil(t, s.History(ctx))

	list := s.Notifications(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "Welcome to Premium", list[0].Title)
	assert.False(t, list[0].Read)
}

func TestStateStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	s := NewStateStore(store, testLogger())

	require.NoError(t, s.SaveLanguage(ctx, LanguageBangla))
	require.NoError(t, s.SaveAuth(ctx, true, true))
	require.NoError(t, s.SaveHistory(ctx, []models.Ticket{{ID: "RS-12345", TotalAmount: 1620}}))
	require.NoError(t, s.SaveNotifications(ctx, []models.Notification{}))

	raw, _, err := store.Get(ctx, KeyAuth)
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	reopened := NewStateStore(store, testLogger())
	assert.Equal(t, LanguageBangla, reopened.Language(ctx))
	authenticated, guest := reopened.Auth(ctx)
	assert.True(t, authenticated)
	assert.True(t, guest)
	assert.Equal(t, "RS-12345", reopened.History(ctx)[0].ID)
	assert.Empty(t, reopened.Notifications(ctx), "a cleared list must not be re-seeded")
}

func TestStateStore_CorruptValuesFallBack(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	for key, value := range map[string]string{
		KeyLanguage:      "xx-!!",
		KeyAuth:          "maybe",
		KeyGuest:         "{",
		KeyHistory:       "not json",
		KeyNotifications: `{"id": 1}`,
	} {
		require.NoError(t, store.Set(ctx, key, value))
	}

	s := NewStateStore(store, testLogger())
	assert.Equal(t, LanguageEnglish, s.Language(ctx))
	authenticated, guest := s.Auth(ctx)
	assert.False(t, authenticated)
	assert.False(t, guest)
	assert.Empty(t, s.History(ctx))
	assert.Len(t, s.Notifications(ctx), 1)
}

func TestStateStore_ReadErrorsFallBack(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(failingStore{}, testLogger())

	assert.Equal(t, LanguageEnglish, s.Language(ctx))
	assert.Empty(t, s.History(ctx))
	assert.Len(t, s.Notifications(ctx), 1)
	assert.Error(t, s.SaveAuth(ctx, true, false))
}

func TestStateStore_WriteFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(failingStore{}, testLogger())
	n := NewNotificationService(ctx, s, NewLocalizer(), testLogger())

	n.ClearAll(ctx)
	assert.Empty(t, n.List(), "in-memory state still changes")
}
