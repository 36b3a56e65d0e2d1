package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithtanvir/railsheba-premium/database"
	"github.com/codewithtanvir/railsheba-premium/models"
)

func newNotificationService(t *testing.T, store database.Store) *NotificationService {
	t.Helper()
	return NewNotificationService(context.Background(), NewStateStore(store, testLogger()), NewLocalizer(), testLogger())
}

func TestNotificationService_SeedsWelcome(t *testing.T) {
	n := newNotificationService(t, database.NewMemoryStore())

	list := n.List()
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationInfo, list[0].Type)
	assert.True(t, n.HasUnread())
}

func TestNotificationService_OnTicketCreated(t *testing.T) {
	ctx := context.Background()
	n := newNotificationService(t, database.NewMemoryStore())

	created := n.OnTicketCreated(ctx, models.Ticket{ID: "RS-12345", TrainName: "Parabat Express"})

	list := n.List()
	require.Len(t, list, 2)
	assert.Equal(t, created, list[0])
	assert.Equal(t, "Booking Confirmed", created.Title)
	assert.Equal(t, "Your ticket has been booked successfully for Parabat Express.", created.Message)
	assert.Equal(t, "Just now", created.Time)
	assert.Equal(t, models.NotificationSuccess, created.Type)
	assert.NotEqual(t, "1", created.ID)
}

func TestNotificationService_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	n := newNotificationService(t, database.NewMemoryStore())

	seen := map[string]bool{}
	for i := range 50 {
		created := n.OnTicketCreated(ctx, models.Ticket{ID: fmt.Sprintf("RS-%d", 10000+i)})
		assert.False(t, seen[created.ID])
		seen[created.ID] = true
	}
}

func TestNotificationService_MarkAllReadIdempotent(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	n := newNotificationService(t, store)
	n.OnTicketCreated(ctx, models.Ticket{TrainName: "Chitra Express"})

	n.MarkAllRead(ctx)
	first := n.List()
	n.MarkAllRead(ctx)
	second := n.List()

	assert.Equal(t, first, second)
	for _, item := range second {
		assert.True(t, item.Read)
	}
	assert.False(t, n.HasUnread())

	reloaded := newNotificationService(t, store)
	assert.False(t, reloaded.HasUnread())
}

func TestNotificationService_ClearAllThenCreate(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	n := newNotificationService(t, store)
	for range 4 {
		n.OnTicketCreated(ctx, models.Ticket{TrainName: "Silk City"})
	}
	require.Len(t, n.List(), 5)

	n.ClearAll(ctx)
	assert.Empty(t, n.List())
	assert.Empty(t, newNotificationService(t, store).List(), "cleared list persists")

	n.OnTicketCreated(ctx, models.Ticket{TrainName: "Silk City"})
	assert.Len(t, n.List(), 1)
}
