package services

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codewithtanvir/railsheba-premium/clock"
	"github.com/codewithtanvir/railsheba-premium/database"
	"github.com/codewithtanvir/railsheba-premium/models"
)

var testDelays = Delays{
	Login:   1500 * time.Millisecond,
	Signup:  1200 * time.Millisecond,
	NID:     2 * time.Second,
	Payment: time.Second,
	Confirm: 1500 * time.Millisecond,
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := LoadCatalog("")
	require.NoError(t, err)
	return catalog
}

// mockGateway lets a test decide each backend outcome.
type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Login(ctx context.Context, creds Credentials) error {
	return m.Called(ctx, creds).Error(0)
}

func (m *mockGateway) Signup(ctx context.Context, req SignupRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockGateway) VerifyNID(ctx context.Context, nid string) error {
	return m.Called(ctx, nid).Error(0)
}

func (m *mockGateway) Pay(ctx context.Context, req PaymentRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockGateway) ConfirmBooking(ctx context.Context, ticket models.Ticket) error {
	return m.Called(ctx, ticket).Error(0)
}

type harness struct {
	ctrl          *Controller
	clock         *clock.FakeClock
	store         *database.MemoryStore
	state         *StateStore
	history       *BookingHistory
	notifications *NotificationService
}

// newHarness builds a controller over store. A nil gateway means the
// simulated one on a fake clock.
func newHarness(t *testing.T, store *database.MemoryStore, gateway Gateway) *harness {
	t.Helper()
	ctx := context.Background()
	logger := testLogger()

	clk := clock.Fake(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	if gateway == nil {
		gateway = NewSimulatedGateway(clk, testDelays)
	}

	state := NewStateStore(store, logger)
	history := NewBookingHistory(ctx, state, logger)
	notifications := NewNotificationService(ctx, state, NewLocalizer(), logger)

	ctrl := NewController(ctx, ControllerDeps{
		Catalog:       testCatalog(t),
		Gateway:       gateway,
		Tickets:       NewTicketFactory(rand.New(rand.NewPCG(7, 11))),
		History:       history,
		Notifications: notifications,
		State:         state,
		Logger:        logger,
	})

	return &harness{
		ctrl:          ctrl,
		clock:         clk,
		store:         store,
		state:         state,
		history:       history,
		notifications: notifications,
	}
}

func (h *harness) dispatch(t *testing.T, ev Event) *Call {
	t.Helper()
	call, err := h.ctrl.Dispatch(context.Background(), ev)
	require.NoError(t, err)
	return call
}

// resolve lets the simulated backend finish call and waits until its
// outcome has been applied.
func (h *harness) resolve(t *testing.T, call *Call) error {
	t.Helper()
	require.NotNil(t, call)
	h.clock.WaitForTimers(1)
	h.clock.Advance(10 * time.Second)
	return waitCall(t, call)
}

func waitCall(t *testing.T, call *Call) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := call.Wait(ctx)
	require.NotErrorIs(t, err, context.DeadlineExceeded, "call never resolved")
	return err
}

func validPassenger(name string) models.Passenger {
	return models.Passenger{Name: name, Phone: "01711000000", Gender: models.GenderMale, Age: "30"}
}

var subarnaSearch = models.BookingContext{From: "Dhaka", To: "Chattogram", Date: "2026-10-20", Class: "AC_S"}

// toPassengerDetails signs in as guest and books two AC_S seats on
// Subarna Express up to the passenger form.
func (h *harness) toPassengerDetails(t *testing.T) {
	t.Helper()
	h.dispatch(t, GuestLogin{})
	h.dispatch(t, Navigate{Screen: models.ScreenTrainList, Patch: subarnaSearch})
	h.dispatch(t, SelectTrain{TrainID: "701"})
	h.dispatch(t, ToggleSeat{SeatID: "C-1A"})
	h.dispatch(t, ToggleSeat{SeatID: "C-1B"})
	h.dispatch(t, ConfirmSeats{})
}

func (h *harness) toPayment(t *testing.T) {
	t.Helper()
	h.toPassengerDetails(t)
	h.dispatch(t, ConfirmPassengers{Passengers: []models.Passenger{
		validPassenger("Rahim Uddin"),
		validPassenger("Karim Uddin"),
	}})
}
