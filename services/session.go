package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/codewithtanvir/railsheba-premium/models"
)

// DefaultClass is applied when a search reaches the train list without
// a class.
const DefaultClass = "AC_S"

var backTargets = map[models.Screen]models.Screen{
	models.ScreenLogin:            models.ScreenWelcome,
	models.ScreenSignup:           models.ScreenWelcome,
	models.ScreenNID:              models.ScreenSignup,
	models.ScreenTrainList:        models.ScreenHome,
	models.ScreenSeatSelection:    models.ScreenTrainList,
	models.ScreenPassengerDetails: models.ScreenSeatSelection,
	models.ScreenPayment:          models.ScreenSeatSelection,
	models.ScreenConfirmation:     models.ScreenSeatSelection,
	models.ScreenHistory:          models.ScreenHome,
	models.ScreenProfile:          models.ScreenHome,
	models.ScreenTracking:         models.ScreenHome,
	models.ScreenNotifications:    models.ScreenHome,
}

// ControllerDeps are the collaborators of a Controller.
type ControllerDeps struct {
	Catalog       *Catalog
	Gateway       Gateway
	Tickets       *TicketFactory
	History       *BookingHistory
	Notifications *NotificationService
	State         *StateStore
	Logger        *slog.Logger
}

// Controller is the booking session state machine. It owns the current
// screen, the booking in progress and the auth flags. Every event is
// processed under one mutex; backend calls run in their own goroutine
// and re-enter the mutex to apply their outcome.
type Controller struct {
	mu sync.Mutex

	catalog       *Catalog
	gateway       Gateway
	tickets       *TicketFactory
	history       *BookingHistory
	notifications *NotificationService
	state         *StateStore
	logger        *slog.Logger

	current       screenState
	booking       models.BookingContext
	selected      *models.Train
	seatDraft     []string
	paid          bool
	authenticated bool
	guest         bool
	language      Language
	pending       *Call
	lastError     string
}

// NewController restores the persisted auth flags and language. A
// returning user starts on home, everyone else on welcome.
func NewController(ctx context.Context, deps ControllerDeps) *Controller {
	c := &Controller{
		catalog:       deps.Catalog,
		gateway:       deps.Gateway,
		tickets:       deps.Tickets,
		history:       deps.History,
		notifications: deps.Notifications,
		state:         deps.State,
		logger:        deps.Logger,
		current:       plainState{name: models.ScreenWelcome},
	}

	c.authenticated, c.guest = c.state.Auth(ctx)
	c.language = c.state.Language(ctx)
	c.notifications.SetLanguage(c.language)
	if c.authenticated {
		c.current = plainState{name: models.ScreenHome}
	}

	c.logger.Info("booking session restored",
		"screen", c.current.screen(),
		"authenticated", c.authenticated,
		"guest", c.guest,
		"language", c.language,
	)
	return c
}

// Catalog exposes the reference data the controller searches.
func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// State returns a snapshot of the session.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	screen := c.current.screen()
	snap := Snapshot{
		Screen:        screen,
		Authenticated: c.authenticated,
		Guest:         c.guest,
		Language:      c.language,
		NavBar:        c.authenticated && !screen.HidesNavBar(),
		Busy:          c.pending != nil,
		LastError:     c.lastError,
		Booking:       c.booking.Clone(),
		View:          c.current.view(c),
	}
	if c.pending != nil {
		snap.Pending = c.pending.Operation
	}
	return snap
}

// Dispatch applies ev. Events that start a backend call return its
// *Call; all others resolve synchronously and return a nil *Call. A
// refused event leaves the state unchanged.
func (c *Controller) Dispatch(ctx context.Context, ev Event) (*Call, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	from := c.current.screen()
	call, err := c.handle(ctx, ev)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrGuardViolation):
			c.logger.Warn("transition refused", "event", ev.eventName(), "screen", from, "error", err)
		default:
			c.logger.Info("event rejected", "event", ev.eventName(), "screen", from, "error", err)
		}
		return nil, err
	}

	c.logger.Debug("event applied", "event", ev.eventName(), "from", from, "to", c.current.screen())
	return call, nil
}

func (c *Controller) handle(ctx context.Context, ev Event) (*Call, error) {
	switch ev := ev.(type) {
	case Navigate:
		return nil, c.navigate(ctx, ev.Screen, ev.Patch)
	case Back:
		return nil, c.back(ctx)
	case SelectTrain:
		return nil, c.selectTrain(ctx, ev.TrainID)
	case ToggleSeat:
		return nil, c.toggleSeat(ev.SeatID)
	case ConfirmSeats:
		return nil, c.confirmSeats(ctx, ev.Seats)
	case ConfirmPassengers:
		return nil, c.confirmPassengers(ctx, ev.Passengers)
	case Pay:
		return c.pay(ctx, ev.Method)
	case CompleteBooking:
		return c.completeBooking(ctx)
	case Login:
		return c.login(ctx, ev.Credentials)
	case Signup:
		return c.signup(ctx, ev.Request)
	case VerifyNID:
		return c.verifyNID(ctx, ev.NID)
	case GuestLogin:
		return nil, c.guestLogin(ctx)
	case Logout:
		c.logout(ctx)
		return nil, nil
	case ViewNotifications:
		return nil, c.enter(ctx, models.ScreenNotifications)
	case ClearNotifications:
		return nil, c.clearNotifications(ctx)
	case SetLanguage:
		c.setLanguage(ctx, ev.Language)
		return nil, nil
	case CancelTicket:
		return nil, c.cancelTicket(ctx, ev.TicketID)
	default:
		return nil, fmt.Errorf("unsupported event %T", ev)
	}
}

func guardViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", models.ErrGuardViolation, fmt.Sprintf(format, args...))
}

// requireScreen refuses events that only make sense on one screen.
func (c *Controller) requireScreen(screen models.Screen, event string) error {
	if current := c.current.screen(); current != screen {
		return guardViolation("%s is only available on %s, not %s", event, screen, current)
	}
	return nil
}

// stateFor builds the state for target from the current session data,
// or reports which guard it fails.
func (c *Controller) stateFor(target models.Screen) (screenState, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownScreen, target)
	}

	switch target {
	case models.ScreenWelcome, models.ScreenLogin, models.ScreenSignup, models.ScreenNID:
		return plainState{name: target}, nil
	}

	if !c.authenticated {
		return nil, guardViolation("%s requires a signed-in user", target)
	}

	switch target {
	case models.ScreenHome:
		return plainState{name: target}, nil

	case models.ScreenHistory, models.ScreenProfile, models.ScreenTracking, models.ScreenNotifications:
		if from := c.current.screen(); from.HidesNavBar() {
			return nil, guardViolation("%s is not reachable from %s", target, from)
		}
		return plainState{name: target}, nil

	case models.ScreenTrainList:
		if !c.booking.SearchSubmitted() {
			return nil, guardViolation("train list requires origin, destination and date")
		}
		return plainState{name: target}, nil
	}

	if c.selected == nil {
		return nil, guardViolation("%s requires a selected train", target)
	}
	train := *c.selected

	if target == models.ScreenSeatSelection {
		return seatSelectionState{train: train}, nil
	}

	if len(c.booking.SelectedSeats) == 0 {
		return nil, guardViolation("%s requires selected seats", target)
	}
	if len(c.booking.Passengers) != len(c.booking.SelectedSeats) {
		return nil, guardViolation("%s requires one passenger per seat", target)
	}
	if target == models.ScreenPassengerDetails {
		return passengerDetailsState{train: train}, nil
	}

	if !c.passengersComplete() {
		return nil, guardViolation("%s requires complete passenger details", target)
	}
	if target == models.ScreenPayment {
		return paymentState{train: train}, nil
	}

	if !c.paid {
		return nil, guardViolation("%s requires a successful payment", target)
	}
	return confirmationState{train: train}, nil
}

// passengersComplete reports whether every seat has a valid passenger.
func (c *Controller) passengersComplete() bool {
	return len(c.booking.Passengers) == len(c.booking.SelectedSeats) &&
		models.PassengersValid(c.booking.Passengers)
}

// enter moves to target if its guard holds.
func (c *Controller) enter(ctx context.Context, target models.Screen) error {
	next, err := c.stateFor(target)
	if err != nil {
		return err
	}
	c.switchTo(ctx, next)
	return nil
}

// switchTo installs next unconditionally. Leaving a screen abandons its
// in-flight call and clears the error it left behind.
func (c *Controller) switchTo(ctx context.Context, next screenState) {
	if next.screen() != c.current.screen() {
		c.abandonPending()
		c.lastError = ""
	}
	c.current = next

	switch next.screen() {
	case models.ScreenTrainList:
		if c.booking.Class == "" {
			c.booking.Class = DefaultClass
		}
	case models.ScreenSeatSelection:
		c.seatDraft = append([]string(nil), c.booking.SelectedSeats...)
	case models.ScreenNotifications:
		c.notifications.MarkAllRead(ctx)
	}
}

func (c *Controller) abandonPending() {
	if c.pending == nil {
		return
	}
	c.logger.Info("abandoning in-flight call", "operation", c.pending.Operation, "screen", c.pending.Screen)
	c.pending.cancel()
	c.pending = nil
}

func (c *Controller) navigate(ctx context.Context, target models.Screen, patch models.BookingContext) error {
	previous, previousPaid := c.booking, c.paid
	previousSelected, previousDraft := c.selected, c.seatDraft
	restore := func() {
		c.booking, c.paid = previous, previousPaid
		c.selected, c.seatDraft = previousSelected, previousDraft
	}

	c.booking = c.booking.Merge(patch)
	if c.booking.From != previous.From || c.booking.To != previous.To {
		// A new route invalidates the train picked for the old one.
		c.selected = nil
		c.seatDraft = nil
		if patch.SelectedSeats == nil {
			c.booking.SelectedSeats = nil
		}
		if patch.Passengers == nil {
			c.booking.Passengers = nil
		}
		c.paid = false
	}
	if err := c.checkMergedSeats(patch); err != nil {
		restore()
		return err
	}
	if patch.SelectedSeats != nil {
		c.booking.Passengers = resizePassengers(c.booking.Passengers, len(c.booking.SelectedSeats))
	}
	if patch.Class != "" || patch.SelectedSeats != nil || patch.Passengers != nil {
		c.paid = false
	}
	c.recomputeTotal()

	if err := c.enter(ctx, target); err != nil {
		restore()
		return err
	}
	return nil
}

// checkMergedSeats validates the seats after a patch touched them or
// changed the class they were chosen in.
func (c *Controller) checkMergedSeats(patch models.BookingContext) error {
	if patch.SelectedSeats == nil && patch.Class == "" {
		return nil
	}
	return validateSeats(c.booking.Class, c.booking.SelectedSeats)
}

func validateSeats(class string, seats []string) error {
	if len(seats) > MaxSeats {
		return fmt.Errorf("%w: %d seats requested, at most %d", models.ErrSeatLimit, len(seats), MaxSeats)
	}
	for i, id := range seats {
		if !ValidSeat(class, id) {
			return fmt.Errorf("%w: %s", models.ErrUnknownSeat, id)
		}
		if slices.Contains(seats[:i], id) {
			return fmt.Errorf("%w: %s selected twice", models.ErrUnknownSeat, id)
		}
	}
	return nil
}

// recomputeTotal keeps TotalAmount equal to the fare of the selected
// seats on the selected train.
func (c *Controller) recomputeTotal() {
	if c.selected == nil {
		c.booking.TotalAmount = 0
		return
	}
	c.booking.TotalAmount = ComputeTotal(*c.selected, c.booking.Class, len(c.booking.SelectedSeats))
}

func (c *Controller) back(ctx context.Context) error {
	from := c.current.screen()
	target, ok := backTargets[from]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrNoBackTarget, from)
	}
	return c.enter(ctx, target)
}

func (c *Controller) selectTrain(ctx context.Context, trainID string) error {
	if err := c.requireScreen(models.ScreenTrainList, "selecting a train"); err != nil {
		return err
	}

	results := c.catalog.SearchTrains(c.booking.From, c.booking.To)
	idx := slices.IndexFunc(results, func(t models.Train) bool { return t.ID == trainID })
	if idx < 0 {
		return fmt.Errorf("%w: %s on %s to %s", models.ErrUnknownTrain, trainID, c.booking.From, c.booking.To)
	}
	train := results[idx]

	if c.selected == nil || c.selected.ID != train.ID {
		c.booking.SelectedSeats = nil
		c.booking.Passengers = nil
		c.paid = false
	}
	c.selected = &train
	c.recomputeTotal()

	return c.enter(ctx, models.ScreenSeatSelection)
}

func (c *Controller) toggleSeat(seatID string) error {
	if err := c.requireScreen(models.ScreenSeatSelection, "seat toggling"); err != nil {
		return err
	}
	if !ValidSeat(c.booking.Class, seatID) {
		return fmt.Errorf("%w: %s", models.ErrUnknownSeat, seatID)
	}

	if i := slices.Index(c.seatDraft, seatID); i >= 0 {
		c.seatDraft = slices.Delete(c.seatDraft, i, i+1)
		return nil
	}
	if len(c.seatDraft) >= MaxSeats {
		return fmt.Errorf("%w: %d seats already selected", models.ErrSeatLimit, len(c.seatDraft))
	}
	c.seatDraft = append(c.seatDraft, seatID)
	return nil
}

func (c *Controller) confirmSeats(ctx context.Context, seats []string) error {
	if err := c.requireScreen(models.ScreenSeatSelection, "seat confirmation"); err != nil {
		return err
	}
	if seats == nil {
		seats = c.seatDraft
	}
	if len(seats) == 0 {
		return guardViolation("select at least one seat")
	}
	if err := validateSeats(c.booking.Class, seats); err != nil {
		return err
	}

	c.booking.SelectedSeats = append([]string(nil), seats...)
	c.seatDraft = append([]string(nil), seats...)

	c.booking.Passengers = resizePassengers(c.booking.Passengers, len(seats))
	c.paid = false
	c.recomputeTotal()

	return c.enter(ctx, models.ScreenPassengerDetails)
}

// resizePassengers returns one passenger slot per seat, keeping whatever
// was already typed.
func resizePassengers(current []models.Passenger, seats int) []models.Passenger {
	passengers := make([]models.Passenger, seats)
	for i := range passengers {
		if i < len(current) {
			passengers[i] = current[i]
		} else {
			passengers[i] = models.Passenger{Gender: models.GenderMale}
		}
	}
	return passengers
}

func (c *Controller) confirmPassengers(ctx context.Context, passengers []models.Passenger) error {
	if err := c.requireScreen(models.ScreenPassengerDetails, "passenger confirmation"); err != nil {
		return err
	}
	if len(passengers) != len(c.booking.SelectedSeats) {
		return fmt.Errorf("%w: %d passengers for %d seats",
			models.ErrInvalidPassengers, len(passengers), len(c.booking.SelectedSeats))
	}
	for i, p := range passengers {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: passenger %d: %v", models.ErrInvalidPassengers, i+1, err)
		}
	}

	previous := c.booking.Passengers
	c.booking.Passengers = append([]models.Passenger(nil), passengers...)
	if err := c.enter(ctx, models.ScreenPayment); err != nil {
		c.booking.Passengers = previous
		return err
	}
	c.paid = false
	return nil
}

func (c *Controller) pay(ctx context.Context, method PaymentMethod) (*Call, error) {
	if err := c.requireScreen(models.ScreenPayment, "payment"); err != nil {
		return nil, err
	}
	if method == "" {
		method = PaymentBKash
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPayment, method)
	}

	req := PaymentRequest{Method: method, Amount: c.booking.TotalAmount + PlatformFee}
	return c.start(ctx, OpPayment,
		func(ctx context.Context) error { return c.gateway.Pay(ctx, req) },
		func(ctx context.Context) {
			c.paid = true
			if err := c.enter(ctx, models.ScreenConfirmation); err != nil {
				c.logger.Error("payment succeeded but confirmation refused", "error", err)
			}
		},
	)
}

func (c *Controller) completeBooking(ctx context.Context) (*Call, error) {
	state, ok := c.current.(confirmationState)
	if !ok {
		return nil, guardViolation("booking can only be completed on %s, not %s",
			models.ScreenConfirmation, c.current.screen())
	}

	ticket, err := c.tickets.Finalize(state.train, c.booking)
	if err != nil {
		return nil, err
	}

	return c.start(ctx, OpConfirm,
		func(ctx context.Context) error { return c.gateway.ConfirmBooking(ctx, ticket) },
		func(ctx context.Context) {
			c.history.Add(ctx, ticket)
			c.notifications.OnTicketCreated(ctx, ticket)
			c.resetBooking()
			// The nav bar is hidden on confirmation, so history is
			// installed directly rather than through its guard.
			c.switchTo(ctx, plainState{name: models.ScreenHistory})
		},
	)
}

func (c *Controller) resetBooking() {
	c.booking = models.BookingContext{}
	c.selected = nil
	c.seatDraft = nil
	c.paid = false
}

func (c *Controller) login(ctx context.Context, creds Credentials) (*Call, error) {
	if err := c.requireScreen(models.ScreenLogin, "login"); err != nil {
		return nil, err
	}
	return c.start(ctx, OpLogin,
		func(ctx context.Context) error { return c.gateway.Login(ctx, creds) },
		func(ctx context.Context) {
			c.setAuth(ctx, true, false)
			c.switchTo(ctx, plainState{name: models.ScreenHome})
		},
	)
}

func (c *Controller) signup(ctx context.Context, req SignupRequest) (*Call, error) {
	if err := c.requireScreen(models.ScreenSignup, "signup"); err != nil {
		return nil, err
	}
	return c.start(ctx, OpSignup,
		func(ctx context.Context) error { return c.gateway.Signup(ctx, req) },
		func(ctx context.Context) {
			c.switchTo(ctx, plainState{name: models.ScreenNID})
		},
	)
}

func (c *Controller) verifyNID(ctx context.Context, nid string) (*Call, error) {
	if err := c.requireScreen(models.ScreenNID, "NID verification"); err != nil {
		return nil, err
	}
	return c.start(ctx, OpNID,
		func(ctx context.Context) error { return c.gateway.VerifyNID(ctx, nid) },
		func(ctx context.Context) {
			c.setAuth(ctx, true, false)
			c.switchTo(ctx, plainState{name: models.ScreenHome})
		},
	)
}

func (c *Controller) guestLogin(ctx context.Context) error {
	if err := c.requireScreen(models.ScreenWelcome, "guest login"); err != nil {
		return err
	}
	c.setAuth(ctx, true, true)
	c.switchTo(ctx, plainState{name: models.ScreenHome})
	return nil
}

func (c *Controller) logout(ctx context.Context) {
	c.abandonPending()
	c.resetBooking()
	c.setAuth(ctx, false, false)
	c.switchTo(ctx, plainState{name: models.ScreenWelcome})
	c.lastError = ""
}

func (c *Controller) setAuth(ctx context.Context, authenticated, guest bool) {
	c.authenticated = authenticated
	c.guest = guest
	if err := c.state.SaveAuth(ctx, authenticated, guest); err != nil {
		c.logger.Error("failed to save auth flags", "error", err)
	}
	c.logger.Info("auth changed", "authenticated", authenticated, "guest", guest)
}

func (c *Controller) clearNotifications(ctx context.Context) error {
	if !c.authenticated {
		return guardViolation("clearing notifications requires a signed-in user")
	}
	c.notifications.ClearAll(ctx)
	return nil
}

func (c *Controller) setLanguage(ctx context.Context, lang Language) {
	c.language = lang
	c.notifications.SetLanguage(lang)
	if err := c.state.SaveLanguage(ctx, lang); err != nil {
		c.logger.Error("failed to save language", "language", lang, "error", err)
	}
}

func (c *Controller) cancelTicket(ctx context.Context, id string) error {
	if !c.authenticated {
		return guardViolation("cancelling a ticket requires a signed-in user")
	}
	_, err := c.history.Cancel(ctx, id)
	return err
}

// start launches a gateway call for the current screen. Only one call
// may be in flight. onSuccess runs under the controller lock, and only
// if the call is still the current one when it resolves.
func (c *Controller) start(ctx context.Context, op Operation, run func(context.Context) error, onSuccess func(context.Context)) (*Call, error) {
	if c.pending != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrBusy, c.pending.Operation)
	}

	callCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	call := &Call{
		Operation: op,
		Screen:    c.current.screen(),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	c.pending = call
	c.lastError = ""
	c.logger.Info("backend call started", "operation", op, "screen", call.Screen)

	go func() {
		err := run(callCtx)
		c.finish(callCtx, call, err, onSuccess)
	}()
	return call, nil
}

func (c *Controller) finish(callCtx context.Context, call *Call, err error, onSuccess func(context.Context)) {
	c.mu.Lock()
	defer close(call.done)
	defer c.mu.Unlock()
	defer call.cancel()

	if c.pending != call {
		c.logger.Debug("ignoring late completion", "operation", call.Operation, "error", err)
		call.err = context.Canceled
		return
	}
	c.pending = nil

	if err != nil {
		call.err = err
		c.lastError = err.Error()
		c.logger.Warn("backend call failed", "operation", call.Operation, "screen", call.Screen, "error", err)
		return
	}

	onSuccess(context.WithoutCancel(callCtx))
	c.logger.Info("backend call completed", "operation", call.Operation, "screen", c.current.screen())
}
