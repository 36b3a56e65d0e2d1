package services

import (
	"context"
	"time"

	"github.com/codewithtanvir/railsheba-premium/clock"
	"github.com/codewithtanvir/railsheba-premium/models"
)

// Credentials is what the login form submits.
type Credentials struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// SignupRequest is what the signup form submits.
type SignupRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PaymentMethod is one of the supported wallets or a card.
type PaymentMethod string

const (
	PaymentBKash  PaymentMethod = "bkash"
	PaymentNagad  PaymentMethod = "nagad"
	PaymentRocket PaymentMethod = "rocket"
	PaymentCard   PaymentMethod = "card"
)

// PaymentMethods lists the methods in the order the payment screen shows them.
var PaymentMethods = []PaymentMethod{PaymentBKash, PaymentNagad, PaymentRocket, PaymentCard}

// Valid reports whether m is a supported method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentBKash, PaymentNagad, PaymentRocket, PaymentCard:
		return true
	}
	return false
}

// PaymentRequest is the charge submitted from the payment screen.
type PaymentRequest struct {
	Method PaymentMethod `json:"method"`
	Amount int           `json:"amount"`
}

// Gateway is the backend the controller talks to. Every call blocks
// until it resolves or ctx is cancelled. A non-nil error keeps the user
// on the screen that started the call.
type Gateway interface {
	Login(ctx context.Context, creds Credentials) error
	Signup(ctx context.Context, req SignupRequest) error
	VerifyNID(ctx context.Context, nid string) error
	Pay(ctx context.Context, req PaymentRequest) error
	ConfirmBooking(ctx context.Context, ticket models.Ticket) error
}

// Delays is the latency of each simulated call.
type Delays struct {
	Login   time.Duration
	Signup  time.Duration
	NID     time.Duration
	Payment time.Duration
	Confirm time.Duration
}

// SimulatedGateway stands in for the real backend: each call waits its
// configured delay on the clock, then succeeds. It fails only when the
// caller cancels.
type SimulatedGateway struct {
	clock  clock.Clock
	delays Delays
}

func NewSimulatedGateway(clk clock.Clock, delays Delays) *SimulatedGateway {
	return &SimulatedGateway{clock: clk, delays: delays}
}

func (g *SimulatedGateway) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-g.clock.After(d):
		return nil
	}
}

func (g *SimulatedGateway) Login(ctx context.Context, _ Credentials) error {
	return g.wait(ctx, g.delays.Login)
}

func (g *SimulatedGateway) Signup(ctx context.Context, _ SignupRequest) error {
	return g.wait(ctx, g.delays.Signup)
}

func (g *SimulatedGateway) VerifyNID(ctx context.Context, _ string) error {
	return g.wait(ctx, g.delays.NID)
}

func (g *SimulatedGateway) Pay(ctx context.Context, _ PaymentRequest) error {
	return g.wait(ctx, g.delays.Payment)
}

func (g *SimulatedGateway) ConfirmBooking(ctx context.Context, _ models.Ticket) error {
	return g.wait(ctx, g.delays.Confirm)
}
