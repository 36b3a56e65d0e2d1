package services

import (
	"context"

	"github.com/codewithtanvir/railsheba-premium/models"
)

// Operation names a backend call the controller can have in flight.
type Operation string

const (
	OpLogin   Operation = "login"
	OpSignup  Operation = "signup"
	OpNID     Operation = "nid"
	OpPayment Operation = "payment"
	OpConfirm Operation = "confirm"
)

// Call is the future of one in-flight backend call. Done closes after
// the outcome has been applied to the controller, so a caller that
// waits and then reads State sees the result.
type Call struct {
	Operation Operation
	Screen    models.Screen

	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Done is closed when the call has resolved.
func (c *Call) Done() <-chan struct{} { return c.done }

// Err is the call outcome. Only meaningful after Done is closed.
// context.Canceled means the user left the screen first and the
// outcome was discarded.
func (c *Call) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Wait blocks until the call resolves or ctx ends.
func (c *Call) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		return c.err
	}
}
