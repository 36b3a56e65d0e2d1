package services

import (
	"fmt"
	"math/rand/v2"

	"github.com/codewithtanvir/railsheba-premium/models"
)

const (
	ticketIDMin = 10000
	ticketIDMax = 99999

	guestName  = "Guest"
	guestPhone = "01XXX"
)

// TicketFactory turns a completed booking into a Ticket.
type TicketFactory struct {
	rng *rand.Rand
}

// NewTicketFactory uses rng for ticket ids; nil means a randomly seeded
// source. Tests pass a fixed seed.
func NewTicketFactory(rng *rand.Rand) *TicketFactory {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &TicketFactory{rng: rng}
}

// NewTicketID returns "RS-" followed by a number in [10000, 99999].
// Collisions with existing history are possible and not checked here.
func (f *TicketFactory) NewTicketID() string {
	return fmt.Sprintf("RS-%d", ticketIDMin+f.rng.IntN(ticketIDMax-ticketIDMin+1))
}

// Finalize builds the confirmed ticket for train and booking. Seats and
// passengers must line up one-to-one and the date must be set. A
// booking with no passengers at all is issued to a placeholder guest.
func (f *TicketFactory) Finalize(train models.Train, booking models.BookingContext) (models.Ticket, error) {
	if booking.Date == "" {
		return models.Ticket{}, fmt.Errorf("%w: travel date missing", models.ErrIncompleteBooking)
	}
	if len(booking.Passengers) > 0 && len(booking.Passengers) != len(booking.SelectedSeats) {
		return models.Ticket{}, fmt.Errorf("%w: %d seats but %d passengers",
			models.ErrIncompleteBooking, len(booking.SelectedSeats), len(booking.Passengers))
	}

	passengers := append([]models.Passenger(nil), booking.Passengers...)
	main := models.Passenger{Name: guestName, Phone: guestPhone}
	if len(passengers) > 0 {
		main = passengers[0]
	} else {
		passengers = []models.Passenger{main}
	}

	return models.Ticket{
		ID:             f.NewTicketID(),
		TrainName:      train.Name,
		From:           train.From,
		To:             train.To,
		Date:           booking.Date,
		Seats:          append([]string{}, booking.SelectedSeats...),
		TotalAmount:    ComputeTotal(train, booking.Class, len(booking.SelectedSeats)) + PlatformFee,
		Status:         models.TicketStatusConfirmed,
		PassengerName:  main.Name,
		PassengerPhone: main.Phone,
		Passengers:     passengers,
	}, nil
}
