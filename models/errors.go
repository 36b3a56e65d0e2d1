package models

import "errors"

var (
	ErrGuardViolation = errors.New("guard violation")
	ErrUnknownScreen  = errors.New("unknown screen")
	ErrBusy           = errors.New("a request is already in progress")
	ErrNoBackTarget   = errors.New("screen has no back target")
)

var (
	ErrUnknownTrain      = errors.New("train not found")
	ErrUnknownStation    = errors.New("station not found")
	ErrUnknownSeat       = errors.New("seat not in layout")
	ErrSeatLimit         = errors.New("seat limit reached")
	ErrInvalidPassengers = errors.New("passenger details incomplete")
	ErrIncompleteBooking = errors.New("booking context incomplete")
	ErrInvalidPayment    = errors.New("unsupported payment method")
)

var (
	ErrTicketNotFound         = errors.New("ticket not found")
	ErrTicketAlreadyCancelled = errors.New("ticket already cancelled")
)
