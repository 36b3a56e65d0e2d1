package services

import "github.com/codewithtanvir/railsheba-premium/models"

// Event is anything the presentation layer can dispatch.
type Event interface {
	eventName() string
}

// Navigate moves to Screen, merging Patch into the booking context.
type Navigate struct {
	Screen models.Screen
	Patch  models.BookingContext
}

// Back returns to the previous screen of the flow without touching
// the booking context.
type Back struct{}

// SelectTrain picks a train from the current search results.
type SelectTrain struct {
	TrainID string
}

// ToggleSeat adds or removes one seat on the seat-selection screen.
type ToggleSeat struct {
	SeatID string
}

// ConfirmSeats fixes the seat choice. Nil Seats confirms the seats
// toggled so far.
type ConfirmSeats struct {
	Seats []string
}

type ConfirmPassengers struct {
	Passengers []models.Passenger
}

// Pay charges the booking. Empty Method means bKash.
type Pay struct {
	Method PaymentMethod
}

type CompleteBooking struct{}

type Login struct {
	Credentials Credentials
}

type Signup struct {
	Request SignupRequest
}

type VerifyNID struct {
	NID string
}

type GuestLogin struct{}

type Logout struct{}

type ViewNotifications struct{}

type ClearNotifications struct{}

type SetLanguage struct {
	Language Language
}

type CancelTicket struct {
	TicketID string
}

func (Navigate) eventName() string           { return "navigate" }
func (Back) eventName() string               { return "back" }
func (SelectTrain) eventName() string        { return "select-train" }
func (ToggleSeat) eventName() string         { return "toggle-seat" }
func (ConfirmSeats) eventName() string       { return "confirm-seats" }
func (ConfirmPassengers) eventName() string  { return "confirm-passengers" }
func (Pay) eventName() string                { return "pay" }
func (CompleteBooking) eventName() string    { return "complete-booking" }
func (Login) eventName() string              { return "login" }
func (Signup) eventName() string             { return "signup" }
func (VerifyNID) eventName() string          { return "verify-nid" }
func (GuestLogin) eventName() string         { return "guest-login" }
func (Logout) eventName() string             { return "logout" }
func (ViewNotifications) eventName() string  { return "view-notifications" }
func (ClearNotifications) eventName() string { return "clear-notifications" }
func (SetLanguage) eventName() string        { return "set-language" }
func (CancelTicket) eventName() string       { return "cancel-ticket" }
