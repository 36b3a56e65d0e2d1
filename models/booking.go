package models

// Gender of a passenger
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Passenger represents one traveller on a booking
type Passenger struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone" validate:"required"`
	Gender Gender `json:"gender" validate:"required,oneof=male female other"`
	Age    string `json:"age" validate:"required,numeric"`
}

// BookingContext is the partial booking accumulated across screens
type BookingContext struct {
	From          string      `json:"from,omitempty"`
	To            string      `json:"to,omitempty"`
	Date          string      `json:"date,omitempty"`
	Class         string      `json:"class,omitempty"`
	SelectedSeats []string    `json:"selected_seats,omitempty"`
	Passengers    []Passenger `json:"passengers,omitempty"`
	TotalAmount   int         `json:"total_amount"`
}

// Merge shallow-overwrites every non-zero field of patch onto the
// context. Slices are copied so later edits to patch do not leak in.
func (b BookingContext) Merge(patch BookingContext) BookingContext {
	if patch.From != "" {
		b.From = patch.From
	}
	if patch.To != "" {
		b.To = patch.To
	}
	if patch.Date != "" {
		b.Date = patch.Date
	}
	if patch.Class != "" {
		b.Class = patch.Class
	}
	if patch.SelectedSeats != nil {
		b.SelectedSeats = append([]string(nil), patch.SelectedSeats...)
	}
	if patch.Passengers != nil {
		b.Passengers = append([]Passenger(nil), patch.Passengers...)
	}
	if patch.TotalAmount != 0 {
		b.TotalAmount = patch.TotalAmount
	}
	return b
}

// Clone returns a copy that shares no slices with b
func (b BookingContext) Clone() BookingContext {
	b.SelectedSeats = append([]string(nil), b.SelectedSeats...)
	b.Passengers = append([]Passenger(nil), b.Passengers...)
	return b
}

// SearchSubmitted reports whether the home search filled the route and date
func (b BookingContext) SearchSubmitted() bool {
	return b.From != "" && b.To != "" && b.Date != ""
}

// TicketStatus is the lifecycle state of an issued ticket
type TicketStatus string

const (
	TicketStatusConfirmed TicketStatus = "confirmed"
	TicketStatusCancelled TicketStatus = "cancelled"
	TicketStatusPending   TicketStatus = "pending"
)

// Ticket is the immutable record of a completed booking
type Ticket struct {
	ID             string       `json:"id"`
	TrainName      string       `json:"train_name"`
	From           string       `json:"from"`
	To             string       `json:"to"`
	Date           string       `json:"date"`
	Seats          []string     `json:"seats"`
	TotalAmount    int          `json:"total_amount"`
	Status         TicketStatus `json:"status"`
	PassengerName  string       `json:"passenger_name"`
	PassengerPhone string       `json:"passenger_phone"`
	Passengers     []Passenger  `json:"passengers"`
}
