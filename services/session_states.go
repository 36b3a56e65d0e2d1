package services

import "github.com/codewithtanvir/railsheba-premium/models"

// screenState is one variant of the navigation machine. Screens of the
// booking flow carry the train they are about, so a seat-selection
// state without a train cannot be built.
type screenState interface {
	screen() models.Screen
	view(c *Controller) ScreenView
}

// plainState covers the screens that need nothing beyond the shared
// controller fields.
type plainState struct {
	name models.Screen
}

type seatSelectionState struct {
	train models.Train
}

type passengerDetailsState struct {
	train models.Train
}

type paymentState struct {
	train models.Train
}

type confirmationState struct {
	train models.Train
}

func (s plainState) screen() models.Screen          { return s.name }
func (seatSelectionState) screen() models.Screen    { return models.ScreenSeatSelection }
func (passengerDetailsState) screen() models.Screen { return models.ScreenPassengerDetails }
func (paymentState) screen() models.Screen          { return models.ScreenPayment }
func (confirmationState) screen() models.Screen     { return models.ScreenConfirmation }

func (s plainState) view(c *Controller) ScreenView {
	switch s.name {
	case models.ScreenHome:
		v := HomeView{
			Stations:  c.catalog.StationNames(),
			Classes:   append([]string{}, c.catalog.Classes...),
			HasUnread: c.notifications.HasUnread(),
		}
		if latest, ok := c.history.Latest(); ok {
			v.LatestTicket = &latest
		}
		return v
	case models.ScreenTrainList:
		return TrainListView{
			From:   c.booking.From,
			To:     c.booking.To,
			Date:   c.booking.Date,
			Class:  c.booking.Class,
			Trains: c.catalog.SearchTrains(c.booking.From, c.booking.To),
		}
	case models.ScreenHistory:
		return HistoryView{Tickets: c.history.List()}
	case models.ScreenProfile:
		return ProfileView{Language: c.language, Guest: c.guest, Tickets: len(c.history.List())}
	case models.ScreenNotifications:
		return NotificationsView{Notifications: c.notifications.List()}
	default:
		return BasicView{Name: s.name}
	}
}

func (s seatSelectionState) view(c *Controller) ScreenView {
	return SeatSelectionView{
		Train:       s.train,
		Class:       c.booking.Class,
		FarePerSeat: FarePerSeat(s.train, c.booking.Class),
		Coaches:     Layout(c.booking.Class),
		Selected:    append([]string{}, c.seatDraft...),
		MaxSeats:    MaxSeats,
		Total:       ComputeTotal(s.train, c.booking.Class, len(c.seatDraft)),
	}
}

func (s passengerDetailsState) view(c *Controller) ScreenView {
	return PassengerDetailsView{
		Train:      s.train,
		Seats:      append([]string{}, c.booking.SelectedSeats...),
		Passengers: append([]models.Passenger{}, c.booking.Passengers...),
		Complete:   c.passengersComplete(),
	}
}

func (s paymentState) view(c *Controller) ScreenView {
	return PaymentView{
		Train:    s.train,
		Seats:    append([]string{}, c.booking.SelectedSeats...),
		Subtotal: c.booking.TotalAmount,
		Fee:      PlatformFee,
		Total:    c.booking.TotalAmount + PlatformFee,
		Methods:  append([]PaymentMethod{}, PaymentMethods...),
	}
}

func (s confirmationState) view(c *Controller) ScreenView {
	main := guestName
	if len(c.booking.Passengers) > 0 {
		main = c.booking.Passengers[0].Name
	}
	return ConfirmationView{
		Train:         s.train,
		Date:          c.booking.Date,
		Class:         c.booking.Class,
		Seats:         append([]string{}, c.booking.SelectedSeats...),
		Passengers:    append([]models.Passenger{}, c.booking.Passengers...),
		FarePerSeat:   FarePerSeat(s.train, c.booking.Class),
		Subtotal:      c.booking.TotalAmount,
		Fee:           PlatformFee,
		Total:         c.booking.TotalAmount + PlatformFee,
		MainPassenger: main,
	}
}
