package services

import "github.com/codewithtanvir/railsheba-premium/models"

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Screen        models.Screen         `json:"screen"`
	Authenticated bool                  `json:"authenticated"`
	Guest         bool                  `json:"guest"`
	Language      Language              `json:"language"`
	NavBar        bool                  `json:"nav_bar"`
	Busy          bool                  `json:"busy"`
	Pending       Operation             `json:"pending,omitempty"`
	LastError     string                `json:"last_error,omitempty"`
	Booking       models.BookingContext `json:"booking"`
	View          ScreenView            `json:"view"`
}

// ScreenView carries what one screen renders.
type ScreenView interface {
	Screen() models.Screen
}

// BasicView is used by screens that render nothing from the core.
type BasicView struct {
	Name models.Screen `json:"name"`
}

type HomeView struct {
	Stations     []string       `json:"stations"`
	Classes      []string       `json:"classes"`
	LatestTicket *models.Ticket `json:"latest_ticket,omitempty"`
	HasUnread    bool           `json:"has_unread"`
}

type TrainListView struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Date   string         `json:"date"`
	Class  string         `json:"class"`
	Trains []models.Train `json:"trains"`
}

type SeatSelectionView struct {
	Train       models.Train  `json:"train"`
	Class       string        `json:"class"`
	FarePerSeat int           `json:"fare_per_seat"`
	Coaches     []CoachLayout `json:"coaches"`
	Selected    []string      `json:"selected"`
	MaxSeats    int           `json:"max_seats"`
	Total       int           `json:"total"`
}

type PassengerDetailsView struct {
	Train      models.Train       `json:"train"`
	Seats      []string           `json:"seats"`
	Passengers []models.Passenger `json:"passengers"`
	Complete   bool               `json:"complete"`
}

type PaymentView struct {
	Train    models.Train    `json:"train"`
	Seats    []string        `json:"seats"`
	Subtotal int             `json:"subtotal"`
	Fee      int             `json:"fee"`
	Total    int             `json:"total"`
	Methods  []PaymentMethod `json:"methods"`
}

type ConfirmationView struct {
	Train         models.Train       `json:"train"`
	Date          string             `json:"date"`
	Class         string             `json:"class"`
	Seats         []string           `json:"seats"`
	Passengers    []models.Passenger `json:"passengers"`
	FarePerSeat   int                `json:"fare_per_seat"`
	Subtotal      int                `json:"subtotal"`
	Fee           int                `json:"fee"`
	Total         int                `json:"total"`
	MainPassenger string             `json:"main_passenger"`
}

type HistoryView struct {
	Tickets []models.Ticket `json:"tickets"`
}

type ProfileView struct {
	Language Language `json:"language"`
	Guest    bool     `json:"guest"`
	Tickets  int      `json:"tickets"`
}

type NotificationsView struct {
	Notifications []models.Notification `json:"notifications"`
}

func (v BasicView) Screen() models.Screen          { return v.Name }
func (HomeView) Screen() models.Screen             { return models.ScreenHome }
func (TrainListView) Screen() models.Screen        { return models.ScreenTrainList }
func (SeatSelectionView) Screen() models.Screen    { return models.ScreenSeatSelection }
func (PassengerDetailsView) Screen() models.Screen { return models.ScreenPassengerDetails }
func (PaymentView) Screen() models.Screen          { return models.ScreenPayment }
func (ConfirmationView) Screen() models.Screen     { return models.ScreenConfirmation }
func (HistoryView) Screen() models.Screen          { return models.ScreenHistory }
func (ProfileView) Screen() models.Screen          { return models.ScreenProfile }
func (NotificationsView) Screen() models.Screen    { return models.ScreenNotifications }
