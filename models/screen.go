package models

// Screen identifies one state of the booking navigation machine
type Screen string

const (
	ScreenWelcome          Screen = "welcome"
	ScreenLogin            Screen = "login"
	ScreenSignup           Screen = "signup"
	ScreenNID              Screen = "nid"
	ScreenHome             Screen = "home"
	ScreenTrainList        Screen = "train-list"
	ScreenSeatSelection    Screen = "seat-selection"
	ScreenPassengerDetails Screen = "passenger-details"
	ScreenPayment          Screen = "payment"
	ScreenConfirmation     Screen = "confirmation"
	ScreenHistory          Screen = "history"
	ScreenProfile          Screen = "profile"
	ScreenTracking         Screen = "tracking"
	ScreenNotifications    Screen = "notifications"
)

var allScreens = map[Screen]bool{
	ScreenWelcome: true, ScreenLogin: true, ScreenSignup: true, ScreenNID: true,
	ScreenHome: true, ScreenTrainList: true, ScreenSeatSelection: true,
	ScreenPassengerDetails: true, ScreenPayment: true, ScreenConfirmation: true,
	ScreenHistory: true, ScreenProfile: true, ScreenTracking: true,
	ScreenNotifications: true,
}

// Valid reports whether s is a known screen
func (s Screen) Valid() bool {
	return allScreens[s]
}

// NavBar reports whether s is reached through the persistent navigation bar
func (s Screen) NavBar() bool {
	switch s {
	case ScreenHistory, ScreenProfile, ScreenTracking, ScreenNotifications:
		return true
	}
	return false
}

// HidesNavBar reports whether the navigation bar is hidden on s: the
// auth screens and the forward booking screens past the train list.
func (s Screen) HidesNavBar() bool {
	switch s {
	case ScreenWelcome, ScreenLogin, ScreenSignup, ScreenNID,
		ScreenSeatSelection, ScreenPassengerDetails, ScreenPayment, ScreenConfirmation:
		return true
	}
	return false
}
