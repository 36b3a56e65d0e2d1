package services

import "github.com/codewithtanvir/railsheba-premium/models"

const (
	// DefaultFare is charged per seat when the train does not offer the
	// requested class. Unknown classes are priced, not rejected.
	DefaultFare = 500

	// PlatformFee is added once to every issued ticket.
	PlatformFee = 20
)

// FarePerSeat returns the class fare, or DefaultFare for a class the
// train does not list.
func FarePerSeat(train models.Train, classType string) int {
	if class, ok := train.Class(classType); ok && class.Fare > 0 {
		return class.Fare
	}
	return DefaultFare
}

// ComputeTotal calculates the fare for seatCount seats of classType.
func ComputeTotal(train models.Train, classType string, seatCount int) int {
	if seatCount <= 0 {
		return 0
	}
	return FarePerSeat(train, classType) * seatCount
}
