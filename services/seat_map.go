package services

import "fmt"

// MaxSeats is the most seats one booking can hold.
const MaxSeats = 4

var (
	coaches    = []string{"A", "B", "C", "D", "E"}
	seatRows   = 12
	wideLeft   = []string{"A", "B", "C"}
	narrowLeft = []string{"A", "B"}
	rightCols  = []string{"D", "E"}
)

// SeatRow is one row of a coach: seat ids left of the aisle, then right.
type SeatRow struct {
	Number int      `json:"number"`
	Left   []string `json:"left"`
	Right  []string `json:"right"`
}

// CoachLayout is the seat plan of a single coach.
type CoachLayout struct {
	Coach string    `json:"coach"`
	Rows  []SeatRow `json:"rows"`
}

// wideClass reports whether the class has three seats left of the
// aisle. Chair classes are 3+2, the rest 2+2.
func wideClass(classType string) bool {
	return classType == "S_CHAIR" || classType == "SHOVON"
}

// SeatID formats a seat identifier such as "C-3A".
func SeatID(coach string, row int, col string) string {
	return fmt.Sprintf("%s-%d%s", coach, row, col)
}

// Layout returns the seat plan for every coach of the given class.
func Layout(classType string) []CoachLayout {
	left := narrowLeft
	if wideClass(classType) {
		left = wideLeft
	}

	layouts := make([]CoachLayout, 0, len(coaches))
	for _, coach := range coaches {
		layout := CoachLayout{Coach: coach, Rows: make([]SeatRow, 0, seatRows)}
		for row := 1; row <= seatRows; row++ {
			r := SeatRow{Number: row}
			for _, col := range left {
				r.Left = append(r.Left, SeatID(coach, row, col))
			}
			for _, col := range rightCols {
				r.Right = append(r.Right, SeatID(coach, row, col))
			}
			layout.Rows = append(layout.Rows, r)
		}
		layouts = append(layouts, layout)
	}
	return layouts
}

// ValidSeat reports whether id names a seat in the class layout.
func ValidSeat(classType, id string) bool {
	var coach, col string
	var row int
	if n, err := fmt.Sscanf(id, "%1s-%d%1s", &coach, &row, &col); err != nil || n != 3 {
		return false
	}
	if SeatID(coach, row, col) != id || row < 1 || row > seatRows {
		return false
	}

	coachOK := false
	for _, c := range coaches {
		coachOK = coachOK || c == coach
	}
	if !coachOK {
		return false
	}

	switch col {
	case "A", "B", "D", "E":
		return true
	case "C":
		return wideClass(classType)
	}
	return false
}
