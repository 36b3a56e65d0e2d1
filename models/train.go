package models

// TrainClass is one seat class offered by a train
type TrainClass struct {
	Type      string `json:"type" yaml:"type"`
	Fare      int    `json:"fare" yaml:"fare"`
	Available int    `json:"available" yaml:"available"`
}

// Train represents a scheduled train with its classes
type Train struct {
	ID            string       `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	Number        string       `json:"number" yaml:"number"`
	From          string       `json:"from" yaml:"from"`
	To            string       `json:"to" yaml:"to"`
	DepartureTime string       `json:"departure_time" yaml:"departure_time"`
	ArrivalTime   string       `json:"arrival_time" yaml:"arrival_time"`
	Duration      string       `json:"duration" yaml:"duration"`
	OffDay        string       `json:"off_day" yaml:"off_day"`
	Classes       []TrainClass `json:"classes" yaml:"classes"`
}

// Class returns the class of the given type, if the train offers it
func (t Train) Class(classType string) (TrainClass, bool) {
	for _, c := range t.Classes {
		if c.Type == classType {
			return c, true
		}
	}
	return TrainClass{}, false
}
