package models

// Station represents a railway station from the reference catalog
type Station struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}
