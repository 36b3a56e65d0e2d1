package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks that every passenger field is filled in
func (p Passenger) Validate() error {
	return validatorInstance().Struct(p)
}

// PassengersValid is the predicate behind the proceed-to-payment button:
// true only when the list is non-empty and every passenger validates.
func PassengersValid(passengers []Passenger) bool {
	if len(passengers) == 0 {
		return false
	}
	for _, p := range passengers {
		if p.Validate() != nil {
			return false
		}
	}
	return true
}
