package utils

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var flightNumberPattern = regexp.MustCompile(`^[A-Z]{2,3}\d{1,4}$`)

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// Validate checks i against its `validate` struct tags.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator with the custom tags registered.
func GetValidator() *Validator {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails on an empty tag name or nil func.
		_ = v.RegisterValidation("flightnumber", func(fl validator.FieldLevel) bool {
			return flightNumberPattern.MatchString(fl.Field().String())
		})
		instance = &Validator{validate: v}
	})
	return instance
}

// IsFlightNumber reports whether s is an already-normalized flight number.
func IsFlightNumber(s string) bool {
	return flightNumberPattern.MatchString(s)
}
