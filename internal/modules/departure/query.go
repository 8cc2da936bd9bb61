package departure

import (
	"errors"
	"regexp"
	"strings"

	"when-to-leave/internal/models"
	"when-to-leave/pkg/utils"

	"github.com/go-playground/validator/v10"
)

var flightNumberNoise = regexp.MustCompile(`[\s\-_]`)

// NormalizeFlightNumber upper-cases s and strips whitespace, dashes and underscores.
func NormalizeFlightNumber(s string) string {
	return flightNumberNoise.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), "")
}

// BuildQuery applies defaults, normalizes and validates a raw request.
func BuildQuery(req models.LeaveTimeRequest) (models.FlightQuery, error) {
	req.Flight = NormalizeFlightNumber(req.Flight)
	req.Address = strings.TrimSpace(req.Address)
	req.AirportBusy = withDefault(req.AirportBusy, models.BusyMedium)
	req.Holiday = withDefault(req.Holiday, models.HolidayNone)
	req.CheckedBags = withDefault(req.CheckedBags, "no")

	if err := utils.GetValidator().Validate(req); err != nil {
		return models.FlightQuery{}, validationError(err)
	}

	return models.FlightQuery{
		FlightNumber:    req.Flight,
		HomeAddress:     req.Address,
		AirportBusyness: req.AirportBusy,
		HolidayLevel:    req.Holiday,
		HasCheckedBags:  req.CheckedBags == "yes",
	}, nil
}

func withDefault(value, fallback string) string {
	if value = strings.ToLower(strings.TrimSpace(value)); value == "" {
		return fallback
	}
	return value
}

// validationError turns the first failing field into a user-facing message.
func validationError(err error) error {
	message := "Invalid request"

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Flight":
			message = "Please enter a valid flight number like AA123"
		case "Address":
			message = "Please enter a valid address"
		case "AirportBusy":
			message = "airport_busy must be one of small-hub, medium, major-hub, mega-hub"
		case "Holiday":
			message = "holiday must be one of no, small, big"
		case "CheckedBags":
			message = "checked_bags must be yes or no"
		}
	}
	return models.NewServiceError(models.ErrValidation, message, err)
}
