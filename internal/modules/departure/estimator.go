package departure

import (
	"time"

	"when-to-leave/internal/models"
)

const (
	// baseExitMinutes is the deplane-to-curb time at an average airport.
	baseExitMinutes = 58

	// SafetyBufferMinutes is always added on top of the drive time.
	SafetyBufferMinutes = 20
)

// timeOfDayMultiplier scales the base exit time by the UTC hour of arrival.
func timeOfDayMultiplier(hour int) float64 {
	switch {
	case hour >= 6 && hour <= 9:
		return 1.3
	case hour >= 10 && hour <= 14:
		return 1.1
	case hour >= 15 && hour <= 18:
		return 1.4
	case hour >= 19 && hour <= 22:
		return 1.2
	default:
		return 0.8
	}
}

func hubMultiplier(busyness string) float64 {
	switch busyness {
	case models.BusySmallHub:
		return 0.8
	case models.BusyMajorHub:
		return 1.3
	case models.BusyMegaHub:
		return 1.6
	default:
		return 1.0
	}
}

func holidayExtraMinutes(level string) int {
	switch level {
	case models.HolidaySmall:
		return 15
	case models.HolidayBig:
		return 30
	default:
		return 0
	}
}

// ExitMinutes is how long after landing the traveler reaches the curb.
// The multiplied base is truncated before the integer extras are added.
func ExitMinutes(arrival time.Time, busyness, holiday string, hasCheckedBags bool) int {
	multiplied := baseExitMinutes * timeOfDayMultiplier(arrival.UTC().Hour()) * hubMultiplier(busyness)

	total := int(multiplied) + holidayExtraMinutes(holiday)
	if hasCheckedBags {
		total += 20
	}
	return total
}

// EstimateExitTime returns the instant the traveler exits the airport.
func EstimateExitTime(arrival time.Time, busyness, holiday string, hasCheckedBags bool) time.Time {
	minutes := ExitMinutes(arrival, busyness, holiday, hasCheckedBags)
	return arrival.UTC().Add(time.Duration(minutes) * time.Minute)
}

// ComputeLeaveTime subtracts the drive and the safety buffer from the exit time.
func ComputeLeaveTime(exit time.Time, driveMinutes int) time.Time {
	return exit.UTC().Add(-time.Duration(driveMinutes+SafetyBufferMinutes) * time.Minute)
}
