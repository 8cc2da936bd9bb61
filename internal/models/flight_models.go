package models

import "time"

// Airport busyness levels as declared by the user.
const (
	BusySmallHub = "small-hub"
	BusyMedium   = "medium"
	BusyMajorHub = "major-hub"
	BusyMegaHub  = "mega-hub"
)

// Holiday load levels.
const (
	HolidayNone  = "no"
	HolidaySmall = "small"
	HolidayBig   = "big"
)

// LeaveTimeRequest is bound from the /when-to-leave query string.
type LeaveTimeRequest struct {
	Flight      string `query:"flight" validate:"required,flightnumber"`
	Address     string `query:"address" validate:"required,min=5"`
	AirportBusy string `query:"airport_busy" validate:"oneof=small-hub medium major-hub mega-hub"`
	Holiday     string `query:"holiday" validate:"oneof=no small big"`
	CheckedBags string `query:"checked_bags" validate:"oneof=yes no"`
}

// FlightQuery is a validated, normalized request.
type FlightQuery struct {
	FlightNumber    string
	HomeAddress     string
	AirportBusyness string
	HolidayLevel    string
	HasCheckedBags  bool
}

// FlightArrival is what a flight provider resolves a flight number to.
type FlightArrival struct {
	ArrivalTime time.Time // UTC
	AirportName string
	AirportCode string
}

// LeaveRecommendation carries the raw instants of one estimate.
type LeaveRecommendation struct {
	LeaveTime    time.Time
	ArrivalTime  time.Time
	ExitTime     time.Time
	DriveMinutes int
	Arrival      FlightArrival
}

// LeaveTimeDetails is the "details" object of LeaveTimeResponse.
type LeaveTimeDetails struct {
	ArrivalTime     string `json:"arrival_time"`
	AirportExitTime string `json:"airport_exit_time"`
	DriveMinutes    int    `json:"drive_time_minutes"`
}

// LeaveTimeResponse is the body of a successful /when-to-leave call.
// All times are localized display strings.
type LeaveTimeResponse struct {
	LeaveTime string           `json:"leave_time"`
	Details   LeaveTimeDetails `json:"details"`
}
