package models

// DefaultDriveMinutes is used whenever the routing provider cannot give a real answer.
const DefaultDriveMinutes = 30

// DriveEstimate is the driving time from the user's address to the airport.
type DriveEstimate struct {
	Minutes int  `json:"minutes"`
	Default bool `json:"-"` // true when Minutes is DefaultDriveMinutes because the lookup failed
}
