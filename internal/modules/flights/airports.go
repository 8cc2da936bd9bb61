package flights

import (
	"fmt"
	"strings"
)

// knownAirports names the airports providers most often leave unnamed.
var knownAirports = map[string]string{
	"ATL": "Hartsfield-Jackson Atlanta International Airport",
	"BOS": "Boston Logan International Airport",
	"BWI": "Baltimore/Washington International Airport",
	"CLT": "Charlotte Douglas International Airport",
	"DCA": "Ronald Reagan Washington National Airport",
	"DEN": "Denver International Airport",
	"DFW": "Dallas/Fort Worth International Airport",
	"DTW": "Detroit Metropolitan Wayne County Airport",
	"EWR": "Newark Liberty International Airport",
	"IAD": "Washington Dulles International Airport",
	"IAH": "George Bush Intercontinental Airport",
	"JFK": "John F. Kennedy International Airport",
	"LAS": "Harry Reid International Airport",
	"LAX": "Los Angeles International Airport",
	"LGA": "LaGuardia Airport",
	"MCO": "Orlando International Airport",
	"MIA": "Miami International Airport",
	"MSP": "Minneapolis-Saint Paul International Airport",
	"ORD": "Chicago O'Hare International Airport",
	"PHL": "Philadelphia International Airport",
	"PHX": "Phoenix Sky Harbor International Airport",
	"SAN": "San Diego International Airport",
	"SEA": "Seattle-Tacoma International Airport",
	"SFO": "San Francisco International Airport",
	"SLC": "Salt Lake City International Airport",
}

// airportName returns the first non-empty candidate, then the static name for
// code, then a placeholder built from code.
func airportName(code string, candidates ...string) string {
	for _, name := range candidates {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	if name, ok := knownAirports[strings.ToUpper(code)]; ok {
		return name
	}
	return fmt.Sprintf("Airport (%s)", code)
}

// airportCode returns the first non-empty candidate upper-cased, or "UNK".
func airportCode(candidates ...string) string {
	for _, code := range candidates {
		if code = strings.TrimSpace(code); code != "" {
			return strings.ToUpper(code)
		}
	}
	return "UNK"
}
