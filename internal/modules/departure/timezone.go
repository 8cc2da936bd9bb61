package departure

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	// Embedded zone database so formatting works on minimal images.
	_ "time/tzdata"
)

// Region is one of the four coarse US timezone regions.
type Region string

const (
	Eastern  Region = "US/Eastern"
	Central  Region = "US/Central"
	Mountain Region = "US/Mountain"
	Pacific  Region = "US/Pacific"
)

var regionLocations = map[Region]string{
	Eastern:  "America/New_York",
	Central:  "America/Chicago",
	Mountain: "America/Denver",
	Pacific:  "America/Los_Angeles",
}

// Location loads the IANA zone for r.
func (r Region) Location() (*time.Location, error) {
	name, ok := regionLocations[r]
	if !ok {
		name = string(r)
	}
	return time.LoadLocation(name)
}

type regionKeywords struct {
	region Region
	cities []string       // substrings of the lower-cased address
	states *regexp.Regexp // state names after a comma, or whole-word abbreviations
}

// stateMatcher matches a full state name only as an address component
// (", Oregon") so street names like "Oregon Ave" do not count.
func stateMatcher(names, abbreviations []string) *regexp.Regexp {
	return regexp.MustCompile(`,\s*(?:` + strings.Join(names, "|") + `)\b|\b(?:` + strings.Join(abbreviations, "|") + `)\b`)
}

// Cities of every region are tried before any state. Abbreviations that read
// like ordinary words (IN, ME, OR, OK, LA, NE, DE) are left out.
var keywordTable = []regionKeywords{
	{
		region: Eastern,
		cities: []string{
			"new york", "brooklyn", "manhattan", "queens", "boston", "philadelphia",
			"pittsburgh", "atlanta", "miami", "orlando", "tampa", "washington dc",
			"washington, dc", "washington d.c", "baltimore", "charlotte", "raleigh",
			"detroit", "cleveland", "columbus", "newark",
		},
		states: stateMatcher(
			[]string{"florida", "georgia", "massachusetts", "pennsylvania", "new jersey",
				"(?:west )?virginia", "(?:north |south )?carolina", "ohio", "michigan",
				"maryland", "connecticut", "vermont", "new hampshire", "new york"},
			[]string{"ny", "nj", "ma", "ct", "ri", "nh", "vt", "pa", "md", "dc", "va", "wv",
				"nc", "sc", "ga", "fl", "oh", "mi"},
		),
	},
	{
		region: Pacific,
		cities: []string{
			"san francisco", "los angeles", "san diego", "san jose", "sacramento",
			"oakland", "seattle", "portland", "las vegas",
		},
		states: stateMatcher(
			[]string{"california", "washington", "oregon", "nevada"},
			[]string{"ca", "wa", "nv"},
		),
	},
	{
		region: Central,
		cities: []string{
			"chicago", "dallas", "houston", "austin", "san antonio", "minneapolis",
			"st. louis", "milwaukee", "new orleans", "nashville", "memphis",
		},
		states: stateMatcher(
			[]string{"texas", "illinois", "minnesota", "missouri", "wisconsin",
				"louisiana", "kansas", "oklahoma", "tennessee", "iowa", "alabama"},
			[]string{"tx", "il", "mn", "wi", "mo", "ia", "ks", "ar", "al", "ms", "tn"},
		),
	},
	{
		region: Mountain,
		cities: []string{
			"denver", "phoenix", "salt lake", "albuquerque", "santa fe", "boise",
		},
		states: stateMatcher(
			[]string{"colorado", "arizona", "utah", "new mexico", "idaho", "montana", "wyoming"},
			[]string{"co", "az", "ut", "nm", "mt", "wy"},
		),
	},
}

var zipPattern = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)

// InferTimezone guesses the region of a free-text US address. A ZIP code
// decides first, then city names, then states. It never fails; the default
// is Eastern.
func InferTimezone(address string) Region {
	// The ZIP trails the address; earlier matches may be house numbers.
	if matches := zipPattern.FindAllStringSubmatch(address, -1); len(matches) > 0 {
		if region, ok := regionForZIP(matches[len(matches)-1][1]); ok {
			return region
		}
	}

	lower := strings.ToLower(address)
	for _, kw := range keywordTable {
		for _, city := range kw.cities {
			if strings.Contains(lower, city) {
				return kw.region
			}
		}
	}
	for _, kw := range keywordTable {
		if kw.states.MatchString(lower) {
			return kw.region
		}
	}
	return Eastern
}

// regionForZIP maps the four-digit ZIP prefix onto a region.
func regionForZIP(zip string) (Region, bool) {
	n, err := strconv.Atoi(zip)
	if err != nil {
		return "", false
	}
	switch prefix := n / 10; {
	case prefix >= 1000 && prefix <= 5999:
		return Eastern, true
	case prefix >= 6000 && prefix <= 7999:
		return Central, true
	case prefix >= 8000 && prefix <= 8999:
		return Mountain, true
	case prefix >= 9000 && prefix <= 9999:
		return Pacific, true
	default:
		return "", false
	}
}

// FormatLocal renders t as "h:mm AM/PM TZ" in the address's region. If the
// zone cannot be loaded it returns the UTC RFC 3339 instant.
func FormatLocal(t time.Time, address string) string {
	loc, err := InferTimezone(address).Location()
	if err != nil {
		return t.UTC().Format(time.RFC3339)
	}
	return t.In(loc).Format("3:04 PM MST")
}
