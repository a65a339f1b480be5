package ukhotides

import (
	"fmt"
	"strings"
)

// APILevel selects which tier of the Admiralty tidal API the client
// addresses. The level is fixed at construction and only chooses the URL
// prefix; the remote service is the authority on what a given key may
// actually call.
type APILevel string

const (
	// LevelDiscovery is the free tier: stations and next-day tidal events.
	LevelDiscovery APILevel = "discovery"
	// LevelFoundation adds extended event durations.
	LevelFoundation APILevel = "foundation"
	// LevelPremium adds date-range events and tidal height predictions.
	LevelPremium APILevel = "premium"
)

const (
	discoveryStationsPath  = "/uktidalapi/api/V1/Stations"
	foundationStationsPath = "/uktidalapi-foundation/api/V2/Stations"
	premiumStationsPath    = "/uktidalapi-premium/api/V2/Stations"
)

// stationsPath returns the tier-specific path to the Stations resource.
func (l APILevel) stationsPath() string {
	switch l {
	case LevelFoundation:
		return foundationStationsPath
	case LevelPremium:
		return premiumStationsPath
	default:
		return discoveryStationsPath
	}
}

// ParseAPILevel maps a level name to an APILevel. The empty string parses
// as Discovery. Matching is case-insensitive.
func ParseAPILevel(s string) (APILevel, error) {
	switch strings.ToLower(s) {
	case "", string(LevelDiscovery):
		return LevelDiscovery, nil
	case string(LevelFoundation):
		return LevelFoundation, nil
	case string(LevelPremium):
		return LevelPremium, nil
	default:
		return "", fmt.Errorf("unknown API level %q", s)
	}
}
