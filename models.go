package ukhotides

import "time"

// EventType classifies a predicted tidal event.
type EventType string

const (
	EventHighWater EventType = "HighWater"
	EventLowWater  EventType = "LowWater"
)

// Station is a fixed tidal-monitoring location identified by a stable ID.
type Station struct {
	ID      string
	Name    string
	Country string

	// Latitude and Longitude are zero when the service returns no
	// geometry for the station.
	Latitude  float64
	Longitude float64

	// ContinuousHeightsAvailable reports whether the station supports
	// continuous height predictions.
	ContinuousHeightsAvailable bool
}

// TidalEvent is a predicted high- or low-water occurrence at a station.
type TidalEvent struct {
	StationID string
	EventType EventType
	DateTime  time.Time // UTC
	Height    float64   // metres

	// The service flags predictions it considers approximate.
	IsApproximateTime   bool
	IsApproximateHeight bool
}

// TidalHeight is a predicted water height at a station at one instant.
type TidalHeight struct {
	StationID string
	DateTime  time.Time // UTC
	Height    float64   // metres
}

// Admiralty API response structures. Stations come back as a GeoJSON
// FeatureCollection; events and heights as bare arrays.

type stationFeatureCollection struct {
	Features []stationFeature `json:"features"`
}

type stationFeature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
	} `json:"geometry"`
	Properties struct {
		ID                         string `json:"Id"`
		Name                       string `json:"Name"`
		Country                    string `json:"Country"`
		ContinuousHeightsAvailable bool   `json:"ContinuousHeightsAvailable"`
	} `json:"properties"`
}

// toStation converts a GeoJSON feature to the domain model. ok is false
// when the feature carries no station ID.
func (f *stationFeature) toStation() (Station, bool) {
	if f.Properties.ID == "" {
		return Station{}, false
	}

	s := Station{
		ID:                         f.Properties.ID,
		Name:                       f.Properties.Name,
		Country:                    f.Properties.Country,
		ContinuousHeightsAvailable: f.Properties.ContinuousHeightsAvailable,
	}

	if len(f.Geometry.Coordinates) == 2 {
		s.Longitude = f.Geometry.Coordinates[0]
		s.Latitude = f.Geometry.Coordinates[1]
	}

	return s, true
}

type tidalEventPayload struct {
	EventType           string   `json:"EventType"`
	DateTime            string   `json:"DateTime"`
	Height              *float64 `json:"Height"`
	IsApproximateTime   bool     `json:"IsApproximateTime"`
	IsApproximateHeight bool     `json:"IsApproximateHeight"`
}

// toEvent converts an event payload to the domain model. ok is false when
// a required field is missing or unparseable; the service occasionally
// returns partial entries and those are skipped rather than failing the
// whole response.
func (p *tidalEventPayload) toEvent(stationID string) (TidalEvent, bool) {
	if p.EventType == "" || p.Height == nil {
		return TidalEvent{}, false
	}

	dt, ok := parseAPITime(p.DateTime)
	if !ok {
		return TidalEvent{}, false
	}

	return TidalEvent{
		StationID:           stationID,
		EventType:           EventType(p.EventType),
		DateTime:            dt,
		Height:              *p.Height,
		IsApproximateTime:   p.IsApproximateTime,
		IsApproximateHeight: p.IsApproximateHeight,
	}, true
}

type tidalHeightPayload struct {
	DateTime string   `json:"DateTime"`
	Height   *float64 `json:"Height"`
}

// toHeight converts a height payload to the domain model, skipping
// entries with no height or an unparseable timestamp.
func (p *tidalHeightPayload) toHeight(stationID string) (TidalHeight, bool) {
	if p.Height == nil {
		return TidalHeight{}, false
	}

	dt, ok := parseAPITime(p.DateTime)
	if !ok {
		return TidalHeight{}, false
	}

	return TidalHeight{
		StationID: stationID,
		DateTime:  dt,
		Height:    *p.Height,
	}, true
}

// apiTimeLayouts are the timestamp shapes the service is known to emit.
// Zoneless timestamps are interpreted as UTC.
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseAPITime(s string) (time.Time, bool) {
	for _, layout := range apiTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
