package ukhotides

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Admiralty API gateway all tiers sit behind.
	DefaultBaseURL = "https://admiraltyapi.azure-api.net"

	// subscriptionKeyHeader carries the API key, per the Azure API
	// Management contract the Admiralty API is published on.
	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

	// correlationHeader lets a request be matched to the client's debug
	// log line and to gateway-side traces.
	correlationHeader = "X-Correlation-ID"

	// queryTimeLayout is the datetime format the API expects in query
	// parameters. The EndDate of a date-range query is date-only.
	queryTimeLayout = "2006-01-02 15:04:05"
	queryDateLayout = "2006-01-02"
)

// Doer abstracts HTTP request execution. *http.Client satisfies it, as
// does resilience.Client for callers who want retries and circuit
// breaking on the transport. The Doer is shared by all in-flight calls
// and must be safe for concurrent use.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Admiralty tidal API client.
type ClientConfig struct {
	// APIKey is the Admiralty API subscription key (required).
	APIKey string

	// Level selects the API tier (optional, defaults to Discovery).
	Level APILevel

	// BaseURL is the API base URL (optional, defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional). If nil, uses
	// http.DefaultClient. The client itself never retries a request.
	HTTPClient Doer

	// Logger for per-request debug logging (optional, defaults to no output).
	Logger zerolog.Logger
}

// Client is a UK Admiralty tidal API client. All configuration is fixed
// at construction; a Client is safe for concurrent use.
type Client struct {
	apiKey      string
	level       APILevel
	stationsURL string
	httpClient  Doer
	logger      zerolog.Logger
}

// NewClient creates a new Admiralty tidal API client. It performs no
// network activity.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	level := cfg.Level
	if level == "" {
		level = LevelDiscovery
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		apiKey:      cfg.APIKey,
		level:       level,
		stationsURL: strings.TrimSuffix(baseURL, "/") + level.stationsPath(),
		httpClient:  httpClient,
		logger:      cfg.Logger,
	}, nil
}

// Level returns the API tier the client was constructed with.
func (c *Client) Level() APILevel {
	return c.level
}

// GetStations returns all stations, optionally filtered by name. An
// empty name returns every station.
func (c *Client) GetStations(ctx context.Context, name string) ([]Station, error) {
	u := c.stationsURL
	if name != "" {
		q := url.Values{}
		q.Set("name", name)
		u += "?" + q.Encode()
	}

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var payload stationFeatureCollection
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Err: err, Body: body}
	}
	if payload.Features == nil {
		return nil, &DecodeError{Err: errors.New("missing features collection"), Body: body}
	}

	stations := make([]Station, 0, len(payload.Features))
	for i := range payload.Features {
		s, ok := payload.Features[i].toStation()
		if !ok {
			return nil, &DecodeError{Err: errors.New("station feature without Id"), Body: body}
		}
		stations = append(stations, s)
	}
	return stations, nil
}

// GetStation returns a single station by ID. A station that does not
// exist yields ErrStationNotFound.
func (c *Client) GetStation(ctx context.Context, stationID string) (*Station, error) {
	body, err := c.get(ctx, c.stationURL(stationID, "", nil))
	if err != nil {
		return nil, err
	}

	var payload stationFeature
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Err: err, Body: body}
	}

	s, ok := payload.toStation()
	if !ok {
		return nil, &DecodeError{Err: errors.New("station feature without Id"), Body: body}
	}
	return &s, nil
}

// GetTidalEvents returns the predicted high- and low-water events for a
// station over the next durationDays days, in the chronological order the
// service returns them. A durationDays of zero leaves the duration to the
// service default of one day.
func (c *Client) GetTidalEvents(ctx context.Context, stationID string, durationDays int) ([]TidalEvent, error) {
	q := url.Values{}
	if durationDays > 0 {
		q.Set("duration", strconv.Itoa(durationDays))
	}

	body, err := c.get(ctx, c.stationURL(stationID, "TidalEvents", q))
	if err != nil {
		return nil, err
	}
	return decodeEvents(body, stationID)
}

// GetTidalEventsForDateRange returns the predicted events for a station
// between start and end. Requires a Premium subscription; the client does
// not check the configured tier, the service rejects lower-tier keys with
// an authorization error. The range is validated by the service, not
// locally.
func (c *Client) GetTidalEventsForDateRange(ctx context.Context, stationID string, start, end time.Time) ([]TidalEvent, error) {
	q := url.Values{}
	q.Set("StartDate", start.Format(queryTimeLayout))
	// The service contract takes a date-only end bound here.
	q.Set("EndDate", end.Format(queryDateLayout))

	body, err := c.get(ctx, c.stationURL(stationID, "TidalEventsForDateRange", q))
	if err != nil {
		return nil, err
	}
	return decodeEvents(body, stationID)
}

// GetTidalHeight returns the predicted water height at a station at the
// given instant. Requires a Premium subscription.
func (c *Client) GetTidalHeight(ctx context.Context, stationID string, at time.Time) (*TidalHeight, error) {
	q := url.Values{}
	q.Set("DateTime", at.Format(queryTimeLayout))

	body, err := c.get(ctx, c.stationURL(stationID, "TidalHeight", q))
	if err != nil {
		return nil, err
	}

	var payload tidalHeightPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Err: err, Body: body}
	}
	if payload.Height == nil {
		return nil, &DecodeError{Err: errors.New("height response without Height"), Body: body}
	}

	h := TidalHeight{
		StationID: stationID,
		DateTime:  at.UTC(),
		Height:    *payload.Height,
	}
	if dt, ok := parseAPITime(payload.DateTime); ok {
		h.DateTime = dt
	}
	return &h, nil
}

// GetTidalHeights returns the predicted water heights at a station
// between start and end, sampled every intervalMinutes minutes. Requires
// a Premium subscription.
func (c *Client) GetTidalHeights(ctx context.Context, stationID string, start, end time.Time, intervalMinutes int) ([]TidalHeight, error) {
	q := url.Values{}
	q.Set("StartDateTime", start.Format(queryTimeLayout))
	q.Set("EndDateTime", end.Format(queryTimeLayout))
	q.Set("IntervalInMinutes", strconv.Itoa(intervalMinutes))

	body, err := c.get(ctx, c.stationURL(stationID, "TidalHeights", q))
	if err != nil {
		return nil, err
	}

	var payload []tidalHeightPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Err: err, Body: body}
	}

	heights := make([]TidalHeight, 0, len(payload))
	for i := range payload {
		if h, ok := payload[i].toHeight(stationID); ok {
			heights = append(heights, h)
		}
	}
	return heights, nil
}

func decodeEvents(body []byte, stationID string) ([]TidalEvent, error) {
	var payload []tidalEventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Err: err, Body: body}
	}

	events := make([]TidalEvent, 0, len(payload))
	for i := range payload {
		if e, ok := payload[i].toEvent(stationID); ok {
			events = append(events, e)
		}
	}
	return events, nil
}

// stationURL joins the tier base URL, a station ID, an optional resource
// segment, and query parameters.
func (c *Client) stationURL(stationID, segment string, q url.Values) string {
	u := c.stationsURL + "/" + url.PathEscape(stationID)
	if segment != "" {
		u += "/" + segment
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// get performs one GET against the API, mapping non-200 statuses to
// *APIError and transport failures to *NetworkError. The response body is
// returned raw; callers decode it per endpoint.
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: u}
	}

	correlationID := uuid.NewString()
	req.Header.Set(subscriptionKeyHeader, c.apiKey)
	req.Header.Set(correlationHeader, correlationID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: u}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: u}
	}

	c.logger.Debug().
		Str("correlation_id", correlationID).
		Str("url", u).
		Int("status", resp.StatusCode).
		Msg("tidal api response")

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
