// Package ukhotides provides a Go client for the UK Admiralty tidal data
// API: station lookup and tidal event/height predictions.
//
// Basic usage:
//
//	client, err := ukhotides.NewClient(ukhotides.ClientConfig{
//	    APIKey: os.Getenv("UKHOTIDES_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stations, err := client.GetStations(ctx, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.GetTidalEvents(ctx, stations[0].ID, 7)
//
// The client issues one GET per method call and never retries; callers who
// want retries and circuit breaking on the transport can inject a
// resilience.Client via ClientConfig.HTTPClient. Date-range events and
// tidal heights require a Premium subscription key; the client does not
// check the configured tier locally, the service rejects lower-tier keys
// with an authorization error.
//
// Failures can be classified with errors.Is against the package sentinels
// (ErrStationNotFound, ErrUnauthorized, ErrRateLimited, and so on), and
// inspected with errors.As against *APIError for the raw status and body.
package ukhotides
