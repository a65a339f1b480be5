package ukhotides

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid, expired,
	// or not privileged for the requested endpoint.
	ErrUnauthorized = errors.New("invalid or insufficiently privileged API key")

	// ErrStationNotFound is returned when the requested station does not exist.
	ErrStationNotFound = errors.New("station not found")

	// ErrRateLimited is returned when the API quota is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServiceUnavailable is returned when the API responds with a 5xx status.
	ErrServiceUnavailable = errors.New("tidal API unavailable")

	// ErrUnexpectedResponse is returned for any other non-200 status, or
	// for a 200 response whose body does not match the expected shape.
	ErrUnexpectedResponse = errors.New("unexpected response from tidal API")
)

// maxErrorBody caps how much of a response body is echoed into error strings.
const maxErrorBody = 256

// APIError represents a non-200 response from the Admiralty API. It keeps
// the raw status code and body for diagnostics.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) > 0 {
		body := e.Body
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return fmt.Sprintf("tidal API error %d: %s", e.StatusCode, body)
	}
	return fmt.Sprintf("tidal API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return target == ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return target == ErrStationNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServiceUnavailable
	default:
		return target == ErrUnexpectedResponse
	}
}

// DecodeError represents a 200 response whose body could not be decoded
// into the expected shape.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding tidal API response: %v", e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrUnexpectedResponse
}

// NetworkError represents a transport-level failure from the underlying
// HTTP client. The original error is preserved unchanged via Unwrap.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
