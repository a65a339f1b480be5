package ukhotides_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukhotides/ukhotides"
)

func TestAPIError_Is(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{401, ukhotides.ErrUnauthorized},
		{403, ukhotides.ErrUnauthorized},
		{404, ukhotides.ErrStationNotFound},
		{429, ukhotides.ErrRateLimited},
		{500, ukhotides.ErrServiceUnavailable},
		{502, ukhotides.ErrServiceUnavailable},
		{503, ukhotides.ErrServiceUnavailable},
		{400, ukhotides.ErrUnexpectedResponse},
		{302, ukhotides.ErrUnexpectedResponse},
		{418, ukhotides.ErrUnexpectedResponse},
	}

	sentinels := []error{
		ukhotides.ErrUnauthorized,
		ukhotides.ErrStationNotFound,
		ukhotides.ErrRateLimited,
		ukhotides.ErrServiceUnavailable,
		ukhotides.ErrUnexpectedResponse,
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("status %d", tc.status), func(t *testing.T) {
			err := &ukhotides.APIError{StatusCode: tc.status}
			for _, sentinel := range sentinels {
				assert.Equal(t, sentinel == tc.want, errors.Is(err, sentinel),
					"status %d vs %v", tc.status, sentinel)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &ukhotides.APIError{StatusCode: 404, Body: []byte(`{"message":"nope"}`)}
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "nope")

	bare := &ukhotides.APIError{StatusCode: 503}
	assert.Contains(t, bare.Error(), "503")
}

func TestAPIError_Error_TruncatesBody(t *testing.T) {
	body := make([]byte, 4096)
	for i := range body {
		body[i] = 'x'
	}
	err := &ukhotides.APIError{StatusCode: 500, Body: body}
	assert.Less(t, len(err.Error()), 512)
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ukhotides.DecodeError{Err: cause, Body: []byte("{")}

	assert.ErrorIs(t, err, ukhotides.ErrUnexpectedResponse)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ukhotides.NetworkError{Err: cause, URL: "https://admiraltyapi.azure-api.net"}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotErrorIs(t, err, ukhotides.ErrUnexpectedResponse)
}
