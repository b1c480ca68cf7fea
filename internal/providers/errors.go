package providers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoAdapter is returned when a sport tag has no registered league adapter.
	ErrNoAdapter = errors.New("no adapter registered for sport")
	// ErrProviderUnavailable marks upstream failures that were absorbed by an adapter.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// UpstreamError captures a non-2xx response from a league API.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return ErrProviderUnavailable
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
