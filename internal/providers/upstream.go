package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const upstreamBodyLimit = 512

// HTTPDoer is the part of *http.Client the league clients depend on.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOrDefault returns client, or a new client bounded by timeout when client is nil.
func ClientOrDefault(client *http.Client, timeout time.Duration) HTTPDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: timeout}
}

// BaseURLOrDefault trims a trailing slash from raw, substituting fallback when raw is blank.
func BaseURLOrDefault(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}

// GetJSON sends req and decodes a 2xx JSON body into dest. Any other status
// becomes an *UpstreamError carrying the head of the response body.
func GetJSON(doer HTTPDoer, provider string, req *http.Request, dest any) error {
	resp, err := doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, upstreamBodyLimit))
		return &UpstreamError{Provider: provider, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode response: %w", provider, err)
	}
	return nil
}
