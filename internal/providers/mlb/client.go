package mlb

import (
	"context"
	"net/http"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/providers"
)

// Config controls how the MLB client reaches the stats API schedule endpoint.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches the MLB schedule and maps games to canonical events.
type Client struct {
	baseURL    string
	httpClient providers.HTTPDoer
}

var _ providers.ScheduleProvider = (*Client)(nil)

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    providers.BaseURLOrDefault(cfg.BaseURL, defaultBaseURL),
		httpClient: providers.ClientOrDefault(cfg.HTTPClient, defaultHTTPTimeout),
	}
}

// FetchEvents retrieves every MLB game between startDate and endDate (inclusive, YYYY-MM-DD).
// The schedule endpoint answers the whole window in one response.
func (c *Client) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	req, err := c.buildRequest(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var payload scheduleResponse
	if err := providers.GetJSON(c.httpClient, providerName, req, &payload); err != nil {
		return nil, err
	}
	return mapSchedule(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, startDate, endDate string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("sportId", defaultSportID)
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}
