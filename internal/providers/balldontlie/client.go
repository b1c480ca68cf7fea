package balldontlie

import (
	"context"
	"net/http"
	"strconv"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/providers"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	// MaxPages caps requests per fetch. Zero uses the default.
	MaxPages int
}

// Client fetches NBA games from the balldontlie API and maps them to canonical events.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient providers.HTTPDoer
	maxPages   int
}

var _ providers.ScheduleProvider = (*Client)(nil)

func NewClient(cfg Config) *Client {
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &Client{
		baseURL:    providers.BaseURLOrDefault(cfg.BaseURL, defaultBaseURL),
		apiKey:     cfg.APIKey,
		httpClient: providers.ClientOrDefault(cfg.HTTPClient, defaultHTTPTimeout),
		maxPages:   maxPages,
	}
}

// page addresses one slice of results: the cursor API uses cursor, the older
// numbered API uses number.
type page struct {
	number int
	cursor *int
}

// FetchEvents retrieves every game between startDate and endDate. It follows
// next_cursor when the API returns one, total_pages otherwise, and stops on a
// short page or after maxPages requests.
func (c *Client) FetchEvents(ctx context.Context, startDate, endDate string) ([]events.Event, error) {
	all := make([]events.Event, 0)
	next := page{number: 1}

	for requests := 1; ; requests++ {
		req, err := c.buildRequest(ctx, startDate, endDate, next)
		if err != nil {
			return nil, err
		}

		var payload gamesResponse
		if err := providers.GetJSON(c.httpClient, providerName, req, &payload); err != nil {
			return nil, err
		}
		for _, g := range payload.Data {
			all = append(all, mapGame(g))
		}

		if requests >= c.maxPages {
			break
		}
		more, following := nextPage(next, payload)
		if !more {
			break
		}
		next = following
	}

	return all, nil
}

func nextPage(current page, payload gamesResponse) (bool, page) {
	switch {
	case payload.Meta.NextCursor != nil:
		return true, page{cursor: payload.Meta.NextCursor}
	case current.cursor != nil:
		return false, page{}
	case payload.Meta.TotalPages > 0:
		return current.number < payload.Meta.TotalPages, page{number: current.number + 1}
	default:
		return len(payload.Data) >= defaultPerPage, page{number: current.number + 1}
	}
}

func (c *Client) buildRequest(ctx context.Context, startDate, endDate string, p page) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	q.Set("per_page", strconv.Itoa(defaultPerPage))
	if p.cursor != nil {
		q.Set("cursor", strconv.Itoa(*p.cursor))
	} else {
		q.Set("page", strconv.Itoa(p.number))
	}
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}
