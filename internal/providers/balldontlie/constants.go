package balldontlie

import "time"

const (
	providerName       = "balldontlie"
	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultPerPage     = 100
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxPages    = 5

	sportLabel  = "Basketball"
	leagueLabel = "NBA"
	idPrefix    = "nba_"
)
