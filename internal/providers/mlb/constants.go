package mlb

import "time"

const (
	providerName       = "mlb"
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1/schedule"
	defaultSportID     = "1"
	defaultHTTPTimeout = 10 * time.Second

	sportLabel  = "Baseball"
	leagueLabel = "MLB"
	idPrefix    = "mlb_"
)
