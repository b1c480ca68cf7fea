package mlb

import "encoding/json"

type scheduleResponse struct {
	Dates []dateResponse `json:"dates"`
}

type dateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk   json.Number    `json:"gamePk"`
	GameDate string         `json:"gameDate"`
	Status   statusResponse `json:"status"`
	Teams    struct {
		Away sideResponse `json:"away"`
		Home sideResponse `json:"home"`
	} `json:"teams"`
	Venue *venueResponse `json:"venue"`
}

type statusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
	StatusCode        string `json:"statusCode"`
}

type sideResponse struct {
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
}

type venueResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
