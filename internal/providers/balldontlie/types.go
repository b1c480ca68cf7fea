package balldontlie

type gamesResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

// gameResponse is one row of /games. Before tipoff Status holds the scheduled
// instant; afterwards it holds a label such as "Final".
type gameResponse struct {
	ID          int          `json:"id"`
	Date        string       `json:"date"`
	Status      string       `json:"status"`
	Time        string       `json:"time"`
	Period      int          `json:"period"`
	HomeTeam    teamResponse `json:"home_team"`
	VisitorTeam teamResponse `json:"visitor_team"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

// metaResponse covers both pagination styles the API has shipped.
type metaResponse struct {
	TotalPages int  `json:"total_pages"`
	NextCursor *int `json:"next_cursor"`
	PerPage    int  `json:"per_page"`
}
