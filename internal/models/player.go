package models

// RosterPlayer is one entry of the small curated roster source.
// Players are keyed by name and filtered by exact team membership.
type RosterPlayer struct {
	Name        string `json:"name"`
	Team        string `json:"team"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
	Age         int    `json:"age"`
	Rating      int    `json:"rating"`
	Pace        int    `json:"pace"`
	Shooting    int    `json:"shooting"`
	Passing     int    `json:"passing"`
	Dribbling   int    `json:"dribbling"`
	Defending   int    `json:"defending"`
	Physical    int    `json:"physical"`
	ImagePath   string `json:"image_path"`
}

// RatedPlayer is one fully reconciled row of the bulk ratings table.
// Schema reconciliation happens once at load time; every field here is
// populated, so lookups never re-check column presence.
type RatedPlayer struct {
	ShortName   string `json:"short_name"`
	LongName    string `json:"long_name"`
	Overall     int    `json:"overall"`
	Positions   string `json:"player_positions"`
	Nationality string `json:"nationality_name"`
	Club        string `json:"club_name"`
	Age         int    `json:"age"`
	Pace        int    `json:"pace"`
	Shooting    int    `json:"shooting"`
	Passing     int    `json:"passing"`
	Dribbling   int    `json:"dribbling"`
	Defending   int    `json:"defending"`
	Physic      int    `json:"physic"`
}
