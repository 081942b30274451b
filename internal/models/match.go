package models

// Result is a full-time result code from the historical corpus
type Result string

// Full-time result codes
const (
	ResultHome Result = "H"
	ResultDraw Result = "D"
	ResultAway Result = "A"
)

// OddsTriple is one 1X2 market snapshot in decimal odds.
// The three values are not normalized and need not sum to anything.
type OddsTriple struct {
	Home float64 `json:"home" validate:"gte=0"`
	Draw float64 `json:"draw" validate:"gte=0"`
	Away float64 `json:"away" validate:"gte=0"`
}

// MatchRecord is one completed fixture from the historical corpus.
// Records are loaded in bulk at startup and never mutated.
type MatchRecord struct {
	HomeTeam string
	AwayTeam string
	Result   Result

	HomeGoals         float64
	AwayGoals         float64
	HomeShots         float64
	AwayShots         float64
	HomeShotsOnTarget float64
	AwayShotsOnTarget float64
	HomeCorners       float64
	AwayCorners       float64
	HomeYellows       float64
	AwayYellows       float64
	HomeReds          float64
	AwayReds          float64

	// Closing 1X2 odds for the fixture, zero when the source row had none.
	Odds OddsTriple
}

// TeamStats is a derived per-team snapshot over the historical corpus.
// win_rate + draw_rate + loss_rate always totals 1 because losses are
// computed as the remainder, never summed independently.
type TeamStats struct {
	MatchesPlayed         int     `json:"matches_played"`
	WinRate               float64 `json:"win_rate"`
	DrawRate              float64 `json:"draw_rate"`
	LossRate              float64 `json:"loss_rate"`
	GoalsScoredPerMatch   float64 `json:"goals_scored_per_match"`
	GoalsConcededPerMatch float64 `json:"goals_conceded_per_match"`
	ShotsPerMatch         float64 `json:"shots_per_match"`
	ShotsOnTargetPerMatch float64 `json:"shots_on_target_per_match"`
	CornersPerMatch       float64 `json:"corners_per_match"`
	CardsPerMatch         float64 `json:"cards_per_match"`
	YellowCardsPerMatch   float64 `json:"yellow_cards_per_match"`
	RedCardsPerMatch      float64 `json:"red_cards_per_match"`
}

// StatsComparison pairs both teams' snapshots for one fixture
type StatsComparison struct {
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	HomeStats *TeamStats `json:"home_stats"`
	AwayStats *TeamStats `json:"away_stats"`
}

// HomeOdds is the average closing 1X2 line for a team playing at home
type HomeOdds struct {
	Win  float64 `json:"win"`
	Draw float64 `json:"draw"`
	Loss float64 `json:"loss"`
}

// LeagueRow is one row of a simulated final league table
type LeagueRow struct {
	Position int    `json:"position"`
	Team     string `json:"team"`
	Played   int    `json:"played"`
	Won      int    `json:"won"`
	Drawn    int    `json:"drawn"`
	Lost     int    `json:"lost"`
	Points   int    `json:"points"`
}
