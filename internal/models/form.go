package models

// FormSummary summarizes a team's most recent matches.
// MatchesPlayed counts the matches inspected; a match without a usable score
// pair still counts here but contributes nothing to the tallies.
type FormSummary struct {
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	FormString     string `json:"form_string"`
	Points         int    `json:"points"`
}

// MatchStatistics is the stat and xG breakdown of a single provider match
type MatchStatistics struct {
	MatchName string             `json:"match_name"`
	Date      string             `json:"date"`
	Result    string             `json:"result"`
	TeamStats map[string]float64 `json:"team_stats"`
	XGStats   map[string]float64 `json:"xg_stats"`
}

// AverageStats holds rolling averages over a prefix of recent matches.
// Every accumulated code is divided by MatchesAnalyzed, so codes reported in
// only some of those matches come out diluted. That is the defined semantics.
type AverageStats struct {
	MatchesAnalyzed int                `json:"matches_analyzed"`
	AverageStats    map[string]float64 `json:"average_stats"`
	AverageXG       map[string]float64 `json:"average_xg"`
}

// TeamFormReport bundles one side of a live-form comparison
type TeamFormReport struct {
	Name     string        `json:"name"`
	Form     *FormSummary  `json:"form"`
	Averages *AverageStats `json:"averages"`
}

// FormComparison compares two teams on recent form
type FormComparison struct {
	Team1                    TeamFormReport `json:"team1"`
	Team2                    TeamFormReport `json:"team2"`
	PointsDifference         int            `json:"points_difference"`
	GoalDifferenceComparison int            `json:"goal_difference_comparison"`
	FormAdvantage            string         `json:"form_advantage"`
}

// TeamInfo is basic identity data for a provider-tracked team
type TeamInfo struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ShortCode  string `json:"short_code"`
	Founded    int    `json:"founded"`
	ImagePath  string `json:"image_path"`
	LastPlayed string `json:"last_played"`
}
