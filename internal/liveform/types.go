// Package liveform aggregates recent-form summaries and rolling averages
// from the live data provider's nested team payloads.
package liveform

// scoreDescriptionCurrent tags the final score entries within a match's
// score list
const scoreDescriptionCurrent = "CURRENT"

// TeamData is one team's raw provider payload. Latest is ordered
// most-recent-first by provider convention and is never re-sorted here.
type TeamData struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	ShortCode    string          `json:"short_code"`
	Founded      int             `json:"founded"`
	ImagePath    string          `json:"image_path"`
	LastPlayedAt string          `json:"last_played_at"`
	Latest       []ProviderMatch `json:"latest"`
}

// ProviderMatch is one match within a team payload
type ProviderMatch struct {
	Name       string       `json:"name"`
	StartingAt string       `json:"starting_at"`
	ResultInfo string       `json:"result_info"`
	Scores     []ScoreEntry `json:"scores"`
	Statistics []StatEntry  `json:"statistics"`
	XGFixture  []StatEntry  `json:"xgfixture"`
}

// ScoreEntry is one per-participant score record
type ScoreEntry struct {
	Description   string     `json:"description"`
	ParticipantID int        `json:"participant_id"`
	Score         ScoreValue `json:"score"`
}

// ScoreValue carries the goal count of a score entry
type ScoreValue struct {
	Goals int `json:"goals"`
}

// StatEntry is one per-participant statistic or xG record keyed by type code
type StatEntry struct {
	ParticipantID int       `json:"participant_id"`
	Type          StatType  `json:"type"`
	Data          StatValue `json:"data"`
}

// StatType identifies a statistic by its provider code
type StatType struct {
	Code string `json:"code"`
}

// StatValue carries the numeric value of a statistic entry
type StatValue struct {
	Value float64 `json:"value"`
}
