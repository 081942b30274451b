package liveform

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

// Engine serves form summaries and rolling averages over loaded team
// payloads. The scheduler may swap payloads in at runtime, so access is
// guarded by a read-write lock; the request path only ever takes read locks.
type Engine struct {
	mu     sync.RWMutex
	teams  map[string]*TeamData
	logger *logrus.Logger
}

// NewEngine creates an empty engine
func NewEngine(logger *logrus.Logger) *Engine {
	return &Engine{
		teams:  make(map[string]*TeamData),
		logger: logger,
	}
}

// LoadTeamFile loads one provider team payload from a JSON file
func (e *Engine) LoadTeamFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open team payload: %w", err)
	}
	defer f.Close()
	return e.ReadTeam(f)
}

// ReadTeam decodes one team payload from a reader and registers it
func (e *Engine) ReadTeam(r io.Reader) error {
	var data TeamData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return fmt.Errorf("failed to decode team payload: %w", err)
	}
	if data.Name == "" {
		return fmt.Errorf("team payload has no name")
	}
	e.AddTeam(&data)
	return nil
}

// AddTeam registers or replaces a team payload
func (e *Engine) AddTeam(data *TeamData) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teams[data.Name] = data
	e.logger.WithFields(logrus.Fields{
		"team":    data.Name,
		"matches": len(data.Latest),
	}).Debug("Registered live team payload")
}

// TeamNames lists the registered teams
func (e *Engine) TeamNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.teams))
	for name := range e.teams {
		names = append(names, name)
	}
	return names
}

func (e *Engine) team(name string) (*TeamData, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	data, ok := e.teams[name]
	if !ok || len(data.Latest) == 0 {
		return nil, fmt.Errorf("%w: no live data for team %q", models.ErrNotFound, name)
	}
	return data, nil
}

// RecentForm summarizes the first n matches of the team's sequence. Fewer
// matches than n is not an error. A match lacking a usable CURRENT score pair
// counts toward MatchesPlayed but contributes nothing to the tallies.
func (e *Engine) RecentForm(team string, n int) (*models.FormSummary, error) {
	data, err := e.team(team)
	if err != nil {
		return nil, err
	}

	matches := prefix(data.Latest, n)
	summary := &models.FormSummary{MatchesPlayed: len(matches)}
	var form strings.Builder

	for _, match := range matches {
		teamScore, opponentScore, ok := currentScores(match, data.ID)
		if !ok {
			continue
		}
		summary.GoalsFor += teamScore
		summary.GoalsAgainst += opponentScore
		switch {
		case teamScore > opponentScore:
			summary.Wins++
			form.WriteByte('W')
		case teamScore < opponentScore:
			summary.Losses++
			form.WriteByte('L')
		default:
			summary.Draws++
			form.WriteByte('D')
		}
	}

	summary.GoalDifference = summary.GoalsFor - summary.GoalsAgainst
	summary.FormString = form.String()
	summary.Points = summary.Wins*3 + summary.Draws
	return summary, nil
}

// MatchStatistics extracts the stat and xG breakdown for one match by index
// (0 = most recent)
func (e *Engine) MatchStatistics(team string, matchIndex int) (*models.MatchStatistics, error) {
	data, err := e.team(team)
	if err != nil {
		return nil, err
	}
	if matchIndex < 0 || matchIndex >= len(data.Latest) {
		return nil, fmt.Errorf("%w: match index %d out of range for team %q", models.ErrNotFound, matchIndex, team)
	}

	match := data.Latest[matchIndex]
	out := &models.MatchStatistics{
		MatchName: match.Name,
		Date:      match.StartingAt,
		Result:    match.ResultInfo,
		TeamStats: make(map[string]float64),
		XGStats:   make(map[string]float64),
	}
	for _, stat := range match.Statistics {
		if stat.ParticipantID == data.ID {
			out.TeamStats[stat.Type.Code] = stat.Data.Value
		}
	}
	for _, xg := range match.XGFixture {
		if xg.ParticipantID == data.ID {
			out.XGStats[xg.Type.Code] = xg.Data.Value
		}
	}
	return out, nil
}

// AverageStats accumulates every statistic code observed for the team across
// the first n matches and divides by the number of matches iterated, not the
// number of matches where a given code was present. Codes that are only
// sometimes reported therefore come out diluted; that semantics is
// deliberate. xG codes are kept in a parallel accumulator with the same
// divisor.
func (e *Engine) AverageStats(team string, n int) (*models.AverageStats, error) {
	data, err := e.team(team)
	if err != nil {
		return nil, err
	}

	matches := prefix(data.Latest, n)
	totalStats := make(map[string]float64)
	totalXG := make(map[string]float64)

	for _, match := range matches {
		for _, stat := range match.Statistics {
			if stat.ParticipantID == data.ID {
				totalStats[stat.Type.Code] += stat.Data.Value
			}
		}
		for _, xg := range match.XGFixture {
			if xg.ParticipantID == data.ID {
				totalXG[xg.Type.Code] += xg.Data.Value
			}
		}
	}

	count := len(matches)
	out := &models.AverageStats{
		MatchesAnalyzed: count,
		AverageStats:    make(map[string]float64, len(totalStats)),
		AverageXG:       make(map[string]float64, len(totalXG)),
	}
	if count == 0 {
		return out, nil
	}
	for code, total := range totalStats {
		out.AverageStats[code] = round2(total / float64(count))
	}
	for code, total := range totalXG {
		out.AverageXG[code] = round2(total / float64(count))
	}
	return out, nil
}

// defaultFormWindow is the prefix length used by comparisons
const defaultFormWindow = 5

// TeamComparison compares two teams on recent form and averages. Both sides
// must resolve or the whole comparison is not found. Equal points resolve the
// form advantage to the second team; the comparison is strict.
func (e *Engine) TeamComparison(team1, team2 string) (*models.FormComparison, error) {
	form1, err := e.RecentForm(team1, defaultFormWindow)
	if err != nil {
		return nil, err
	}
	form2, err := e.RecentForm(team2, defaultFormWindow)
	if err != nil {
		return nil, err
	}
	avg1, err := e.AverageStats(team1, defaultFormWindow)
	if err != nil {
		return nil, err
	}
	avg2, err := e.AverageStats(team2, defaultFormWindow)
	if err != nil {
		return nil, err
	}

	advantage := team2
	if form1.Points > form2.Points {
		advantage = team1
	}

	return &models.FormComparison{
		Team1:                    models.TeamFormReport{Name: team1, Form: form1, Averages: avg1},
		Team2:                    models.TeamFormReport{Name: team2, Form: form2, Averages: avg2},
		PointsDifference:         form1.Points - form2.Points,
		GoalDifferenceComparison: form1.GoalDifference - form2.GoalDifference,
		FormAdvantage:            advantage,
	}, nil
}

// TeamInfo returns basic identity data for a registered team
func (e *Engine) TeamInfo(team string) (*models.TeamInfo, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	data, ok := e.teams[team]
	if !ok {
		return nil, fmt.Errorf("%w: no live data for team %q", models.ErrNotFound, team)
	}
	return &models.TeamInfo{
		ID:         data.ID,
		Name:       data.Name,
		ShortCode:  data.ShortCode,
		Founded:    data.Founded,
		ImagePath:  data.ImagePath,
		LastPlayed: data.LastPlayedAt,
	}, nil
}

// currentScores locates the CURRENT-tagged score pair and splits it into the
// team's score and the opponent's by participant id. Both entries must be
// present for the match to be usable.
func currentScores(match ProviderMatch, teamID int) (teamScore, opponentScore int, ok bool) {
	var haveTeam, haveOpponent bool
	for _, score := range match.Scores {
		if score.Description != scoreDescriptionCurrent {
			continue
		}
		if score.ParticipantID == teamID {
			teamScore = score.Score.Goals
			haveTeam = true
		} else {
			opponentScore = score.Score.Goals
			haveOpponent = true
		}
	}
	return teamScore, opponentScore, haveTeam && haveOpponent
}

func prefix(matches []ProviderMatch, n int) []ProviderMatch {
	if n < 0 {
		n = 0
	}
	if n > len(matches) {
		n = len(matches)
	}
	return matches[:n]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
