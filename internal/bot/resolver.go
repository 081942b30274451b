// Package bot implements the rule-based conversational assistant: team-name
// detection over the fitted vocabulary, keyword intent classification in a
// fixed priority order, and dispatch to the predictor and aggregators.
package bot

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Ajinkyaa2004/Copascore/internal/metrics"
	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

// MatchPredictor is the prediction pipeline consumed by the predict intent
type MatchPredictor interface {
	Predict(homeTeam, awayTeam string, odds models.OddsTriple) (*models.MatchPrediction, error)
}

// StatsSource serves historical team snapshots
type StatsSource interface {
	TeamStats(team string) (*models.TeamStats, error)
}

// OddsSource serves the average home line used by the conversational
// predictor, which is odds-free from the caller's perspective
type OddsSource interface {
	HomeOdds(team string) (models.HomeOdds, bool)
}

const fallbackReply = "I can help you with match predictions, team stats, and comparisons. " +
	"Try asking: 'Predict Arsenal vs Chelsea' or 'Stats for Liverpool'."

const tableReply = "You can view the full predicted league table by clicking the " +
	"'Show Predicted Final Table' button on the Predictions page! I can simulate the whole season for you."

// Resolver answers free-text queries. Stateless beyond the shared read-only
// artifacts, safe for concurrent use.
type Resolver struct {
	teams      []string
	teamsLower []string
	predictor  MatchPredictor
	stats      StatsSource
	odds       OddsSource
	logger     *logrus.Logger
}

// NewResolver creates a resolver over the fitted vocabulary, in fitted order
func NewResolver(teams []string, pred MatchPredictor, stats StatsSource, odds OddsSource, logger *logrus.Logger) *Resolver {
	lower := make([]string, len(teams))
	for i, t := range teams {
		lower[i] = strings.ToLower(t)
	}
	return &Resolver{
		teams:      teams,
		teamsLower: lower,
		predictor:  pred,
		stats:      stats,
		odds:       odds,
		logger:     logger,
	}
}

// DetectTeams scans the query for vocabulary names as case-insensitive
// substrings, preserving vocabulary order. All matches are reported; a
// shorter name contained in a longer match is not deduplicated.
func (r *Resolver) DetectTeams(query string) []string {
	queryLower := strings.ToLower(query)
	var found []string
	for i, teamLower := range r.teamsLower {
		if strings.Contains(queryLower, teamLower) {
			found = append(found, r.teams[i])
		}
	}
	return found
}

// Ask resolves one free-text query to a formatted reply
func (r *Resolver) Ask(query string) string {
	queryLower := strings.ToLower(query)
	found := r.DetectTeams(queryLower)

	for _, rl := range rules {
		if !matchesKeywords(queryLower, rl.keywords) {
			continue
		}
		if reply, handled := r.handle(rl.intent, found); handled {
			metrics.ChatQueriesTotal.WithLabelValues(string(rl.intent)).Inc()
			return reply
		}
	}

	metrics.ChatQueriesTotal.WithLabelValues(string(IntentFallback)).Inc()
	return fallbackReply
}

func matchesKeywords(queryLower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(queryLower, kw) {
			return true
		}
	}
	return false
}

// handle runs one intent's team requirement and response. handled=false
// means the requirement was not met and the query falls through to the next
// rule.
func (r *Resolver) handle(intent Intent, found []string) (string, bool) {
	switch intent {
	case IntentPredict:
		if len(found) == 2 {
			return r.predictReply(found[0], found[1]), true
		}
		if len(found) == 1 {
			return fmt.Sprintf("Who is %s playing against? Please specify two teams for a prediction.", found[0]), true
		}
		return "", false
	case IntentStats:
		if len(found) > 0 {
			return r.statsReply(found[0]), true
		}
		return "", false
	case IntentCompare:
		if len(found) == 2 {
			return r.compareReply(found[0], found[1]), true
		}
		return "", false
	case IntentTable:
		return tableReply, true
	default:
		return "", false
	}
}

// predictReply predicts home vs away using the average home line for the
// home team instead of caller-supplied odds
func (r *Resolver) predictReply(home, away string) string {
	odds, ok := r.odds.HomeOdds(home)
	if !ok {
		return fmt.Sprintf("I don't have enough odds history for %s to make a prediction.", home)
	}

	pred, err := r.predictor.Predict(home, away, models.OddsTriple{Home: odds.Win, Draw: odds.Draw, Away: odds.Loss})
	if err != nil {
		r.logger.WithError(err).Warn("Conversational prediction failed")
		return fmt.Sprintf("I couldn't run a prediction for %s vs %s right now.", home, away)
	}

	probHome := pred.Probabilities[string(models.ResultHome)]
	probDraw := pred.Probabilities[string(models.ResultDraw)]
	probAway := pred.Probabilities[string(models.ResultAway)]

	// Strict three-way max: "Draw" is the label whenever neither side
	// strictly dominates the other two, even if the draw probability is not
	// the true max. Preserved from the product's original behavior.
	winner := "Draw"
	if probHome > probAway && probHome > probDraw {
		winner = home
	} else if probAway > probHome && probAway > probDraw {
		winner = away
	}

	return fmt.Sprintf(
		"Based on my analysis for %s vs %s, I predict **%s** to win. \n\nProbabilities:\n- %s: %.1f%%\n- %s: %.1f%%\n- Draw: %.1f%%",
		home, away, winner, home, probHome*100, away, probAway*100, probDraw*100,
	)
}

func (r *Resolver) statsReply(team string) string {
	stats, err := r.stats.TeamStats(team)
	if err != nil {
		return fmt.Sprintf("I couldn't find stats for %s.", team)
	}
	return fmt.Sprintf(
		"**%s 2020-2021 Stats:**\n- Win Rate: %.1f%%\n- Goals/Match: %.2f\n- Shots/Match: %.2f\n- Corners/Match: %.2f",
		team, stats.WinRate*100, stats.GoalsScoredPerMatch, stats.ShotsPerMatch, stats.CornersPerMatch,
	)
}

func (r *Resolver) compareReply(team1, team2 string) string {
	s1, err := r.stats.TeamStats(team1)
	if err != nil {
		return fmt.Sprintf("I couldn't find stats for %s.", team1)
	}
	s2, err := r.stats.TeamStats(team2)
	if err != nil {
		return fmt.Sprintf("I couldn't find stats for %s.", team2)
	}

	better := team2
	if s1.WinRate > s2.WinRate {
		better = team1
	}

	return fmt.Sprintf(
		"**Comparison: %s vs %s**\n\n**%s**:\n- Win Rate: %.1f%%\n- Goals: %.2f\n\n**%s**:\n- Win Rate: %.1f%%\n- Goals: %.2f\n\nHistorically, **%s** has a better win rate.",
		team1, team2,
		team1, s1.WinRate*100, s1.GoalsScoredPerMatch,
		team2, s2.WinRate*100, s2.GoalsScoredPerMatch,
		better,
	)
}
