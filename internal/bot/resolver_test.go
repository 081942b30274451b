package bot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

type stubPredictor struct {
	probs map[string]float64
	err   error
	home  string
	away  string
	odds  models.OddsTriple
}

func (s *stubPredictor) Predict(home, away string, odds models.OddsTriple) (*models.MatchPrediction, error) {
	s.home, s.away, s.odds = home, away, odds
	if s.err != nil {
		return nil, s.err
	}
	return &models.MatchPrediction{
		HomeTeam:      home,
		AwayTeam:      away,
		Probabilities: s.probs,
	}, nil
}

type stubStats struct {
	stats map[string]*models.TeamStats
}

func (s *stubStats) TeamStats(team string) (*models.TeamStats, error) {
	st, ok := s.stats[team]
	if !ok {
		return nil, fmt.Errorf("%w: no matches for team %q", models.ErrNotFound, team)
	}
	return st, nil
}

type stubOdds struct {
	odds map[string]models.HomeOdds
}

func (s *stubOdds) HomeOdds(team string) (models.HomeOdds, bool) {
	o, ok := s.odds[team]
	return o, ok
}

var vocabulary = []string{"Arsenal", "Chelsea", "Liverpool", "Man City"}

func newTestResolver(pred *stubPredictor) (*Resolver, *stubPredictor) {
	if pred == nil {
		pred = &stubPredictor{probs: map[string]float64{"H": 0.5, "D": 0.3, "A": 0.2}}
	}
	stats := &stubStats{stats: map[string]*models.TeamStats{
		"Arsenal": {MatchesPlayed: 20, WinRate: 0.45, GoalsScoredPerMatch: 1.5, ShotsPerMatch: 11, CornersPerMatch: 5},
		"Chelsea": {MatchesPlayed: 20, WinRate: 0.30, GoalsScoredPerMatch: 1.1, ShotsPerMatch: 9, CornersPerMatch: 4},
	}}
	odds := &stubOdds{odds: map[string]models.HomeOdds{
		"Arsenal": {Win: 1.8, Draw: 3.6, Loss: 4.2},
	}}
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return NewResolver(vocabulary, pred, stats, odds, log), pred
}

func TestDetectTeams(t *testing.T) {
	r, _ := newTestResolver(nil)

	found := r.DetectTeams("predict ARSENAL vs chelsea please")
	if len(found) != 2 || found[0] != "Arsenal" || found[1] != "Chelsea" {
		t.Fatalf("unexpected detection: %v", found)
	}

	// Vocabulary order wins over query order
	found = r.DetectTeams("chelsea against arsenal")
	if len(found) != 2 || found[0] != "Arsenal" {
		t.Fatalf("expected vocabulary order, got %v", found)
	}

	if found := r.DetectTeams("who takes the title this year"); len(found) != 0 {
		t.Errorf("expected no teams, got %v", found)
	}
}

func TestAskPredict(t *testing.T) {
	r, pred := newTestResolver(nil)

	reply := r.Ask("Predict Arsenal vs Chelsea")
	if !strings.Contains(reply, "**Arsenal** to win") {
		t.Errorf("expected Arsenal as winner, got %q", reply)
	}
	if !strings.Contains(reply, "Arsenal: 50.0%") || !strings.Contains(reply, "Chelsea: 20.0%") || !strings.Contains(reply, "Draw: 30.0%") {
		t.Errorf("expected all three probabilities, got %q", reply)
	}

	// The average home line feeds the pipeline
	if pred.odds.Home != 1.8 || pred.odds.Draw != 3.6 || pred.odds.Away != 4.2 {
		t.Errorf("unexpected odds passed to predictor: %+v", pred.odds)
	}
	if pred.home != "Arsenal" || pred.away != "Chelsea" {
		t.Errorf("unexpected matchup: %s vs %s", pred.home, pred.away)
	}
}

func TestAskPredictDrawOnTie(t *testing.T) {
	// Neither side strictly dominates, so the label is Draw even though the
	// draw probability is the smallest
	pred := &stubPredictor{probs: map[string]float64{"H": 0.4, "D": 0.2, "A": 0.4}}
	r, _ := newTestResolver(pred)

	reply := r.Ask("Predict Arsenal vs Chelsea")
	if !strings.Contains(reply, "**Draw** to win") {
		t.Errorf("expected Draw label on tie, got %q", reply)
	}
}

func TestAskPredictAwayWinner(t *testing.T) {
	pred := &stubPredictor{probs: map[string]float64{"H": 0.2, "D": 0.3, "A": 0.5}}
	r, _ := newTestResolver(pred)

	reply := r.Ask("who will win, Arsenal vs Chelsea")
	if !strings.Contains(reply, "**Chelsea** to win") {
		t.Errorf("expected Chelsea as winner, got %q", reply)
	}
}

func TestAskPredictSingleTeamClarifies(t *testing.T) {
	r, _ := newTestResolver(nil)

	reply := r.Ask("Predict Arsenal")
	if !strings.Contains(reply, "Who is Arsenal playing against?") {
		t.Errorf("expected clarification, got %q", reply)
	}
}

func TestAskPredictNoOddsHistory(t *testing.T) {
	r, _ := newTestResolver(nil)

	// Chelsea has no average home line in the fixture
	reply := r.Ask("Predict Chelsea vs Liverpool")
	if !strings.Contains(reply, "enough odds history for Chelsea") {
		t.Errorf("expected odds history message, got %q", reply)
	}
}

func TestAskStats(t *testing.T) {
	r, _ := newTestResolver(nil)

	reply := r.Ask("Show me stats for Arsenal")
	if !strings.Contains(reply, "**Arsenal 2020-2021 Stats:**") {
		t.Errorf("expected stats header, got %q", reply)
	}
	if !strings.Contains(reply, "Win Rate: 45.0%") {
		t.Errorf("expected win rate line, got %q", reply)
	}

	// Multiple teams detected: the first one is reported
	reply = r.Ask("stats for Arsenal and Chelsea")
	if !strings.Contains(reply, "**Arsenal 2020-2021 Stats:**") {
		t.Errorf("expected first team's stats, got %q", reply)
	}
}

func TestAskStatsUnknownTeamFallsBack(t *testing.T) {
	r, _ := newTestResolver(nil)

	// No vocabulary team in the query: the stats rule does not handle it and
	// nothing later matches either
	reply := r.Ask("Stats for Ghosttown FC")
	if reply != fallbackReply {
		t.Errorf("expected fallback, got %q", reply)
	}

	// A vocabulary team that the aggregator cannot serve still answers
	reply = r.Ask("stats for Liverpool")
	if !strings.Contains(reply, "couldn't find stats for Liverpool") {
		t.Errorf("expected missing stats message, got %q", reply)
	}
}

func TestAskCompare(t *testing.T) {
	r, _ := newTestResolver(nil)

	reply := r.Ask("compare Arsenal and Chelsea")
	if !strings.Contains(reply, "**Comparison: Arsenal vs Chelsea**") {
		t.Errorf("expected comparison header, got %q", reply)
	}
	if !strings.Contains(reply, "**Arsenal** has a better win rate") {
		t.Errorf("expected Arsenal ahead, got %q", reply)
	}
}

func TestAskCompareNeedsTwoTeams(t *testing.T) {
	r, _ := newTestResolver(nil)

	// "better" triggers compare, but one team falls through to no other rule
	reply := r.Ask("is Arsenal better")
	if reply != fallbackReply {
		t.Errorf("expected fallback, got %q", reply)
	}
}

func TestAskTable(t *testing.T) {
	r, _ := newTestResolver(nil)

	// Table answers with zero teams detected
	if reply := r.Ask("show me the league table"); reply != tableReply {
		t.Errorf("expected table reply, got %q", reply)
	}
	if reply := r.Ask("standings please"); reply != tableReply {
		t.Errorf("expected table reply, got %q", reply)
	}
}

func TestAskFallback(t *testing.T) {
	r, _ := newTestResolver(nil)

	if reply := r.Ask("hello there"); reply != fallbackReply {
		t.Errorf("expected fallback, got %q", reply)
	}
}

func TestAskPredictKeywordWithoutTeamsFallsThrough(t *testing.T) {
	r, _ := newTestResolver(nil)

	// "winner" matches predict, no teams matches nothing, "table" never
	// appears, so the query lands on fallback
	if reply := r.Ask("who is the winner"); reply != fallbackReply {
		t.Errorf("expected fallback, got %q", reply)
	}

	// "win" triggers predict first even when "table" also appears; with no
	// teams it falls through to the table rule
	if reply := r.Ask("who will win the table race"); reply != tableReply {
		t.Errorf("expected table reply after fallthrough, got %q", reply)
	}
}
