package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

// arsenalCorpus builds 10 home matches (6W 2D 2L) and 10 away matches
// (3W 3D 4L) for Arsenal against a rotating set of opponents
func arsenalCorpus() []models.MatchRecord {
	var records []models.MatchRecord

	addHome := func(result models.Result, n int) {
		for i := 0; i < n; i++ {
			records = append(records, models.MatchRecord{
				HomeTeam: "Arsenal", AwayTeam: "Chelsea", Result: result,
				HomeGoals: 2, AwayGoals: 1,
				HomeShots: 14, AwayShots: 9,
				HomeShotsOnTarget: 6, AwayShotsOnTarget: 3,
				HomeCorners: 7, AwayCorners: 4,
				HomeYellows: 1, AwayYellows: 2,
			})
		}
	}
	addAway := func(result models.Result, n int) {
		for i := 0; i < n; i++ {
			records = append(records, models.MatchRecord{
				HomeTeam: "Liverpool", AwayTeam: "Arsenal", Result: result,
				HomeGoals: 1, AwayGoals: 1,
				HomeShots: 12, AwayShots: 8,
				HomeShotsOnTarget: 5, AwayShotsOnTarget: 2,
				HomeCorners: 6, AwayCorners: 3,
				HomeYellows: 2, AwayYellows: 1, AwayReds: 1,
			})
		}
	}

	addHome(models.ResultHome, 6)
	addHome(models.ResultDraw, 2)
	addHome(models.ResultAway, 2)
	addAway(models.ResultAway, 3)
	addAway(models.ResultDraw, 3)
	addAway(models.ResultHome, 4)
	return records
}

func TestTeamStatsRates(t *testing.T) {
	agg := NewAggregator(arsenalCorpus())

	stats, err := agg.TeamStats("Arsenal")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if stats.MatchesPlayed != 20 {
		t.Fatalf("expected 20 matches, got %d", stats.MatchesPlayed)
	}
	if stats.WinRate != 0.45 {
		t.Errorf("win rate = %v, want 0.45", stats.WinRate)
	}
	if stats.DrawRate != 0.25 {
		t.Errorf("draw rate = %v, want 0.25", stats.DrawRate)
	}
	if stats.LossRate != 0.30 {
		t.Errorf("loss rate = %v, want 0.30", stats.LossRate)
	}
	if sum := stats.WinRate + stats.DrawRate + stats.LossRate; math.Abs(sum-1) > 1e-9 {
		t.Errorf("rates sum to %v, want 1", sum)
	}
}

func TestTeamStatsAverages(t *testing.T) {
	agg := NewAggregator(arsenalCorpus())

	stats, err := agg.TeamStats("Arsenal")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// 10 home matches scoring 2, 10 away matches scoring 1
	if got, want := stats.GoalsScoredPerMatch, 1.5; got != want {
		t.Errorf("goals scored per match = %v, want %v", got, want)
	}
	// Conceded mirrors: 10x1 at home, 10x1 away
	if got, want := stats.GoalsConcededPerMatch, 1.0; got != want {
		t.Errorf("goals conceded per match = %v, want %v", got, want)
	}
	// Shots: 10x14 home + 10x8 away
	if got, want := stats.ShotsPerMatch, 11.0; got != want {
		t.Errorf("shots per match = %v, want %v", got, want)
	}
	// Cards: home 10x(1+0), away 10x(1+1)
	if got, want := stats.CardsPerMatch, 1.5; got != want {
		t.Errorf("cards per match = %v, want %v", got, want)
	}
}

func TestTeamStatsNotFound(t *testing.T) {
	agg := NewAggregator(arsenalCorpus())

	_, err := agg.TeamStats("Ghosttown FC")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestComparisonRequiresBothTeams(t *testing.T) {
	agg := NewAggregator(arsenalCorpus())

	cmp, err := agg.Comparison("Arsenal", "Chelsea")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cmp.HomeStats == nil || cmp.AwayStats == nil {
		t.Fatal("expected both snapshots populated")
	}

	if _, err := agg.Comparison("Arsenal", "Ghosttown FC"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing away team, got %v", err)
	}
	if _, err := agg.Comparison("Ghosttown FC", "Arsenal"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing home team, got %v", err)
	}
}
