// Package stats computes per-team rate and average statistics from the
// historical match corpus. Snapshots are derived on demand and never
// persisted.
package stats

import (
	"fmt"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

// Aggregator holds the immutable historical corpus
type Aggregator struct {
	records []models.MatchRecord
}

// NewAggregator creates an aggregator over a loaded corpus
func NewAggregator(records []models.MatchRecord) *Aggregator {
	return &Aggregator{records: records}
}

// Records returns the number of matches in the corpus
func (a *Aggregator) Records() int {
	return len(a.records)
}

// TeamStats computes the snapshot for one team. Losses are derived as the
// remainder of wins and draws so the three rates always total 1. Returns
// models.ErrNotFound when the team has no matches in the corpus.
func (a *Aggregator) TeamStats(team string) (*models.TeamStats, error) {
	var (
		total, wins, draws                            int
		goalsFor, goalsAgainst                        float64
		shots, shotsOnTarget, corners, yellows, reds  float64
	)

	for _, m := range a.records {
		switch team {
		case m.HomeTeam:
			total++
			if m.Result == models.ResultHome {
				wins++
			} else if m.Result == models.ResultDraw {
				draws++
			}
			goalsFor += m.HomeGoals
			goalsAgainst += m.AwayGoals
			shots += m.HomeShots
			shotsOnTarget += m.HomeShotsOnTarget
			corners += m.HomeCorners
			yellows += m.HomeYellows
			reds += m.HomeReds
		case m.AwayTeam:
			total++
			if m.Result == models.ResultAway {
				wins++
			} else if m.Result == models.ResultDraw {
				draws++
			}
			goalsFor += m.AwayGoals
			goalsAgainst += m.HomeGoals
			shots += m.AwayShots
			shotsOnTarget += m.AwayShotsOnTarget
			corners += m.AwayCorners
			yellows += m.AwayYellows
			reds += m.AwayReds
		}
	}

	if total == 0 {
		return nil, fmt.Errorf("%w: no matches for team %q", models.ErrNotFound, team)
	}

	losses := total - wins - draws
	n := float64(total)
	return &models.TeamStats{
		MatchesPlayed:         total,
		WinRate:               float64(wins) / n,
		DrawRate:              float64(draws) / n,
		LossRate:              float64(losses) / n,
		GoalsScoredPerMatch:   goalsFor / n,
		GoalsConcededPerMatch: goalsAgainst / n,
		ShotsPerMatch:         shots / n,
		ShotsOnTargetPerMatch: shotsOnTarget / n,
		CornersPerMatch:       corners / n,
		CardsPerMatch:         (yellows + reds) / n,
		YellowCardsPerMatch:   yellows / n,
		RedCardsPerMatch:      reds / n,
	}, nil
}

// Comparison computes both teams' snapshots; there is no partial result when
// either side is missing
func (a *Aggregator) Comparison(homeTeam, awayTeam string) (*models.StatsComparison, error) {
	homeStats, err := a.TeamStats(homeTeam)
	if err != nil {
		return nil, err
	}
	awayStats, err := a.TeamStats(awayTeam)
	if err != nil {
		return nil, err
	}
	return &models.StatsComparison{
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		HomeStats: homeStats,
		AwayStats: awayStats,
	}, nil
}
