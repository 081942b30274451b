package simulator

import (
	"testing"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

func record(home string, h, d, a float64) models.MatchRecord {
	return models.MatchRecord{
		HomeTeam: home,
		AwayTeam: "Opponent",
		Odds:     models.OddsTriple{Home: h, Draw: d, Away: a},
	}
}

func TestHomeOddsAveraging(t *testing.T) {
	records := []models.MatchRecord{
		record("Arsenal", 2.0, 3.0, 4.0),
		record("Arsenal", 3.0, 3.5, 5.0),
		record("Chelsea", 1.5, 4.0, 6.0),
	}
	s := New(records, 1)

	odds, ok := s.HomeOdds("Arsenal")
	if !ok {
		t.Fatal("expected odds for Arsenal")
	}
	if odds.Win != 2.5 {
		t.Errorf("win = %v, want 2.5", odds.Win)
	}
	if odds.Draw != 3.25 {
		t.Errorf("draw = %v, want 3.25", odds.Draw)
	}
	if odds.Loss != 4.5 {
		t.Errorf("loss = %v, want 4.5", odds.Loss)
	}

	if _, ok := s.HomeOdds("Ghosttown FC"); ok {
		t.Error("expected no odds for unknown team")
	}
}

func TestHomeOddsSkipsIncompleteRows(t *testing.T) {
	records := []models.MatchRecord{
		record("Arsenal", 2.0, 3.0, 4.0),
		record("Arsenal", 0, 3.0, 4.0),
		record("Arsenal", 9.0, -1, 4.0),
		record("Chelsea", 0, 0, 0),
	}
	s := New(records, 1)

	odds, ok := s.HomeOdds("Arsenal")
	if !ok {
		t.Fatal("expected odds for Arsenal")
	}
	// Only the first row is complete
	if odds.Win != 2.0 || odds.Draw != 3.0 || odds.Loss != 4.0 {
		t.Errorf("unexpected averages: %+v", odds)
	}

	if _, ok := s.HomeOdds("Chelsea"); ok {
		t.Error("expected no odds when every row is incomplete")
	}
}

func TestSimulateSeason(t *testing.T) {
	s := New(nil, 7)

	table := s.SimulateSeason()
	if len(table) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(table))
	}

	for i, row := range table {
		if row.Position != i+1 {
			t.Errorf("row %d: position = %d", i, row.Position)
		}
		if row.Played != 38 {
			t.Errorf("row %d: played = %d, want 38", i, row.Played)
		}
		if row.Points != row.Won*3+row.Drawn {
			t.Errorf("row %d: points = %d, want %d", i, row.Points, row.Won*3+row.Drawn)
		}
		if i > 0 && table[i-1].Points < row.Points {
			t.Errorf("table not sorted at row %d", i)
		}
	}
}

func TestSimulateSeasonDeterministicPerSeed(t *testing.T) {
	a := New(nil, 11).SimulateSeason()
	b := New(nil, 11).SimulateSeason()

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs across identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}
