package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

// Column names of the historical corpus file (football-data.co.uk layout)
const (
	colHomeTeam = "HomeTeam"
	colAwayTeam = "AwayTeam"
	colResult   = "FTR"
)

// LoadMatchData reads the historical match corpus from a CSV file
func LoadMatchData(path string) ([]models.MatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open match data: %w", err)
	}
	defer f.Close()
	return ReadMatchData(f)
}

// ReadMatchData parses the corpus from a reader. Unparsable numeric cells are
// treated as zero rather than failing the row; the raw file is a given,
// opaque input.
func ReadMatchData(r io.Reader) ([]models.MatchRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read match data header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, required := range []string{colHomeTeam, colAwayTeam, colResult} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("match data missing required column %q", required)
		}
	}

	var records []models.MatchRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read match data row: %w", err)
		}

		cell := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		num := func(name string) float64 {
			v, err := strconv.ParseFloat(cell(name), 64)
			if err != nil {
				return 0
			}
			return v
		}

		rec := models.MatchRecord{
			HomeTeam:          cell(colHomeTeam),
			AwayTeam:          cell(colAwayTeam),
			Result:            models.Result(cell(colResult)),
			HomeGoals:         num("FTHG"),
			AwayGoals:         num("FTAG"),
			HomeShots:         num("HS"),
			AwayShots:         num("AS"),
			HomeShotsOnTarget: num("HST"),
			AwayShotsOnTarget: num("AST"),
			HomeCorners:       num("HC"),
			AwayCorners:       num("AC"),
			HomeYellows:       num("HY"),
			AwayYellows:       num("AY"),
			HomeReds:          num("HR"),
			AwayReds:          num("AR"),
			Odds: models.OddsTriple{
				Home: num("B365H"),
				Draw: num("B365D"),
				Away: num("B365A"),
			},
		}
		if rec.HomeTeam == "" || rec.AwayTeam == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
