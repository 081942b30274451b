package players

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

// defaultRating is used for derived attributes that cannot be synthesized
// from any source column
const defaultRating = 70

// defaultSearchLimit caps search results when the caller gives no limit
const defaultSearchLimit = 50

// RatingsEngine serves the bulk ratings table. Schema reconciliation runs
// once at load time and produces fully populated records, so query code never
// re-checks column presence. Rows keep source order.
type RatingsEngine struct {
	players []models.RatedPlayer
}

// NewRatingsEngine creates an empty ratings engine
func NewRatingsEngine() *RatingsEngine {
	return &RatingsEngine{}
}

// LoadFile loads the ratings table from a CSV file
func (e *RatingsEngine) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open ratings file: %w", err)
	}
	defer f.Close()
	return e.Read(f)
}

// Read parses and reconciles the ratings table from a reader
func (e *RatingsEngine) Read(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("failed to read ratings header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read ratings row: %w", err)
		}
		e.players = append(e.players, reconcile(cols, row))
	}
	return nil
}

// reconcile maps one raw row onto the canonical record shape, applying the
// fallback chains for renamed, derived, and absent columns.
func reconcile(cols map[string]int, row []string) models.RatedPlayer {
	cell := func(name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}
	text := func(names ...string) string {
		for _, name := range names {
			if v, ok := cell(name); ok {
				return v
			}
		}
		return ""
	}
	// num parses a numeric cell; an empty or unparsable cell yields fill.
	// A missing column yields (0, false).
	num := func(name string, fill float64) (float64, bool) {
		raw, ok := cell(name)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fill, true
		}
		return v, true
	}

	shortName := text("short_name", "name")
	longName := text("long_name")
	if longName == "" {
		longName = text("name")
		if longName == "" {
			longName = shortName
		}
	}

	overall := 0
	if v, ok := num("overall", 0); ok {
		overall = int(v)
	} else if v, ok := num("overall_rating", 0); ok {
		overall = int(v)
	}

	age := 0
	if v, ok := num("age", 0); ok {
		age = int(v)
	}

	pace := derived(num, "pace", "acceleration", "sprint_speed")
	physic := derived(num, "physic", "strength", "stamina")
	defending := derived(num, "defending", "marking", "standing_tackle")

	shooting := renamedWithFill(num, "shooting", "finishing")
	passing := renamedWithFill(num, "passing", "short_passing")

	dribbling := 0
	if v, ok := num("dribbling", 0); ok {
		dribbling = int(v)
	}

	return models.RatedPlayer{
		ShortName:   shortName,
		LongName:    longName,
		Overall:     overall,
		Positions:   text("player_positions", "positions"),
		Nationality: text("nationality_name", "nationality"),
		Club:        text("club_name", "national_team"),
		Age:         age,
		Pace:        pace,
		Shooting:    shooting,
		Passing:     passing,
		Dribbling:   dribbling,
		Defending:   defending,
		Physic:      physic,
	}
}

// derived resolves an attribute from its own column, then from the truncated
// mean of two source columns (missing cells count as zero), then the fixed
// default
func derived(num func(string, float64) (float64, bool), direct, srcA, srcB string) int {
	if v, ok := num(direct, 0); ok {
		return int(v)
	}
	a, okA := num(srcA, 0)
	b, okB := num(srcB, 0)
	if okA && okB {
		return int((a + b) / 2)
	}
	return defaultRating
}

// renamedWithFill resolves an attribute from its own column, then from a
// renamed source column whose empty cells fill with the default, then the
// fixed default
func renamedWithFill(num func(string, float64) (float64, bool), direct, src string) int {
	if v, ok := num(direct, 0); ok {
		return int(v)
	}
	if v, ok := num(src, defaultRating); ok {
		return int(v)
	}
	return defaultRating
}

// Count returns the number of loaded players
func (e *RatingsEngine) Count() int {
	return len(e.players)
}

// SearchOptions are the conjunctive filters of a player search. String
// filters are case-insensitive substring matches; MinRating is an inclusive
// lower bound, with 0 meaning no rating filter.
type SearchOptions struct {
	Query       string
	Team        string
	Position    string
	Nationality string
	MinRating   int
	Limit       int
}

// Search filters the table in source order and truncates to the limit
func (e *RatingsEngine) Search(opts SearchOptions) []models.RatedPlayer {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	out := make([]models.RatedPlayer, 0)
	for _, p := range e.players {
		if opts.Query != "" && !containsFold(p.ShortName, opts.Query) {
			continue
		}
		if opts.Team != "" && !containsFold(p.Club, opts.Team) {
			continue
		}
		if opts.Position != "" && !containsFold(p.Positions, opts.Position) {
			continue
		}
		if opts.Nationality != "" && !containsFold(p.Nationality, opts.Nationality) {
			continue
		}
		if opts.MinRating > 0 && p.Overall < opts.MinRating {
			continue
		}
		out = append(out, p)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// Card returns the first player whose short name matches exactly,
// case-insensitively. Missing is a valid outcome, not an error.
func (e *RatingsEngine) Card(name string) (*models.RatedPlayer, bool) {
	for _, p := range e.players {
		if strings.EqualFold(p.ShortName, name) {
			cp := p
			return &cp, true
		}
	}
	return nil, false
}

// TopPlayers returns up to limit players sorted by rating descending, ties
// kept in source order
func (e *RatingsEngine) TopPlayers(limit int) []models.RatedPlayer {
	if limit <= 0 {
		limit = 100
	}
	sorted := make([]models.RatedPlayer, len(e.players))
	copy(sorted, e.players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Overall > sorted[j].Overall
	})
	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
