// Package players provides the two player lookup sources: a small curated
// roster keyed by team membership, and a large generic ratings table with a
// load-time schema reconciliation step. The two sources are not
// interchangeable; callers must know which engine backs which feature.
package players

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

// RosterEngine serves the curated roster source. Player names are the lookup
// key; team filtering is exact equality on the team field.
type RosterEngine struct {
	byName map[string]*models.RosterPlayer
	order  []string
}

// NewRosterEngine creates an empty roster engine
func NewRosterEngine() *RosterEngine {
	return &RosterEngine{byName: make(map[string]*models.RosterPlayer)}
}

// LoadFile loads a curated roster JSON file. The file holds either a list of
// player objects or a single player object.
func (e *RosterEngine) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()
	return e.Read(f)
}

// Read decodes roster data from a reader
func (e *RosterEngine) Read(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read roster data: %w", err)
	}

	var list []models.RosterPlayer
	if err := json.Unmarshal(raw, &list); err != nil {
		var single models.RosterPlayer
		if err := json.Unmarshal(raw, &single); err != nil {
			return fmt.Errorf("failed to decode roster data: %w", err)
		}
		list = []models.RosterPlayer{single}
	}

	for i := range list {
		p := list[i]
		if p.Name == "" {
			continue
		}
		if _, seen := e.byName[p.Name]; !seen {
			e.order = append(e.order, p.Name)
		}
		e.byName[p.Name] = &p
	}
	return nil
}

// Count returns the number of loaded players
func (e *RosterEngine) Count() int {
	return len(e.byName)
}

// TeamPlayers returns all players whose team field equals the given name
func (e *RosterEngine) TeamPlayers(team string) []models.RosterPlayer {
	out := make([]models.RosterPlayer, 0)
	for _, name := range e.order {
		if p := e.byName[name]; p.Team == team {
			out = append(out, *p)
		}
	}
	return out
}

// Card looks up one player by exact name. A missing player is a valid
// outcome, not an error.
func (e *RosterEngine) Card(name string) (*models.RosterPlayer, bool) {
	p, ok := e.byName[name]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}
