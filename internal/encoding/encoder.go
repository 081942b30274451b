// Package encoding provides the fitted team-name vocabulary used by the
// prediction pipeline. Codes are dense non-negative integers whose values are
// stable only for one persisted vocabulary ordering, which is why the
// vocabulary is loaded verbatim from its artifact and never refit at serving
// time.
package encoding

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

// TeamEncoder is a bidirectional mapping between canonical team names and
// integer codes. Immutable after construction.
type TeamEncoder struct {
	names []string
	codes map[string]int
}

// NewTeamEncoder builds an encoder from an ordered vocabulary
func NewTeamEncoder(names []string) (*TeamEncoder, error) {
	codes := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("vocabulary entry %d is empty", i)
		}
		if _, dup := codes[name]; dup {
			return nil, fmt.Errorf("duplicate vocabulary entry %q", name)
		}
		codes[name] = i
	}
	vocab := make([]string, len(names))
	copy(vocab, names)
	return &TeamEncoder{names: vocab, codes: codes}, nil
}

// LoadVocabulary reads a persisted vocabulary artifact (a JSON array of team
// names in fitted order)
func LoadVocabulary(path string) (*TeamEncoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary artifact: %w", err)
	}
	defer f.Close()
	return ReadVocabulary(f)
}

// ReadVocabulary decodes a vocabulary artifact from a reader
func ReadVocabulary(r io.Reader) (*TeamEncoder, error) {
	var names []string
	if err := json.NewDecoder(r).Decode(&names); err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary artifact: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("vocabulary artifact is empty")
	}
	return NewTeamEncoder(names)
}

// Encode maps a team name to its code. The match is exact: no normalization,
// no fuzzy matching, and never a default code for unknown names.
func (e *TeamEncoder) Encode(name string) (int, error) {
	code, ok := e.codes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", models.ErrUnknownTeam, name)
	}
	return code, nil
}

// Decode is the exact inverse of Encode
func (e *TeamEncoder) Decode(code int) (string, error) {
	if code < 0 || code >= len(e.names) {
		return "", fmt.Errorf("%w: %d", models.ErrUnknownCode, code)
	}
	return e.names[code], nil
}

// Names returns the vocabulary in fitted order
func (e *TeamEncoder) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Len returns the vocabulary size
func (e *TeamEncoder) Len() int {
	return len(e.names)
}
