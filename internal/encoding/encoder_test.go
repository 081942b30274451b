package encoding

import (
	"errors"
	"strings"
	"testing"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

var vocabulary = []string{"Arsenal", "Chelsea", "Liverpool", "Man City"}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	enc, err := NewTeamEncoder(vocabulary)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, name := range vocabulary {
		code, err := enc.Encode(name)
		if err != nil {
			t.Fatalf("encode %q: %v", name, err)
		}
		back, err := enc.Decode(code)
		if err != nil {
			t.Fatalf("decode %d: %v", code, err)
		}
		if back != name {
			t.Errorf("round trip %q -> %d -> %q", name, code, back)
		}
	}

	for code := 0; code < enc.Len(); code++ {
		name, err := enc.Decode(code)
		if err != nil {
			t.Fatalf("decode %d: %v", code, err)
		}
		back, err := enc.Encode(name)
		if err != nil {
			t.Fatalf("encode %q: %v", name, err)
		}
		if back != code {
			t.Errorf("round trip %d -> %q -> %d", code, name, back)
		}
	}
}

func TestEncodeUnknownTeam(t *testing.T) {
	enc, _ := NewTeamEncoder(vocabulary)

	_, err := enc.Encode("Ghosttown FC")
	if !errors.Is(err, models.ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}

	// Exact match only: no normalization
	_, err = enc.Encode("arsenal")
	if !errors.Is(err, models.ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam for lowercased name, got %v", err)
	}
}

func TestDecodeUnknownCode(t *testing.T) {
	enc, _ := NewTeamEncoder(vocabulary)

	for _, code := range []int{-1, len(vocabulary)} {
		if _, err := enc.Decode(code); !errors.Is(err, models.ErrUnknownCode) {
			t.Errorf("decode %d: expected ErrUnknownCode, got %v", code, err)
		}
	}
}

func TestNewTeamEncoderRejectsDuplicates(t *testing.T) {
	if _, err := NewTeamEncoder([]string{"Arsenal", "Arsenal"}); err == nil {
		t.Fatal("expected error for duplicate vocabulary entry")
	}
}

func TestReadVocabulary(t *testing.T) {
	enc, err := ReadVocabulary(strings.NewReader(`["Arsenal","Chelsea"]`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if enc.Len() != 2 {
		t.Fatalf("expected 2 teams, got %d", enc.Len())
	}
	code, err := enc.Encode("Chelsea")
	if err != nil || code != 1 {
		t.Fatalf("expected Chelsea -> 1, got %d, %v", code, err)
	}

	if _, err := ReadVocabulary(strings.NewReader(`[]`)); err == nil {
		t.Fatal("expected error for empty vocabulary")
	}
}
