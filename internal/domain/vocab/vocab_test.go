package vocab

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/roommatch/internal/domain"
)

func TestRegistries_Sizes(t *testing.T) {
	// The scoring caps need at least 10 interests and 5 lifestyle tags to be reachable.
	if n := len(Interests.Entries()); n < 10 {
		t.Errorf("Interests has %d entries, want >= 10", n)
	}
	if n := len(Lifestyle.Entries()); n < 5 {
		t.Errorf("Lifestyle has %d entries, want >= 5", n)
	}
	if !Amenities.Contains("wifi") {
		t.Error("Amenities must contain wifi")
	}
}

func TestContains_CaseSensitive(t *testing.T) {
	if !Lifestyle.Contains("Quiet") {
		t.Error("Contains(Quiet) = false")
	}
	if Lifestyle.Contains("quiet") {
		t.Error("Contains(quiet) = true, registry is case-sensitive")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	e := Amenities.Entries()
	e[0] = "mutated"
	if Amenities.Entries()[0] == "mutated" {
		t.Error("Entries() leaked internal slice")
	}
}

func TestValidate_Dedup(t *testing.T) {
	got, err := Interests.Validate([]string{"Music", "Art", "Music"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "Music" || got[1] != "Art" {
		t.Errorf("Validate() = %v, want [Music Art]", got)
	}
}

func TestValidate_Unknown(t *testing.T) {
	_, err := Amenities.Validate([]string{"wifi", "jacuzzi"})
	if !errors.Is(err, domain.ErrUnknownVocabulary) {
		t.Fatalf("expected ErrUnknownVocabulary, got %v", err)
	}
	var ve *domain.VocabularyError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *VocabularyError, got %T", err)
	}
	if ve.Registry != "amenity" || ve.Value != "jacuzzi" {
		t.Errorf("VocabularyError = %+v", ve)
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name        string
		in          []string
		wantKnown   int
		wantUnknown int
	}{
		{"nil", nil, 0, 0},
		{"empty", []string{}, 0, 0},
		{"all known", []string{"Quiet", "Tidy"}, 2, 0},
		{"mixed", []string{"Quiet", "Loud", "Quiet", "Unknown"}, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			known, unknown := Lifestyle.Partition(tt.in)
			if len(known) != tt.wantKnown {
				t.Errorf("known = %v, want %d entries", known, tt.wantKnown)
			}
			if len(unknown) != tt.wantUnknown {
				t.Errorf("unknown = %v, want %d entries", unknown, tt.wantUnknown)
			}
		})
	}
}
