package congressimport_test

import (
	"errors"
	"testing"

	"github.com/EmpoweredVote/EV-Legislators/internal/congressimport"
)

// TestGenderFrom covers the full mapping: both cases of the two known codes,
// the allowed empty code, and rejection of anything else.
func TestGenderFrom(t *testing.T) {
	for code, want := range map[string]string{"m": "male", "M": "male", "f": "female", "F": "female", "": ""} {
		got, err := congressimport.GenderFrom(code)
		if err != nil {
			t.Errorf("GenderFrom(%q): unexpected error %v", code, err)
		}
		if got != want {
			t.Errorf("GenderFrom(%q) = %q, want %q", code, got, want)
		}
	}

	if _, err := congressimport.GenderFrom("X"); !errors.Is(err, congressimport.ErrUnrecognizedGender) {
		t.Errorf("expected ErrUnrecognizedGender for X, got %v", err)
	}
}

// TestAreaFrom_DistrictPolicy checks the district-zero rule: zero means a
// state-level division, anything else a congressional district.
func TestAreaFrom_DistrictPolicy(t *testing.T) {
	got, err := congressimport.AreaFrom("CA", 12, congressimport.ChamberHouse, congressimport.AreaByDistrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ocd-division/country:us/state:ca/cd:12" {
		t.Errorf("unexpected district area id: %q", got)
	}

	got, err = congressimport.AreaFrom("CA", 0, congressimport.ChamberSenate, congressimport.AreaByDistrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ocd-division/country:us/state:ca" {
		t.Errorf("unexpected state area id: %q", got)
	}

	if _, err := congressimport.AreaFrom("", 12, congressimport.ChamberHouse, congressimport.AreaByDistrict); !errors.Is(err, congressimport.ErrMissingState) {
		t.Errorf("expected ErrMissingState, got %v", err)
	}
}

// TestAreaFrom_ChamberPolicy checks the later dataset convention: senate
// terms are state-level, and house terms must carry a district.
func TestAreaFrom_ChamberPolicy(t *testing.T) {
	got, err := congressimport.AreaFrom("WY", 0, congressimport.ChamberSenate, congressimport.AreaByChamber)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ocd-division/country:us/state:wy" {
		t.Errorf("unexpected senate area id: %q", got)
	}

	got, err = congressimport.AreaFrom("NY", 14, congressimport.ChamberHouse, congressimport.AreaByChamber)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ocd-division/country:us/state:ny/cd:14" {
		t.Errorf("unexpected house area id: %q", got)
	}

	if _, err := congressimport.AreaFrom("NY", 0, congressimport.ChamberHouse, congressimport.AreaByChamber); !errors.Is(err, congressimport.ErrMissingDistrict) {
		t.Errorf("expected ErrMissingDistrict for district-less house term, got %v", err)
	}
}

// TestDisplayName_OfficialFullWins verifies that an explicit official_full
// short-circuits the composition rules.
func TestDisplayName_OfficialFullWins(t *testing.T) {
	got, err := congressimport.DisplayName(congressimport.Name{
		First: "J.", Last: "Smith", OfficialFull: "John Q. Smith",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "John Q. Smith" {
		t.Errorf("expected official_full, got %q", got)
	}
}

// TestDisplayName_AbbreviatedFirst verifies that an abbreviated first name
// is replaced by the middle name when one exists.
func TestDisplayName_AbbreviatedFirst(t *testing.T) {
	got, err := congressimport.DisplayName(congressimport.Name{
		First: "J.", Middle: "James", Last: "Smith",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "James Smith" {
		t.Errorf("expected %q, got %q", "James Smith", got)
	}
}

// TestDisplayName_ShorterNickname verifies a nickname shorter than the first
// name wins.
func TestDisplayName_ShorterNickname(t *testing.T) {
	got, err := congressimport.DisplayName(congressimport.Name{
		First: "Robert", Nickname: "Bob", Last: "Doe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bob Doe" {
		t.Errorf("expected %q, got %q", "Bob Doe", got)
	}
}

// TestDisplayName_Suffix verifies the suffix is appended to the family name
// with a comma.
func TestDisplayName_Suffix(t *testing.T) {
	got, err := congressimport.DisplayName(congressimport.Name{
		First: "John", Last: "Doe", Suffix: "Jr.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "John Doe, Jr." {
		t.Errorf("expected %q, got %q", "John Doe, Jr.", got)
	}
}

// TestDisplayName_MissingFirst verifies that a name without a usable first
// part fails loudly instead of emitting a partial name.
func TestDisplayName_MissingFirst(t *testing.T) {
	_, err := congressimport.DisplayName(congressimport.Name{Last: "Doe", Suffix: "Jr."})
	if !errors.Is(err, congressimport.ErrMissingName) {
		t.Errorf("expected ErrMissingName, got %v", err)
	}
}

func TestSortName(t *testing.T) {
	got := congressimport.SortName(congressimport.Name{First: "John", Last: "Doe"})
	if got != "Doe, John" {
		t.Errorf("expected %q, got %q", "Doe, John", got)
	}
}
