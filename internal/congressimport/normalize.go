package congressimport

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalization failures. Each one is fatal only for the person or term that
// produced it; the importer logs it and moves on.
var (
	ErrUnrecognizedGender   = errors.New("unrecognized gender code")
	ErrMissingState         = errors.New("term has no state")
	ErrMissingDistrict      = errors.New("term has no district")
	ErrMissingName          = errors.New("unable to compose a display name")
	ErrMalformedIdentifiers = errors.New("identifier set is unusable")
)

// GenderFrom maps the dataset's single-letter gender code to a full word. An
// empty code is allowed and maps to an empty string.
func GenderFrom(code string) (string, error) {
	switch strings.ToLower(code) {
	case "":
		return "", nil
	case "m":
		return "male", nil
	case "f":
		return "female", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedGender, code)
}

// AreaPolicy selects how AreaFrom decides between a state-level and a
// district-level division id. The upstream dataset changed conventions
// between snapshots, so this is a configuration choice per era, never a
// silent default.
type AreaPolicy string

const (
	// AreaByDistrict emits a state-level id whenever the district is zero or
	// absent. Senate seats and at-large house districts both publish zero.
	AreaByDistrict AreaPolicy = "district"

	// AreaByChamber emits a state-level id for senate terms and requires an
	// explicit district for everything else.
	AreaByChamber AreaPolicy = "chamber"
)

// AreaFrom builds the OCD division identifier for a term's seat.
func AreaFrom(state string, district int, chamber string, policy AreaPolicy) (string, error) {
	if state == "" {
		return "", fmt.Errorf("%w (chamber %q)", ErrMissingState, chamber)
	}
	st := strings.ToLower(state)

	switch policy {
	case AreaByDistrict:
		if district == 0 {
			return "ocd-division/country:us/state:" + st, nil
		}
	case AreaByChamber:
		if chamber == ChamberSenate {
			return "ocd-division/country:us/state:" + st, nil
		}
		if district == 0 {
			return "", fmt.Errorf("%w: %s %s", ErrMissingDistrict, chamber, state)
		}
	default:
		return "", fmt.Errorf("unknown area policy %q", policy)
	}
	return fmt.Sprintf("ocd-division/country:us/state:%s/cd:%d", st, district), nil
}

// DisplayName composes the name shown for a legislator. An explicit
// official_full wins; otherwise the name is assembled from parts the same way
// the upstream everypolitician exporter does. Upstream YAML mixes composed
// and decomposed accents, so results are NFC-normalized.
func DisplayName(n Name) (string, error) {
	if n.OfficialFull != "" {
		return norm.NFC.String(n.OfficialFull), nil
	}

	first := n.First
	// A first name ending in a period is an abbreviated-initial artifact;
	// the middle name is the real given name.
	if strings.HasSuffix(first, ".") && n.Middle != "" {
		first = n.Middle
	}
	if n.Nickname != "" && len(n.Nickname) < len(first) {
		first = n.Nickname
	}

	if first == "" || n.Last == "" {
		return "", fmt.Errorf("%w: first %q, last %q", ErrMissingName, n.First, n.Last)
	}

	last := n.Last
	if n.Suffix != "" {
		last = n.Last + ", " + n.Suffix
	}
	return norm.NFC.String(first + " " + last), nil
}

// SortName renders the "Last, First" collation form stored alongside the
// display name.
func SortName(n Name) string {
	return n.Last + ", " + n.First
}
