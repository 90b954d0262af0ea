package congressimport

import "sort"

// Sentinel bounds substituted for open interval ends. Both sort outside the
// range of any real ISO date, so lexicographic comparison keeps working.
const (
	dateFloor   = "0000-00-00"
	dateCeiling = "9999-12-31"
)

// Interval is a date range with ISO 8601 string bounds. An empty Start means
// "since before the calendar"; an empty End means "still serving".
type Interval struct {
	Start string
	End   string
}

// Degenerate reports whether the interval collapses to a single point. A
// zero-length interval at a session boundary is an artifact of splitting, not
// real service, and the assembler drops it.
func (iv Interval) Degenerate() bool {
	return iv.Start == iv.End
}

// Reconcile intersects a raw service interval with a session's boundaries.
// The second return is false when the two do not overlap — a normal, frequent
// outcome during iteration, not an error. Open bounds that survive the
// intersection stay open in the result.
func Reconcile(term Interval, s Session) (Interval, bool) {
	mS, mE := term.Start, term.End
	if mS == "" {
		mS = dateFloor
	}
	if mE == "" {
		mE = dateCeiling
	}
	tS, tE := s.StartDate, s.EndDate
	if tS == "" {
		tS = dateFloor
	}
	if tE == "" {
		tE = dateCeiling
	}

	// Precondition for the sort below: taking the middle two of the four
	// sorted endpoints is only the intersection when the intervals overlap.
	if !(mS <= tE && mE >= tS) {
		return Interval{}, false
	}

	bounds := []string{mS, mE, tS, tE}
	sort.Strings(bounds)

	out := Interval{Start: bounds[1], End: bounds[2]}
	if out.Start == dateFloor {
		out.Start = ""
	}
	if out.End == dateCeiling {
		out.End = ""
	}
	return out, true
}
