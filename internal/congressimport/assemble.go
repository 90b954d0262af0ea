package congressimport

import "fmt"

// Assembler turns one Person into reconciled output rows. It carries the full
// configuration surface so the same pipeline serves every dataset era.
type Assembler struct {
	Calendar     Calendar
	Cutoff       string // terms starting before this date are ignored
	MinSessionID int    // sessions below this id never match
	AreaPolicy   AreaPolicy
}

// Skip records a unit of input that could not be processed. Skips are logged
// and counted; they never abort the run.
type Skip struct {
	BioguideID string
	Unit       string // "person" or "term"
	Err        error
}

func (s Skip) String() string {
	id := s.BioguideID
	if id == "" {
		id = "(no bioguide id)"
	}
	return fmt.Sprintf("%s %s: %v", s.Unit, id, s.Err)
}

// Assemble runs the per-person pipeline: cutoff filter, base record build,
// then term x session reconciliation. A person-level failure yields no rows
// and one Skip; a term-level failure skips that term only. Persons share no
// state, so callers may fan this out if they keep sink writes serialized per
// key.
func (a Assembler) Assemble(p Person) ([]OutputRow, []Skip) {
	var terms []Term
	for _, t := range p.Terms {
		if t.Start >= a.Cutoff {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return nil, nil
	}

	bioguide := p.BioguideID()
	if bioguide == "" {
		return nil, []Skip{{Unit: "person", Err: fmt.Errorf("%w: no bioguide id", ErrMalformedIdentifiers)}}
	}

	ids, err := FlattenIdentifiers(p.ID)
	if err != nil {
		return nil, []Skip{{BioguideID: bioguide, Unit: "person", Err: err}}
	}
	name, err := DisplayName(p.Name)
	if err != nil {
		return nil, []Skip{{BioguideID: bioguide, Unit: "person", Err: err}}
	}
	gender, err := GenderFrom(p.Bio.Gender)
	if err != nil {
		return nil, []Skip{{BioguideID: bioguide, Unit: "person", Err: err}}
	}

	base := OutputRow{
		BioguideID:  bioguide,
		Name:        name,
		SortName:    SortName(p.Name),
		GivenName:   p.Name.First,
		FamilyName:  p.Name.Last,
		BirthDate:   p.Bio.Birthday,
		Gender:      gender,
		Image:       PortraitURL(bioguide),
		Identifiers: ids,
	}

	var rows []OutputRow
	var skips []Skip
	for _, t := range terms {
		area, err := AreaFrom(t.State, t.District, t.Type, a.AreaPolicy)
		if err != nil {
			skips = append(skips, Skip{BioguideID: bioguide, Unit: "term", Err: err})
			continue
		}

		for _, s := range a.Calendar.Overlapping(t.Start, t.End, a.MinSessionID) {
			iv, ok := Reconcile(Interval{Start: t.Start, End: t.End}, s)
			if !ok || iv.Degenerate() {
				continue
			}

			row := base
			row.SessionID = s.ID
			row.Chamber = t.Type
			row.StartDate = iv.Start
			row.EndDate = iv.End
			row.State = t.State
			row.District = t.District
			row.Party = t.Party
			row.Homepage = t.URL
			row.Address = t.Address
			row.Phone = t.Phone
			row.Fax = t.Fax
			row.AreaID = area
			rows = append(rows, row)
		}
	}
	return rows, skips
}
