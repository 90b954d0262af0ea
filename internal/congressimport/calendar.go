package congressimport

// Session is one Congress with its formal term boundaries. Dates are ISO 8601
// strings, so plain string comparison orders them correctly.
type Session struct {
	ID        int
	Name      string
	StartDate string
	EndDate   string
	Wikidata  string
}

// Calendar is an ordered list of sessions, most recent first. Calendars are
// reference data: built once, passed into the Assembler, never mutated.
type Calendar []Session

// Overlapping returns every session whose date range intersects the raw term
// range [start, end]. Empty bounds are open. Sessions below minID are
// excluded, which is how a dataset snapshot restricts itself to its own era.
//
// This is a coarse pre-filter over the raw bounds; Reconcile makes the final
// call per session.
func (c Calendar) Overlapping(start, end string, minID int) []Session {
	if start == "" {
		start = dateFloor
	}
	if end == "" {
		end = dateCeiling
	}

	var out []Session
	for _, s := range c {
		if s.ID < minID {
			continue
		}
		if s.StartDate <= end && s.EndDate >= start {
			out = append(out, s)
		}
	}
	return out
}

// Lookup finds a session by id across the built-in calendars, preferring the
// modern table (it carries wikidata references).
func Lookup(id int) (Session, bool) {
	for _, s := range ModernCongresses {
		if s.ID == id {
			return s, true
		}
	}
	for _, s := range HistoricCongresses {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// ModernCongresses covers the 110th Congress onward, matching the dataset
// snapshot the importer was first built against.
var ModernCongresses = Calendar{
	{ID: 114, Name: "114th Congress", StartDate: "2015-01-03", EndDate: "2017-01-03", Wikidata: "Q16146771"},
	{ID: 113, Name: "113th Congress", StartDate: "2013-01-03", EndDate: "2015-01-03", Wikidata: "Q71871"},
	{ID: 112, Name: "112th Congress", StartDate: "2011-01-03", EndDate: "2013-01-03", Wikidata: "Q170447"},
	{ID: 111, Name: "111th Congress", StartDate: "2009-01-03", EndDate: "2011-01-03", Wikidata: "Q170375"},
	{ID: 110, Name: "110th Congress", StartDate: "2007-01-03", EndDate: "2009-01-03", Wikidata: "Q170018"},
}

// HistoricCongresses extends the calendar back to the 95th Congress (1977).
// Post-1935 congressional terms all begin and end on January 3.
var HistoricCongresses = Calendar{
	{ID: 114, Name: "114th Congress", StartDate: "2015-01-03", EndDate: "2017-01-03"},
	{ID: 113, Name: "113th Congress", StartDate: "2013-01-03", EndDate: "2015-01-03"},
	{ID: 112, Name: "112th Congress", StartDate: "2011-01-03", EndDate: "2013-01-03"},
	{ID: 111, Name: "111th Congress", StartDate: "2009-01-03", EndDate: "2011-01-03"},
	{ID: 110, Name: "110th Congress", StartDate: "2007-01-03", EndDate: "2009-01-03"},
	{ID: 109, Name: "109th Congress", StartDate: "2005-01-03", EndDate: "2007-01-03"},
	{ID: 108, Name: "108th Congress", StartDate: "2003-01-03", EndDate: "2005-01-03"},
	{ID: 107, Name: "107th Congress", StartDate: "2001-01-03", EndDate: "2003-01-03"},
	{ID: 106, Name: "106th Congress", StartDate: "1999-01-03", EndDate: "2001-01-03"},
	{ID: 105, Name: "105th Congress", StartDate: "1997-01-03", EndDate: "1999-01-03"},
	{ID: 104, Name: "104th Congress", StartDate: "1995-01-03", EndDate: "1997-01-03"},
	{ID: 103, Name: "103rd Congress", StartDate: "1993-01-03", EndDate: "1995-01-03"},
	{ID: 102, Name: "102nd Congress", StartDate: "1991-01-03", EndDate: "1993-01-03"},
	{ID: 101, Name: "101st Congress", StartDate: "1989-01-03", EndDate: "1991-01-03"},
	{ID: 100, Name: "100th Congress", StartDate: "1987-01-03", EndDate: "1989-01-03"},
	{ID: 99, Name: "99th Congress", StartDate: "1985-01-03", EndDate: "1987-01-03"},
	{ID: 98, Name: "98th Congress", StartDate: "1983-01-03", EndDate: "1985-01-03"},
	{ID: 97, Name: "97th Congress", StartDate: "1981-01-03", EndDate: "1983-01-03"},
	{ID: 96, Name: "96th Congress", StartDate: "1979-01-03", EndDate: "1981-01-03"},
	{ID: 95, Name: "95th Congress", StartDate: "1977-01-03", EndDate: "1979-01-03"},
}
