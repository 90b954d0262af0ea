package congressimport

import "fmt"

// Chamber codes as published in the terms list.
const (
	ChamberSenate = "sen"
	ChamberHouse  = "rep"
)

// Person is one record from the legislators YAML documents.
type Person struct {
	ID    map[string]any `yaml:"id"`
	Name  Name           `yaml:"name"`
	Bio   Bio            `yaml:"bio"`
	Terms []Term         `yaml:"terms"`
}

// Name holds the published name parts. official_full is only present on
// current legislators.
type Name struct {
	First        string `yaml:"first"`
	Middle       string `yaml:"middle"`
	Last         string `yaml:"last"`
	Nickname     string `yaml:"nickname"`
	Suffix       string `yaml:"suffix"`
	OfficialFull string `yaml:"official_full"`
}

type Bio struct {
	Birthday string `yaml:"birthday"`
	Gender   string `yaml:"gender"`
}

// Term is one raw service interval as published upstream. End is empty for
// sitting members; District is zero for senate seats and at-large districts.
// Raw terms do not line up with session boundaries — that is Reconcile's job.
type Term struct {
	Type     string `yaml:"type"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	State    string `yaml:"state"`
	District int    `yaml:"district"`
	Party    string `yaml:"party"`
	URL      string `yaml:"url"`
	Address  string `yaml:"address"`
	Phone    string `yaml:"phone"`
	Fax      string `yaml:"fax"`
}

// BioguideID returns the dataset's primary person key, or "" when absent.
func (p Person) BioguideID() string {
	v, ok := p.ID["bioguide"]
	if !ok {
		return ""
	}
	s, err := scalarString(v)
	if err != nil {
		return ""
	}
	return s
}

// FlattenIdentifiers reduces the id map to scheme -> scalar string. Some
// schemes publish a list (fec does); the first entry wins, matching the
// upstream exporter. A nested map or other non-scalar value poisons the
// whole set for this person.
func FlattenIdentifiers(ids map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	for scheme, v := range ids {
		s, err := scalarString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: scheme %q: %v", ErrMalformedIdentifiers, scheme, err)
		}
		if s != "" {
			out[scheme] = s
		}
	}
	return out, nil
}

func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(t), nil
	case []any:
		if len(t) == 0 {
			return "", nil
		}
		return scalarString(t[0])
	}
	return "", fmt.Errorf("value of type %T", v)
}

// PortraitURL is the conventional location of a legislator's official photo.
func PortraitURL(bioguide string) string {
	return fmt.Sprintf("https://theunitedstates.io/images/congress/original/%s.jpg", bioguide)
}

// OutputRow is one reconciled (person, session) pairing, the sink's unit of
// storage. Person fields repeat across a person's rows; StartDate and EndDate
// are the reconciled interval, not the raw term's.
type OutputRow struct {
	BioguideID string
	SessionID  int

	Name       string
	SortName   string
	GivenName  string
	FamilyName string
	BirthDate  string
	Gender     string
	Image      string

	Chamber   string
	StartDate string
	EndDate   string
	State     string
	District  int
	Party     string
	Homepage  string
	Address   string
	Phone     string
	Fax       string
	AreaID    string

	Identifiers map[string]string
}
