package congress

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONB wraps json.RawMessage with Scanner/Valuer for GORM JSONB columns.
type JSONB json.RawMessage

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return string(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = JSONB("{}")
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("unsupported type: %T", value)
	}
	return nil
}

func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("{}"), nil
	}
	return json.RawMessage(j).MarshalJSON()
}

func (j *JSONB) UnmarshalJSON(data []byte) error {
	if j == nil {
		return fmt.Errorf("JSONB: UnmarshalJSON on nil pointer")
	}
	*j = append((*j)[0:0], data...)
	return nil
}

// LegislatorTerm is the read-side view of one reconciled (legislator,
// session) row. The importer owns writes to this table.
type LegislatorTerm struct {
	BioguideID string `gorm:"primaryKey;column:bioguide_id" json:"bioguide_id"`
	SessionID  int    `gorm:"primaryKey;column:session_id" json:"session_id"`

	Name       string `gorm:"column:name" json:"name"`
	SortName   string `gorm:"column:sort_name" json:"sort_name"`
	GivenName  string `gorm:"column:given_name" json:"given_name"`
	FamilyName string `gorm:"column:family_name" json:"family_name"`
	BirthDate  string `gorm:"column:birth_date" json:"birth_date,omitempty"`
	Gender     string `gorm:"column:gender" json:"gender,omitempty"`
	Image      string `gorm:"column:image" json:"image"`

	Chamber   string `gorm:"column:chamber;index" json:"chamber"`
	StartDate string `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate   string `gorm:"column:end_date" json:"end_date,omitempty"`
	State     string `gorm:"column:state;index" json:"state"`
	District  int    `gorm:"column:district" json:"district"`
	Party     string `gorm:"column:party" json:"party,omitempty"`
	Homepage  string `gorm:"column:homepage" json:"homepage,omitempty"`
	Address   string `gorm:"column:address" json:"address,omitempty"`
	Phone     string `gorm:"column:phone" json:"phone,omitempty"`
	Fax       string `gorm:"column:fax" json:"fax,omitempty"`
	AreaID    string `gorm:"column:area_id" json:"area_id"`

	Identifiers JSONB `gorm:"type:jsonb;default:'{}';column:identifiers" json:"identifiers"`

	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (LegislatorTerm) TableName() string { return "congress.legislator_terms" }
