package congressimport

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RowSink persists reconciled rows. Upsert must be idempotent on
// (bioguide_id, session_id): re-sending an identical row overwrites, never
// duplicates.
type RowSink interface {
	Upsert(ctx context.Context, row OutputRow) error
}

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

// LegislatorTerm is the stored reconciled row, one per (legislator, session).
type LegislatorTerm struct {
	BioguideID string `gorm:"primaryKey;column:bioguide_id"`
	SessionID  int    `gorm:"primaryKey;column:session_id"`

	Name       string `gorm:"column:name"`
	SortName   string `gorm:"column:sort_name"`
	GivenName  string `gorm:"column:given_name"`
	FamilyName string `gorm:"column:family_name"`
	BirthDate  string `gorm:"column:birth_date"`
	Gender     string `gorm:"column:gender"`
	Image      string `gorm:"column:image"`

	Chamber   string `gorm:"column:chamber;index"`
	StartDate string `gorm:"column:start_date"`
	EndDate   string `gorm:"column:end_date"`
	State     string `gorm:"column:state;index"`
	District  int    `gorm:"column:district"`
	Party     string `gorm:"column:party"`
	Homepage  string `gorm:"column:homepage"`
	Address   string `gorm:"column:address"`
	Phone     string `gorm:"column:phone"`
	Fax       string `gorm:"column:fax"`
	AreaID    string `gorm:"column:area_id"`

	Identifiers JSONB `gorm:"type:jsonb;default:'{}';column:identifiers"`

	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (LegislatorTerm) TableName() string { return "congress.legislator_terms" }

// ImportRun is the audit record for one importer invocation.
type ImportRun struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	URLs        pq.StringArray `gorm:"type:text[];column:urls"`
	Era         string         `gorm:"column:era"`
	RowCount    int            `gorm:"column:row_count"`
	SkipCount   int            `gorm:"column:skip_count"`
	SkippedKeys pq.StringArray `gorm:"type:text[];column:skipped_keys"`
	StartedAt   time.Time      `gorm:"column:started_at"`
	FinishedAt  time.Time      `gorm:"column:finished_at"`
}

func (ImportRun) TableName() string { return "congress.import_runs" }

// GormSink writes rows through GORM with an ON CONFLICT upsert, so
// re-importing the same documents overwrites rather than duplicates.
type GormSink struct {
	DB *gorm.DB
}

func (s GormSink) Upsert(ctx context.Context, row OutputRow) error {
	idents, err := json.Marshal(row.Identifiers)
	if err != nil {
		return fmt.Errorf("marshal identifiers for %s: %w", row.BioguideID, err)
	}

	rec := LegislatorTerm{
		BioguideID:  row.BioguideID,
		SessionID:   row.SessionID,
		Name:        row.Name,
		SortName:    row.SortName,
		GivenName:   row.GivenName,
		FamilyName:  row.FamilyName,
		BirthDate:   row.BirthDate,
		Gender:      row.Gender,
		Image:       row.Image,
		Chamber:     row.Chamber,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		State:       row.State,
		District:    row.District,
		Party:       row.Party,
		Homepage:    row.Homepage,
		Address:     row.Address,
		Phone:       row.Phone,
		Fax:         row.Fax,
		AreaID:      row.AreaID,
		Identifiers: JSONB(idents),
	}

	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bioguide_id"}, {Name: "session_id"}},
		UpdateAll: true,
	}).Create(&rec).Error
}
