package congressimport

import (
	"errors"
	"fmt"
)

// Era names a built-in preset matching one snapshot of the upstream dataset.
type Era string

const (
	EraModern   Era = "modern"   // 110th Congress onward, district-zero area rule
	EraHistoric Era = "historic" // 95th Congress onward, chamber area rule
)

// DefaultURLs are the published current + historical legislator documents.
var DefaultURLs = []string{
	"https://raw.githubusercontent.com/unitedstates/congress-legislators/master/legislators-current.yaml",
	"https://raw.githubusercontent.com/unitedstates/congress-legislators/master/legislators-historical.yaml",
}

// Config is the importer's full parameter surface. The reconciliation
// parameters (Calendar, Cutoff, MinSessionID, AreaPolicy) are never
// hard-coded in the pipeline; an Era preset fills in the ones left unset.
type Config struct {
	URLs        []string
	DatabaseURL string
	Era         Era

	Calendar     Calendar
	Cutoff       string
	MinSessionID int
	AreaPolicy   AreaPolicy

	// DryRun exercises the full fetch + reconcile pipeline without a
	// database.
	DryRun bool
}

// ApplyEra fills the reconciliation parameters from the era preset, keeping
// any field the caller set explicitly.
func (c *Config) ApplyEra() error {
	switch c.Era {
	case "", EraModern:
		c.Era = EraModern
		if c.Calendar == nil {
			c.Calendar = ModernCongresses
		}
		if c.Cutoff == "" {
			c.Cutoff = "2007-01-03"
		}
		if c.MinSessionID == 0 {
			c.MinSessionID = 110
		}
		if c.AreaPolicy == "" {
			c.AreaPolicy = AreaByDistrict
		}
	case EraHistoric:
		if c.Calendar == nil {
			c.Calendar = HistoricCongresses
		}
		if c.Cutoff == "" {
			c.Cutoff = "1977-01-01"
		}
		if c.MinSessionID == 0 {
			c.MinSessionID = 95
		}
		if c.AreaPolicy == "" {
			c.AreaPolicy = AreaByChamber
		}
	default:
		return fmt.Errorf("unknown era %q", c.Era)
	}
	return nil
}

func (c Config) Validate() error {
	if len(c.URLs) == 0 {
		return errors.New("no source URLs configured")
	}
	if !c.DryRun && c.DatabaseURL == "" {
		return errors.New("DatabaseURL is required unless DryRun is set")
	}
	if len(c.Calendar) == 0 {
		return errors.New("session calendar is empty")
	}
	if c.Cutoff == "" {
		return errors.New("term cutoff date is required")
	}
	if c.AreaPolicy != AreaByDistrict && c.AreaPolicy != AreaByChamber {
		return fmt.Errorf("unknown area policy %q", c.AreaPolicy)
	}
	return nil
}
