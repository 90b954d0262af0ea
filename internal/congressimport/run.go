package congressimport

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/EmpoweredVote/EV-Legislators/internal/db"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Summary reports what one run produced.
type Summary struct {
	Persons int
	Rows    int
	Skips   int
}

// Run executes a full import: fetch each configured document, reconcile every
// person against the session calendar, and upsert the rows inside one
// transaction. A malformed person or term never aborts the run; a fetch
// failure does.
func Run(ctx context.Context, cfg Config) (Summary, error) {
	if err := cfg.ApplyEra(); err != nil {
		return Summary{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	asm := Assembler{
		Calendar:     cfg.Calendar,
		Cutoff:       cfg.Cutoff,
		MinSessionID: cfg.MinSessionID,
		AreaPolicy:   cfg.AreaPolicy,
	}
	source := NewHTTPSource()

	if cfg.DryRun {
		sum, _, err := Import(ctx, source, discardSink{}, asm, cfg.URLs)
		if err != nil {
			return Summary{}, err
		}
		log.Printf("[import] dry run: %d rows from %d persons (%d skipped), nothing written",
			sum.Rows, sum.Persons, sum.Skips)
		return sum, nil
	}

	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return Summary{}, err
	}
	if err := db.EnsureSchema(gdb, "congress"); err != nil {
		return Summary{}, err
	}
	if err := gdb.AutoMigrate(&LegislatorTerm{}, &ImportRun{}); err != nil {
		return Summary{}, err
	}

	run := ImportRun{
		ID:        uuid.New(),
		URLs:      cfg.URLs,
		Era:       string(cfg.Era),
		StartedAt: time.Now(),
	}

	var sum Summary
	err = gdb.Transaction(func(tx *gorm.DB) error {
		s, skips, err := Import(ctx, source, GormSink{DB: tx}, asm, cfg.URLs)
		if err != nil {
			return err
		}
		sum = s

		run.FinishedAt = time.Now()
		run.RowCount = s.Rows
		run.SkipCount = s.Skips
		for _, sk := range skips {
			run.SkippedKeys = append(run.SkippedKeys, sk.BioguideID)
		}
		return tx.Create(&run).Error
	})
	if err != nil {
		return Summary{}, err
	}

	log.Printf("[import] run %s: upserted %d rows from %d persons (%d skipped)",
		run.ID, sum.Rows, sum.Persons, sum.Skips)
	return sum, nil
}

// Import is the transport- and storage-agnostic pipeline. Run wires the real
// collaborators; tests swap in fakes.
func Import(ctx context.Context, source DocumentSource, sink RowSink, asm Assembler, urls []string) (Summary, []Skip, error) {
	var sum Summary
	var allSkips []Skip

	for _, url := range urls {
		persons, err := source.Fetch(ctx, url)
		if err != nil {
			return Summary{}, nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		log.Printf("[import] %s: %d persons", url, len(persons))

		for _, p := range persons {
			rows, skips := asm.Assemble(p)
			for _, sk := range skips {
				log.Printf("[import] skipping %s", sk)
			}
			allSkips = append(allSkips, skips...)

			for _, row := range rows {
				if err := sink.Upsert(ctx, row); err != nil {
					return Summary{}, nil, fmt.Errorf("upsert %s/%d: %w", row.BioguideID, row.SessionID, err)
				}
			}
			sum.Rows += len(rows)
			sum.Persons++
		}
	}

	sum.Skips = len(allSkips)
	return sum, allSkips, nil
}

// discardSink drops rows; dry runs use it to exercise the pipeline without a
// database.
type discardSink struct{}

func (discardSink) Upsert(context.Context, OutputRow) error { return nil }
