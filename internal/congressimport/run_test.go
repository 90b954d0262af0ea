package congressimport_test

import (
	"context"
	"errors"
	"testing"

	"github.com/EmpoweredVote/EV-Legislators/internal/congressimport"
)

// stubSource implements congressimport.DocumentSource without any network
// dependency.
type stubSource struct {
	docs map[string][]congressimport.Person
	err  error
}

func (s stubSource) Fetch(_ context.Context, url string) ([]congressimport.Person, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.docs[url], nil
}

type termKey struct {
	Bioguide string
	Session  int
}

// memorySink stores rows keyed like the real table, so tests can check the
// upsert invariant without a database.
type memorySink struct {
	rows    map[termKey]congressimport.OutputRow
	upserts int
}

func newMemorySink() *memorySink {
	return &memorySink{rows: make(map[termKey]congressimport.OutputRow)}
}

func (m *memorySink) Upsert(_ context.Context, row congressimport.OutputRow) error {
	m.upserts++
	m.rows[termKey{row.BioguideID, row.SessionID}] = row
	return nil
}

// TestImport_Idempotent verifies that running the pipeline twice over the
// same input yields the same row set: the second pass overwrites, it never
// duplicates.
func TestImport_Idempotent(t *testing.T) {
	source := stubSource{docs: map[string][]congressimport.Person{
		"current": {testPerson()},
	}}
	sink := newMemorySink()
	asm := modernAssembler()

	sum1, _, err := congressimport.Import(context.Background(), source, sink, asm, []string{"current"})
	if err != nil {
		t.Fatalf("first import: %v", err)
	}
	firstCount := len(sink.rows)
	if firstCount == 0 {
		t.Fatal("expected rows from first import")
	}

	sum2, _, err := congressimport.Import(context.Background(), source, sink, asm, []string{"current"})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if len(sink.rows) != firstCount {
		t.Errorf("row set grew on re-import: %d -> %d", firstCount, len(sink.rows))
	}
	if sum1.Rows != sum2.Rows {
		t.Errorf("summaries differ between identical runs: %d vs %d", sum1.Rows, sum2.Rows)
	}
	if sink.upserts != sum1.Rows+sum2.Rows {
		t.Errorf("expected every row re-upserted, got %d upserts", sink.upserts)
	}
}

// TestImport_SkipsDoNotAbort verifies a malformed person in the middle of a
// document does not stop the persons after it from being processed.
func TestImport_SkipsDoNotAbort(t *testing.T) {
	bad := testPerson()
	bad.Bio.Gender = "Q"
	bad.ID = map[string]any{"bioguide": "X000001"}

	source := stubSource{docs: map[string][]congressimport.Person{
		"current": {bad, testPerson()},
	}}
	sink := newMemorySink()

	sum, skips, err := congressimport.Import(context.Background(), source, sink, modernAssembler(), []string{"current"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if sum.Persons != 2 {
		t.Errorf("expected both persons visited, got %d", sum.Persons)
	}
	if len(skips) != 1 || skips[0].BioguideID != "X000001" {
		t.Errorf("expected one skip for X000001, got %v", skips)
	}
	if len(sink.rows) == 0 {
		t.Error("expected rows from the healthy person")
	}
	if sum.Skips != 1 {
		t.Errorf("expected skip count 1, got %d", sum.Skips)
	}
}

// TestImport_FetchFailureIsFatal verifies a document-source failure aborts
// the whole run, unlike record-level failures.
func TestImport_FetchFailureIsFatal(t *testing.T) {
	source := stubSource{err: errors.New("connection refused")}

	_, _, err := congressimport.Import(context.Background(), source, newMemorySink(), modernAssembler(), []string{"current"})
	if err == nil {
		t.Fatal("expected a fatal error from the failed fetch")
	}
}

// TestConfig_EraPresets verifies both presets fill the reconciliation
// parameters and that explicit values win over the preset.
func TestConfig_EraPresets(t *testing.T) {
	cfg := congressimport.Config{URLs: []string{"x"}, DryRun: true}
	if err := cfg.ApplyEra(); err != nil {
		t.Fatalf("modern preset: %v", err)
	}
	if cfg.Cutoff != "2007-01-03" || cfg.MinSessionID != 110 || cfg.AreaPolicy != congressimport.AreaByDistrict {
		t.Errorf("unexpected modern preset: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("modern preset should validate: %v", err)
	}

	cfg = congressimport.Config{URLs: []string{"x"}, DryRun: true, Era: congressimport.EraHistoric, Cutoff: "1981-01-01"}
	if err := cfg.ApplyEra(); err != nil {
		t.Fatalf("historic preset: %v", err)
	}
	if cfg.Cutoff != "1981-01-01" {
		t.Errorf("explicit cutoff should win over the preset, got %q", cfg.Cutoff)
	}
	if cfg.MinSessionID != 95 || cfg.AreaPolicy != congressimport.AreaByChamber {
		t.Errorf("unexpected historic preset: %+v", cfg)
	}

	cfg = congressimport.Config{Era: "victorian"}
	if err := cfg.ApplyEra(); err == nil {
		t.Error("expected an error for an unknown era")
	}
}

// TestConfig_Validate covers the rejection paths.
func TestConfig_Validate(t *testing.T) {
	cfg := congressimport.Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing URLs")
	}

	cfg = congressimport.Config{URLs: []string{"x"}}
	_ = cfg.ApplyEra()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing DatabaseURL without DryRun")
	}

	cfg = congressimport.Config{URLs: []string{"x"}, DryRun: true, AreaPolicy: "zipcode"}
	_ = cfg.ApplyEra()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown area policy")
	}
}
