package importer_test

import (
	"context"
	"errors"
	"testing"

	"dossard/internal/importer"
	"dossard/internal/mapping"
	"dossard/internal/match"
	"dossard/internal/services"
	"dossard/internal/store"
	"dossard/internal/testsupport"
)

const vendorFile = "ENG\tATH\tV2\n" +
	"Name\tFirst name\tSex\tBib\n" +
	"Nom\tPrenom\tSexe\tDossard\n" +
	"Dupont\tJean\tM\t101\n"

func newSession(t *testing.T) (*importer.Session, *store.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	return importer.NewSession(cfg, nil, st, match.New(st, nil)), st
}

func TestNewIdentityDerivesSlug(t *testing.T) {
	id := importer.NewIdentity("Trail des Vignes", "Bordeaux", "2025-06-01")
	if id.Slug != "trail-des-vignes-bordeaux-2025-06-01" {
		t.Fatalf("slug = %q", id.Slug)
	}
}

func TestSessionOrdering(t *testing.T) {
	sess, _ := newSession(t)

	if _, err := sess.Preview(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("Preview before LoadFile: %v", err)
	}
	if err := sess.Override(mapping.FieldGender, "Sexe"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("Override before LoadFile: %v", err)
	}
	if _, err := sess.Commit(context.Background(), importer.NewIdentity("A", "B", "2025-01-01"), nil); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("Commit before LoadFile: %v", err)
	}

	if err := sess.LoadFile(vendorFile); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if sess.Step() != importer.StepMapping {
		t.Fatalf("step = %v, want mapping", sess.Step())
	}
	if err := sess.LoadFile(vendorFile); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("second LoadFile should be rejected: %v", err)
	}
}

func TestSessionLoadEmptyFile(t *testing.T) {
	sess, _ := newSession(t)
	err := sess.LoadFile("\n\n")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty file, got %v", err)
	}
}

func TestSessionEndToEndVendorFile(t *testing.T) {
	sess, st := newSession(t)
	ctx := context.Background()

	if err := sess.LoadFile(vendorFile); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !sess.Dialect().Vendor {
		t.Fatal("vendor dialect not detected")
	}

	m := sess.Mapping()
	for field, want := range map[mapping.Field]string{
		mapping.FieldLastName:  "Nom",
		mapping.FieldFirstName: "Prenom",
		mapping.FieldGender:    "Sexe",
		mapping.FieldBibNumber: "Dossard",
	} {
		if got, _ := m.Header(field); got != want {
			t.Fatalf("auto-mapping %s = %q, want %q", field, got, want)
		}
	}

	report, err := sess.Commit(ctx, importer.NewIdentity("Trail des Vignes", "Bordeaux", "2025-06-01"), nil)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if sess.Step() != importer.StepDone {
		t.Fatalf("step = %v, want done", sess.Step())
	}
	if report.Rows != 1 || report.Skipped != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Match == nil || report.Match.Total != 1 {
		t.Fatalf("expected match summary over 1 result: %+v", report.Match)
	}

	results, err := st.ResultsForEvent(ctx, report.EventID)
	if err != nil {
		t.Fatalf("ResultsForEvent failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 stored result, got %d", len(results))
	}
	rec := results[0]
	if rec.FirstName != "Jean" || rec.LastName != "Dupont" || rec.Gender != "M" || rec.Bib != "101" {
		t.Fatalf("unexpected stored record: %#v", rec)
	}
	if rec.Status != "finished" {
		t.Fatalf("status = %q", rec.Status)
	}
}

func TestSessionCommitIncompleteMapping(t *testing.T) {
	sess, _ := newSession(t)

	if err := sess.LoadFile("Dossard,Sexe\n101,M\n"); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	_, err := sess.Commit(context.Background(), importer.NewIdentity("A", "B", "2025-01-01"), nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected mapping-incomplete validation error, got %v", err)
	}
}

func TestSessionOverride(t *testing.T) {
	sess, _ := newSession(t)
	if err := sess.LoadFile("Family,Given\nDupont,Jean\n"); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if sess.Mapping().Complete() {
		t.Fatal("unknown headers should not auto-map")
	}
	if err := sess.Override(mapping.FieldLastName, "Family"); err != nil {
		t.Fatalf("Override failed: %v", err)
	}
	if err := sess.Override(mapping.FieldFirstName, "Given"); err != nil {
		t.Fatalf("Override failed: %v", err)
	}
	if err := sess.Override(mapping.FieldCity, "Hometown"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("override with absent header should fail: %v", err)
	}

	batch, err := sess.Preview()
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if len(batch.Records) != 1 || batch.Records[0].LastName != "Dupont" {
		t.Fatalf("unexpected preview batch: %+v", batch)
	}
	if sess.Step() != importer.StepMapping {
		t.Fatal("Preview must not advance the session")
	}
}

func TestSessionCollisionAbort(t *testing.T) {
	sess, st := newSession(t)
	ctx := context.Background()
	identity := importer.NewIdentity("Course", "Lyon", "2025-01-01")

	if _, err := st.InsertEvent(ctx, identity.Name, identity.City, identity.Date, identity.Slug); err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	if err := sess.LoadFile("Nom,Prenom\nDupont,Jean\n"); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	decided := false
	_, err := sess.Commit(ctx, identity, func(existing *store.Event) importer.Decision {
		decided = true
		return importer.DecisionAbort
	})
	if !errors.Is(err, importer.ErrAborted) || !errors.Is(err, services.ErrConflict) {
		t.Fatalf("expected aborted conflict, got %v", err)
	}
	if !decided {
		t.Fatal("decision callback not consulted")
	}

	events, err := st.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("abort must not write a second event; have %d", len(events))
	}
	count, err := st.CountResults(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("CountResults failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("abort wrote %d results", count)
	}
}

func TestSessionCollisionReplace(t *testing.T) {
	sess, st := newSession(t)
	ctx := context.Background()
	identity := importer.NewIdentity("Course", "Lyon", "2025-01-01")

	prior, err := st.InsertEvent(ctx, identity.Name, identity.City, identity.Date, identity.Slug)
	if err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	if err := st.InsertResultBatch(ctx, prior.ID, "old-batch", nil); err != nil {
		t.Fatalf("seed batch failed: %v", err)
	}
	if err := sess.LoadFile("Nom,Prenom\nDupont,Jean\nMartin,Luc\n"); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	report, err := sess.Commit(ctx, identity, func(existing *store.Event) importer.Decision {
		if existing.ID != prior.ID {
			t.Fatalf("decision saw wrong event: %#v", existing)
		}
		return importer.DecisionReplace
	})
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if report.EventID == prior.ID {
		t.Fatal("replacement should produce a fresh event id")
	}
	if report.Rows != 2 {
		t.Fatalf("report rows = %d, want 2", report.Rows)
	}

	events, err := st.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 1 || events[0].ID != report.EventID {
		t.Fatalf("expected exactly the replacement event, got %#v", events)
	}
}

func TestSessionCollisionWithoutDecider(t *testing.T) {
	sess, st := newSession(t)
	ctx := context.Background()
	identity := importer.NewIdentity("Course", "Lyon", "2025-01-01")

	if _, err := st.InsertEvent(ctx, identity.Name, identity.City, identity.Date, identity.Slug); err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	if err := sess.LoadFile("Nom,Prenom\nDupont,Jean\n"); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if _, err := sess.Commit(ctx, identity, nil); !errors.Is(err, importer.ErrAborted) {
		t.Fatalf("nil decider must abort, got %v", err)
	}
}
