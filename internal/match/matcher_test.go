package match_test

import (
	"context"
	"testing"

	"dossard/internal/match"
	"dossard/internal/record"
	"dossard/internal/store"
	"dossard/internal/testsupport"
)

func seedEvent(t *testing.T, st *store.Store, records []record.Record) int64 {
	t.Helper()
	evt, err := st.InsertEvent(context.Background(), "Course", "Lyon", "2025-01-01", "course-lyon-2025-01-01")
	if err != nil {
		t.Fatalf("InsertEvent failed: %v", err)
	}
	if err := st.InsertResultBatch(context.Background(), evt.ID, "batch-1", records); err != nil {
		t.Fatalf("InsertResultBatch failed: %v", err)
	}
	return evt.ID
}

func TestMatchResults(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.InsertAthletes(ctx, []store.Athlete{
		{FirstName: "Jean", LastName: "Dupont", BirthYear: 1990},
		{FirstName: "Jean", LastName: "Dupont", BirthYear: 1975},
		{FirstName: "Léa", LastName: "Martin"},
	}); err != nil {
		t.Fatalf("InsertAthletes failed: %v", err)
	}

	eventID := seedEvent(t, st, []record.Record{
		// Year disambiguates between the two Jean Dupont entries.
		{FirstName: "Jean", LastName: "Dupont", BirthYear: 1990, Status: record.StatusFinished},
		// Accent and case differences fold away.
		{FirstName: "LEA", LastName: "MARTIN", Status: record.StatusFinished},
		// No year, two candidates: ambiguous, stays unmatched.
		{FirstName: "Jean", LastName: "Dupont", Status: record.StatusFinished},
		// Nobody registered under this name.
		{FirstName: "Paul", LastName: "Durand", Status: record.StatusFinished},
	})

	summary, err := match.New(st, nil).MatchResults(ctx, eventID)
	if err != nil {
		t.Fatalf("MatchResults failed: %v", err)
	}
	if summary.Total != 4 || summary.Matched != 2 || summary.Unmatched != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.MatchRate != 0.5 {
		t.Fatalf("MatchRate = %v, want 0.5", summary.MatchRate)
	}

	results, err := st.ResultsForEvent(ctx, eventID)
	if err != nil {
		t.Fatalf("ResultsForEvent failed: %v", err)
	}
	linked := 0
	for _, res := range results {
		if res.MatchedAthleteID != 0 {
			linked++
		}
	}
	if linked != 2 {
		t.Fatalf("expected 2 linked results, got %d", linked)
	}
}

func TestMatchResultsEmptyEvent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	eventID := seedEvent(t, st, nil)
	summary, err := match.New(st, nil).MatchResults(context.Background(), eventID)
	if err != nil {
		t.Fatalf("MatchResults failed: %v", err)
	}
	if summary.Total != 0 || summary.MatchRate != 0 {
		t.Fatalf("unexpected summary for empty event: %+v", summary)
	}
}
