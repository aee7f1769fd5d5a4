package record_test

import (
	"errors"
	"testing"

	"dossard/internal/dialect"
	"dossard/internal/mapping"
	"dossard/internal/record"
	"dossard/internal/services"
)

func completeMapping(t *testing.T, pairs map[mapping.Field]string) *mapping.Mapping {
	t.Helper()
	m := mapping.New()
	for field, header := range pairs {
		if err := m.Bind(field, header); err != nil {
			t.Fatalf("Bind(%s, %s): %v", field, header, err)
		}
	}
	return m
}

func TestAssembleIncompleteMapping(t *testing.T) {
	table := &dialect.RawTable{Headers: []string{"Prenom"}}
	m := completeMapping(t, map[mapping.Field]string{mapping.FieldFirstName: "Prenom"})
	_, err := record.Assemble(table, m)
	if !errors.Is(err, record.ErrMappingIncomplete) || !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected tagged mapping-incomplete error, got %v", err)
	}
}

func TestAssembleFullRow(t *testing.T) {
	table := &dialect.RawTable{
		Headers: []string{"Nom", "Prenom", "Sexe", "Dossard", "Naissance", "Perf", "Clt"},
		Rows: []dialect.Row{{
			"Nom": "Dupont", "Prenom": "Jean", "Sexe": "M", "Dossard": "101",
			"Naissance": "05/03/1990", "Perf": "3156", "Clt": "12",
		}},
	}
	m := completeMapping(t, map[mapping.Field]string{
		mapping.FieldLastName:    "Nom",
		mapping.FieldFirstName:   "Prenom",
		mapping.FieldGender:      "Sexe",
		mapping.FieldBibNumber:   "Dossard",
		mapping.FieldBirthDate:   "Naissance",
		mapping.FieldFinishTime:  "Perf",
		mapping.FieldOverallRank: "Clt",
	})

	batch, err := record.Assemble(table, m)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(batch.Records) != 1 || batch.Skipped != 0 {
		t.Fatalf("expected 1 record, 0 skipped; got %d/%d", len(batch.Records), batch.Skipped)
	}
	rec := batch.Records[0]
	if rec.FirstName != "Jean" || rec.LastName != "Dupont" || rec.Gender != "M" || rec.Bib != "101" {
		t.Fatalf("unexpected identity fields: %+v", rec)
	}
	if rec.BirthDate != "1990-03-05" {
		t.Fatalf("BirthDate = %q", rec.BirthDate)
	}
	if rec.BirthYear != 1990 {
		t.Fatalf("BirthYear not derived from birth date: %d", rec.BirthYear)
	}
	if rec.FinishTime != "00:31:56" || rec.FinishDisplay != "3156" {
		t.Fatalf("finish = %q display %q", rec.FinishTime, rec.FinishDisplay)
	}
	if rec.OverallRank != 12 {
		t.Fatalf("OverallRank = %d", rec.OverallRank)
	}
	if rec.Status != record.StatusFinished {
		t.Fatalf("Status = %q", rec.Status)
	}
}

func TestAssembleSkipsNamelessRows(t *testing.T) {
	table := &dialect.RawTable{
		Headers: []string{"Nom", "Prenom"},
		Rows: []dialect.Row{
			{"Nom": "Dupont", "Prenom": "Jean"},
			{"Nom": "", "Prenom": ""},
			{"Nom": "Martin", "Prenom": "  "},
			{"Nom": "Durand", "Prenom": "Paul"},
		},
	}
	m := completeMapping(t, map[mapping.Field]string{
		mapping.FieldLastName:  "Nom",
		mapping.FieldFirstName: "Prenom",
	})

	batch, err := record.Assemble(table, m)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(batch.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(batch.Records))
	}
	if batch.Skipped != 2 {
		t.Fatalf("expected 2 skipped rows, got %d", batch.Skipped)
	}
}

func TestAssembleCountsUnparsedCells(t *testing.T) {
	table := &dialect.RawTable{
		Headers: []string{"Nom", "Prenom", "Perf", "Clt"},
		Rows: []dialect.Row{
			{"Nom": "Dupont", "Prenom": "Jean", "Perf": "abandon", "Clt": "DNF"},
			{"Nom": "Martin", "Prenom": "Luc", "Perf": "31:56", "Clt": "2"},
		},
	}
	m := completeMapping(t, map[mapping.Field]string{
		mapping.FieldLastName:    "Nom",
		mapping.FieldFirstName:   "Prenom",
		mapping.FieldFinishTime:  "Perf",
		mapping.FieldOverallRank: "Clt",
	})

	batch, err := record.Assemble(table, m)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(batch.Records) != 2 {
		t.Fatalf("unparseable cells must not drop rows; got %d records", len(batch.Records))
	}
	if batch.Unparsed[mapping.FieldFinishTime] != 1 {
		t.Fatalf("finish_time unparsed = %d, want 1", batch.Unparsed[mapping.FieldFinishTime])
	}
	if batch.Unparsed[mapping.FieldOverallRank] != 1 {
		t.Fatalf("overall_rank unparsed = %d, want 1", batch.Unparsed[mapping.FieldOverallRank])
	}
	if batch.Records[0].FinishDisplay != "abandon" {
		t.Fatalf("unparsed finish display lost: %q", batch.Records[0].FinishDisplay)
	}
	if batch.Records[0].FinishTime != "" {
		t.Fatalf("unparsed finish should stay empty, got %q", batch.Records[0].FinishTime)
	}
}

func TestAssembleGenderFolding(t *testing.T) {
	table := &dialect.RawTable{
		Headers: []string{"Nom", "Prenom", "Sexe"},
		Rows: []dialect.Row{
			{"Nom": "Dupont", "Prenom": "Jean", "Sexe": "H"},
			{"Nom": "Martin", "Prenom": "Léa", "Sexe": "f"},
			{"Nom": "Durand", "Prenom": "Paul", "Sexe": "X"},
		},
	}
	m := completeMapping(t, map[mapping.Field]string{
		mapping.FieldLastName:  "Nom",
		mapping.FieldFirstName: "Prenom",
		mapping.FieldGender:    "Sexe",
	})

	batch, err := record.Assemble(table, m)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	genders := []string{batch.Records[0].Gender, batch.Records[1].Gender, batch.Records[2].Gender}
	want := []string{"M", "F", ""}
	for i := range want {
		if genders[i] != want[i] {
			t.Errorf("row %d gender = %q, want %q", i, genders[i], want[i])
		}
	}
}
