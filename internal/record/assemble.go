package record

import (
	"errors"
	"strconv"
	"strings"

	"dossard/internal/dialect"
	"dossard/internal/mapping"
	"dossard/internal/normalize"
	"dossard/internal/services"
)

// ErrMappingIncomplete marks an assembly attempted before both name columns
// are bound.
var ErrMappingIncomplete = errors.New("mapping incomplete")

// Batch is the assembled output for one import: the records that passed
// required-field validation, the count of rows that did not, and per-field
// counts of cells that failed to normalize.
type Batch struct {
	Records  []Record
	Skipped  int
	Unparsed map[mapping.Field]int
}

// Assemble builds one Record per raw row using the given mapping. It refuses
// an incomplete mapping (first and last name unbound) with a validation
// error; everything below that degrades per row or per cell.
func Assemble(table *dialect.RawTable, m *mapping.Mapping) (*Batch, error) {
	if !m.Complete() {
		return nil, services.Wrap(services.ErrValidation, "record", "assemble",
			"first_name and last_name must be bound", ErrMappingIncomplete)
	}

	batch := &Batch{Unparsed: make(map[mapping.Field]int)}
	for _, row := range table.Rows {
		cell := func(f mapping.Field) string {
			header, ok := m.Header(f)
			if !ok {
				return ""
			}
			return strings.TrimSpace(row[header])
		}

		first := cell(mapping.FieldFirstName)
		last := cell(mapping.FieldLastName)
		if first == "" || last == "" {
			batch.Skipped++
			continue
		}

		rec := Record{
			Bib:       cell(mapping.FieldBibNumber),
			FirstName: first,
			LastName:  last,
			Gender:    normalizeGender(cell(mapping.FieldGender)),
			City:      cell(mapping.FieldCity),
			Club:      cell(mapping.FieldClub),
			Category:  cell(mapping.FieldCategory),
			Status:    StatusFinished,
		}

		if raw := cell(mapping.FieldBirthDate); raw != "" {
			date := normalize.ParseFrenchDate(raw)
			if date.OK {
				rec.BirthDate = date.Val
			} else {
				batch.Unparsed[mapping.FieldBirthDate]++
			}
		}
		if raw := cell(mapping.FieldBirthYear); raw != "" {
			year := normalize.ParseBirthYear(raw)
			if year.OK {
				rec.BirthYear = year.Val
			} else {
				batch.Unparsed[mapping.FieldBirthYear]++
			}
		}
		if raw := cell(mapping.FieldFinishTime); raw != "" {
			finish := normalize.ParseTime(raw)
			rec.FinishDisplay = raw
			if finish.OK {
				rec.FinishTime = finish.Val
			} else {
				batch.Unparsed[mapping.FieldFinishTime]++
			}
		}
		// A mapped year column is authoritative; otherwise fall back to the
		// year of a parsed birth date so matching can still key on it.
		if rec.BirthYear == 0 && rec.BirthDate != "" {
			if year := normalize.ParseBirthYear(rec.BirthDate); year.OK {
				rec.BirthYear = year.Val
			}
		}
		rec.OverallRank = parseRank(cell(mapping.FieldOverallRank), mapping.FieldOverallRank, batch)
		rec.GenderRank = parseRank(cell(mapping.FieldGenderRank), mapping.FieldGenderRank, batch)
		rec.CategoryRank = parseRank(cell(mapping.FieldCategoryRank), mapping.FieldCategoryRank, batch)

		batch.Records = append(batch.Records, rec)
	}

	return batch, nil
}

func parseRank(raw string, field mapping.Field, batch *Batch) int {
	if raw == "" {
		return 0
	}
	rank, err := strconv.Atoi(raw)
	if err != nil || rank < 1 {
		batch.Unparsed[field]++
		return 0
	}
	return rank
}

// normalizeGender folds the gender markers French timing files use. "H"
// (homme) appears alongside "M" in the same vendor's exports.
func normalizeGender(raw string) string {
	switch strings.ToUpper(raw) {
	case "M", "H":
		return "M"
	case "F":
		return "F"
	default:
		return ""
	}
}
