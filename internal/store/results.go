package store

import (
	"context"
	"database/sql"
	"time"

	"dossard/internal/record"
	"dossard/internal/services"
)

// Result is a stored result row.
type Result struct {
	ID               int64
	EventID          int64
	BatchID          string
	Bib              string
	FirstName        string
	LastName         string
	Gender           string
	BirthYear        int
	BirthDate        string
	City             string
	Club             string
	Category         string
	FinishTime       string
	FinishDisplay    string
	OverallRank      int
	GenderRank       int
	CategoryRank     int
	Status           string
	MatchedAthleteID int64
}

// InsertResultBatch writes every record for one event inside a single
// transaction. On any failure the transaction rolls back and the event has
// no visible results from this batch.
func (s *Store) InsertResultBatch(ctx context.Context, eventID int64, batchID string, records []record.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return services.Wrap(services.ErrStore, "store", "insert batch", "begin tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertResultsTx(ctx, tx, eventID, batchID, records); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return services.Wrap(services.ErrStore, "store", "insert batch", "commit", err)
	}
	return nil
}

func insertResultsTx(ctx context.Context, tx *sql.Tx, eventID int64, batchID string, records []record.Record) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO results (
        event_id, batch_id, bib, first_name, last_name, gender,
        birth_year, birth_date, city, club, category,
        finish_time, finish_display, rank_overall, rank_gender, rank_category,
        status, created_at
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return services.Wrap(services.ErrStore, "store", "insert batch", "prepare", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			eventID, batchID,
			nullString(rec.Bib), rec.FirstName, rec.LastName, nullString(rec.Gender),
			nullInt(rec.BirthYear), nullString(rec.BirthDate),
			nullString(rec.City), nullString(rec.Club), nullString(rec.Category),
			nullString(rec.FinishTime), nullString(rec.FinishDisplay),
			nullInt(rec.OverallRank), nullInt(rec.GenderRank), nullInt(rec.CategoryRank),
			rec.Status, now,
		)
		if err != nil {
			return services.Wrap(services.ErrStore, "store", "insert batch", "insert result", err)
		}
	}
	return nil
}

// ResultsForEvent returns all results for the event ordered by overall rank,
// unranked rows last.
func (s *Store) ResultsForEvent(ctx context.Context, eventID int64) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
        id, event_id, batch_id, bib, first_name, last_name, gender,
        birth_year, birth_date, city, club, category,
        finish_time, finish_display, rank_overall, rank_gender, rank_category,
        status, matched_athlete_id
    FROM results WHERE event_id = ?
    ORDER BY rank_overall IS NULL, rank_overall, id`, eventID)
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "load results", "", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var res Result
		var bib, gender, birthDate, city, club, category, finish, display sql.NullString
		var birthYear, rankOverall, rankGender, rankCategory, athleteID sql.NullInt64
		err := rows.Scan(
			&res.ID, &res.EventID, &res.BatchID, &bib, &res.FirstName, &res.LastName, &gender,
			&birthYear, &birthDate, &city, &club, &category,
			&finish, &display, &rankOverall, &rankGender, &rankCategory,
			&res.Status, &athleteID,
		)
		if err != nil {
			return nil, services.Wrap(services.ErrStore, "store", "load results", "scan", err)
		}
		res.Bib = bib.String
		res.Gender = gender.String
		res.BirthYear = int(birthYear.Int64)
		res.BirthDate = birthDate.String
		res.City = city.String
		res.Club = club.String
		res.Category = category.String
		res.FinishTime = finish.String
		res.FinishDisplay = display.String
		res.OverallRank = int(rankOverall.Int64)
		res.GenderRank = int(rankGender.Int64)
		res.CategoryRank = int(rankCategory.Int64)
		res.MatchedAthleteID = athleteID.Int64
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "load results", "", err)
	}
	return results, nil
}

// CountResults returns the number of results stored for the event.
func (s *Store) CountResults(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM results WHERE event_id = ?", eventID).Scan(&count)
	if err != nil {
		return 0, services.Wrap(services.ErrStore, "store", "count results", "", err)
	}
	return count, nil
}

// LinkResults stamps matched athlete ids onto result rows in one
// transaction. Keys are result ids, values athlete ids.
func (s *Store) LinkResults(ctx context.Context, links map[int64]int64) error {
	if len(links) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return services.Wrap(services.ErrStore, "store", "link results", "begin tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "UPDATE results SET matched_athlete_id = ? WHERE id = ?")
	if err != nil {
		return services.Wrap(services.ErrStore, "store", "link results", "prepare", err)
	}
	defer stmt.Close()

	for resultID, athleteID := range links {
		if _, err := stmt.ExecContext(ctx, athleteID, resultID); err != nil {
			return services.Wrap(services.ErrStore, "store", "link results", "update", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return services.Wrap(services.ErrStore, "store", "link results", "commit", err)
	}
	return nil
}
