package store

import (
	"context"
	"time"

	"dossard/internal/services"
)

// Athlete is a registered athlete available for result matching.
type Athlete struct {
	ID        int64
	FirstName string
	LastName  string
	BirthYear int
}

// InsertAthletes stores the given athletes in one transaction and returns
// how many were written.
func (s *Store) InsertAthletes(ctx context.Context, athletes []Athlete) (int, error) {
	if len(athletes) == 0 {
		return 0, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, services.Wrap(services.ErrStore, "store", "insert athletes", "begin tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO athletes (first_name, last_name, birth_year, created_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, services.Wrap(services.ErrStore, "store", "insert athletes", "prepare", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, ath := range athletes {
		if _, err := stmt.ExecContext(ctx, ath.FirstName, ath.LastName, nullInt(ath.BirthYear), now); err != nil {
			return 0, services.Wrap(services.ErrStore, "store", "insert athletes", "insert", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, services.Wrap(services.ErrStore, "store", "insert athletes", "commit", err)
	}
	return len(athletes), nil
}

// ListAthletes returns all registered athletes.
func (s *Store) ListAthletes(ctx context.Context) ([]Athlete, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, first_name, last_name, COALESCE(birth_year, 0) FROM athletes ORDER BY last_name, first_name, id")
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "list athletes", "", err)
	}
	defer rows.Close()

	var athletes []Athlete
	for rows.Next() {
		var ath Athlete
		if err := rows.Scan(&ath.ID, &ath.FirstName, &ath.LastName, &ath.BirthYear); err != nil {
			return nil, services.Wrap(services.ErrStore, "store", "list athletes", "scan", err)
		}
		athletes = append(athletes, ath)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "list athletes", "", err)
	}
	return athletes, nil
}
