package store

import (
	"context"
	"fmt"
	"time"

	"dossard/internal/record"
	"dossard/internal/services"
)

// CommitImport inserts the event and its result batch in one transaction, so
// readers never observe the event without its results. A slug collision rolls
// everything back and yields ErrSlugExists (tagged services.ErrConflict).
func (s *Store) CommitImport(ctx context.Context, name, city, date, slug, batchID string, records []record.Record) (*Event, error) {
	if slug == "" {
		return nil, services.Wrap(services.ErrValidation, "store", "commit import", "slug must not be empty", nil)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "commit import", "begin tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM events WHERE slug = ?", slug).Scan(&count); err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "commit import", "check slug", err)
	}
	if count > 0 {
		return nil, services.Wrap(services.ErrConflict, "store", "commit import",
			fmt.Sprintf("slug %q", slug), ErrSlugExists)
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		"INSERT INTO events (name, city, event_date, slug, created_at) VALUES (?, ?, ?, ?, ?)",
		name, city, date, slug, now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "commit import", "insert event", err)
	}
	eventID, err := res.LastInsertId()
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "commit import", "read event id", err)
	}

	if err := insertResultsTx(ctx, tx, eventID, batchID, records); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "commit import", "commit", err)
	}
	return &Event{ID: eventID, Name: name, City: city, Date: date, Slug: slug, CreatedAt: now}, nil
}
