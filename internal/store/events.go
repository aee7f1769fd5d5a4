package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dossard/internal/services"
)

// ErrSlugExists marks an event insert that collided with an existing slug.
// The caller must resolve the collision explicitly (replace or abort).
var ErrSlugExists = errors.New("event slug already exists")

// Event is a stored event identity.
type Event struct {
	ID        int64
	Name      string
	City      string
	Date      string
	Slug      string
	CreatedAt time.Time
}

// InsertEvent creates a new event row. A slug collision yields ErrSlugExists
// (tagged services.ErrConflict); nothing is written in that case.
func (s *Store) InsertEvent(ctx context.Context, name, city, date, slug string) (*Event, error) {
	if slug == "" {
		return nil, services.Wrap(services.ErrValidation, "store", "insert event", "slug must not be empty", nil)
	}

	existing, err := s.FindEventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, services.Wrap(services.ErrConflict, "store", "insert event",
			fmt.Sprintf("slug %q", slug), ErrSlugExists)
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO events (name, city, event_date, slug, created_at) VALUES (?, ?, ?, ?, ?)",
		name, city, date, slug, now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "insert event", "", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "insert event", "read id", err)
	}

	return &Event{ID: id, Name: name, City: city, Date: date, Slug: slug, CreatedAt: now}, nil
}

// FindEventBySlug returns the event with the given slug, or nil when absent.
func (s *Store) FindEventBySlug(ctx context.Context, slug string) (*Event, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, city, event_date, slug, created_at FROM events WHERE slug = ?", slug)
	return scanEvent(row)
}

// GetEvent returns the event with the given id, or nil when absent.
func (s *Store) GetEvent(ctx context.Context, id int64) (*Event, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, city, event_date, slug, created_at FROM events WHERE id = ?", id)
	return scanEvent(row)
}

// ListEvents returns all events, most recent date first.
func (s *Store) ListEvents(ctx context.Context) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, city, event_date, slug, created_at FROM events ORDER BY event_date DESC, id DESC")
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "list events", "", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var evt Event
		var created string
		if err := rows.Scan(&evt.ID, &evt.Name, &evt.City, &evt.Date, &evt.Slug, &created); err != nil {
			return nil, services.Wrap(services.ErrStore, "store", "list events", "scan", err)
		}
		evt.CreatedAt, _ = time.Parse(time.RFC3339, created)
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "list events", "", err)
	}
	return events, nil
}

// DeleteEvent removes the event and, via cascade, all of its results.
func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return services.Wrap(services.ErrStore, "store", "delete event", "", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return services.Wrap(services.ErrStore, "store", "delete event", "rows affected", err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "store", "delete event",
			fmt.Sprintf("event %d", id), nil)
	}
	return nil
}

func scanEvent(row *sql.Row) (*Event, error) {
	var evt Event
	var created string
	err := row.Scan(&evt.ID, &evt.Name, &evt.City, &evt.Date, &evt.Slug, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "store", "scan event", "", err)
	}
	evt.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &evt, nil
}
