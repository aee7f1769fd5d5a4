package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"dossard/internal/config"
	"dossard/internal/dialect"
	"dossard/internal/mapping"
	"dossard/internal/match"
	"dossard/internal/record"
	"dossard/internal/services"
	"dossard/internal/store"
	"dossard/internal/textutil"
)

// Step names a session state.
type Step int

const (
	StepAwaitingFile Step = iota
	StepMapping
	StepAwaitingDecision
	StepCommitting
	StepDone
	StepFailed
)

func (s Step) String() string {
	switch s {
	case StepAwaitingFile:
		return "awaiting-file"
	case StepMapping:
		return "mapping"
	case StepAwaitingDecision:
		return "awaiting-decision"
	case StepCommitting:
		return "committing"
	case StepDone:
		return "done"
	case StepFailed:
		return "failed"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Decision resolves a slug collision. There is no merge outcome.
type Decision int

const (
	DecisionAbort Decision = iota
	DecisionReplace
)

// DecideFunc is called when an import collides with an existing event.
type DecideFunc func(existing *store.Event) Decision

// ErrAborted marks an import the operator chose not to complete.
var ErrAborted = errors.New("import aborted")

// Identity is the event identity an import targets. The slug is derived,
// never supplied.
type Identity struct {
	Name string
	City string
	Date string
	Slug string
}

// NewIdentity derives the slug from name, city, and date.
func NewIdentity(name, city, date string) Identity {
	return Identity{
		Name: name,
		City: city,
		Date: date,
		Slug: textutil.Slugify(name, city, date),
	}
}

// Session is the mutable state of one import.
type Session struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *store.Store
	matcher *match.Matcher

	step    Step
	dialect dialect.Dialect
	table   *dialect.RawTable
	mapping *mapping.Mapping
}

// NewSession builds a session in the AwaitingFile state. The matcher may be
// nil to skip post-commit matching.
func NewSession(cfg *config.Config, logger *slog.Logger, st *store.Store, matcher *match.Matcher) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		matcher: matcher,
		step:    StepAwaitingFile,
	}
}

// Step returns the current session state.
func (s *Session) Step() Step {
	return s.step
}

// LoadFile parses the raw file text, detects its dialect, and proposes an
// automatic mapping. Moves the session from AwaitingFile to Mapping.
func (s *Session) LoadFile(text string) error {
	if s.step != StepAwaitingFile {
		return s.stepError("load file", StepAwaitingFile)
	}

	table, d, err := dialect.Parse(text)
	if err != nil {
		if errors.Is(err, dialect.ErrFileEmpty) {
			return services.Wrap(services.ErrValidation, "importer", "load file", "file is empty", err)
		}
		return services.Wrap(services.ErrValidation, "importer", "load file", "", err)
	}

	s.table = table
	s.dialect = d
	s.mapping = mapping.AutoMap(table.Headers)
	s.step = StepMapping

	s.logger.Debug("file loaded",
		slog.Bool("vendor", d.Vendor),
		slog.String("delimiter", string(d.Delimiter)),
		slog.Int("headers", len(table.Headers)),
		slog.Int("rows", len(table.Rows)),
	)
	return nil
}

// Dialect returns the detected dialect. Valid once a file is loaded.
func (s *Session) Dialect() dialect.Dialect {
	return s.dialect
}

// Headers returns the detected header labels, the candidates for every
// mapping override.
func (s *Session) Headers() []string {
	if s.table == nil {
		return nil
	}
	return s.table.Headers
}

// Rows returns the raw data rows for preview purposes.
func (s *Session) Rows() []dialect.Row {
	if s.table == nil {
		return nil
	}
	return s.table.Rows
}

// Mapping exposes the current column mapping for display and override.
func (s *Session) Mapping() *mapping.Mapping {
	return s.mapping
}

// Override rebinds one canonical field to a detected header label, or clears
// it when the label is empty. Only legal while mapping.
func (s *Session) Override(field mapping.Field, header string) error {
	if s.step != StepMapping {
		return s.stepError("override mapping", StepMapping)
	}
	if header != "" && !s.hasHeader(header) {
		return services.Wrap(services.ErrValidation, "importer", "override mapping",
			fmt.Sprintf("header %q not present in file", header), nil)
	}
	if err := s.mapping.Bind(field, header); err != nil {
		return services.Wrap(services.ErrValidation, "importer", "override mapping", "", err)
	}
	return nil
}

// Preview assembles the batch without touching the store. The session stays
// in the Mapping state, so the operator can keep adjusting.
func (s *Session) Preview() (*record.Batch, error) {
	if s.step != StepMapping {
		return nil, s.stepError("preview", StepMapping)
	}
	return record.Assemble(s.table, s.mapping)
}

// Commit runs the write side of the import: resolve the event identity,
// insert the event and its records atomically, then run athlete matching.
// decide is consulted only when the slug collides with an existing event.
func (s *Session) Commit(ctx context.Context, identity Identity, decide DecideFunc) (*Report, error) {
	if s.step != StepMapping {
		return nil, s.stepError("commit", StepMapping)
	}

	batch, err := record.Assemble(s.table, s.mapping)
	if err != nil {
		return nil, err
	}

	lock := flock.New(s.cfg.LockPath())
	if err := lock.Lock(); err != nil {
		s.step = StepFailed
		return nil, services.Wrap(services.ErrStore, "importer", "commit", "acquire import lock", err)
	}
	defer func() { _ = lock.Unlock() }()

	existing, err := s.store.FindEventBySlug(ctx, identity.Slug)
	if err != nil {
		s.step = StepFailed
		return nil, err
	}
	if existing != nil {
		s.step = StepAwaitingDecision
		if decide == nil {
			s.step = StepFailed
			return nil, services.Wrap(services.ErrConflict, "importer", "commit",
				fmt.Sprintf("event %q already exists and no decision was provided", identity.Slug), ErrAborted)
		}
		switch decide(existing) {
		case DecisionReplace:
			if err := s.store.DeleteEvent(ctx, existing.ID); err != nil {
				s.step = StepFailed
				return nil, err
			}
			s.logger.Info("replaced existing event",
				slog.String("slug", identity.Slug),
				slog.Int64("previous_event_id", existing.ID),
			)
		default:
			s.step = StepFailed
			return nil, services.Wrap(services.ErrConflict, "importer", "commit",
				fmt.Sprintf("event %q already exists", identity.Slug), ErrAborted)
		}
	}

	s.step = StepCommitting
	batchID := uuid.NewString()
	evt, err := s.store.CommitImport(ctx, identity.Name, identity.City, identity.Date, identity.Slug, batchID, batch.Records)
	if err != nil {
		s.step = StepFailed
		return nil, err
	}

	report := &Report{
		EventID:  evt.ID,
		Slug:     evt.Slug,
		BatchID:  batchID,
		Rows:     len(batch.Records),
		Skipped:  batch.Skipped,
		Unparsed: batch.Unparsed,
	}

	if s.matcher != nil {
		summary, err := s.matcher.MatchResults(ctx, evt.ID)
		if err != nil {
			// Matching is a reporting concern; the committed import stands.
			s.logger.Warn("athlete matching failed", slog.String("slug", evt.Slug), slog.Any("error", err))
		} else {
			report.Match = &summary
		}
	}

	s.step = StepDone
	s.logger.Info("import committed",
		slog.String("slug", evt.Slug),
		slog.String("batch_id", batchID),
		slog.Int("rows", report.Rows),
		slog.Int("skipped", report.Skipped),
	)
	return report, nil
}

func (s *Session) hasHeader(header string) bool {
	for _, h := range s.table.Headers {
		if h == header {
			return true
		}
	}
	return false
}

func (s *Session) stepError(operation string, want Step) error {
	return services.Wrap(services.ErrValidation, "importer", operation,
		fmt.Sprintf("session is %s, expected %s", s.step, want), nil)
}
