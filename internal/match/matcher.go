package match

import (
	"context"
	"fmt"
	"log/slog"

	"dossard/internal/store"
	"dossard/internal/textutil"
)

// Summary reports the outcome of one matching pass over an event.
type Summary struct {
	Total     int
	Matched   int
	Unmatched int
	MatchRate float64
}

// Matcher resolves result rows against the athletes table.
type Matcher struct {
	store  *store.Store
	logger *slog.Logger
}

// New constructs a matcher. The logger may be nil.
func New(st *store.Store, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{store: st, logger: logger}
}

// MatchResults links every result of the event to a registered athlete where
// an unambiguous exact match exists, and returns the aggregate counts.
func (m *Matcher) MatchResults(ctx context.Context, eventID int64) (Summary, error) {
	athletes, err := m.store.ListAthletes(ctx)
	if err != nil {
		return Summary{}, err
	}
	results, err := m.store.ResultsForEvent(ctx, eventID)
	if err != nil {
		return Summary{}, err
	}

	byNameYear := make(map[string][]store.Athlete)
	byName := make(map[string][]store.Athlete)
	for _, ath := range athletes {
		name := nameKey(ath.FirstName, ath.LastName)
		byName[name] = append(byName[name], ath)
		if ath.BirthYear != 0 {
			byNameYear[yearKey(name, ath.BirthYear)] = append(byNameYear[yearKey(name, ath.BirthYear)], ath)
		}
	}

	summary := Summary{Total: len(results)}
	links := make(map[int64]int64)
	for _, res := range results {
		ath, ok := resolve(res, byNameYear, byName)
		if !ok {
			summary.Unmatched++
			continue
		}
		summary.Matched++
		links[res.ID] = ath.ID
	}

	if err := m.store.LinkResults(ctx, links); err != nil {
		return Summary{}, err
	}

	if summary.Total > 0 {
		summary.MatchRate = float64(summary.Matched) / float64(summary.Total)
	}
	m.logger.Info("athlete matching complete",
		slog.Int64("event_id", eventID),
		slog.Int("total", summary.Total),
		slog.Int("matched", summary.Matched),
		slog.Int("unmatched", summary.Unmatched),
	)
	return summary, nil
}

// resolve prefers a name+year match; a name-only match counts only when a
// single athlete carries that name.
func resolve(res store.Result, byNameYear, byName map[string][]store.Athlete) (store.Athlete, bool) {
	name := nameKey(res.FirstName, res.LastName)
	if res.BirthYear != 0 {
		if candidates := byNameYear[yearKey(name, res.BirthYear)]; len(candidates) == 1 {
			return candidates[0], true
		}
	}
	if candidates := byName[name]; len(candidates) == 1 {
		return candidates[0], true
	}
	return store.Athlete{}, false
}

func nameKey(first, last string) string {
	return textutil.FoldName(last) + "|" + textutil.FoldName(first)
}

func yearKey(name string, year int) string {
	return fmt.Sprintf("%s|%d", name, year)
}
