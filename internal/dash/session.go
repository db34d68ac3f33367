// Package dash ties one search-dialog session together: a fresh crawl of the
// host menu, the history store validated against it, and confirmation of
// the selected label.
package dash

import (
	"context"

	"github.com/renato0307/dash/internal/history"
	"github.com/renato0307/dash/internal/logging"
	"github.com/renato0307/dash/internal/menu"
)

// Session is the state of one open dialog. Nothing is persisted unless
// Confirm succeeds; dropping the session discards it.
type Session struct {
	entries *menu.Entries
	history *history.Store
}

// Open crawls roots and loads the history, keeping only labels the crawl
// produced.
func Open(ctx context.Context, roots []menu.Node, cfg history.Config, backend history.Backend) *Session {
	entries := menu.Crawl(roots)
	store := history.New(cfg, entries.Labels(), backend)
	store.Load(ctx)

	logging.Debug("dash session opened",
		"entries", entries.Len(),
		"history", store.Len(),
	)

	return &Session{
		entries: entries,
		history: store,
	}
}

// Entries returns the crawled label -> action mapping.
func (s *Session) Entries() *menu.Entries {
	return s.entries
}

// History returns the session's history store.
func (s *Session) History() *history.Store {
	return s.history
}

// Match returns labels containing query (case-insensitive).
func (s *Session) Match(query string) []string {
	return s.entries.Match(query)
}

// Valid reports whether text is exactly one of the crawled labels.
func (s *Session) Valid(text string) bool {
	return s.entries.Has(text)
}

// Confirm returns the action for text and records it in the history. Text
// that is not a known label is rejected without touching the history.
func (s *Session) Confirm(ctx context.Context, text string) (menu.Action, bool) {
	action, ok := s.entries.Get(text)
	if !ok {
		logging.Debug("rejecting unknown selection", "text", text)
		return nil, false
	}
	s.history.Update(ctx, text)
	return action, true
}
