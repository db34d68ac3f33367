// Package history keeps a bounded, most-recent-first list of executed
// command labels, persisted through a Backend and validated against the
// labels that currently exist.
package history

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/dash/internal/logging"
)

const (
	// MinCapacity and MaxCapacity bound the configurable capacity.
	MinCapacity = 1
	MaxCapacity = 99
	// DefaultCapacity is used when no capacity is configured.
	DefaultCapacity = 20
)

// Config holds the store settings. Range checks on Capacity belong to the
// configuration layer.
type Config struct {
	Capacity int
}

// document is the persisted layout.
type document struct {
	History *[]string `json:"history"`
}

// Store is the in-memory history for one dialog session.
type Store struct {
	capacity  int
	whitelist map[string]struct{}
	entries   []string
	backend   Backend
	log       *logging.Logger
}

// New creates a store accepting only labels from whitelist. Call Load to
// populate it from the backend.
func New(cfg Config, whitelist []string, backend Backend) *Store {
	allowed := make(map[string]struct{}, len(whitelist))
	for _, label := range whitelist {
		allowed[label] = struct{}{}
	}
	return &Store{
		capacity:  max(cfg.Capacity, 0),
		whitelist: allowed,
		entries:   []string{},
		backend:   backend,
		log:       logging.Component("history"),
	}
}

// Load replaces the in-memory history with the stored one. A missing,
// unreadable or malformed document yields an empty history. Labels outside
// the whitelist and duplicates are dropped.
func (s *Store) Load(ctx context.Context) {
	s.entries = []string{}

	var data []byte
	var err error
	logging.Time("read history", func() {
		data, err = s.backend.Read(ctx)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("no history stored yet")
		} else {
			s.log.Warn("history unreadable, starting empty", "error", err)
		}
		return
	}

	labels, err := decode(data)
	if err != nil {
		s.log.Warn("history malformed, starting empty", "error", err)
		return
	}

	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if !s.Allowed(label) {
			s.log.Debug("dropping stale history entry", "label", label)
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		s.entries = append(s.entries, label)
	}
	s.truncate()
}

// Current returns the most recent entry.
func (s *Store) Current() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[0], true
}

// Next rotates the history left by one and returns the new first entry.
func (s *Store) Next() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	first := s.entries[0]
	copy(s.entries, s.entries[1:])
	s.entries[len(s.entries)-1] = first
	return s.entries[0], true
}

// Previous rotates the history right by one and returns the new first
// entry. It undoes Next.
func (s *Store) Previous() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	last := s.entries[len(s.entries)-1]
	copy(s.entries[1:], s.entries[:len(s.entries)-1])
	s.entries[0] = last
	return s.entries[0], true
}

// Update moves label to the front (inserting it if needed), trims the
// history to capacity and persists it. Labels outside the whitelist are
// ignored.
func (s *Store) Update(ctx context.Context, label string) {
	if !s.Allowed(label) {
		s.log.Warn("ignoring history update for unknown label", "label", label)
		return
	}

	if i := slices.Index(s.entries, label); i >= 0 {
		s.entries = slices.Delete(s.entries, i, i+1)
	}
	s.entries = slices.Insert(s.entries, 0, label)
	s.truncate()
	s.save(ctx)
}

// Clear empties the history and persists the empty document.
func (s *Store) Clear(ctx context.Context) {
	s.entries = []string{}
	s.save(ctx)
}

// Entries returns a copy of the history, most recent first.
func (s *Store) Entries() []string {
	return slices.Clone(s.entries)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Capacity returns the maximum number of entries kept.
func (s *Store) Capacity() int {
	return s.capacity
}

// Allowed reports whether label is in the whitelist.
func (s *Store) Allowed(label string) bool {
	_, ok := s.whitelist[label]
	return ok
}

// save writes the history to the backend. Failures are logged only;
// the in-memory state stays valid for the session.
func (s *Store) save(ctx context.Context) {
	data, err := encode(s.entries)
	if err != nil {
		s.log.Error("failed to encode history", "error", err)
		return
	}
	if err := s.backend.Write(ctx, data); err != nil {
		s.log.Warn("failed to persist history", "error", err)
		return
	}
	s.log.Debug("history saved", "entries", len(s.entries))
}

func (s *Store) truncate() {
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

func encode(labels []string) ([]byte, error) {
	out := slices.Clone(labels)
	return yaml.Marshal(document{History: &out})
}

func decode(data []byte) ([]string, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse history document: %w", err)
	}
	if doc.History == nil {
		return nil, fmt.Errorf("history document has no history field")
	}
	return *doc.History, nil
}
