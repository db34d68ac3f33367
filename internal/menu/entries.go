package menu

import "strings"

// Entries maps breadcrumb labels to actions and remembers the order in
// which labels were first seen.
type Entries struct {
	order   []string
	actions map[string]Action
}

// NewEntries creates an empty entry set.
func NewEntries() *Entries {
	return &Entries{
		order:   []string{},
		actions: make(map[string]Action),
	}
}

// Set records label -> action. A duplicate label overwrites the earlier
// action but keeps its original position.
func (e *Entries) Set(label string, action Action) {
	if _, exists := e.actions[label]; !exists {
		e.order = append(e.order, label)
	}
	e.actions[label] = action
}

// Get returns the action for label.
func (e *Entries) Get(label string) (Action, bool) {
	action, ok := e.actions[label]
	return action, ok
}

// Has reports whether label is a known entry.
func (e *Entries) Has(label string) bool {
	_, ok := e.actions[label]
	return ok
}

// Len returns the number of entries.
func (e *Entries) Len() int {
	return len(e.order)
}

// Labels returns all labels in crawl order.
func (e *Entries) Labels() []string {
	labels := make([]string, len(e.order))
	copy(labels, e.order)
	return labels
}

// Match returns labels containing query, case-insensitively, in crawl order.
// An empty query matches every label.
func (e *Entries) Match(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return e.Labels()
	}

	matches := []string{}
	for _, label := range e.order {
		if strings.Contains(strings.ToLower(label), query) {
			matches = append(matches, label)
		}
	}
	return matches
}
