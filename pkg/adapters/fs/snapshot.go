package fs

import (
	"sync"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// snapshot tracks the collection as last observed by this process, keyed by
// note ID. The watch worker diffs fresh loads against it to turn blob-level
// filesystem events into per-note events.
type snapshot struct {
	mu    sync.RWMutex
	notes map[string]core.Note
	ready bool
}

func newSnapshot() *snapshot {
	return &snapshot{notes: make(map[string]core.Note)}
}

// Replace records the given collection as the current known state.
func (s *snapshot) Replace(notes []core.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = make(map[string]core.Note, len(notes))
	for _, n := range notes {
		s.notes[n.ID] = n
	}
	s.ready = true
}

// DiffAndReplace compares the given collection against the known state,
// returns one event per created, modified or deleted note, and records the
// new state. The first observation produces no events.
func (s *snapshot) DiffAndReplace(notes []core.Note) []core.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	next := make(map[string]core.Note, len(notes))
	for _, n := range notes {
		next[n.ID] = n
	}

	var events []core.Event
	if s.ready {
		for id, n := range next {
			prev, seen := s.notes[id]
			switch {
			case !seen:
				events = append(events, core.Event{Type: core.EventCreate, ID: id, Timestamp: now})
			case noteChanged(prev, n):
				events = append(events, core.Event{Type: core.EventModify, ID: id, Timestamp: now})
			}
		}
		for id := range s.notes {
			if _, kept := next[id]; !kept {
				events = append(events, core.Event{Type: core.EventDelete, ID: id, Timestamp: now})
			}
		}
	}

	s.notes = next
	s.ready = true
	return events
}

// Len returns the number of notes in the known state.
func (s *snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

func noteChanged(a, b core.Note) bool {
	return a.Title != b.Title ||
		a.Content != b.Content ||
		a.Importance != b.Importance ||
		!a.CreatedAt.Equal(b.CreatedAt)
}
