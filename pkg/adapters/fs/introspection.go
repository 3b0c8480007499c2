package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	Notes         int        `json:"notes"`
	Versioned     bool       `json:"versioned"`
	WatcherActive bool       `json:"watcher_active"`
	LastReload    *time.Time `json:"last_reload,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.smu.RLock()
	defer s.smu.RUnlock()

	return StoreState{
		Path:          s.Path,
		Notes:         s.snap.Len(),
		Versioned:     s.config.Versioned,
		WatcherActive: s.watcherActive,
		LastReload:    s.lastReload,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "blob-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.smu.Lock()
	defer s.smu.Unlock()
	s.watcherActive = active
}

func (s *Store) recordReload() {
	s.smu.Lock()
	defer s.smu.Unlock()
	now := time.Now()
	s.lastReload = &now
}
