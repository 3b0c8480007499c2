package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/git"
)

// Store implements core.Store using a single JSON blob on the local
// filesystem. Every mutation is a read-modify-write of the whole collection,
// written back with an atomic temp-file + rename so a concurrent reader
// never observes a partial blob. A per-store mutex serializes the cycles so
// concurrent callers cannot interleave and lose an update.
type Store struct {
	Path   string
	git    *git.Client
	config Config
	snap   *snapshot

	// mu serializes read-modify-write cycles.
	mu sync.Mutex

	// smu guards the observability fields below.
	smu           sync.RWMutex
	watcherActive bool
	lastReload    *time.Time
}

// Config holds the configuration for the blob-backed store.
type Config struct {
	// Path is the full path of the notes blob (e.g. ~/.jot/notes.json).
	Path string
	// AutoInit creates the parent directory (and git repo when versioned)
	// if missing.
	AutoInit bool
	// MustExist fails Initialize when the blob is not already present.
	MustExist bool
	// Versioned commits the blob to a local git repository after each write.
	Versioned bool
	Logger    *slog.Logger
}

// NewStore creates a new blob-backed store.
func NewStore(config Config) *Store {
	return &Store{
		Path:   config.Path,
		git:    git.NewClient(filepath.Dir(config.Path), config.Logger),
		config: config,
		snap:   newSnapshot(),
	}
}

// Initialize performs the necessary setup for the store (mkdir, git init).
func (s *Store) Initialize(ctx context.Context) error {
	dir := filepath.Dir(s.Path)

	if s.config.MustExist {
		if _, err := os.Stat(s.Path); os.IsNotExist(err) {
			return fmt.Errorf("store blob does not exist: %s", s.Path)
		}
	} else {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	if s.config.Versioned {
		if !git.IsInstalled() {
			return fmt.Errorf("git is not installed")
		}
		if !s.git.IsRepo() {
			if !s.config.AutoInit {
				return fmt.Errorf("store directory is not a git repository: %s", dir)
			}
			if err := s.git.Init(); err != nil {
				return fmt.Errorf("failed to git init: %w", err)
			}
		}
	}

	return nil
}

// LoadAll reads the persisted collection.
// A missing blob yields an empty collection; a blob that exists but cannot
// be decoded fails with *core.CorruptStoreError.
func (s *Store) LoadAll(ctx context.Context) ([]core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	s.snap.Replace(notes)
	return notes, nil
}

// Upsert replaces the note with a matching ID in place, or appends it,
// then writes the whole collection back atomically.
func (s *Store) Upsert(ctx context.Context, n core.Note) ([]core.Note, error) {
	if n.ID == "" {
		return nil, fmt.Errorf("note has no ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range notes {
		if notes[i].ID == n.ID {
			notes[i] = n
			replaced = true
			break
		}
	}
	if !replaced {
		notes = append(notes, n)
	}

	if err := s.writeLocked(ctx, notes, "update "+n.ID); err != nil {
		return nil, err
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("note upserted", "id", n.ID, "replaced", replaced, "total", len(notes))
	}
	return notes, nil
}

// Remove filters out any note with the given ID and writes the collection
// back. Removing an absent ID is a no-op.
func (s *Store) Remove(ctx context.Context, id string) ([]core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	kept := make([]core.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	if err := s.writeLocked(ctx, kept, "delete "+id); err != nil {
		return nil, err
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("note removed", "id", id, "total", len(kept))
	}
	return kept, nil
}

// History returns the blob's recent change log, newest first.
// It implements core.Versioned.
func (s *Store) History(ctx context.Context, limit int) (string, error) {
	if !s.config.Versioned {
		return "", fmt.Errorf("store is not versioned")
	}
	if limit <= 0 {
		limit = 10
	}
	return s.git.Log(strconv.Itoa(limit), filepath.Base(s.Path))
}

// loadLocked reads and decodes the blob. Caller must hold mu.
func (s *Store) loadLocked() ([]core.Note, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		// Never written is not an error.
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, &core.StoreReadError{Path: s.Path, Err: err}
	}

	notes, err := decodeBlob(data)
	if err != nil {
		return nil, &core.CorruptStoreError{Path: s.Path, Err: err}
	}
	return notes, nil
}

// writeLocked encodes and atomically replaces the blob, committing it to
// git when versioned. Caller must hold mu. The snapshot is updated as soon
// as the blob lands, so a later commit failure cannot make the watch diff
// replay this process's own write as an external event.
func (s *Store) writeLocked(ctx context.Context, notes []core.Note, reason string) error {
	data, err := encodeBlob(notes)
	if err != nil {
		return &core.StoreWriteError{Path: s.Path, Err: err}
	}

	if err := writeFileAtomic(s.Path, data, 0644); err != nil {
		return &core.StoreWriteError{Path: s.Path, Err: err}
	}
	s.snap.Replace(notes)

	if s.config.Versioned {
		if err := s.commit(ctx, reason); err != nil {
			// Not a StoreWriteError: the blob replace already succeeded.
			return fmt.Errorf("blob %s written but not committed: %w", s.Path, err)
		}
	}
	return nil
}

func (s *Store) commit(ctx context.Context, reason string) error {
	unlock, err := s.git.Lock()
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	filename := filepath.Base(s.Path)
	if err := s.git.Add(filename); err != nil {
		return fmt.Errorf("failed to git add: %w", err)
	}

	// Identical content (e.g. removing an absent ID) leaves nothing staged.
	status, err := s.git.Status()
	if err != nil {
		return fmt.Errorf("failed to git status: %w", err)
	}
	if status == "" {
		return nil
	}

	msg := git.FormatChangeReason("chore", "notes", reason, "")
	if val, ok := ctx.Value(core.ChangeReasonKey).(string); ok && val != "" {
		msg = val
	}

	if err := s.git.Commit(msg); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}
	return nil
}

// reloadEvents re-reads the blob and diffs it against the last known state.
// Used by the watch worker after an external change.
func (s *Store) reloadEvents(ctx context.Context) ([]core.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	events := s.snap.DiffAndReplace(notes)
	s.recordReload()
	return events, nil
}
